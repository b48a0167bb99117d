package collections

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// KVStore is a store.Backend that keeps each key as a record of the
// kv_store collection.
type KVStore struct {
	app core.App
}

func NewKVStore(app core.App) *KVStore {
	return &KVStore{app: app}
}

func (s *KVStore) Load(key string) ([]byte, bool, error) {
	rec, err := s.app.FindFirstRecordByData(KVCollection, "key", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv_store: find %q: %w", key, err)
	}
	return []byte(rec.GetString("value")), true, nil
}

// Save upserts the record for key.
func (s *KVStore) Save(key string, value []byte) error {
	rec, err := s.app.FindFirstRecordByData(KVCollection, "key", key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		col, err := s.app.FindCollectionByNameOrId(KVCollection)
		if err != nil {
			return fmt.Errorf("kv_store: collection: %w", err)
		}
		rec = core.NewRecord(col)
		rec.Set("key", key)
	case err != nil:
		return fmt.Errorf("kv_store: find %q: %w", key, err)
	}

	rec.Set("value", string(value))
	if err := s.app.Save(rec); err != nil {
		return fmt.Errorf("kv_store: save %q: %w", key, err)
	}
	return nil
}
