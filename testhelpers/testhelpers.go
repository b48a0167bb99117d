// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"

	"inventoryplanner/collections"
	"inventoryplanner/store"
	"inventoryplanner/structure"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewTestStore opens an entity store persisted in app's kv_store collection.
func NewTestStore(t *testing.T, app *pocketbase.PocketBase) *store.Store {
	t.Helper()

	s, err := store.Open(collections.NewKVStore(app), store.DefaultKey)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return s
}

// NewMemoryStore opens an entity store with no database behind it.
func NewMemoryStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(store.NewMemoryBackend(), store.DefaultKey)
	if err != nil {
		t.Fatalf("failed to open memory store: %v", err)
	}
	return s
}

// CreateTestProduct adds a product with the given name and price.
func CreateTestProduct(t *testing.T, s *store.Store, name string, price float64) store.Product {
	t.Helper()

	p, err := s.AddProduct(store.Product{Name: name, Type: "Test", Company: "Test Co", Price: price})
	if err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}
	return p
}

// CreateTestClient adds a client with the given name.
func CreateTestClient(t *testing.T, s *store.Store, name string) store.Client {
	t.Helper()

	c, err := s.AddClient(store.Client{Name: name, Phone: "555-0100"})
	if err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}
	return c
}

// CreateTestProject adds an empty project owned by clientID.
func CreateTestProject(t *testing.T, s *store.Store, clientID, name string) store.Project {
	t.Helper()

	p, err := s.AddProject(store.Project{Name: name, ClientID: clientID})
	if err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}
	return p
}

// InsertTestNode inserts n into the project's structure and fails the test
// on error.
func InsertTestNode(t *testing.T, s *store.Store, projectID string, n structure.Node, parentID string) {
	t.Helper()

	if err := s.InsertNode(projectID, n, parentID); err != nil {
		t.Fatalf("failed to insert node %s: %v", n.NodeID(), err)
	}
}
