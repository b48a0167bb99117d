// Package store owns the product, client and project collections and keeps
// them in a durable backend as one serialized document under a fixed key.
//
// Every mutating call writes the complete state. A mutation only becomes
// visible after the write succeeded, so a failed write leaves the in-memory
// collections untouched and the error is returned to the caller.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"inventoryplanner/structure"
)

// DefaultKey is the key the whole state is stored under.
const DefaultKey = "inventoryDB"

var (
	// ErrNotFound is returned by tree operations when the project or node
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrParentNotFound is returned when an insert names a parent that is
	// missing or is not a level or area. The tree is left unchanged.
	ErrParentNotFound = errors.New("parent node not found or cannot hold children")
	// ErrCorruptState is returned by Open when the stored document cannot
	// be decoded.
	ErrCorruptState = errors.New("stored state is corrupt")
)

// Backend is the durable key-value medium.
type Backend interface {
	// Load returns the value for key. ok is false when the key is absent.
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
}

type state struct {
	Products []Product `json:"products"`
	Clients  []Client  `json:"clients"`
	Projects []Project `json:"projects"`
}

// Store is the entity store. Its methods are safe to call from concurrent
// HTTP handlers; each call runs to completion under one lock.
type Store struct {
	mu      sync.Mutex
	backend Backend
	key     string
	data    state
}

// Open loads the state stored under key. An absent key yields an empty
// store; an undecodable document yields ErrCorruptState.
func Open(backend Backend, key string) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}

	s := &Store{backend: backend, key: key}

	raw, ok, err := backend.Load(key)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrCorruptState, key, err)
	}
	for i := range s.data.Projects {
		if s.data.Projects[i].Structure == nil {
			s.data.Projects[i].Structure = structure.Forest{}
		}
	}
	return s, nil
}

// commit writes next and, only on success, makes it the current state.
func (s *Store) commit(next state) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := s.backend.Save(s.key, raw); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	s.data = next
	return nil
}

// ── Products ─────────────────────────────────────────────────────────────

func (s *Store) AddProduct(p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	p.Price = normalizePrice(p.Price)

	next := s.data
	next.Products = append(slices.Clip(s.data.Products), p)
	if err := s.commit(next); err != nil {
		return Product{}, err
	}
	return p, nil
}

// AddProducts stores every product in ps with a fresh id in one write. On a
// write failure none of them are added.
func (s *Store) AddProducts(ps []Product) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]Product, len(ps))
	for i, p := range ps {
		p.ID = newID()
		p.Price = normalizePrice(p.Price)
		added[i] = p
	}
	if len(added) == 0 {
		return added, nil
	}

	next := s.data
	next.Products = append(slices.Clip(s.data.Products), added...)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	return slices.Clone(added), nil
}

// UpdateProduct merges patch into the stored product. A missing id is a no-op.
func (s *Store) UpdateProduct(id string, patch ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	var ok bool
	next.Products, ok = updateIn(s.data.Products, id, patch.apply)
	if !ok {
		return nil
	}
	return s.commit(next)
}

// DeleteProduct removes the product. Placements referencing it are left in
// place and resolve to nothing during aggregation.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	var ok bool
	next.Products, ok = deleteFrom(s.data.Products, id)
	if !ok {
		return nil
	}
	return s.commit(next)
}

func (s *Store) GetProduct(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return getFrom(s.data.Products, id)
}

func (s *Store) ListProducts() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.data.Products)
}

// SearchProducts returns products whose name, type, company or comment
// contains term, case-insensitively. An empty term lists everything.
func (s *Store) SearchProducts(term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	all := s.ListProducts()
	if term == "" {
		return all
	}

	var out []Product
	for _, p := range all {
		haystack := strings.ToLower(strings.Join([]string{p.Name, p.Type, p.Company, p.Comment}, " "))
		if strings.Contains(haystack, term) {
			out = append(out, p)
		}
	}
	return out
}

// ── Clients ──────────────────────────────────────────────────────────────

func (s *Store) AddClient(c Client) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()

	next := s.data
	next.Clients = append(slices.Clip(s.data.Clients), c)
	if err := s.commit(next); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Store) UpdateClient(id string, patch ClientPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	var ok bool
	next.Clients, ok = updateIn(s.data.Clients, id, patch.apply)
	if !ok {
		return nil
	}
	return s.commit(next)
}

// DeleteClient removes the client and every project that belongs to it.
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	var removedClient bool
	next.Clients, removedClient = deleteFrom(s.data.Clients, id)

	projects := slices.DeleteFunc(slices.Clone(s.data.Projects), func(p Project) bool {
		return p.ClientID == id
	})
	removedProjects := len(projects) != len(s.data.Projects)
	if !removedClient && !removedProjects {
		return nil
	}
	next.Projects = projects
	return s.commit(next)
}

func (s *Store) GetClient(id string) (Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return getFrom(s.data.Clients, id)
}

func (s *Store) ListClients() []Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.data.Clients)
}

// ── Projects ─────────────────────────────────────────────────────────────

// AddProject stores p with a fresh id and an empty structure; any structure
// on the argument is ignored.
func (s *Store) AddProject(p Project) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	p.Structure = structure.Forest{}

	next := s.data
	next.Projects = append(slices.Clip(s.data.Projects), p)
	if err := s.commit(next); err != nil {
		return Project{}, err
	}
	return p.snapshot(), nil
}

func (s *Store) UpdateProject(id string, patch ProjectPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	var ok bool
	next.Projects, ok = updateIn(s.data.Projects, id, patch.apply)
	if !ok {
		return nil
	}
	return s.commit(next)
}

func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	var ok bool
	next.Projects, ok = deleteFrom(s.data.Projects, id)
	if !ok {
		return nil
	}
	return s.commit(next)
}

// GetProject returns a deep snapshot; mutating it does not affect the store.
func (s *Store) GetProject(id string) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := getFrom(s.data.Projects, id)
	if !ok {
		return Project{}, false
	}
	return p.snapshot(), true
}

func (s *Store) ListProjects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshots(s.data.Projects)
}

// ClientProjects lists the projects of one client in insertion order.
func (s *Store) ClientProjects(clientID string) []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Project
	for _, p := range s.data.Projects {
		if p.ClientID == clientID {
			out = append(out, p.snapshot())
		}
	}
	return out
}

// ── generic collection helpers ───────────────────────────────────────────

type record interface {
	key() string
}

func indexOf[T record](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.key() == id })
}

func getFrom[T record](items []T, id string) (T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}

// updateIn returns a copy of items with the matching entry replaced by
// apply(entry). The input slice is not modified.
func updateIn[T record](items []T, id string, apply func(T) T) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[i] = apply(out[i])
	return out, true
}

func deleteFrom[T record](items []T, id string) ([]T, bool) {
	out := slices.DeleteFunc(slices.Clone(items), func(it T) bool { return it.key() == id })
	return out, len(out) != len(items)
}

func snapshots(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.snapshot()
	}
	return out
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
