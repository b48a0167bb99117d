package store

import (
	"fmt"

	"inventoryplanner/structure"
)

// InsertNode appends a copy of n under parentID in the project's structure.
// An empty parentID inserts at the root.
func (s *Store) InsertNode(projectID string, n structure.Node, parentID string) error {
	return s.mutateStructure(projectID, func(f *structure.Forest) error {
		if !f.Insert(structure.CloneNode(n), parentID) {
			return fmt.Errorf("insert under %q: %w", parentID, ErrParentNotFound)
		}
		return nil
	})
}

// RemoveNode deletes the node and its whole subtree.
func (s *Store) RemoveNode(projectID, nodeID string) error {
	return s.mutateStructure(projectID, func(f *structure.Forest) error {
		if !f.Remove(nodeID) {
			return fmt.Errorf("node %q: %w", nodeID, ErrNotFound)
		}
		return nil
	})
}

// SetQuantity coerces value and stores it on the placement nodeID. It
// returns the stored quantity.
func (s *Store) SetQuantity(projectID, nodeID string, value any) (int, error) {
	var qty int
	err := s.mutateStructure(projectID, func(f *structure.Forest) error {
		q, ok := f.SetQuantity(nodeID, value)
		if !ok {
			return fmt.Errorf("placement %q: %w", nodeID, ErrNotFound)
		}
		qty = q
		return nil
	})
	return qty, err
}

// mutateStructure runs fn on a private copy of the project's forest and
// commits the copy only when fn succeeds.
func (s *Store) mutateStructure(projectID string, fn func(*structure.Forest) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.data.Projects, projectID)
	if i < 0 {
		return fmt.Errorf("project %q: %w", projectID, ErrNotFound)
	}

	forest := s.data.Projects[i].Structure.Clone()
	if err := fn(&forest); err != nil {
		return err
	}

	next := s.data
	next.Projects = append([]Project(nil), s.data.Projects...)
	next.Projects[i].Structure = forest
	return s.commit(next)
}
