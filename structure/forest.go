package structure

// Forest is an ordered list of root nodes (or the children of a container).
type Forest []Node

// Insert appends n to the children of the container identified by parentID,
// or to the forest itself when parentID is empty. The parent is located with
// a pre-order depth-first search. When no node has that id, or the node is a
// placement, n is dropped and Insert reports false.
func (f *Forest) Insert(n Node, parentID string) bool {
	if parentID == "" {
		*f = append(*f, n)
		return true
	}

	parent, ok := f.Find(parentID)
	if !ok {
		return false
	}
	c, ok := parent.(Container)
	if !ok {
		return false
	}

	children := c.childForest()
	*children = append(*children, n)
	return true
}

// Find returns the first node in pre-order whose id matches.
func (f Forest) Find(id string) (Node, bool) {
	for _, n := range f {
		if n.NodeID() == id {
			return n, true
		}
		if c, ok := n.(Container); ok {
			if found, ok := c.Nodes().Find(id); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Remove deletes the first node in pre-order whose id matches, together with
// its entire subtree. It reports whether a node was removed.
func (f *Forest) Remove(id string) bool {
	nodes := *f
	for i, n := range nodes {
		if n.NodeID() == id {
			// full slice expression: never write into a backing array a
			// previous snapshot may still share
			*f = append(nodes[:i:i], nodes[i+1:]...)
			return true
		}
		if c, ok := n.(Container); ok {
			if c.childForest().Remove(id) {
				return true
			}
		}
	}
	return false
}

// SetQuantity coerces value with CoerceQuantity and stores it on the
// placement identified by id. It reports false when id is missing or names
// a level or an area.
func (f Forest) SetQuantity(id string, value any) (int, bool) {
	n, ok := f.Find(id)
	if !ok {
		return 0, false
	}
	p, ok := n.(*Placement)
	if !ok {
		return 0, false
	}
	p.Quantity = CoerceQuantity(value)
	return p.Quantity, true
}

// Walk calls fn for every node of the forest in pre-order.
func (f Forest) Walk(fn func(Node)) {
	for _, n := range f {
		fn(n)
		if c, ok := n.(Container); ok {
			c.Nodes().Walk(fn)
		}
	}
}

// Clone returns a deep copy of the forest. A nil forest clones to an empty one.
func (f Forest) Clone() Forest {
	out := make(Forest, len(f))
	for i, n := range f {
		out[i] = n.clone()
	}
	return out
}
