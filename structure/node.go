// Package structure models a project's layout as a forest of levels, areas
// and product placements.
//
// Node is a closed sum type: only *Level, *Area and *Placement implement it.
// Levels and areas are containers and may own children; a placement is
// always a leaf, so appending a child to one cannot be expressed.
package structure

import (
	"github.com/google/uuid"
)

// Kind tags the variant of a Node. The values double as the "type" field of
// the JSON wire format.
type Kind string

const (
	KindLevel     Kind = "level"
	KindArea      Kind = "area"
	KindPlacement Kind = "product"
)

// DefaultQuantity is used for new placements and for quantity inputs that
// cannot be coerced into a positive integer.
const DefaultQuantity = 1

// Node is one entry of a project structure.
type Node interface {
	NodeID() string
	Kind() Kind
	clone() Node
}

// Container is a Node that owns an ordered list of children.
type Container interface {
	Node
	Label() string
	Nodes() Forest
	childForest() *Forest
}

// Level is an organisational level such as a floor or a building wing.
type Level struct {
	ID       string
	Name     string
	Children Forest
}

// Area is a sub-area (room, zone) that may nest inside levels or other areas.
type Area struct {
	ID       string
	Name     string
	Children Forest
}

// Placement records a quantity of a catalog product placed in the layout.
type Placement struct {
	ID        string
	ProductID string
	Quantity  int
}

// NewLevel returns an empty level with a fresh identifier.
func NewLevel(name string) *Level {
	return &Level{ID: newID(), Name: name, Children: Forest{}}
}

// NewArea returns an empty area with a fresh identifier.
func NewArea(name string) *Area {
	return &Area{ID: newID(), Name: name, Children: Forest{}}
}

// NewPlacement returns a placement of productID. quantity is coerced the same
// way user input is, so zero or negative values become DefaultQuantity.
func NewPlacement(productID string, quantity any) *Placement {
	return &Placement{ID: newID(), ProductID: productID, Quantity: CoerceQuantity(quantity)}
}

func (l *Level) NodeID() string       { return l.ID }
func (l *Level) Kind() Kind           { return KindLevel }
func (l *Level) Label() string        { return l.Name }
func (l *Level) Nodes() Forest        { return l.Children }
func (l *Level) childForest() *Forest { return &l.Children }

func (l *Level) clone() Node {
	return &Level{ID: l.ID, Name: l.Name, Children: l.Children.Clone()}
}

func (a *Area) NodeID() string       { return a.ID }
func (a *Area) Kind() Kind           { return KindArea }
func (a *Area) Label() string        { return a.Name }
func (a *Area) Nodes() Forest        { return a.Children }
func (a *Area) childForest() *Forest { return &a.Children }

func (a *Area) clone() Node {
	return &Area{ID: a.ID, Name: a.Name, Children: a.Children.Clone()}
}

func (p *Placement) NodeID() string { return p.ID }
func (p *Placement) Kind() Kind     { return KindPlacement }

func (p *Placement) clone() Node {
	cp := *p
	return &cp
}

// CloneNode returns a deep copy of n, including its whole subtree.
func CloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	return n.clone()
}

// newID returns a time-ordered UUIDv7 so ids keep the generation order of
// the old millisecond timestamps without colliding inside one millisecond.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
