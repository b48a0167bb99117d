package structure

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when decoding a node whose "type" is not one of
// level, area or product.
var ErrUnknownKind = errors.New("unknown structure node type")

// containerJSON is the wire shape shared by levels and areas.
type containerJSON struct {
	ID       string `json:"id"`
	Type     Kind   `json:"type"`
	Name     string `json:"name"`
	Children Forest `json:"children"`
}

type placementJSON struct {
	ID        string `json:"id"`
	Type      Kind   `json:"type"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// nodeJSON is the union of both shapes, used only for decoding.
type nodeJSON struct {
	ID        string `json:"id"`
	Type      Kind   `json:"type"`
	Name      string `json:"name"`
	Children  Forest `json:"children"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (l *Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(containerJSON{ID: l.ID, Type: KindLevel, Name: l.Name, Children: l.Children})
}

func (a *Area) MarshalJSON() ([]byte, error) {
	return json.Marshal(containerJSON{ID: a.ID, Type: KindArea, Name: a.Name, Children: a.Children})
}

func (p *Placement) MarshalJSON() ([]byte, error) {
	return json.Marshal(placementJSON{ID: p.ID, Type: KindPlacement, ProductID: p.ProductID, Quantity: p.Quantity})
}

// MarshalJSON always emits an array, never null.
func (f Forest) MarshalJSON() ([]byte, error) {
	nodes := []Node(f)
	if nodes == nil {
		nodes = []Node{}
	}
	return json.Marshal(nodes)
}

// UnmarshalJSON decodes a JSON array of tagged nodes.
func (f *Forest) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode structure: %w", err)
	}

	nodes := make(Forest, 0, len(raw))
	for i, r := range raw {
		n, err := decodeNode(r)
		if err != nil {
			return fmt.Errorf("structure node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	*f = nodes
	return nil
}

func decodeNode(data []byte) (Node, error) {
	var w nodeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	children := w.Children
	if children == nil {
		children = Forest{}
	}

	switch w.Type {
	case KindLevel:
		return &Level{ID: w.ID, Name: w.Name, Children: children}, nil
	case KindArea:
		return &Area{ID: w.ID, Name: w.Name, Children: children}, nil
	case KindPlacement:
		qty := w.Quantity
		if qty < 1 {
			qty = DefaultQuantity
		}
		return &Placement{ID: w.ID, ProductID: w.ProductID, Quantity: qty}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Type)
	}
}
