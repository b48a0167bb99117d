package services

import (
	"inventoryplanner/store"
	"inventoryplanner/structure"
)

// ProductCatalog resolves product ids during aggregation. *store.Store
// satisfies it.
type ProductCatalog interface {
	GetProduct(id string) (store.Product, bool)
}

// Stats counts every node of a forest by kind.
type Stats struct {
	Levels   int `json:"levelCount"`
	Areas    int `json:"areaCount"`
	Products int `json:"productCount"`
}

// ProductQuantity is one entry of a rollup.
type ProductQuantity struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AreaProduct is one placement listed under an area.
type AreaProduct struct {
	Product  store.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// AreaSummary lists the placements found anywhere below one area.
type AreaSummary struct {
	AreaID   string        `json:"areaId"`
	Name     string        `json:"name"`
	Products []AreaProduct `json:"products"`
}

func ComputeStats(f structure.Forest) Stats {
	var s Stats
	f.Walk(func(n structure.Node) {
		switch n.(type) {
		case *structure.Level:
			s.Levels++
		case *structure.Area:
			s.Areas++
		case *structure.Placement:
			s.Products++
		}
	})
	return s
}

// RollupQuantities sums placement quantities per product across the whole
// forest. Entries are ordered by first appearance in a pre-order walk.
func RollupQuantities(f structure.Forest) []ProductQuantity {
	var out []ProductQuantity
	index := make(map[string]int)

	f.Walk(func(n structure.Node) {
		p, ok := n.(*structure.Placement)
		if !ok {
			return
		}
		if i, seen := index[p.ProductID]; seen {
			out[i].Quantity += p.Quantity
			return
		}
		index[p.ProductID] = len(out)
		out = append(out, ProductQuantity{ProductID: p.ProductID, Quantity: p.Quantity})
	})
	return out
}

// AreaBreakdown returns one summary per area in pre-order. An area lists
// every placement in its subtree, so a placement inside a nested area shows
// up under that area and under each enclosing area. Placements whose
// product is missing from catalog are skipped.
func AreaBreakdown(f structure.Forest, catalog ProductCatalog) []AreaSummary {
	var out []AreaSummary

	f.Walk(func(n structure.Node) {
		area, ok := n.(*structure.Area)
		if !ok {
			return
		}

		summary := AreaSummary{AreaID: area.ID, Name: area.Name, Products: []AreaProduct{}}
		area.Children.Walk(func(c structure.Node) {
			p, ok := c.(*structure.Placement)
			if !ok {
				return
			}
			product, found := catalog.GetProduct(p.ProductID)
			if !found {
				return
			}
			summary.Products = append(summary.Products, AreaProduct{Product: product, Quantity: p.Quantity})
		})
		out = append(out, summary)
	})
	return out
}
