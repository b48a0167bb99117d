package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/store"
	"inventoryplanner/structure"
)

// nodeRequest describes a node to insert. Name applies to levels and areas,
// ProductID and Quantity to placements. An empty ParentID inserts at the
// top of the structure.
type nodeRequest struct {
	Type      structure.Kind `json:"type"`
	Name      string         `json:"name"`
	ProductID string         `json:"productId"`
	Quantity  any            `json:"quantity"`
	ParentID  string         `json:"parentId"`
}

type quantityRequest struct {
	Quantity any `json:"quantity"`
}

// build validates the request and returns the node it describes, or a
// message for the client.
func (r nodeRequest) build() (structure.Node, string) {
	switch r.Type {
	case structure.KindLevel, structure.KindArea:
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, "Please enter a name"
		}
		if r.Type == structure.KindLevel {
			return structure.NewLevel(name), ""
		}
		return structure.NewArea(name), ""
	case structure.KindPlacement:
		productID := strings.TrimSpace(r.ProductID)
		if productID == "" {
			return nil, "Please select a product"
		}
		qty := r.Quantity
		if qty == nil {
			qty = structure.DefaultQuantity
		}
		return structure.NewPlacement(productID, qty), ""
	default:
		return nil, "Unknown node type"
	}
}

// HandleNodeInsert appends a level, area or product placement under
// parentId. Placing anything under a product is rejected.
// Route: POST /projects/{id}/nodes
func HandleNodeInsert(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, ok := s.GetProject(projectID); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}

		var req nodeRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid node data")
		}
		n, msg := req.build()
		if n == nil {
			return ErrorJSON(e, http.StatusBadRequest, msg)
		}

		if err := s.InsertNode(projectID, n, strings.TrimSpace(req.ParentID)); err != nil {
			return storeError(e, "node_insert", err)
		}
		return e.JSON(http.StatusCreated, n)
	}
}

// HandleNodeRemove deletes a node and its whole subtree.
// Route: DELETE /projects/{id}/nodes/{nodeId}
func HandleNodeRemove(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		err := s.RemoveNode(e.Request.PathValue("id"), e.Request.PathValue("nodeId"))
		if err != nil {
			return storeError(e, "node_remove", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleNodeQuantity sets a placement's quantity. Values that are not a
// positive integer are stored as 1; the stored value is echoed back.
// Route: PUT /projects/{id}/nodes/{nodeId}/quantity
func HandleNodeQuantity(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req quantityRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid quantity")
		}

		qty, err := s.SetQuantity(e.Request.PathValue("id"), e.Request.PathValue("nodeId"), req.Quantity)
		if err != nil {
			return storeError(e, "node_quantity", err)
		}
		return e.JSON(http.StatusOK, map[string]int{"quantity": qty})
	}
}
