package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/services"
	"inventoryplanner/store"
)

// productRequest is the body of product create and update calls. Price is
// left untyped so form-style strings such as "12.50" are accepted.
type productRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Company   *string `json:"company"`
	Price     any     `json:"price"`
	Comment   *string `json:"comment"`
	ImageData *string `json:"imageData"`
}

func (r productRequest) patch() store.ProductPatch {
	p := store.ProductPatch{
		Name:      trimmed(r.Name),
		Type:      trimmed(r.Type),
		Company:   trimmed(r.Company),
		Comment:   trimmed(r.Comment),
		ImageData: r.ImageData,
	}
	if r.Price != nil {
		price := services.ParsePrice(r.Price)
		p.Price = &price
	}
	return p
}

// HandleProductList returns the catalog, filtered by ?q= when present.
// Route: GET /products
func HandleProductList(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query().Get("q")
		return e.JSON(http.StatusOK, listOf(s.SearchProducts(q)))
	}
}

// HandleProductGet returns a single product.
// Route: GET /products/{id}
func HandleProductGet(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, ok := s.GetProduct(e.Request.PathValue("id"))
		if !ok {
			return ErrorJSON(e, http.StatusNotFound, "Product not found")
		}
		return e.JSON(http.StatusOK, p)
	}
}

// HandleProductCreate adds a product to the catalog.
// Route: POST /products
func HandleProductCreate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req productRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid product data")
		}

		var p store.Product
		patch := req.patch()
		if patch.Name == nil || *patch.Name == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please enter product name")
		}
		p.Name = *patch.Name
		setString(&p.Type, patch.Type)
		setString(&p.Company, patch.Company)
		setString(&p.Comment, patch.Comment)
		setString(&p.ImageData, patch.ImageData)
		if patch.Price != nil {
			p.Price = *patch.Price
		}

		created, err := s.AddProduct(p)
		if err != nil {
			return storeError(e, "product_create", err)
		}
		return e.JSON(http.StatusCreated, created)
	}
}

// HandleProductUpdate merges the supplied fields into a product. Omitted
// fields, including the image, keep their stored values.
// Route: PATCH /products/{id}
func HandleProductUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetProduct(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Product not found")
		}

		var req productRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid product data")
		}
		patch := req.patch()
		if patch.Name != nil && *patch.Name == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please enter product name")
		}

		if err := s.UpdateProduct(id, patch); err != nil {
			return storeError(e, "product_update", err)
		}
		updated, _ := s.GetProduct(id)
		return e.JSON(http.StatusOK, updated)
	}
}

// HandleProductDelete removes a product. Placements that reference it stay
// in their projects and drop out of summaries.
// Route: DELETE /products/{id}
func HandleProductDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetProduct(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Product not found")
		}
		if err := s.DeleteProduct(id); err != nil {
			return storeError(e, "product_delete", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
