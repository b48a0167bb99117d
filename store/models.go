package store

import (
	"math"

	"inventoryplanner/structure"
)

// Product is a catalog entry. Optional text fields are empty when absent.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type,omitempty"`
	Company   string  `json:"company,omitempty"`
	Price     float64 `json:"price"`
	Comment   string  `json:"comment,omitempty"`
	ImageData string  `json:"imageData,omitempty"`
}

// ProductPatch carries the fields of an update. Nil fields keep their
// stored value.
type ProductPatch struct {
	Name      *string  `json:"name,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Company   *string  `json:"company,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Comment   *string  `json:"comment,omitempty"`
	ImageData *string  `json:"imageData,omitempty"`
}

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type ClientPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// Project is a client's layout. ClientID is not checked against the client
// collection.
type Project struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ClientID  string           `json:"clientId"`
	Structure structure.Forest `json:"structure"`
}

// ProjectPatch replaces Structure wholesale when it is non-nil.
type ProjectPatch struct {
	Name      *string           `json:"name,omitempty"`
	ClientID  *string           `json:"clientId,omitempty"`
	Structure *structure.Forest `json:"structure,omitempty"`
}

func (p Product) key() string { return p.ID }
func (c Client) key() string  { return c.ID }
func (p Project) key() string { return p.ID }

func (p ProductPatch) apply(dst Product) Product {
	setIf(&dst.Name, p.Name)
	setIf(&dst.Type, p.Type)
	setIf(&dst.Company, p.Company)
	if p.Price != nil {
		dst.Price = normalizePrice(*p.Price)
	}
	setIf(&dst.Comment, p.Comment)
	setIf(&dst.ImageData, p.ImageData)
	return dst
}

func (p ClientPatch) apply(dst Client) Client {
	setIf(&dst.Name, p.Name)
	setIf(&dst.Address, p.Address)
	setIf(&dst.Phone, p.Phone)
	return dst
}

func (p ProjectPatch) apply(dst Project) Project {
	setIf(&dst.Name, p.Name)
	setIf(&dst.ClientID, p.ClientID)
	if p.Structure != nil {
		dst.Structure = p.Structure.Clone()
	}
	return dst
}

// snapshot returns a copy that shares nothing mutable with p.
func (p Project) snapshot() Project {
	p.Structure = p.Structure.Clone()
	return p
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func normalizePrice(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
