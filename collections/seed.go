package collections

import (
	"fmt"
	"log"

	"inventoryplanner/store"
	"inventoryplanner/structure"
)

// ── Definition structs ───────────────────────────────────────────────────

type placementDef struct {
	product string // key into the seeded catalog
	qty     int
}

type areaDef struct {
	name       string
	placements []placementDef
	areas      []areaDef
}

type levelDef struct {
	name  string
	areas []areaDef
}

var seedProducts = []store.Product{
	{Name: "Lounge Chair", Type: "Seating", Company: "Northwood", Price: 349, Comment: "Fabric, charcoal"},
	{Name: "Reception Desk", Type: "Desks", Company: "Northwood", Price: 1890},
	{Name: "Pendant Light", Type: "Lighting", Company: "Lumen & Co", Price: 129.5, Comment: "Warm white 2700K"},
	{Name: "Area Rug 2x3m", Type: "Flooring", Company: "Weave Studio", Price: 420},
	{Name: "Meeting Table", Type: "Tables", Company: "Oakline", Price: 980, Comment: "Seats eight"},
	{Name: "Task Chair", Type: "Seating", Company: "Ergoform", Price: 260},
}

var seedLayout = []levelDef{
	{
		name: "Ground Floor",
		areas: []areaDef{
			{
				name: "Lobby",
				placements: []placementDef{
					{"Reception Desk", 1},
					{"Lounge Chair", 4},
					{"Pendant Light", 3},
				},
				areas: []areaDef{
					{name: "Waiting Corner", placements: []placementDef{{"Area Rug 2x3m", 1}, {"Lounge Chair", 2}}},
				},
			},
		},
	},
	{
		name: "First Floor",
		areas: []areaDef{
			{name: "Boardroom", placements: []placementDef{{"Meeting Table", 1}, {"Task Chair", 8}, {"Pendant Light", 2}}},
			{name: "Storage"},
		},
	},
}

// Seed populates an empty store with a small demo catalog, one client and
// one laid-out project. It returns early if the store already holds
// products or clients.
func Seed(s *store.Store) error {
	if len(s.ListProducts()) > 0 || len(s.ListClients()) > 0 {
		return nil // already seeded
	}

	log.Println("seed: store is empty, inserting seed data...")

	productIDs := make(map[string]string, len(seedProducts))
	for _, p := range seedProducts {
		saved, err := s.AddProduct(p)
		if err != nil {
			return fmt.Errorf("seed: product %q: %w", p.Name, err)
		}
		productIDs[p.Name] = saved.ID
	}

	client, err := s.AddClient(store.Client{
		Name:    "Harbor View Hotel",
		Address: "12 Quay Street",
		Phone:   "+1 555 0142",
	})
	if err != nil {
		return fmt.Errorf("seed: client: %w", err)
	}

	project, err := s.AddProject(store.Project{Name: "Lobby Refurbishment", ClientID: client.ID})
	if err != nil {
		return fmt.Errorf("seed: project: %w", err)
	}

	// ── helper: insert an area with its placements and nested areas ──
	var insertArea func(parentID string, d areaDef) error
	insertArea = func(parentID string, d areaDef) error {
		area := structure.NewArea(d.name)
		if err := s.InsertNode(project.ID, area, parentID); err != nil {
			return fmt.Errorf("seed: area %q: %w", d.name, err)
		}
		for _, pd := range d.placements {
			placement := structure.NewPlacement(productIDs[pd.product], pd.qty)
			if err := s.InsertNode(project.ID, placement, area.ID); err != nil {
				return fmt.Errorf("seed: placement %q: %w", pd.product, err)
			}
		}
		for _, sub := range d.areas {
			if err := insertArea(area.ID, sub); err != nil {
				return err
			}
		}
		return nil
	}

	for _, ld := range seedLayout {
		level := structure.NewLevel(ld.name)
		if err := s.InsertNode(project.ID, level, ""); err != nil {
			return fmt.Errorf("seed: level %q: %w", ld.name, err)
		}
		for _, ad := range ld.areas {
			if err := insertArea(level.ID, ad); err != nil {
				return err
			}
		}
	}

	log.Printf("seed: created %d products, client %q and project %q", len(seedProducts), client.Name, project.Name)
	return nil
}
