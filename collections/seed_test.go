package collections_test

import (
	"bytes"
	"log"
	"os"
	"testing"
	"unicode"

	"inventoryplanner/collections"
	"inventoryplanner/services"
	"inventoryplanner/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := testhelpers.NewTestStore(t, app)

	if err := collections.Seed(s); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	if n := len(s.ListProducts()); n != 6 {
		t.Errorf("expected 6 products, got %d", n)
	}
	clients := s.ListClients()
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	projects := s.ClientProjects(clients[0].ID)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project for the seeded client, got %d", len(projects))
	}

	stats := services.ComputeStats(projects[0].Structure)
	want := services.Stats{Levels: 2, Areas: 4, Products: 8}
	if stats != want {
		t.Errorf("seeded structure stats = %+v, want %+v", stats, want)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := testhelpers.NewTestStore(t, app)

	if err := collections.Seed(s); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(s); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	if n := len(s.ListProducts()); n != 6 {
		t.Errorf("expected 6 products after seeding twice, got %d", n)
	}
	if n := len(s.ListProjects()); n != 1 {
		t.Errorf("expected 1 project after seeding twice, got %d", n)
	}
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	s := testhelpers.NewMemoryStore(t)
	testhelpers.CreateTestProduct(t, s, "Existing", 10)

	if err := collections.Seed(s); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if n := len(s.ListProducts()); n != 1 {
		t.Errorf("seed should not touch a non-empty store, got %d products", n)
	}
}

func TestSeed_LogsPlainASCII(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s := testhelpers.NewMemoryStore(t)
	if err := collections.Seed(s); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("seed: store is empty")) {
		t.Errorf("missing seed log line in %q", out)
	}
	for _, r := range out {
		if r > unicode.MaxASCII {
			t.Errorf("seed log contains non-ASCII rune %q: %q", r, out)
			break
		}
	}
}
