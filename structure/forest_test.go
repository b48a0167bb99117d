package structure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildLobby builds Ground Floor > Lobby > X(qty 3) and returns the forest
// along with the nodes for direct assertions.
func buildLobby(t *testing.T) (Forest, *Level, *Area, *Placement) {
	t.Helper()

	var f Forest
	level := NewLevel("Ground Floor")
	area := NewArea("Lobby")
	placement := NewPlacement("X", 3)

	if !f.Insert(level, "") {
		t.Fatal("insert level at root failed")
	}
	if !f.Insert(area, level.ID) {
		t.Fatal("insert area under level failed")
	}
	if !f.Insert(placement, area.ID) {
		t.Fatal("insert placement under area failed")
	}
	return f, level, area, placement
}

func TestInsert_RootAndNested(t *testing.T) {
	f, level, area, placement := buildLobby(t)

	if len(f) != 1 {
		t.Fatalf("expected 1 root, got %d", len(f))
	}
	if len(level.Children) != 1 || level.Children[0] != Node(area) {
		t.Errorf("area not appended to level children: %v", level.Children)
	}
	if len(area.Children) != 1 || area.Children[0] != Node(placement) {
		t.Errorf("placement not appended to area children: %v", area.Children)
	}
}

func TestInsert_AppendsAtEnd(t *testing.T) {
	var f Forest
	level := NewLevel("L1")
	f.Insert(level, "")

	first := NewArea("A")
	second := NewArea("B")
	third := NewPlacement("P", 1)
	f.Insert(first, level.ID)
	f.Insert(second, level.ID)
	f.Insert(third, level.ID)

	got := []string{}
	for _, n := range level.Children {
		got = append(got, n.NodeID())
	}
	want := []string{first.ID, second.ID, third.ID}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children order mismatch (-want +got):\n%s", diff)
	}
}

func TestInsert_DropsWhenParentMissing(t *testing.T) {
	f, _, _, _ := buildLobby(t)
	before := f.Clone()

	orphan := NewArea("Orphan")
	if f.Insert(orphan, "does-not-exist") {
		t.Fatal("expected insert under unknown parent to report false")
	}
	if _, ok := f.Find(orphan.ID); ok {
		t.Error("dropped node must not be findable")
	}
	if diff := cmp.Diff(before, f); diff != "" {
		t.Errorf("forest changed after dropped insert (-before +after):\n%s", diff)
	}
}

func TestInsert_DropsUnderPlacement(t *testing.T) {
	f, _, _, placement := buildLobby(t)

	child := NewPlacement("Y", 1)
	if f.Insert(child, placement.ID) {
		t.Fatal("expected insert under a placement to report false")
	}
	if _, ok := f.Find(child.ID); ok {
		t.Error("node inserted under placement must not be findable")
	}
}

func TestFind(t *testing.T) {
	f, level, area, placement := buildLobby(t)

	tests := []struct {
		name string
		id   string
		want Node
	}{
		{"root level", level.ID, level},
		{"nested area", area.ID, area},
		{"deep placement", placement.ID, placement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.Find(tt.id)
			if !ok {
				t.Fatalf("Find(%q) not found", tt.id)
			}
			if got != tt.want {
				t.Errorf("Find(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if _, ok := f.Find("missing"); ok {
		t.Error("Find(missing) should report false")
	}
	if _, ok := Forest(nil).Find("anything"); ok {
		t.Error("Find on nil forest should report false")
	}
}

func TestFind_PreOrderFirstMatch(t *testing.T) {
	// Duplicate ids can only appear in hand-built data; pre-order wins.
	deep := &Area{ID: "dup", Name: "deep", Children: Forest{}}
	shallow := &Area{ID: "dup", Name: "shallow", Children: Forest{}}
	f := Forest{
		&Level{ID: "l1", Name: "L1", Children: Forest{deep}},
		shallow,
	}

	got, ok := f.Find("dup")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.(*Area).Name != "deep" {
		t.Errorf("expected pre-order first match 'deep', got %q", got.(*Area).Name)
	}
}

func TestRemove_RemovesSubtree(t *testing.T) {
	f, level, area, placement := buildLobby(t)

	if !f.Remove(area.ID) {
		t.Fatal("Remove(area) reported false")
	}
	for _, id := range []string{area.ID, placement.ID} {
		if _, ok := f.Find(id); ok {
			t.Errorf("node %s still findable after removing its subtree", id)
		}
	}
	if _, ok := f.Find(level.ID); !ok {
		t.Error("parent level should survive")
	}
	if len(level.Children) != 0 {
		t.Errorf("expected level to have no children, got %d", len(level.Children))
	}
}

func TestRemove_Root(t *testing.T) {
	f, level, _, placement := buildLobby(t)
	other := NewLevel("First Floor")
	f.Insert(other, "")

	if !f.Remove(level.ID) {
		t.Fatal("Remove(root) reported false")
	}
	if len(f) != 1 || f[0] != Node(other) {
		t.Errorf("expected only the other root to remain, got %v", f)
	}
	if _, ok := f.Find(placement.ID); ok {
		t.Error("descendant still findable after root removal")
	}
}

func TestRemove_Missing(t *testing.T) {
	f, _, _, _ := buildLobby(t)
	if f.Remove("missing") {
		t.Error("Remove(missing) should report false")
	}
	var empty Forest
	if empty.Remove("x") {
		t.Error("Remove on empty forest should report false")
	}
}

func TestRemove_DoesNotDisturbClone(t *testing.T) {
	f := Forest{NewArea("A"), NewArea("B"), NewArea("C")}
	snapshot := f.Clone()

	f.Remove(f[0].NodeID())

	if len(snapshot) != 3 {
		t.Fatalf("snapshot length changed to %d", len(snapshot))
	}
	if snapshot[0].(*Area).Name != "A" {
		t.Errorf("snapshot first entry changed to %q", snapshot[0].(*Area).Name)
	}
}

func TestSetQuantity(t *testing.T) {
	f, level, _, placement := buildLobby(t)

	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"numeric string", "7", 7},
		{"int", 12, 12},
		{"float truncates", 2.9, 2},
		{"garbage falls back", "abc", 1},
		{"zero falls back", "0", 1},
		{"negative falls back", -4, 1},
		{"empty falls back", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.SetQuantity(placement.ID, tt.value)
			if !ok {
				t.Fatal("SetQuantity reported false for a placement")
			}
			if got != tt.want || placement.Quantity != tt.want {
				t.Errorf("SetQuantity(%v) = %d (stored %d), want %d", tt.value, got, placement.Quantity, tt.want)
			}
		})
	}

	if _, ok := f.SetQuantity(level.ID, 5); ok {
		t.Error("SetQuantity on a level should report false")
	}
	if _, ok := f.SetQuantity("missing", 5); ok {
		t.Error("SetQuantity on a missing id should report false")
	}
}

func TestWalk_PreOrder(t *testing.T) {
	f, level, area, placement := buildLobby(t)
	second := NewLevel("First Floor")
	f.Insert(second, "")

	var got []string
	f.Walk(func(n Node) { got = append(got, n.NodeID()) })

	want := []string{level.ID, area.ID, placement.ID, second.ID}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_IsDeep(t *testing.T) {
	f, _, area, placement := buildLobby(t)
	cp := f.Clone()

	if diff := cmp.Diff(f, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	cp.SetQuantity(placement.ID, 99)
	cp.Insert(NewPlacement("Z", 1), area.ID)

	if placement.Quantity != 3 {
		t.Errorf("source placement quantity changed to %d", placement.Quantity)
	}
	if len(area.Children) != 1 {
		t.Errorf("source area gained children: %d", len(area.Children))
	}
}

func TestNewPlacement_DefaultsQuantity(t *testing.T) {
	if got := NewPlacement("P", nil).Quantity; got != DefaultQuantity {
		t.Errorf("NewPlacement(nil qty) = %d, want %d", got, DefaultQuantity)
	}
}

func TestNewIDs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewArea("a").ID
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
