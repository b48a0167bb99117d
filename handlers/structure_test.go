package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pocketbase/pocketbase"

	"inventoryplanner/store"
	"inventoryplanner/structure"
	"inventoryplanner/testhelpers"
)

func newTestProject(t *testing.T, s *store.Store) store.Project {
	t.Helper()
	c := testhelpers.CreateTestClient(t, s, "Acme")
	return testhelpers.CreateTestProject(t, s, c.ID, "HQ")
}

func insertNode(t *testing.T, app *pocketbase.PocketBase, s *store.Store, projectID string, body map[string]any) (int, map[string]any) {
	t.Helper()
	req := newJSONRequest(t, http.MethodPost, "/projects/"+projectID+"/nodes", body)
	req.SetPathValue("id", projectID)
	rec := serve(t, app, HandleNodeInsert(s), req)

	var got map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	return rec.Code, got
}

func TestHandleNodeInsert_BuildsTree(t *testing.T) {
	app, s := newTestEnv(t)
	p := newTestProject(t, s)

	code, level := insertNode(t, app, s, p.ID, map[string]any{"type": "level", "name": "Ground Floor"})
	if code != http.StatusCreated || level["type"] != "level" || level["name"] != "Ground Floor" {
		t.Fatalf("insert level = %d %v", code, level)
	}
	levelID := level["id"].(string)

	code, area := insertNode(t, app, s, p.ID, map[string]any{"type": "area", "name": "Lobby", "parentId": levelID})
	if code != http.StatusCreated {
		t.Fatalf("insert area = %d %v", code, area)
	}
	areaID := area["id"].(string)

	code, placement := insertNode(t, app, s, p.ID, map[string]any{"type": "product", "productId": "X", "parentId": areaID})
	if code != http.StatusCreated {
		t.Fatalf("insert placement = %d %v", code, placement)
	}
	if placement["quantity"] != float64(structure.DefaultQuantity) {
		t.Errorf("placement quantity = %v, want default", placement["quantity"])
	}

	got, _ := s.GetProject(p.ID)
	n, ok := got.Structure.Find(placement["id"].(string))
	if !ok {
		t.Fatal("placement not found in stored structure")
	}
	if n.(*structure.Placement).ProductID != "X" {
		t.Errorf("stored placement = %+v", n)
	}
}

func TestHandleNodeInsert_CoercesQuantity(t *testing.T) {
	app, s := newTestEnv(t)
	p := newTestProject(t, s)

	tests := []struct {
		qty  any
		want float64
	}{
		{"3", 3},
		{"4 pcs", 4},
		{"abc", 1},
		{0, 1},
		{-2, 1},
	}
	for _, tt := range tests {
		code, placement := insertNode(t, app, s, p.ID, map[string]any{"type": "product", "productId": "X", "quantity": tt.qty})
		if code != http.StatusCreated {
			t.Fatalf("insert with quantity %v = %d", tt.qty, code)
		}
		if placement["quantity"] != tt.want {
			t.Errorf("quantity %v stored as %v, want %v", tt.qty, placement["quantity"], tt.want)
		}
	}
}

func TestHandleNodeInsert_Rejections(t *testing.T) {
	app, s := newTestEnv(t)
	p := newTestProject(t, s)
	leaf := structure.NewPlacement("X", 1)
	testhelpers.InsertTestNode(t, s, p.ID, leaf, "")

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"unknown type", map[string]any{"type": "room", "name": "Kitchen"}, http.StatusBadRequest},
		{"level without name", map[string]any{"type": "level"}, http.StatusBadRequest},
		{"placement without product", map[string]any{"type": "product"}, http.StatusBadRequest},
		{"missing parent", map[string]any{"type": "area", "name": "A", "parentId": "ghost"}, http.StatusUnprocessableEntity},
		{"child of a placement", map[string]any{"type": "area", "name": "A", "parentId": leaf.ID}, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := insertNode(t, app, s, p.ID, tt.body)
			if code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, code)
			}
		})
	}

	got, _ := s.GetProject(p.ID)
	if len(got.Structure) != 1 {
		t.Errorf("rejected inserts must not change the structure, got %d roots", len(got.Structure))
	}
}

func TestHandleNodeInsert_UnknownProject(t *testing.T) {
	app, s := newTestEnv(t)

	code, _ := insertNode(t, app, s, "missing", map[string]any{"type": "level", "name": "G"})
	if code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandleNodeRemove_RemovesSubtree(t *testing.T) {
	app, s := newTestEnv(t)
	p := newTestProject(t, s)
	level := structure.NewLevel("Ground")
	area := structure.NewArea("Lobby")
	testhelpers.InsertTestNode(t, s, p.ID, level, "")
	testhelpers.InsertTestNode(t, s, p.ID, area, level.ID)
	testhelpers.InsertTestNode(t, s, p.ID, structure.NewPlacement("X", 2), area.ID)

	req := newJSONRequest(t, http.MethodDelete, "/projects/"+p.ID+"/nodes/"+level.ID, nil)
	req.SetPathValue("id", p.ID)
	req.SetPathValue("nodeId", level.ID)
	rec := serve(t, app, HandleNodeRemove(s), req)
	assertStatus(t, rec, http.StatusNoContent)

	got, _ := s.GetProject(p.ID)
	if len(got.Structure) != 0 {
		t.Errorf("expected empty structure, got %d roots", len(got.Structure))
	}
	if _, ok := got.Structure.Find(area.ID); ok {
		t.Error("descendant area should be removed with its level")
	}
}

func TestHandleNodeRemove_NotFound(t *testing.T) {
	app, s := newTestEnv(t)
	p := newTestProject(t, s)

	req := newJSONRequest(t, http.MethodDelete, "/projects/"+p.ID+"/nodes/ghost", nil)
	req.SetPathValue("id", p.ID)
	req.SetPathValue("nodeId", "ghost")
	rec := serve(t, app, HandleNodeRemove(s), req)
	assertStatus(t, rec, http.StatusNotFound)
}

func TestHandleNodeQuantity(t *testing.T) {
	app, s := newTestEnv(t)
	p := newTestProject(t, s)
	leaf := structure.NewPlacement("X", 1)
	level := structure.NewLevel("Ground")
	testhelpers.InsertTestNode(t, s, p.ID, level, "")
	testhelpers.InsertTestNode(t, s, p.ID, leaf, level.ID)

	tests := []struct {
		name     string
		nodeID   string
		qty      any
		wantCode int
		wantQty  int
	}{
		{"number", leaf.ID, 5, http.StatusOK, 5},
		{"numeric string", leaf.ID, "7", http.StatusOK, 7},
		{"garbage", leaf.ID, "many", http.StatusOK, 1},
		{"not a placement", level.ID, 3, http.StatusNotFound, 0},
		{"unknown node", "ghost", 3, http.StatusNotFound, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPut, "/projects/"+p.ID+"/nodes/"+tt.nodeID+"/quantity",
				map[string]any{"quantity": tt.qty})
			req.SetPathValue("id", p.ID)
			req.SetPathValue("nodeId", tt.nodeID)
			rec := serve(t, app, HandleNodeQuantity(s), req)
			assertStatus(t, rec, tt.wantCode)
			if tt.wantCode != http.StatusOK {
				return
			}

			var body map[string]int
			decodeBody(t, rec, &body)
			if body["quantity"] != tt.wantQty {
				t.Errorf("response quantity = %d, want %d", body["quantity"], tt.wantQty)
			}
			got, _ := s.GetProject(p.ID)
			n, _ := got.Structure.Find(leaf.ID)
			if q := n.(*structure.Placement).Quantity; q != tt.wantQty {
				t.Errorf("stored quantity = %d, want %d", q, tt.wantQty)
			}
		})
	}
}
