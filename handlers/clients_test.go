package handlers

import (
	"net/http"
	"testing"

	"inventoryplanner/store"
	"inventoryplanner/testhelpers"
)

func TestHandleClientCreate_Success(t *testing.T) {
	app, s := newTestEnv(t)

	req := newJSONRequest(t, http.MethodPost, "/clients", map[string]any{
		"name":    "Harbor View",
		"address": "1 Pier Rd",
	})
	rec := serve(t, app, HandleClientCreate(s), req)
	assertStatus(t, rec, http.StatusCreated)

	var got store.Client
	decodeBody(t, rec, &got)
	if got.ID == "" || got.Name != "Harbor View" || got.Address != "1 Pier Rd" {
		t.Errorf("created client = %+v", got)
	}
}

func TestHandleClientCreate_MissingName(t *testing.T) {
	app, s := newTestEnv(t)

	req := newJSONRequest(t, http.MethodPost, "/clients", map[string]any{"phone": "555"})
	rec := serve(t, app, HandleClientCreate(s), req)
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestHandleClientUpdate_Success(t *testing.T) {
	app, s := newTestEnv(t)
	c := testhelpers.CreateTestClient(t, s, "Old Name")

	req := newJSONRequest(t, http.MethodPatch, "/clients/"+c.ID, map[string]any{"name": "New Name"})
	req.SetPathValue("id", c.ID)
	rec := serve(t, app, HandleClientUpdate(s), req)
	assertStatus(t, rec, http.StatusOK)

	got, _ := s.GetClient(c.ID)
	if got.Name != "New Name" || got.Phone != c.Phone {
		t.Errorf("updated client = %+v", got)
	}
}

func TestHandleClientDelete_CascadesProjects(t *testing.T) {
	app, s := newTestEnv(t)
	c := testhelpers.CreateTestClient(t, s, "Acme")
	other := testhelpers.CreateTestClient(t, s, "Globex")
	p1 := testhelpers.CreateTestProject(t, s, c.ID, "HQ")
	testhelpers.CreateTestProject(t, s, c.ID, "Annex")
	kept := testhelpers.CreateTestProject(t, s, other.ID, "Plant")

	req := newJSONRequest(t, http.MethodDelete, "/clients/"+c.ID, nil)
	req.SetPathValue("id", c.ID)
	rec := serve(t, app, HandleClientDelete(s), req)
	assertStatus(t, rec, http.StatusNoContent)

	if _, ok := s.GetProject(p1.ID); ok {
		t.Error("client's project should be deleted")
	}
	projects := s.ListProjects()
	if len(projects) != 1 || projects[0].ID != kept.ID {
		t.Errorf("remaining projects = %+v", projects)
	}
}

func TestHandleClientProjects(t *testing.T) {
	app, s := newTestEnv(t)
	c := testhelpers.CreateTestClient(t, s, "Acme")
	other := testhelpers.CreateTestClient(t, s, "Globex")
	testhelpers.CreateTestProject(t, s, c.ID, "HQ")
	testhelpers.CreateTestProject(t, s, other.ID, "Plant")
	testhelpers.CreateTestProject(t, s, c.ID, "Annex")

	req := newJSONRequest(t, http.MethodGet, "/clients/"+c.ID+"/projects", nil)
	req.SetPathValue("id", c.ID)
	rec := serve(t, app, HandleClientProjects(s), req)
	assertStatus(t, rec, http.StatusOK)

	var got []store.Project
	decodeBody(t, rec, &got)
	if len(got) != 2 || got[0].Name != "HQ" || got[1].Name != "Annex" {
		t.Errorf("client projects = %+v", got)
	}
}

func TestHandleClientProjects_UnknownClient(t *testing.T) {
	app, s := newTestEnv(t)

	req := newJSONRequest(t, http.MethodGet, "/clients/missing/projects", nil)
	req.SetPathValue("id", "missing")
	rec := serve(t, app, HandleClientProjects(s), req)
	assertStatus(t, rec, http.StatusNotFound)
}
