package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/store"
	"inventoryplanner/structure"
)

// projectRequest is the body of project create and update calls. Structure
// is honored on update only; new projects always start empty.
type projectRequest struct {
	Name      *string           `json:"name"`
	ClientID  *string           `json:"clientId"`
	Structure *structure.Forest `json:"structure"`
}

// Route: GET /projects
func HandleProjectList(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, listOf(s.ListProjects()))
	}
}

// Route: GET /projects/{id}
func HandleProjectGet(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, ok := s.GetProject(e.Request.PathValue("id"))
		if !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}
		return e.JSON(http.StatusOK, p)
	}
}

// HandleProjectCreate adds an empty project for a client.
// Route: POST /projects
func HandleProjectCreate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req projectRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid project data")
		}
		name, clientID := trimmed(req.Name), trimmed(req.ClientID)
		if name == nil || *name == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please enter project name")
		}
		if clientID == nil || *clientID == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please select a client")
		}

		created, err := s.AddProject(store.Project{Name: *name, ClientID: *clientID})
		if err != nil {
			return storeError(e, "project_create", err)
		}
		return e.JSON(http.StatusCreated, created)
	}
}

// HandleProjectUpdate renames, reassigns or replaces the structure of a
// project. A structure in the body replaces the stored one wholesale.
// Route: PATCH /projects/{id}
func HandleProjectUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetProject(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}

		var req projectRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid project data")
		}
		patch := store.ProjectPatch{
			Name:      trimmed(req.Name),
			ClientID:  trimmed(req.ClientID),
			Structure: req.Structure,
		}
		if patch.Name != nil && *patch.Name == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please enter project name")
		}

		if err := s.UpdateProject(id, patch); err != nil {
			return storeError(e, "project_update", err)
		}
		updated, _ := s.GetProject(id)
		return e.JSON(http.StatusOK, updated)
	}
}

// Route: DELETE /projects/{id}
func HandleProjectDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetProject(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}
		if err := s.DeleteProject(id); err != nil {
			return storeError(e, "project_delete", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}
