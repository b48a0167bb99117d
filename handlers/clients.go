package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/store"
)

type clientRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func (r clientRequest) patch() store.ClientPatch {
	return store.ClientPatch{
		Name:    trimmed(r.Name),
		Address: trimmed(r.Address),
		Phone:   trimmed(r.Phone),
	}
}

// Route: GET /clients
func HandleClientList(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, listOf(s.ListClients()))
	}
}

// Route: GET /clients/{id}
func HandleClientGet(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		c, ok := s.GetClient(e.Request.PathValue("id"))
		if !ok {
			return ErrorJSON(e, http.StatusNotFound, "Client not found")
		}
		return e.JSON(http.StatusOK, c)
	}
}

// HandleClientCreate adds a client. Only the name is required.
// Route: POST /clients
func HandleClientCreate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req clientRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid client data")
		}
		patch := req.patch()
		if patch.Name == nil || *patch.Name == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please enter client name")
		}

		c := store.Client{Name: *patch.Name}
		setString(&c.Address, patch.Address)
		setString(&c.Phone, patch.Phone)

		created, err := s.AddClient(c)
		if err != nil {
			return storeError(e, "client_create", err)
		}
		return e.JSON(http.StatusCreated, created)
	}
}

// Route: PATCH /clients/{id}
func HandleClientUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetClient(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Client not found")
		}

		var req clientRequest
		if err := decodeJSON(e, &req); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid client data")
		}
		patch := req.patch()
		if patch.Name != nil && *patch.Name == "" {
			return ErrorJSON(e, http.StatusBadRequest, "Please enter client name")
		}

		if err := s.UpdateClient(id, patch); err != nil {
			return storeError(e, "client_update", err)
		}
		updated, _ := s.GetClient(id)
		return e.JSON(http.StatusOK, updated)
	}
}

// HandleClientDelete removes a client together with all of its projects.
// Route: DELETE /clients/{id}
func HandleClientDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetClient(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Client not found")
		}
		if err := s.DeleteClient(id); err != nil {
			return storeError(e, "client_delete", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleClientProjects lists the projects owned by a client.
// Route: GET /clients/{id}/projects
func HandleClientProjects(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.GetClient(id); !ok {
			return ErrorJSON(e, http.StatusNotFound, "Client not found")
		}
		return e.JSON(http.StatusOK, listOf(s.ClientProjects(id)))
	}
}
