package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/store"
)

// maxBodyBytes caps JSON request bodies. Product images travel inline as
// data URLs, so this is well above a typical form post.
const maxBodyBytes = 16 << 20

// ErrorJSON writes {"error": message} with the given status.
func ErrorJSON(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// decodeJSON reads the request body into dst.
func decodeJSON(e *core.RequestEvent, dst any) error {
	body := http.MaxBytesReader(e.Response, e.Request.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	return dec.Decode(dst)
}

// storeError maps store sentinel errors onto HTTP statuses. Anything else is
// logged under scope and reported as a generic failure.
func storeError(e *core.RequestEvent, scope string, err error) error {
	switch {
	case errors.Is(err, store.ErrParentNotFound):
		return ErrorJSON(e, http.StatusUnprocessableEntity, "Parent not found or cannot hold children")
	case errors.Is(err, store.ErrNotFound):
		return ErrorJSON(e, http.StatusNotFound, "Not found")
	default:
		log.Printf("%s: %v", scope, err)
		return ErrorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

// trimmed returns the trimmed value of an optional string field.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// listOf keeps empty lists encoding as [] rather than null.
func listOf[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
