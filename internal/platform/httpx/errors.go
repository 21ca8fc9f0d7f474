package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors the domain layers wrap so handlers can map failures to
// statuses without inspecting their origin.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate entry")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// RespondError maps a domain error to a failure envelope. internalMsg is the
// user-facing text for errors carrying no sentinel; persistence detail never
// reaches the body, callers log it before delegating here.
func RespondError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrDuplicate):
		Fail(w, http.StatusConflict, "Duplicate entry")
	case errors.Is(err, ErrValidation):
		Fail(w, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, ErrForbidden):
		Fail(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "Unauthorized")
	default:
		Fail(w, http.StatusInternalServerError, internalMsg)
	}
}
