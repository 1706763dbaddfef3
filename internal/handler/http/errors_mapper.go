package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
)

// errorStatusMap holds the failures that are not more specific than their
// cause; not found and validation errors are checked first.
var errorStatusMap = map[error]int{
	store.ErrCardNotCreated: http.StatusInternalServerError,
	store.ErrCardNotUpdated: http.StatusInternalServerError,
	store.ErrCardNotDeleted: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, store.ErrCardNotFound) {
		return http.StatusNotFound
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse picks the status and body message for a service error.
// failMsg is used for storage failures.
func errorResponse(err error, failMsg string) (int, string) {
	status := statusFromError(err)
	switch status {
	case http.StatusBadRequest:
		var vErr *validators.ValidationError
		if errors.As(err, &vErr) {
			return status, vErr.Message
		}
		return status, msgInvalidBody
	case http.StatusNotFound:
		return status, msgCardNotFound
	default:
		return status, failMsg
	}
}
