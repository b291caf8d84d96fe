package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrNotFound       = errors.New("document not found")
	ErrClauseNotFound = errors.New("clause not found")
	ErrDuplicate      = errors.New("duplicate document id")
)

// MapHTTPStatus maps document domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrClauseNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
