package sessions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/internal/uploads"
)

// Domain errors for session operations.
var (
	ErrNotFound      = errors.New("session not found")
	ErrBusy          = errors.New("session is processing a pasted document")
	ErrNoDocument    = errors.New("no document loaded")
	ErrEmptyQuestion = errors.New("question is empty")
	ErrLimit         = errors.New("session limit reached")
)

// MapHTTPStatus maps session errors, and the errors of the systems a session
// delegates to, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBusy), errors.Is(err, ErrNoDocument):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyQuestion):
		return http.StatusBadRequest
	case errors.Is(err, ErrLimit):
		return http.StatusServiceUnavailable
	case errors.Is(err, documents.ErrNotFound):
		return documents.MapHTTPStatus(err)
	case errors.Is(err, classifications.ErrTextTooShort), errors.Is(err, classifications.ErrTextTooLarge):
		return classifications.MapHTTPStatus(err)
	case errors.Is(err, uploads.ErrUnsupportedType),
		errors.Is(err, uploads.ErrFileTooLarge),
		errors.Is(err, uploads.ErrEmptyFile),
		errors.Is(err, uploads.ErrMissingFile):
		return uploads.MapHTTPStatus(err)
	}
	return http.StatusInternalServerError
}
