package classifications

import (
	"errors"
	"net/http"
)

// Domain errors for classification operations.
var (
	ErrTextTooShort    = errors.New("pasted text is too short")
	ErrTextTooLarge    = errors.New("pasted text exceeds maximum size")
	ErrInvalidCategory = errors.New("invalid category")
)

// MapHTTPStatus maps classification errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTextTooShort), errors.Is(err, ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, ErrTextTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
