package uploads

import (
	"errors"
	"net/http"
)

var (
	ErrUnsupportedType = errors.New("please upload an image (PNG/JPG)")
	ErrFileTooLarge    = errors.New("uploaded file exceeds maximum size")
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrMissingFile     = errors.New("missing file field")
)

// MapHTTPStatus maps upload errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
