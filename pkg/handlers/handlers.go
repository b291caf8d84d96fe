// Package handlers provides JSON response and request helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// ErrInvalidBody indicates a request body that could not be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// RespondJSON writes data as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as {"error": "..."} with the given status.
// Server errors log at error level; client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
	}
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// DecodeJSON decodes a size-limited JSON request body into T.
// Trailing data after the JSON value is rejected.
func DecodeJSON[T any](r *http.Request, maxBytes int64) (T, error) {
	var v T

	body := io.Reader(r.Body)
	if maxBytes > 0 {
		body = io.LimitReader(r.Body, maxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return v, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidBody, maxBytes)
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return v, nil
}
