package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, struct {
		ID string `json:"id"`
	}{ID: "loan-agreement"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"loan-agreement"}`, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logger, http.StatusBadRequest, errors.New("invalid input"))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Equal(t, "invalid input", parsed["error"])
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Text string `json:"text"`
	}

	tests := []struct {
		name    string
		payload string
		max     int64
		want    string
		wantErr bool
	}{
		{"valid", `{"text":"hello"}`, 0, "hello", false},
		{"within limit", `{"text":"hello"}`, 64, "hello", false},
		{"over limit", `{"text":"hello"}`, 4, "", true},
		{"malformed", `{"text":`, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			got, err := handlers.DecodeJSON[body](req, tt.max)
			if tt.wantErr {
				assert.ErrorIs(t, err, handlers.ErrInvalidBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Text)
		})
	}
}
