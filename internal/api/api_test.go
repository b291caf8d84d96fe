package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/internal/api"
	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/config"
	"github.com/JaimeStill/lexi/internal/infrastructure"
	"github.com/JaimeStill/lexi/pkg/module"
)

func newRouter(t *testing.T, mutate func(*config.Config)) (*module.Router, *infrastructure.Infrastructure) {
	t.Helper()

	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	cfg.Assistant.SynthesisDelay = "0s"
	if mutate != nil {
		mutate(cfg)
	}

	infra, err := infrastructure.NewWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	m, err := api.NewModule(cfg, infra)
	require.NoError(t, err)

	require.NoError(t, infra.Start())
	require.NoError(t, infra.Lifecycle.WaitForStartup())
	t.Cleanup(func() { infra.Lifecycle.Shutdown(time.Second) })

	router := module.NewRouter()
	router.Mount(m)
	return router, infra
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestModuleRoutes(t *testing.T) {
	router, _ := newRouter(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/documents", "", http.StatusOK},
		{http.MethodGet, "/api/documents/loan-agreement/risks", "", http.StatusOK},
		{http.MethodGet, "/api/documents/loan-agreement/clauses/loan-clause-2", "", http.StatusOK},
		{http.MethodGet, "/api/documents/loan-agreement/clauses/loan-clause-demand", "", http.StatusNotFound},
		{http.MethodPost, "/api/classifications", `{"text":"Terms of Service apply"}`, http.StatusOK},
		{http.MethodPost, "/api/assistant/answer", `{"document_id":"loan-agreement","question":"What constitutes default?"}`, http.StatusOK},
		{http.MethodGet, "/api/assistant/suggestions?document_id=rent-agreement", "", http.StatusOK},
		{http.MethodPost, "/api/sessions", "", http.StatusCreated},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(router, tt.method, tt.path, tt.body).Code)
		})
	}
}

func TestModuleAnswerCarriesDisclaimer(t *testing.T) {
	router, _ := newRouter(t, nil)

	rec := serve(router, http.MethodPost, "/api/assistant/answer",
		`{"document_id":"rent-agreement","question":"rent increase"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp assistant.AnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rent-clause-4", resp.SourceClauseID)
	assert.True(t, strings.HasSuffix(resp.Display, assistant.DefaultDisclaimer))
}

func TestModuleRecordsMetrics(t *testing.T) {
	router, infra := newRouter(t, nil)

	serve(router, http.MethodGet, "/api/documents", "")
	serve(router, http.MethodPost, "/api/assistant/answer", `{"document_id":"loan-agreement","question":"monthly?"}`)

	families, err := infra.Metrics.Registry().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["lexi_http_requests_total"])
	assert.True(t, names["lexi_assistant_answers_total"])
	assert.True(t, names["lexi_sessions_active"])
}

func TestModuleRateLimit(t *testing.T) {
	router, _ := newRouter(t, func(cfg *config.Config) {
		cfg.API.RateLimit.Enabled = true
		cfg.API.RateLimit.RequestsPerSecond = 0.001
		cfg.API.RateLimit.Burst = 1
	})

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/documents", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodGet, "/api/documents", "").Code)
}
