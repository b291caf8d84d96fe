package documents_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/pkg/routes"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, documents.New(discard()).Handler().Routes())
	return mux
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlerList(t *testing.T) {
	rec := get(t, newMux(), "/documents")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []documents.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestHandlerFind(t *testing.T) {
	mux := newMux()

	rec := get(t, mux, "/documents/loan-agreement")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc documents.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Loan Agreement", doc.Title)
	assert.Contains(t, doc.OriginalText, "LOAN AGREEMENT")

	rec = get(t, mux, "/documents/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "document not found")
}

func TestHandlerSummaryAndRisks(t *testing.T) {
	mux := newMux()

	rec := get(t, mux, "/documents/rent-agreement/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	var bullets []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bullets))
	assert.Len(t, bullets, 5)

	rec = get(t, mux, "/documents/rent-agreement/risks")
	require.Equal(t, http.StatusOK, rec.Code)
	var risks []documents.ResolvedRisk
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &risks))
	require.Len(t, risks, 3)
	assert.NotNil(t, risks[0].Clause)
	assert.Nil(t, risks[1].Clause)
}

func TestHandlerClause(t *testing.T) {
	mux := newMux()

	rec := get(t, mux, "/documents/loan-agreement/clauses/loan-clause-4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bankruptcy")

	rec = get(t, mux, "/documents/loan-agreement/clauses/loan-clause-payment")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "clause not found")
}
