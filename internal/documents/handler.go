package documents

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/lexi/pkg/handlers"
	"github.com/JaimeStill/lexi/pkg/routes"
)

// Handler provides HTTP endpoints for browsing stored documents.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler over the given store.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "documents"),
	}
}

// Routes returns the route group for document endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/documents",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/summary", Handler: h.Summary},
			{Method: "GET", Pattern: "/{id}/risks", Handler: h.Risks},
			{Method: "GET", Pattern: "/{id}/clauses/{clauseId}", Handler: h.Clause},
		},
	}
}

// List returns the list view of all stored documents.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List())
}

// Find returns a full document.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Summary returns the simplified bullet points of a document.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doc.Simplified)
}

// Risks returns a document's risk items with their clauses resolved where possible.
func (h *Handler) Risks(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doc.ResolvedRisks())
}

// Clause resolves a clause citation. A dangling citation is a 404.
func (h *Handler) Clause(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}

	clauseID := r.PathValue("clauseId")
	c, ok := doc.Clause(clauseID)
	if !ok {
		err := fmt.Errorf("%w: %s in %s", ErrClauseNotFound, clauseID, doc.ID)
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*Document, bool) {
	id := r.PathValue("id")
	doc, ok := h.sys.Lookup(id)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, id)
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return nil, false
	}
	return doc, true
}
