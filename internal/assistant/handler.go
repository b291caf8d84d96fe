package assistant

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/pkg/handlers"
	"github.com/JaimeStill/lexi/pkg/routes"
)

const maxQuestionBody = 16 << 10

// AnswerRequest asks a question about a stored document.
type AnswerRequest struct {
	DocumentID string `json:"document_id"`
	Question   string `json:"question"`
}

// AnswerResponse carries the answer together with its rendered form and the
// cited clause when the citation resolves.
type AnswerResponse struct {
	ChatAnswer
	Display string            `json:"display"`
	Clause  *documents.Clause `json:"clause,omitempty"`
}

// NewAnswerResponse builds the response for ans against doc.
func NewAnswerResponse(sys System, doc *documents.Document, ans ChatAnswer) AnswerResponse {
	resp := AnswerResponse{ChatAnswer: ans, Display: sys.Display(ans)}
	if c, ok := doc.Clause(ans.SourceClauseID); ok {
		resp.Clause = c
	}
	return resp
}

// Handler provides stateless HTTP endpoints over stored documents.
type Handler struct {
	sys    System
	docs   documents.System
	logger *slog.Logger
}

func NewHandler(sys System, docs documents.System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		docs:   docs,
		logger: logger.With("handler", "assistant"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/assistant",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/answer", Handler: h.Answer},
			{Method: "GET", Pattern: "/suggestions", Handler: h.Suggestions},
		},
	}
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[AnswerRequest](r, maxQuestionBody)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, ok := h.document(w, req.DocumentID)
	if !ok {
		return
	}

	ans := h.sys.Ask(doc, req.Question)
	handlers.RespondJSON(w, http.StatusOK, NewAnswerResponse(h.sys, doc, ans))
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.document(w, r.URL.Query().Get("document_id"))
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.sys.Suggest(doc))
}

func (h *Handler) document(w http.ResponseWriter, id string) (*documents.Document, bool) {
	doc, ok := h.docs.Lookup(id)
	if !ok {
		err := fmt.Errorf("%w: %q", documents.ErrNotFound, id)
		handlers.RespondError(w, h.logger, documents.MapHTTPStatus(err), err)
		return nil, false
	}
	return doc, true
}
