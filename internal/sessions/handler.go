package sessions

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/lexi/internal/uploads"
	"github.com/JaimeStill/lexi/pkg/handlers"
	"github.com/JaimeStill/lexi/pkg/pagination"
	"github.com/JaimeStill/lexi/pkg/routes"
)

const maxJSONBody = 64 << 10

// DocumentRequest selects a stored document.
type DocumentRequest struct {
	DocumentID string `json:"document_id"`
}

// PasteRequest carries pasted document text.
type PasteRequest struct {
	Text string `json:"text"`
}

// QuestionRequest carries a chat question.
type QuestionRequest struct {
	Question string `json:"question"`
}

// Handler provides HTTP endpoints for viewing sessions.
type Handler struct {
	sys        System
	pagination pagination.Config
	maxPaste   int64
	maxUpload  int64
	logger     *slog.Logger
}

// NewHandler creates a Handler. maxPaste and maxUpload bound pasted text and
// uploaded files; zero disables the bound.
func NewHandler(sys System, pageCfg pagination.Config, maxPaste, maxUpload int64, logger *slog.Logger) *Handler {
	return &Handler{
		sys:        sys,
		pagination: pageCfg,
		maxPaste:   maxPaste,
		maxUpload:  maxUpload,
		logger:     logger.With("handler", "sessions"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/sessions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "PUT", Pattern: "/{id}/document", Handler: h.LoadDocument},
			{Method: "POST", Pattern: "/{id}/paste", Handler: h.Paste},
			{Method: "POST", Pattern: "/{id}/upload", Handler: h.Upload},
			{Method: "POST", Pattern: "/{id}/messages", Handler: h.Ask},
			{Method: "GET", Pattern: "/{id}/messages", Handler: h.Messages},
			{Method: "GET", Pattern: "/{id}/suggestions", Handler: h.Suggestions},
		},
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.sys.Create()
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, s)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	s, err := h.sys.Find(r.PathValue("id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.PathValue("id")); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LoadDocument(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[DocumentRequest](r, maxJSONBody)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.LoadDocument(r.PathValue("id"), req.DocumentID)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Paste accepts text for background synthesis. Poll the session until it is
// no longer busy to see the synthesized document.
func (h *Handler) Paste(w http.ResponseWriter, r *http.Request) {
	limit := int64(0)
	if h.maxPaste > 0 {
		limit = h.maxPaste*2 + 1024
	}

	req, err := handlers.DecodeJSON[PasteRequest](r, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	s, err := h.sys.Paste(r.PathValue("id"), req.Text)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusAccepted, s)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.sys.Find(id); err != nil {
		h.fail(w, err)
		return
	}

	u, err := uploads.FromRequest(w, r, h.maxUpload)
	if err != nil {
		h.fail(w, err)
		return
	}

	s, err := h.sys.Upload(id, u)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[QuestionRequest](r, maxJSONBody)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	ex, err := h.sys.Ask(r.PathValue("id"), req.Question)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, ex)
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.Messages(r.PathValue("id"), page)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.sys.Suggestions(r.PathValue("id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, prompts)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}
