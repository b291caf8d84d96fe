package classifications

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/lexi/pkg/handlers"
	"github.com/JaimeStill/lexi/pkg/routes"
)

// TextRequest is the body accepted by the classification endpoints.
type TextRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse reports the detected category.
type ClassifyResponse struct {
	Category Category `json:"category"`
}

// Handler provides HTTP endpoints for classifying and synthesizing pasted text.
type Handler struct {
	sys     System
	maxBody int64
	logger  *slog.Logger
}

// NewHandler creates a Handler. maxText bounds the pasted text; the request
// body limit leaves room for JSON framing on top of it.
func NewHandler(sys System, maxText int64, logger *slog.Logger) *Handler {
	maxBody := int64(0)
	if maxText > 0 {
		maxBody = maxText*2 + 1024
	}
	return &Handler{
		sys:     sys,
		maxBody: maxBody,
		logger:  logger.With("handler", "classifications"),
	}
}

// Routes returns the route group for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classifications",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Classify},
			{Method: "POST", Pattern: "/synthesize", Handler: h.Synthesize},
		},
	}
}

// Classify returns the category of the posted text without synthesizing.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ClassifyResponse{Category: h.sys.Classify(req.Text)})
}

// Synthesize classifies the posted text and returns the synthesized document.
// The response is delayed by the configured synthesis latency.
func (h *Handler) Synthesize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	doc, err := h.sys.Synthesize(r.Context(), req.Text, h.sys.Classify(req.Text))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusServiceUnavailable, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doc)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (TextRequest, bool) {
	req, err := handlers.DecodeJSON[TextRequest](r, h.maxBody)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return req, false
	}
	if err := h.sys.Validate(req.Text); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return req, false
	}
	return req, true
}
