package assistant

import (
	"log/slog"

	"github.com/JaimeStill/lexi/internal/documents"
)

// System defines the public contract of the question answering assistant.
type System interface {
	Handler() *Handler

	// Ask answers question about doc and records the rule that matched.
	Ask(doc *documents.Document, question string) ChatAnswer
	// Suggest returns example questions for doc.
	Suggest(doc *documents.Document) []string
	// Display renders an answer with the configured disclaimer.
	Display(a ChatAnswer) string
}

type assistant struct {
	docs       documents.System
	disclaimer string
	metrics    *Metrics
	logger     *slog.Logger
}

// New creates an assistant System that resolves stateless requests against
// docs. m may be nil.
func New(docs documents.System, disclaimer string, m *Metrics, logger *slog.Logger) System {
	return &assistant{
		docs:       docs,
		disclaimer: disclaimer,
		metrics:    m,
		logger:     logger.With("system", "assistant"),
	}
}

func (a *assistant) Handler() *Handler {
	return NewHandler(a, a.docs, a.logger)
}

func (a *assistant) Ask(doc *documents.Document, question string) ChatAnswer {
	ans, rule := Explain(doc, question)
	a.metrics.observe(rule, ans)

	docID := ""
	if doc != nil {
		docID = doc.ID
	}
	a.logger.Debug("question answered",
		"document", docID,
		"rule", rule,
		"confidence", ans.Confidence,
		"citation", ans.SourceClauseID,
	)
	return ans
}

func (a *assistant) Suggest(doc *documents.Document) []string {
	return Suggest(doc)
}

func (a *assistant) Display(ans ChatAnswer) string {
	return Display(ans, a.disclaimer)
}
