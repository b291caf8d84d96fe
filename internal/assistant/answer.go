// Package assistant answers questions about a loaded document and suggests
// questions worth asking. Both operations are deterministic keyword matching
// over an ordered rule table; nothing is learned or inferred.
package assistant

import (
	"strings"
	"unicode/utf8"

	"github.com/JaimeStill/lexi/internal/documents"
)

// ChatAnswer is the reply to a single question. SourceClauseID is a weak
// reference into the answered document and may not resolve.
type ChatAnswer struct {
	AnswerText     string               `json:"answer_text"`
	SourceClauseID string               `json:"source_clause_id,omitempty"`
	Confidence     documents.Confidence `json:"confidence"`
}

// Rule names reported by Explain and used as metric labels.
const (
	RuleNoDocument  = "no_document"
	RuleIncrease    = "increase"
	RuleTermination = "termination"
	RuleRepayment   = "repayment"
	RuleDefault     = "default"
	RuleAmount      = "amount"
	RuleSublet      = "sublet"
	RulePrivacy     = "privacy"
	RuleClauseMatch = "clause_match"
	RuleNoMatch     = "no_match"
)

// minTokenLength is the shortest question word considered by clause matching.
const minTokenLength = 3

var (
	noDocument = ChatAnswer{
		AnswerText: "Please load a document first to ask questions about it.",
		Confidence: documents.ConfidenceLow,
	}
	noMatch = ChatAnswer{
		AnswerText: "I cannot find a direct answer to that question in this document. Suggestion: ask the other party to clarify or consult a lawyer for specific legal advice.",
		Confidence: documents.ConfidenceLow,
	}
)

// Answer responds to question about doc. It never fails: a nil document or
// an unrecognized question yields a Low confidence reply.
func Answer(doc *documents.Document, question string) ChatAnswer {
	ans, _ := Explain(doc, question)
	return ans
}

// Explain is Answer that also reports which rule produced the reply.
func Explain(doc *documents.Document, question string) (ChatAnswer, string) {
	if doc == nil {
		return noDocument, RuleNoDocument
	}

	q := normalize(question)

	for _, r := range rules {
		if ans, ok := r.apply(doc, q); ok {
			return ans, r.name
		}
	}

	if ans, ok := matchClause(doc, q); ok {
		return ans, RuleClauseMatch
	}

	return noMatch, RuleNoMatch
}

// matchClause scans clauses in document order and, for each, the question
// words in order. The first word of at least minTokenLength runes found in
// a clause's text selects that clause.
func matchClause(doc *documents.Document, q string) (ChatAnswer, bool) {
	words := strings.Fields(q)

	for _, c := range doc.Clauses {
		text := normalize(c.Text)
		for _, w := range words {
			if utf8.RuneCountInString(w) < minTokenLength {
				continue
			}
			if !strings.Contains(text, w) {
				continue
			}

			if risk, ok := doc.RiskFor(c.ID); ok {
				conf := risk.Confidence
				if conf == "" {
					conf = documents.ConfidenceMedium
				}
				return ChatAnswer{
					AnswerText:     risk.Explanation,
					SourceClauseID: c.ID,
					Confidence:     conf,
				}, true
			}

			return ChatAnswer{
				AnswerText:     c.Text,
				SourceClauseID: c.ID,
				Confidence:     documents.ConfidenceMedium,
			}, true
		}
	}

	return ChatAnswer{}, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
