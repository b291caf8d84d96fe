// Package documents implements the document domain for Lexi.
// It defines the Document, Clause, and RiskItem records, the read-only store
// of sample agreements, and the HTTP handlers that expose them.
package documents

import (
	"slices"
	"time"
)

// Confidence is the system's certainty in one of its own judgements.
type Confidence string

// Confidence levels attached to risk items and answers.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// RiskLevel rates the real-world danger of a clause. It is independent of
// Confidence.
type RiskLevel string

// Risk levels for risk items.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Clause is a literal excerpt of a document.
type Clause struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Paragraph *int   `json:"paragraph,omitempty"`
}

// RiskItem flags a potentially harmful provision. ClauseID is a weak
// reference: it may name a clause that does not exist in the document.
type RiskItem struct {
	ID          string     `json:"id"`
	ClauseID    string     `json:"clause_id,omitempty"`
	Excerpt     string     `json:"excerpt"`
	Risk        RiskLevel  `json:"risk"`
	Explanation string     `json:"explanation"`
	Confidence  Confidence `json:"confidence,omitempty"`
}

// Document is a legal document with its pre-authored analysis.
type Document struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	OriginalText string     `json:"original_text"`
	Simplified   []string   `json:"simplified"`
	Clauses      []Clause   `json:"clauses"`
	Risks        []RiskItem `json:"risks"`
	UploadedAt   *time.Time `json:"uploaded_at,omitempty"`
}

// Summary is the list view of a Document.
type Summary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	ClauseCount int        `json:"clause_count"`
	RiskCount   int        `json:"risk_count"`
	UploadedAt  *time.Time `json:"uploaded_at,omitempty"`
}

// ResolvedRisk pairs a risk item with its clause when the reference resolves.
type ResolvedRisk struct {
	RiskItem
	Clause *Clause `json:"clause,omitempty"`
}

// Clause resolves a clause identifier. A missing clause is reported through
// ok rather than as an error.
func (d *Document) Clause(id string) (*Clause, bool) {
	if d == nil || id == "" {
		return nil, false
	}
	i := slices.IndexFunc(d.Clauses, func(c Clause) bool { return c.ID == id })
	if i < 0 {
		return nil, false
	}
	c := d.Clauses[i]
	return &c, true
}

// RiskFor returns the first risk item that references the given clause.
func (d *Document) RiskFor(clauseID string) (*RiskItem, bool) {
	if d == nil || clauseID == "" {
		return nil, false
	}
	i := slices.IndexFunc(d.Risks, func(r RiskItem) bool { return r.ClauseID == clauseID })
	if i < 0 {
		return nil, false
	}
	r := d.Risks[i]
	return &r, true
}

// ResolvedRisks returns every risk item with its clause attached where the
// weak reference resolves.
func (d *Document) ResolvedRisks() []ResolvedRisk {
	out := make([]ResolvedRisk, 0, len(d.Risks))
	for _, r := range d.Risks {
		rr := ResolvedRisk{RiskItem: r}
		if c, ok := d.Clause(r.ClauseID); ok {
			rr.Clause = c
		}
		out = append(out, rr)
	}
	return out
}

// Summarize returns the list view of the document.
func (d *Document) Summarize() Summary {
	return Summary{
		ID:          d.ID,
		Title:       d.Title,
		ClauseCount: len(d.Clauses),
		RiskCount:   len(d.Risks),
		UploadedAt:  d.UploadedAt,
	}
}

// Clone returns a deep copy so callers can never mutate shared store entries.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Simplified = slices.Clone(d.Simplified)
	c.Risks = slices.Clone(d.Risks)
	c.Clauses = make([]Clause, len(d.Clauses))
	for i, cl := range d.Clauses {
		if cl.Paragraph != nil {
			p := *cl.Paragraph
			cl.Paragraph = &p
		}
		c.Clauses[i] = cl
	}
	if d.UploadedAt != nil {
		t := *d.UploadedAt
		c.UploadedAt = &t
	}
	return &c
}
