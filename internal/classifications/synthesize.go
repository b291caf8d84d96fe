package classifications

import (
	"context"
	"time"

	"github.com/JaimeStill/lexi/internal/documents"
)

// Identifiers of synthesized documents. Every paste of the same category
// yields a document with the same id.
const (
	TermsSampleID   = "tos-sample"
	GenericSampleID = "pasted-generic"
)

// DefaultSynthesisDelay is the artificial latency applied before a
// synthesized document is returned.
const DefaultSynthesisDelay = 1400 * time.Millisecond

// Synthesizer turns pasted text into a pre-authored Document for its category.
type Synthesizer struct {
	delay   time.Duration
	now     func() time.Time
	metrics *Metrics
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithClock overrides the clock used for UploadedAt.
func WithClock(now func() time.Time) SynthesizerOption {
	return func(s *Synthesizer) { s.now = now }
}

// WithMetrics records synthesis durations on m.
func WithMetrics(m *Metrics) SynthesizerOption {
	return func(s *Synthesizer) { s.metrics = m }
}

// NewSynthesizer creates a Synthesizer that waits delay before returning.
// A negative delay is treated as zero.
func NewSynthesizer(delay time.Duration, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		delay: max(delay, 0),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay reports the configured artificial latency.
func (s *Synthesizer) Delay() time.Duration {
	return s.delay
}

// Synthesize waits out the artificial delay and returns a fresh Document for
// category whose OriginalText is raw. It fails only when ctx is done first.
func (s *Synthesizer) Synthesize(ctx context.Context, raw string, category Category) (*documents.Document, error) {
	start := time.Now()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc *documents.Document
	if category == TermsOfService {
		doc = termsDocument(raw)
	} else {
		doc = genericDocument(raw)
	}

	uploaded := s.now()
	doc.UploadedAt = &uploaded

	s.metrics.observeSynthesis(category, time.Since(start))
	return doc, nil
}

func paragraph(n int) *int { return &n }

func termsDocument(raw string) *documents.Document {
	return &documents.Document{
		ID:           TermsSampleID,
		Title:        "Terms of Service — Sample (pasted)",
		OriginalText: raw,
		Simplified: []string{
			"These Terms explain how the Company and users interact and define key terms like 'Affiliate', 'Account', and 'Service'.",
			"Important definitions affect how rules apply — read the Definitions section carefully.",
			"There is no obvious privacy or dispute-resolution clause in the pasted snippet — that is a high-risk omission.",
			"If you rely on this service, ask the company to clarify data handling, liability, and dispute procedures.",
		},
		Risks: []documents.RiskItem{
			{
				ID:          "tos-r1",
				Excerpt:     "Broad definitions of Company/Affiliate may expand company rights.",
				Risk:        documents.RiskMedium,
				Explanation: "The Company has broad definitions and control which could be used to expand rights over content or accounts.",
				Confidence:  documents.ConfidenceMedium,
			},
			{
				ID:          "tos-r2",
				Excerpt:     "No clear privacy/data-sharing or dispute resolution in the provided text.",
				Risk:        documents.RiskHigh,
				Explanation: "Missing privacy or dispute terms means users may not know how data is used or where disputes are resolved.",
				Confidence:  documents.ConfidenceHigh,
			},
			{
				ID:          "tos-r3",
				Excerpt:     "Standard definition clauses appear, but specifics are absent.",
				Risk:        documents.RiskLow,
				Explanation: "Definitions look typical, but you should verify specific operational clauses.",
				Confidence:  documents.ConfidenceLow,
			},
		},
		Clauses: []documents.Clause{
			{ID: "tos-c1", Text: "Definition of Affiliate: controls or under common control", Paragraph: paragraph(1)},
			{ID: "tos-c2", Text: "Account and Company definitions", Paragraph: paragraph(2)},
		},
	}
}

func genericDocument(raw string) *documents.Document {
	return &documents.Document{
		ID:           GenericSampleID,
		Title:        "Pasted Document (demo)",
		OriginalText: raw,
		Simplified: []string{
			"This pasted document was processed by the LexiAI demo.",
			"Key points and potential risks have been highlighted for quick review.",
		},
		Risks: []documents.RiskItem{
			{
				ID:          "pasted-r1",
				Excerpt:     "Potential missing sections (privacy, liability, termination)",
				Risk:        documents.RiskMedium,
				Explanation: "Common gaps in pasted contracts — check for full clauses before relying on the document.",
				Confidence:  documents.ConfidenceMedium,
			},
		},
		Clauses: []documents.Clause{},
	}
}
