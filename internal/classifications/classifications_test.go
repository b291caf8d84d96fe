package classifications_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/pkg/metrics"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want classifications.Category
	}{
		{"terms of service", "Terms of Service\nLast updated...", classifications.TermsOfService},
		{"padded upper case", "  TERMS OF SERVICE  ", classifications.TermsOfService},
		{"terms paren", `these Terms ("Agreement") govern`, classifications.TermsOfService},
		{"interpretation heading", "Interpretation and Definitions\n\nInterpretation", classifications.TermsOfService},
		{"substring inside longer phrase", "the payment terms (net 30) apply", classifications.TermsOfService},
		{"plain contract", "This agreement is made between the parties.", classifications.Generic},
		{"terms without marker", "the terms are reasonable", classifications.Generic},
		{"empty", "", classifications.Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifications.Classify(tt.text))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		classifications.Classify("Terms of Service"),
		classifications.Classify("  TERMS OF SERVICE  "),
	)
}

func TestParseCategory(t *testing.T) {
	c, err := classifications.ParseCategory("generic")
	require.NoError(t, err)
	assert.Equal(t, classifications.Generic, c)

	_, err = classifications.ParseCategory("lease")
	assert.ErrorIs(t, err, classifications.ErrInvalidCategory)
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, classifications.ValidateText("0123456789", 0))
	assert.NoError(t, classifications.ValidateText("   0123456789   ", 100))

	err := classifications.ValidateText("   short   ", 0)
	assert.ErrorIs(t, err, classifications.ErrTextTooShort)

	err = classifications.ValidateText(strings.Repeat("a", 101), 100)
	assert.ErrorIs(t, err, classifications.ErrTextTooLarge)
}

func TestSynthesizeTermsOfService(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := classifications.NewSynthesizer(0, classifications.WithClock(func() time.Time { return fixed }))

	raw := "Terms of Service\nInterpretation and Definitions"
	doc, err := s.Synthesize(context.Background(), raw, classifications.Classify(raw))
	require.NoError(t, err)

	assert.Equal(t, classifications.TermsSampleID, doc.ID)
	assert.Equal(t, "Terms of Service — Sample (pasted)", doc.Title)
	assert.Equal(t, raw, doc.OriginalText)
	assert.Len(t, doc.Simplified, 4)
	require.Len(t, doc.Risks, 3)
	require.Len(t, doc.Clauses, 2)
	require.NotNil(t, doc.UploadedAt)
	assert.Equal(t, fixed, *doc.UploadedAt)

	levels := []documents.RiskLevel{doc.Risks[0].Risk, doc.Risks[1].Risk, doc.Risks[2].Risk}
	assert.Equal(t, []documents.RiskLevel{documents.RiskMedium, documents.RiskHigh, documents.RiskLow}, levels)

	for _, r := range doc.Risks {
		assert.Empty(t, r.ClauseID)
	}
	assert.Equal(t, "tos-c1", doc.Clauses[0].ID)
	assert.Equal(t, "tos-c2", doc.Clauses[1].ID)
}

func TestSynthesizeGeneric(t *testing.T) {
	s := classifications.NewSynthesizer(0)

	raw := "An unrelated memo about the office coffee machine."
	doc, err := s.Synthesize(context.Background(), raw, classifications.Classify(raw))
	require.NoError(t, err)

	assert.Equal(t, classifications.GenericSampleID, doc.ID)
	assert.Equal(t, "Pasted Document (demo)", doc.Title)
	assert.Len(t, doc.Simplified, 2)
	require.Len(t, doc.Risks, 1)
	assert.Equal(t, documents.RiskMedium, doc.Risks[0].Risk)
	assert.Empty(t, doc.Clauses)
	assert.NotNil(t, doc.UploadedAt)
}

func TestSynthesizeReturnsFreshDocuments(t *testing.T) {
	s := classifications.NewSynthesizer(0)

	a, err := s.Synthesize(context.Background(), "first paste here", classifications.Generic)
	require.NoError(t, err)
	b, err := s.Synthesize(context.Background(), "second paste here", classifications.Generic)
	require.NoError(t, err)

	a.Risks[0].Excerpt = "changed"
	assert.NotEqual(t, a.Risks[0].Excerpt, b.Risks[0].Excerpt)
	assert.Equal(t, a.ID, b.ID)
}

func TestSynthesizeWaitsForDelay(t *testing.T) {
	s := classifications.NewSynthesizer(30 * time.Millisecond)
	assert.Equal(t, 30*time.Millisecond, s.Delay())

	start := time.Now()
	_, err := s.Synthesize(context.Background(), "some pasted text", classifications.Generic)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSynthesizeCancelled(t *testing.T) {
	s := classifications.NewSynthesizer(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	doc, err := s.Synthesize(ctx, "some pasted text", classifications.Generic)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	_, err = classifications.NewSynthesizer(0).Synthesize(cancelled, "x", classifications.Generic)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNegativeDelayIsZero(t *testing.T) {
	assert.Zero(t, classifications.NewSynthesizer(-time.Second).Delay())
}

func TestSystemAnalyzeRecordsMetrics(t *testing.T) {
	ms := metrics.New()
	sys := classifications.New(
		classifications.Config{MaxTextSize: 1024},
		classifications.NewMetrics(ms.Factory()),
		discard(),
	)

	doc, err := sys.Analyze(context.Background(), "Terms of Service for Example Inc.")
	require.NoError(t, err)
	assert.Equal(t, classifications.TermsSampleID, doc.ID)

	_, err = sys.Analyze(context.Background(), "tiny")
	assert.ErrorIs(t, err, classifications.ErrTextTooShort)

	_, err = sys.Analyze(context.Background(), strings.Repeat("x", 2048))
	assert.ErrorIs(t, err, classifications.ErrTextTooLarge)

	families, err := ms.Registry().Gather()
	require.NoError(t, err)

	var classified, observed float64
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "lexi_classifications_total":
				classified += m.GetCounter().GetValue()
			case "lexi_synthesis_duration_seconds":
				observed += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, 1.0, classified)
	assert.Equal(t, 1.0, observed)
}
