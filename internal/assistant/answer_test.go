package assistant_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/documents"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sample(t *testing.T, id string) *documents.Document {
	t.Helper()
	doc, ok := documents.New(discard()).Lookup(id)
	require.True(t, ok, id)
	return doc
}

func pasted(t *testing.T, category classifications.Category) *documents.Document {
	t.Helper()
	doc, err := classifications.NewSynthesizer(0).Synthesize(t.Context(), "pasted text body", category)
	require.NoError(t, err)
	return doc
}

func TestAnswerNoDocument(t *testing.T) {
	ans, rule := assistant.Explain(nil, "anything")
	assert.Equal(t, assistant.RuleNoDocument, rule)
	assert.Equal(t, "Please load a document first to ask questions about it.", ans.AnswerText)
	assert.Equal(t, documents.ConfidenceLow, ans.Confidence)
	assert.Empty(t, ans.SourceClauseID)
}

func TestAnswerRules(t *testing.T) {
	rent := sample(t, documents.RentAgreementID)
	loan := sample(t, documents.LoanAgreementID)
	tos := pasted(t, classifications.TermsOfService)
	generic := pasted(t, classifications.Generic)

	tests := []struct {
		name       string
		doc        *documents.Document
		question   string
		rule       string
		confidence documents.Confidence
		citation   string
		contains   string
	}{
		{"rent increase on rent", rent, "Can the landlord increase rent anytime?", assistant.RuleIncrease, documents.ConfidenceHigh, "rent-clause-4", "20%"},
		{"rent increase on loan", loan, "rent increase", assistant.RuleIncrease, documents.ConfidenceLow, "", "not a rent agreement"},
		{"termination on rent", rent, "How much notice is needed to terminate?", assistant.RuleTermination, documents.ConfidenceHigh, "rent-clause-5", "one month's written notice"},
		{"termination on loan", loan, "How do I cancel?", assistant.RuleTermination, documents.ConfidenceHigh, "loan-clause-demand", "'demand' loan"},
		{"repayment on loan", loan, "Can the lender demand early repayment?", assistant.RuleRepayment, documents.ConfidenceHigh, "loan-clause-demand", "cashflow risk"},
		{"repayment on rent", rent, "Can I pay off the balance?", assistant.RuleRepayment, documents.ConfidenceLow, "", "does not apply"},
		{"default on loan", loan, "What constitutes default?", assistant.RuleDefault, documents.ConfidenceHigh, "loan-clause-defaults", "insolvent"},
		{"amount on loan", loan, "How much do I pay monthly?", assistant.RuleAmount, documents.ConfidenceHigh, "loan-clause-payment", "$500"},
		{"amount on rent", rent, "what is the amount?", assistant.RuleAmount, documents.ConfidenceHigh, "rent-clause-payment", "₹8,500"},
		{"rupee sign on rent", rent, "₹ per month?", assistant.RuleAmount, documents.ConfidenceHigh, "rent-clause-payment", "₹8,500"},
		{"sublet on rent", rent, "Can I sublet?", assistant.RuleSublet, documents.ConfidenceHigh, "rent-clause-sublet", "not permitted to sublet"},
		{"privacy on tos", tos, "Does this share my data with third parties?", assistant.RulePrivacy, documents.ConfidenceHigh, "", "privacy or data-sharing clause"},
		{"privacy on rent", rent, "Is my data shared?", assistant.RulePrivacy, documents.ConfidenceMedium, "", "does not explicitly address privacy"},
		{"privacy on generic", generic, "privacy?", assistant.RulePrivacy, documents.ConfidenceMedium, "", "does not explicitly address privacy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ans, rule := assistant.Explain(tt.doc, tt.question)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.confidence, ans.Confidence)
			assert.Equal(t, tt.citation, ans.SourceClauseID)
			assert.Contains(t, ans.AnswerText, tt.contains)
		})
	}
}

func TestAnswerDependsOnDocument(t *testing.T) {
	rent := assistant.Answer(sample(t, documents.RentAgreementID), "rent increase")
	loan := assistant.Answer(sample(t, documents.LoanAgreementID), "rent increase")

	assert.NotEqual(t, rent, loan)
	assert.Equal(t, "rent-clause-4", rent.SourceClauseID)
	assert.Equal(t, documents.ConfidenceLow, loan.Confidence)
}

func TestAnswerFirstMatchWins(t *testing.T) {
	rent := sample(t, documents.RentAgreementID)
	loan := sample(t, documents.LoanAgreementID)

	_, rule := assistant.Explain(rent, "does notice affect the rent increase?")
	assert.Equal(t, assistant.RuleIncrease, rule)

	_, rule = assistant.Explain(loan, "how much notice to terminate?")
	assert.Equal(t, assistant.RuleTermination, rule)
}

// Termination, default, amount, and sublet buckets fall through when their
// document gate fails. Increase, repayment, and privacy always answer.
func TestAnswerFallthroughAsymmetry(t *testing.T) {
	rent := sample(t, documents.RentAgreementID)
	tos := pasted(t, classifications.TermsOfService)

	ans, rule := assistant.Explain(tos, "Can I cancel and get my data back?")
	assert.Equal(t, assistant.RulePrivacy, rule, "termination falls through to privacy")
	assert.Equal(t, documents.ConfidenceHigh, ans.Confidence)

	_, rule = assistant.Explain(rent, "What constitutes default?")
	assert.Equal(t, assistant.RuleNoMatch, rule, "default falls through on rent")

	ans, rule = assistant.Explain(tos, "will they increase data sharing?")
	assert.Equal(t, assistant.RuleIncrease, rule, "increase stops before privacy")
	assert.Equal(t, documents.ConfidenceLow, ans.Confidence)

	_, rule = assistant.Explain(tos, "can I repay and share?")
	assert.Equal(t, assistant.RuleRepayment, rule, "repayment stops before privacy")
}

func TestAnswerClauseMatch(t *testing.T) {
	loan := sample(t, documents.LoanAgreementID)
	rent := sample(t, documents.RentAgreementID)

	t.Run("linked risk", func(t *testing.T) {
		ans, rule := assistant.Explain(loan, "jurisdiction in cook county?")
		assert.Equal(t, assistant.RuleClauseMatch, rule)
		assert.Equal(t, "loan-clause-5", ans.SourceClauseID)
		assert.Equal(t, documents.ConfidenceLow, ans.Confidence)
		assert.Equal(t, "Laws and courts are restricted to Cook County, IL which may be inconvenient.", ans.AnswerText)
	})

	t.Run("clause text", func(t *testing.T) {
		ans, rule := assistant.Explain(rent, "structural alterations allowed?")
		assert.Equal(t, assistant.RuleClauseMatch, rule)
		assert.Equal(t, "rent-clause-7", ans.SourceClauseID)
		assert.Equal(t, documents.ConfidenceMedium, ans.Confidence)
		assert.Equal(t, "No structural alterations without written consent", ans.AnswerText)
	})

	t.Run("clauses scanned before words", func(t *testing.T) {
		ans, _ := assistant.Explain(rent, "who pays for repairs?")
		assert.Equal(t, "rent-clause-5", ans.SourceClauseID)
		assert.Equal(t, documents.ConfidenceLow, ans.Confidence)
	})

	t.Run("short words ignored", func(t *testing.T) {
		doc := &documents.Document{
			ID:      "memo",
			Clauses: []documents.Clause{{ID: "c1", Text: "an ox is in it"}},
		}
		_, rule := assistant.Explain(doc, "is an ox in it")
		assert.Equal(t, assistant.RuleNoMatch, rule)
	})

	t.Run("unset risk confidence", func(t *testing.T) {
		doc := &documents.Document{
			ID:      "memo",
			Clauses: []documents.Clause{{ID: "c1", Text: "Warranty disclaimed"}},
			Risks:   []documents.RiskItem{{ID: "r1", ClauseID: "c1", Explanation: "No warranty."}},
		}
		ans := assistant.Answer(doc, "warranty details")
		assert.Equal(t, "No warranty.", ans.AnswerText)
		assert.Equal(t, documents.ConfidenceMedium, ans.Confidence)
		assert.Equal(t, "c1", ans.SourceClauseID)
	})
}

func TestAnswerNoMatch(t *testing.T) {
	rent := sample(t, documents.RentAgreementID)
	generic := pasted(t, classifications.Generic)

	for _, doc := range []*documents.Document{rent, generic} {
		ans, rule := assistant.Explain(doc, "xyz qqq")
		assert.Equal(t, assistant.RuleNoMatch, rule)
		assert.Equal(t, documents.ConfidenceLow, ans.Confidence)
		assert.Empty(t, ans.SourceClauseID)
		assert.Contains(t, ans.AnswerText, "consult a lawyer")
	}
}

func TestAnswerTermsLikeByTitle(t *testing.T) {
	doc := &documents.Document{ID: "custom", Title: "Website TERMS"}
	ans := assistant.Answer(doc, "privacy")
	assert.Equal(t, documents.ConfidenceHigh, ans.Confidence)
}

func TestAnswerNormalizesQuestion(t *testing.T) {
	rent := sample(t, documents.RentAgreementID)
	assert.Equal(t,
		assistant.Answer(rent, "can i sublet?"),
		assistant.Answer(rent, "   CAN I SUBLET?   "),
	)
}

func TestAnswerIdempotent(t *testing.T) {
	loan := sample(t, documents.LoanAgreementID)
	for _, q := range []string{"How much do I pay monthly?", "jurisdiction", "nothing relevant"} {
		assert.Equal(t, assistant.Answer(loan, q), assistant.Answer(loan, q))
	}
}

func TestHighConfidenceRuleAnswersCite(t *testing.T) {
	rent := sample(t, documents.RentAgreementID)
	loan := sample(t, documents.LoanAgreementID)

	questions := []string{"increase", "terminate", "repay", "default", "monthly", "sublet"}
	for _, doc := range []*documents.Document{rent, loan} {
		for _, q := range questions {
			ans, rule := assistant.Explain(doc, q)
			if ans.Confidence == documents.ConfidenceHigh && rule != assistant.RuleClauseMatch {
				assert.NotEmpty(t, ans.SourceClauseID, "%s: %s", doc.ID, q)
				assert.True(t, strings.HasPrefix(ans.SourceClauseID, strings.Split(doc.ID, "-")[0]), ans.SourceClauseID)
			}
		}
	}
}

func TestDisplay(t *testing.T) {
	ans := assistant.ChatAnswer{AnswerText: "Answer."}
	assert.Equal(t, "Answer.\n\n"+assistant.DefaultDisclaimer, assistant.Display(ans, assistant.DefaultDisclaimer))
	assert.Equal(t, "Answer.", assistant.Display(ans, ""))
	assert.Equal(t, "This is not legal advice. For legal action, consult a lawyer.", assistant.DefaultDisclaimer)
}
