package assistant

import (
	"strings"

	"github.com/JaimeStill/lexi/internal/documents"
)

// gate decides whether a response applies to a document.
type gate func(*documents.Document) bool

func isRent(d *documents.Document) bool { return strings.Contains(d.ID, "rent") }
func isLoan(d *documents.Document) bool { return strings.Contains(d.ID, "loan") }

// isTermsLike matches synthesized terms-of-service documents as well as any
// document titled as terms.
func isTermsLike(d *documents.Document) bool {
	return strings.HasPrefix(d.ID, "tos") ||
		strings.Contains(strings.ToLower(d.Title), "terms")
}

type response struct {
	when   gate
	answer ChatAnswer
}

// rule is one keyword bucket. A rule triggers when the question contains any
// trigger; the first response whose gate passes is returned. When no gate
// passes, otherwise is returned if set and evaluation continues with the
// next rule if not.
type rule struct {
	name      string
	triggers  []string
	responses []response
	otherwise *ChatAnswer
}

func (r rule) terminal() bool {
	return r.otherwise != nil
}

func (r rule) apply(doc *documents.Document, q string) (ChatAnswer, bool) {
	if !r.triggered(q) {
		return ChatAnswer{}, false
	}
	for _, resp := range r.responses {
		if resp.when(doc) {
			return resp.answer, true
		}
	}
	if r.terminal() {
		return *r.otherwise, true
	}
	return ChatAnswer{}, false
}

func (r rule) triggered(q string) bool {
	for _, t := range r.triggers {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

func high(text, clause string) ChatAnswer {
	return ChatAnswer{AnswerText: text, SourceClauseID: clause, Confidence: documents.ConfidenceHigh}
}

// rules is evaluated in order and the first answer wins. Termination,
// default, amount, and sublet questions fall through for documents their
// gates do not cover; increase, repayment, and privacy questions always stop.
var rules = []rule{
	{
		name:     RuleIncrease,
		triggers: []string{"rent increase", "increase rent", "increase"},
		responses: []response{
			{isRent, high(
				"Yes — clause 4 says that if the agreement is renewed after 11 months, rent will be increased by 20% on renewal. This applies at renewal, not during the current term.",
				"rent-clause-4",
			)},
		},
		otherwise: &ChatAnswer{
			AnswerText: "This document is not a rent agreement. Load the rent agreement to check rent increase clauses.",
			Confidence: documents.ConfidenceLow,
		},
	},
	{
		name:     RuleTermination,
		triggers: []string{"terminate", "termination", "notice", "cancel"},
		responses: []response{
			{isRent, high(
				"Either party can terminate the tenancy with one month's written notice (clause 5). The tenant may curtail tenancy with one month's notice and the landlord must serve one month notice for eviction.",
				"rent-clause-5",
			)},
			{isLoan, high(
				"This loan is a 'demand' loan — the lender may demand full repayment and the borrower must repay within 15 days of written demand (see Demand by Lender clause).",
				"loan-clause-demand",
			)},
		},
	},
	{
		name:     RuleRepayment,
		triggers: []string{"repay early", "repay", "pay early", "early repayment", "pay off"},
		responses: []response{
			{isLoan, high(
				"Because this is a demand loan, the lender can demand full repayment with 15 days' notice. That means the borrower may be required to repay earlier than expected — high cashflow risk.",
				"loan-clause-demand",
			)},
		},
		otherwise: &ChatAnswer{
			AnswerText: "This question does not apply to the currently loaded document.",
			Confidence: documents.ConfidenceLow,
		},
	},
	{
		name:     RuleDefault,
		triggers: []string{"default", "bankrupt", "insolvent"},
		responses: []response{
			{isLoan, high(
				"Default triggers include failing to pay principal or interest on the due date, seeking bankruptcy relief, or becoming insolvent. These can accelerate repayment or allow enforcement actions.",
				"loan-clause-defaults",
			)},
		},
	},
	{
		name:     RuleAmount,
		triggers: []string{"how much", "amount", "monthly", "monthly payment", "pay $", "₹"},
		responses: []response{
			{isLoan, high(
				"Monthly payment is $500. The first payment is due 30 days after signing and then monthly on the anniversary date.",
				"loan-clause-payment",
			)},
			{isRent, high(
				"Monthly rent is ₹8,500 payable in advance on or before the 1st of every calendar month. Utilities or maintenance may be extra as specified.",
				"rent-clause-payment",
			)},
		},
	},
	{
		name:     RuleSublet,
		triggers: []string{"sublet", "subletting", "sub-let"},
		responses: []response{
			{isRent, high(
				"No — the tenant is not permitted to sublet any portion of the premises (clause 8). Written permission is required to sublet.",
				"rent-clause-sublet",
			)},
		},
	},
	{
		name:     RulePrivacy,
		triggers: []string{"data", "privacy", "share", "third party"},
		responses: []response{
			{isTermsLike, ChatAnswer{
				AnswerText: "I don't see a dedicated privacy or data-sharing clause in the pasted text. That is a potential high-risk area: the document should clearly say how user data is stored, used, and whether it's shared with third parties.",
				Confidence: documents.ConfidenceHigh,
			}},
		},
		otherwise: &ChatAnswer{
			AnswerText: "This document does not explicitly address privacy or data-sharing in the visible text.",
			Confidence: documents.ConfidenceMedium,
		},
	},
}
