package assistant

import "github.com/JaimeStill/lexi/internal/documents"

var (
	rentPrompts = []string{
		"Can the landlord increase rent anytime?",
		"How much notice is needed to terminate?",
		"Can I sublet the property?",
		"Who pays for repairs?",
	}
	loanPrompts = []string{
		"Can the lender demand early repayment?",
		"What happens if I miss a payment?",
		"How much do I pay monthly?",
		"What constitutes default?",
	}
	termsPrompts = []string{
		"Does this Terms of Service share my data with third parties?",
		"Who controls 'Affiliate' and what does that mean?",
		"Where can I find dispute resolution / jurisdiction clauses?",
	}
)

// Suggest returns example questions for doc. The result is never nil and
// belongs to the caller.
func Suggest(doc *documents.Document) []string {
	var prompts []string
	switch {
	case doc == nil:
	case isRent(doc):
		prompts = rentPrompts
	case isLoan(doc):
		prompts = loanPrompts
	case isTermsLike(doc):
		prompts = termsPrompts
	}
	return append([]string{}, prompts...)
}
