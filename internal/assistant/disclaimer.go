package assistant

// DefaultDisclaimer is shown beneath every answer presented to a user.
const DefaultDisclaimer = "This is not legal advice. For legal action, consult a lawyer."

// Display renders an answer for a user, followed by a blank line and the
// disclaimer. An empty disclaimer leaves the text unchanged.
func Display(a ChatAnswer, disclaimer string) string {
	if disclaimer == "" {
		return a.AnswerText
	}
	return a.AnswerText + "\n\n" + disclaimer
}
