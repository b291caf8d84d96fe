package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/documents"
)

var askCmd = &cobra.Command{
	Use:   "ask [document-id] [question...]",
	Short: "Ask a question about a document",
	Long: `Ask the assistant a question about a sample document, or about a pasted
document read from a file with --file.

Examples:
  lexi ask loan-agreement "How much do I pay monthly?"
  lexi ask --file tos.txt "Does this share my data with third parties?"
  lexi ask rent-agreement --json "Can I sublet?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [document-id]",
	Short: "List example questions for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var (
	askJSON bool
	askFile string
)

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the answer as JSON")
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "ask about text read from this file instead of a sample")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(suggestCmd)
}

type askOutput struct {
	DocumentID string               `json:"document_id"`
	Question   string               `json:"question"`
	Answer     assistant.ChatAnswer `json:"answer"`
	Clause     *documents.Clause    `json:"clause,omitempty"`
	Display    string               `json:"display"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var doc *documents.Document
	if askFile != "" {
		doc, err = synthesizeFile(cmd, a, askFile)
	} else {
		if len(args) < 2 {
			return fmt.Errorf("ask requires a document id and a question")
		}
		doc, err = lookup(a, args[0])
		args = args[1:]
	}
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	ans := a.assistant.Ask(doc, question)

	if err := typing(cmd, a.cfg.Assistant.TypingDelayDuration()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	clause, _ := doc.Clause(ans.SourceClauseID)

	if askJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(askOutput{
			DocumentID: doc.ID,
			Question:   question,
			Answer:     ans,
			Clause:     clause,
			Display:    a.assistant.Display(ans),
		})
	}

	fmt.Fprintln(out, a.assistant.Display(ans))
	fmt.Fprintf(out, "\nconfidence: %s\n", ans.Confidence)
	if clause != nil {
		fmt.Fprintf(out, "source: %s (%s)\n", clause.ID, clause.Text)
	} else if ans.SourceClauseID != "" {
		fmt.Fprintf(out, "source: %s\n", ans.SourceClauseID)
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	doc, err := lookup(a, args[0])
	if err != nil {
		return err
	}

	for _, q := range a.assistant.Suggest(doc) {
		fmt.Fprintln(cmd.OutOrStdout(), q)
	}
	return nil
}

func lookup(a *app, id string) (*documents.Document, error) {
	doc, ok := a.documents.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", documents.ErrNotFound, id)
	}
	return doc, nil
}

func synthesizeFile(cmd *cobra.Command, a *app, path string) (*documents.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.classifications.Analyze(cmd.Context(), string(data))
}

// typing pauses before an answer is shown, as a person typing would.
func typing(cmd *cobra.Command, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	case <-time.After(d):
		return nil
	}
}
