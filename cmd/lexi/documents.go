package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/pkg/formatting"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List the sample documents",
	Args:  cobra.NoArgs,
	RunE:  runDocuments,
}

var showCmd = &cobra.Command{
	Use:   "show [document-id]",
	Short: "Show a document's summary and risks",
	Long: `Show the plain-language summary and risk assessment of a sample document.

Examples:
  lexi show loan-agreement
  lexi show rent-agreement --text`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showText bool

func init() {
	showCmd.Flags().BoolVar(&showText, "text", false, "also print the original text")

	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(showCmd)
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range a.documents.List() {
		fmt.Fprintf(out, "%-16s %s (%d clauses, %d risks)\n", s.ID, s.Title, s.ClauseCount, s.RiskCount)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	doc, ok := a.documents.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", documents.ErrNotFound, args[0])
	}

	printDocument(cmd, doc)
	if showText {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", strings.TrimSpace(doc.OriginalText))
	}
	return nil
}

func printDocument(cmd *cobra.Command, doc *documents.Document) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s)\n\nSummary:\n", doc.Title, doc.ID)
	for _, line := range doc.Simplified {
		fmt.Fprintf(out, "  - %s\n", line)
	}

	fmt.Fprintln(out, "\nRisks:")
	for _, r := range doc.ResolvedRisks() {
		fmt.Fprintf(out, "  [%s] %s (confidence: %s)\n", r.Risk, formatting.Excerpt(r.Excerpt, 80), r.Confidence)
		fmt.Fprintf(out, "      %s\n", r.Explanation)
		if r.Clause != nil {
			fmt.Fprintf(out, "      clause %s: %s\n", r.Clause.ID, r.Clause.Text)
		}
	}
}
