package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/documents"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify pasted text",
	Long: `Report whether text looks like terms of service or a generic document.
With no arguments, or a single "-", the text is read from stdin.

Examples:
  lexi classify "These Terms of Service govern your use"
  pbpaste | lexi classify -`,
	RunE: runClassify,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Classify and summarize text files concurrently",
	Long: `Read each file, classify it, and synthesize a summary and risk report.
Files are processed concurrently; a file that fails does not stop the others.

Examples:
  lexi analyze tos.txt contract.txt
  lexi analyze --jobs 2 *.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var analyzeJobs int

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeJobs, "jobs", "j", 4, "maximum files processed at once")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	if err := a.classifications.Validate(text); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.classifications.Classify(text))
	return nil
}

type analysis struct {
	path     string
	category classifications.Category
	doc      *documents.Document
	err      error
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	results := make([]analysis, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(analyzeJobs, 1))

	for i, path := range args {
		g.Go(func() error {
			results[i] = analyze(ctx, a, path)
			if errors.Is(results[i].err, context.Canceled) {
				return results[i].err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", r.path, r.err)
			continue
		}
		fmt.Fprintf(out, "%s: %s -> %s (%d risks)\n", r.path, r.category, r.doc.ID, len(r.doc.Risks))
		for _, line := range r.doc.Simplified {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func analyze(ctx context.Context, a *app, path string) analysis {
	r := analysis{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		r.err = err
		return r
	}
	text := string(data)

	if err := a.classifications.Validate(text); err != nil {
		r.err = err
		return r
	}

	r.category = a.classifications.Classify(text)
	r.doc, r.err = a.classifications.Synthesize(ctx, text, r.category)
	return r
}

// readText joins args into the text to process, reading stdin when args is
// empty or a lone "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
