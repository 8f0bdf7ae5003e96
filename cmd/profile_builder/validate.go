package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-builder/internal/completion"
	"github.com/jonathan/profile-builder/internal/normalize"
	"github.com/jonathan/profile-builder/internal/observability"
	"github.com/jonathan/profile-builder/internal/types"
	"github.com/jonathan/profile-builder/internal/validation"
)

var validateVerbose bool

var validateCmd = &cobra.Command{
	Use:   "validate <profile.json>",
	Short: "Validate a profile document",
	Long:  `Normalize a profile document and print each wizard step's validation errors and the completion score.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateVerbose, "verbose", false, "Print a profile summary alongside the report")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	doc, err := normalize.ParseDocument(data)
	if err != nil {
		return err
	}
	p := normalize.Normalize(doc)

	out := cmd.OutOrStdout()
	if validateVerbose {
		printer := observability.NewPrinter(out)
		printer.PrintProfileSummary(p)
		printer.PrintValidationReport(p)
		printer.PrintCompletion(completion.Score(p))
	}

	total := 0
	for _, section := range types.SectionOrder {
		n := validation.StepErrorCount(p, section)
		total += n
		marker := "ok"
		if n > 0 {
			marker = fmt.Sprintf("%d error(s)", n)
		}
		fmt.Fprintf(out, "%-16s %s\n", section, marker)
	}
	fmt.Fprintf(out, "completion       %d%%\n", completion.Score(p))

	if total > 0 {
		return fmt.Errorf("profile has %d validation error(s)", total)
	}
	return nil
}
