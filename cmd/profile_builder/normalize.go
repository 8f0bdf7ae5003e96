package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-builder/internal/normalize"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <document.json>",
	Short: "Normalize a raw profile document",
	Long:  `Convert an uploaded or legacy profile document to the canonical shape and print it as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := normalize.ParseDocument(data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(normalize.Normalize(doc))
}
