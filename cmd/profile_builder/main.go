// Package main provides the entry point for the Profile Builder HTTP API
// server and its helper commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profile_builder",
	Short: "Profile Builder HTTP API Server",
	Long:  "Profile Builder drives the multi-step job-seeker profile wizard: it normalizes uploaded profile documents, validates each wizard step, tracks completion, and submits the finished profile to the backend.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
