// Package main provides the entry point for the CV chat server and its tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_agent",
	Short: "CV chat HTTP API server",
	Long:  "cv_agent serves a CV profile parsed from markdown and answers questions about it, through Gemini when an API key is configured.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
