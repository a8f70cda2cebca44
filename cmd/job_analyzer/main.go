// Package main provides the entry point for the Inclusive Job Search API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_analyzer",
	Short: "Inclusive Job Search analysis server",
	Long:  "Inclusive Job Search extracts and simplifies skill requirements from job postings and scores employer inclusiveness for neurodivergent job seekers, via REST API or one-shot CLI commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
