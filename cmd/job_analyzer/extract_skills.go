package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract the required skills from a job posting file",
	Long:  "Extract and normalize the required skills of a job posting text file, without match scoring or simplification. Useful for checking what the extractor sees.",
	RunE:  runExtractSkills,
}

var (
	extractInputFile string
	extractAPIKey    string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to job posting text file (required)")
	extractSkillsCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Generation-service API key (overrides GEMINI_API_KEY env var)")

	_ = extractSkillsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	document, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := context.Background()
	service, closeClient, err := buildService(ctx, extractAPIKey)
	if err != nil {
		return err
	}
	defer closeClient()

	extracted, err := service.ExtractSkills(ctx, string(document))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(map[string][]string{"skills": extracted}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
