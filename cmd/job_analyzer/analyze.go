package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/inclusive-jobsearch/internal/analysis"
	"github.com/jonathan/inclusive-jobsearch/internal/llm"
	"github.com/jonathan/inclusive-jobsearch/internal/observability"
	"github.com/jonathan/inclusive-jobsearch/internal/research"
	"github.com/jonathan/inclusive-jobsearch/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting from a text file",
	Long:  "Run the full analysis (skill extraction, match scoring, simplification, company research) over a job posting text file and print the result as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeCompany    string
	analyzeSkills     string
	analyzeAPIKey     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to job posting text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name (required)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Comma-separated list of your skills")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Generation-service API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	_ = analyzeCmd.MarkFlagRequired("in")
	_ = analyzeCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	document, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var userSkills []string
	for _, skill := range strings.Split(analyzeSkills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			userSkills = append(userSkills, skill)
		}
	}

	ctx := context.Background()
	service, closeClient, err := buildService(ctx, analyzeAPIKey)
	if err != nil {
		return err
	}
	defer closeClient()

	result, err := service.Analyze(ctx, string(document), analyzeCompany, userSkills)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(analyzeCompany, result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// buildService wires an analysis service from an optional API key. The
// returned cleanup func closes the generation client when one was created.
func buildService(ctx context.Context, apiKey string) (*analysis.Service, func(), error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	if apiKey == "" {
		return analysis.NewService(skills.NewExtractor(nil), research.NewOfflineResearcher()), func() {}, nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	service := analysis.NewService(skills.NewExtractor(client), research.NewOfflineResearcher())
	return service, func() { _ = client.Close() }, nil
}
