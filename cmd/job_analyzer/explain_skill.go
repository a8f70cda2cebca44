package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var explainSkillCmd = &cobra.Command{
	Use:   "explain-skill [skill]",
	Short: "Explain a skill in plain language",
	Long:  "Print a short, concrete explanation of a skill. Uses the generation service when an API key is configured, otherwise a template fallback.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplainSkill,
}

var explainAPIKey string

func init() {
	explainSkillCmd.Flags().StringVar(&explainAPIKey, "api-key", "", "Generation-service API key (overrides GEMINI_API_KEY env var)")
	rootCmd.AddCommand(explainSkillCmd)
}

func runExplainSkill(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	service, closeClient, err := buildService(ctx, explainAPIKey)
	if err != nil {
		return err
	}
	defer closeClient()

	fmt.Fprintln(os.Stdout, service.ExplainSkill(ctx, args[0]))
	return nil
}
