package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/inclusive-jobsearch/internal/config"
	"github.com/jonathan/inclusive-jobsearch/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job analysis endpoints consumed by the browser extension.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or PORT env var)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Defaults()
	if serveConfigPath != "" {
		fileCfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Environment beats the config file, flags beat both. A missing API key is
	// not an error: the server falls back to heuristic extraction.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if port := os.Getenv("PORT"); port != "" && servePort == 0 {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT environment variable: %w", err)
		}
		cfg.Port = parsed
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
