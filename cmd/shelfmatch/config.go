package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfmatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(out, cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  Database:   %s\n", cfg.Database.Path)

	catalogs := []string{}
	if gb := cfg.Catalog.GoogleBooks; gb != nil {
		key := "no api key"
		if gb.APIKey != "" {
			key = "api key set"
		}
		catalogs = append(catalogs, fmt.Sprintf("google_books (%s, %g req/s)", key, gb.RequestsPerSecond))
	}
	if cfg.Catalog.OpenLibrary != nil {
		catalogs = append(catalogs, "open_library")
	}
	if len(catalogs) == 0 {
		catalogs = append(catalogs, "none")
	}
	fmt.Fprintf(w, "  Catalogs:   %s\n", strings.Join(catalogs, ", "))

	fmt.Fprintf(w, "  Recommend:  limit %d, %d per author, %d per query\n",
		cfg.Recommend.Limit, cfg.Recommend.MaxPerAuthor, cfg.Recommend.ResultsPerQuery)
	fmt.Fprintf(w, "  Enrich:     batches of %d every %s, min confidence %.2f\n",
		cfg.Enrich.BatchSize, cfg.Enrich.BatchDelay, cfg.Enrich.MinConfidence)
}
