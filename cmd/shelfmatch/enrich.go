package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfmatch/internal/enrich"
	"github.com/vmunix/shelfmatch/internal/library"
	"github.com/vmunix/shelfmatch/internal/metadata"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Look up series information on Open Library",
	Long: `Looks up series membership for library items in batches and saves
confident matches. By default only items without a series are checked.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().Bool("all", false, "Check every item, not just those without a series")
	enrichCmd.Flags().Bool("dry-run", false, "Show what would change without saving")
	enrichCmd.Flags().IntP("limit", "l", 0, "Maximum number of items to check")
	rootCmd.AddCommand(enrichCmd)
}

type enrichOutput struct {
	ItemID     int64    `json:"item_id"`
	Title      string   `json:"title"`
	Series     string   `json:"series,omitempty"`
	Index      *float64 `json:"index,omitempty"`
	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"`
	Written    bool     `json:"written"`
	Error      string   `json:"error,omitempty"`
}

func runEnrich(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	limit, _ := cmd.Flags().GetInt("limit")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if a.cfg.Catalog.OpenLibrary == nil {
		return metadata.ErrSeriesLookupDisabled
	}

	items, _, err := a.store.ListItems(library.ItemFilter{MissingSeries: !all, Limit: limit})
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to enrich")
		return nil
	}

	opts := []enrich.Option{
		enrich.WithBatchSize(a.cfg.Enrich.BatchSize),
		enrich.WithBatchDelay(a.cfg.Enrich.BatchDelay),
		enrich.WithMinConfidence(a.cfg.Enrich.MinConfidence),
		enrich.WithLogger(a.log),
	}
	if !dryRun {
		opts = append(opts, enrich.WithWriter(a.store))
	}

	results, enrichErr := enrich.New(a.books, opts...).Enrich(cmd.Context(), items)

	out := make([]enrichOutput, 0, len(results))
	for _, r := range results {
		o := enrichOutput{
			ItemID:     r.ItemID,
			Title:      r.Title,
			Series:     r.Series,
			Index:      r.Index,
			Confidence: r.Confidence,
			Source:     r.Source,
			Written:    r.Written,
		}
		if r.Err != nil {
			o.Error = r.Err.Error()
		}
		out = append(out, o)
	}

	if jsonOutput {
		if perr := printJSON(cmd.OutOrStdout(), out); perr != nil {
			return perr
		}
	} else {
		printEnrich(cmd.OutOrStdout(), out, dryRun)
	}
	if enrichErr != nil {
		return fmt.Errorf("enrich stopped early: %w", enrichErr)
	}
	return nil
}

func printEnrich(w io.Writer, results []enrichOutput, dryRun bool) {
	written, found := 0, 0
	fmt.Fprintf(w, "  %-4s %-40s %-30s %-5s %s\n", "ID", "TITLE", "SERIES", "CONF", "SOURCE")
	fmt.Fprintf(w, "  %s\n", separator(95))
	for _, r := range results {
		series := formatSeries(r.Series, r.Index)
		if r.Error != "" {
			series = "error: " + r.Error
		}
		fmt.Fprintf(w, "  %-4d %-40s %-30s %-5.2f %s\n",
			r.ItemID, truncate(r.Title, 40), truncate(series, 30), r.Confidence, r.Source)
		if r.Series != "" {
			found++
		}
		if r.Written {
			written++
		}
	}

	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintf(w, "%d of %d items have a series (dry run, nothing saved)\n", found, len(results))
		return
	}
	fmt.Fprintf(w, "%d of %d items have a series, %d saved\n", found, len(results), written)
}
