package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the catalog response cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache entry counts",
		RunE:  runCacheStats,
	}

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove expired cache entries",
		RunE:  runCachePrune,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop cached catalog searches",
		RunE:  runCacheClear,
	}

	cacheCmd.AddCommand(statsCmd)
	cacheCmd.AddCommand(pruneCmd)
	cacheCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	total, expired, err := a.cache.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("cache stats: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]int{"total": total, "expired": expired})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cache entries: %d (%d expired)\n", total, expired)
	return nil
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.cache.Prune(cmd.Context())
	if err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries\n", n)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.books.InvalidateSearches(cmd.Context())
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached searches\n", n)
	return nil
}
