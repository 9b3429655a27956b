package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfmatch/internal/autoadd"
	"github.com/vmunix/shelfmatch/internal/recommender"
	"github.com/vmunix/shelfmatch/internal/search"
	"github.com/vmunix/shelfmatch/pkg/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend books from your reading profile",
	Long: `Builds a profile from owned items, searches Google Books for your
favorite authors and genres, and prints the ranked, per-author
diversified results with the reason each was picked.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntP("limit", "l", 0, "Maximum recommendations (default from config)")
	recommendCmd.Flags().Int("max-per-author", 0, "Books per author before others get a turn (default from config)")
	recommendCmd.Flags().Int("add", 0, "Add the top N recommendations to the library as wanted")
	rootCmd.AddCommand(recommendCmd)
}

type recommendationOutput struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	Reason        string   `json:"reason"`
}

type recommendOutput struct {
	FavoriteAuthors []string               `json:"favorite_authors"`
	TopGenres       []string               `json:"top_genres"`
	Candidates      int                    `json:"candidates"`
	Items           []recommendationOutput `json:"items"`
	Errors          []string               `json:"errors,omitempty"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	maxPerAuthor, _ := cmd.Flags().GetInt("max-per-author")
	addTop, _ := cmd.Flags().GetInt("add")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireGoogleBooks(); err != nil {
		return err
	}

	opts := recommend.Options{MaxPerAuthor: a.cfg.Recommend.MaxPerAuthor, Limit: a.cfg.Recommend.Limit}
	if limit > 0 {
		opts.Limit = limit
	}
	if maxPerAuthor > 0 {
		opts.MaxPerAuthor = maxPerAuthor
	}

	pool := search.NewPool(a.books, a.cfg.Recommend.ResultsPerQuery, a.log)
	svc := recommender.New(a.store, pool, opts, a.log)

	resp, err := svc.Recommend(cmd.Context())
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	out := toRecommendOutput(resp)
	if jsonOutput {
		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	} else {
		printRecommendations(cmd.OutOrStdout(), out)
	}

	if addTop <= 0 {
		return nil
	}
	adder := autoadd.New(a.books, a.store, a.log)
	for i, it := range resp.Items {
		if i >= addTop {
			break
		}
		outcome, err := adder.Add(cmd.Context(), autoadd.RequestFromItem(it))
		switch {
		case errors.Is(err, autoadd.ErrAlreadyInLibrary), errors.Is(err, autoadd.ErrNoSuitableMatch):
			fmt.Fprintf(os.Stderr, "Skipped %q: %v\n", it.Title, err)
		case err != nil:
			return fmt.Errorf("add %q: %w", it.Title, err)
		default:
			fmt.Fprintf(os.Stderr, "Added %q as wanted (ID: %d)\n", outcome.Item.Title, outcome.Item.ID)
		}
	}
	return nil
}

func toRecommendOutput(resp *recommender.Response) recommendOutput {
	out := recommendOutput{
		FavoriteAuthors: resp.Profile.FavoriteAuthors,
		TopGenres:       resp.Profile.TopGenres,
		Candidates:      resp.Candidates,
		Items:           make([]recommendationOutput, 0, len(resp.Items)),
	}
	for _, it := range resp.Items {
		out.Items = append(out.Items, recommendationOutput{
			ID:            it.ID,
			Title:         it.Title,
			Author:        it.Author,
			ISBN:          it.ISBN,
			Categories:    it.Categories,
			AverageRating: it.AverageRating,
			Reason:        it.Reason,
		})
	}
	for _, err := range resp.Errors {
		out.Errors = append(out.Errors, err.Error())
	}
	return out
}

func printRecommendations(w io.Writer, out recommendOutput) {
	for _, e := range out.Errors {
		fmt.Fprintf(w, "warning: %s\n", e)
	}
	if len(out.Items) == 0 {
		fmt.Fprintln(w, "No recommendations (add some owned books with authors and tags first)")
		return
	}

	fmt.Fprintf(w, "Recommendations (%d from %d candidates):\n\n", len(out.Items), out.Candidates)
	fmt.Fprintf(w, "  %-3s %-40s %-24s %-6s %s\n", "#", "TITLE", "AUTHOR", "RATING", "REASON")
	fmt.Fprintf(w, "  %s\n", separator(110))
	for i, it := range out.Items {
		fmt.Fprintf(w, "  %-3d %-40s %-24s %-6s %s\n",
			i+1, truncate(it.Title, 40), truncate(it.Author, 24), formatRating(it.AverageRating), it.Reason)
	}
}
