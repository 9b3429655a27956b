package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfmatch/pkg/bibmatch"
)

var matchCmd = &cobra.Command{
	Use:   "match <candidate-title> <target-title>",
	Short: "Compare two book records offline",
	Long: `Runs the matcher on a candidate record (e.g. a search result) and a
target record (the book you are looking for) and prints the verdict.

Examples:
  shelfmatch match "Dune: Deluxe Edition" "Dune" --author "Frank Herbert" --target-author "Herbert, Frank"
  shelfmatch match "Anything" "Dune" --isbn 978-0-441-17271-9 --target-isbn 9780441172719`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().String("author", "", "Candidate author")
	matchCmd.Flags().String("isbn", "", "Candidate ISBN")
	matchCmd.Flags().StringArray("target-author", nil, "Target author (repeatable)")
	matchCmd.Flags().String("target-isbn", "", "Target ISBN-10 or ISBN-13")
	rootCmd.AddCommand(matchCmd)
}

// matchOutput is the JSON form of a match verdict.
type matchOutput struct {
	IsMatch     bool    `json:"is_match"`
	Confidence  float64 `json:"confidence"`
	Type        string  `json:"type"`
	TitleScore  float64 `json:"title_score"`
	AuthorScore float64 `json:"author_score"`
	ISBNMatch   bool    `json:"isbn_match"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	author, _ := cmd.Flags().GetString("author")
	isbn, _ := cmd.Flags().GetString("isbn")
	targetAuthors, _ := cmd.Flags().GetStringArray("target-author")
	targetISBN, _ := cmd.Flags().GetString("target-isbn")

	c := bibmatch.Candidate{Title: args[0], Author: author, ISBN: isbn}
	t := buildTarget(args[1], targetAuthors, targetISBN)

	res := bibmatch.MatchMetadata(c, t)
	out := matchOutput{
		IsMatch:     res.IsMatch,
		Confidence:  res.Confidence,
		Type:        string(res.Type),
		TitleScore:  res.Details.TitleScore,
		AuthorScore: res.Details.AuthorScore,
		ISBNMatch:   res.Details.ISBNMatch,
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), out)
	}
	printMatch(cmd.OutOrStdout(), out)
	return nil
}

// buildTarget files a target ISBN under ISBN10 or ISBN13 by its length.
func buildTarget(title string, authors []string, isbn string) bibmatch.Target {
	t := bibmatch.Target{Title: title, Authors: authors}
	switch n := bibmatch.NormalizeISBN(isbn); len(n) {
	case 0:
	case 10:
		t.ISBN10 = n
	default:
		t.ISBN13 = n
	}
	return t
}

func printMatch(w io.Writer, m matchOutput) {
	verdict := "no"
	if m.IsMatch {
		verdict = "yes"
	}
	fmt.Fprintf(w, "Match:        %s (%s)\n", verdict, m.Type)
	fmt.Fprintf(w, "Confidence:   %.2f\n", m.Confidence)
	fmt.Fprintf(w, "Title score:  %.2f\n", m.TitleScore)
	fmt.Fprintf(w, "Author score: %.2f\n", m.AuthorScore)
	fmt.Fprintf(w, "ISBN match:   %t\n", m.ISBNMatch)
}
