package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfmatch/internal/autoadd"
	"github.com/vmunix/shelfmatch/internal/library"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Find a book in the catalog and add it as wanted",
	Long: `Searches Google Books for the title (and author), picks the closest
matching volume and adds it to the library as wanted. Nothing is added
when no result matches well enough.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringP("author", "a", "", "Author")
	addCmd.Flags().String("isbn", "", "ISBN-10 or ISBN-13")
	addCmd.Flags().Bool("audiobook", false, "Add as an audiobook")
	rootCmd.AddCommand(addCmd)
}

type addOutput struct {
	Item       itemOutput `json:"item"`
	Matched    string     `json:"matched_title"`
	Confidence float64    `json:"confidence"`
	MatchType  string     `json:"match_type"`
	Existing   bool       `json:"existing"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	author, _ := cmd.Flags().GetString("author")
	isbn, _ := cmd.Flags().GetString("isbn")
	audiobook, _ := cmd.Flags().GetBool("audiobook")

	req := autoadd.Request{
		Title:  strings.Join(args, " "),
		Author: author,
		ISBN:   isbn,
		Kind:   library.KindBook,
	}
	if audiobook {
		req.Kind = library.KindAudiobook
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireGoogleBooks(); err != nil {
		return err
	}

	outcome, err := autoadd.New(a.books, a.store, a.log).Add(cmd.Context(), req)
	existing := errors.Is(err, autoadd.ErrAlreadyInLibrary)
	if err != nil && !existing {
		if errors.Is(err, autoadd.ErrNoSuitableMatch) {
			fmt.Fprintf(cmd.OutOrStdout(), "No suitable match for %q, try searching manually\n", req.Title)
		}
		return err
	}

	out := addOutput{
		Item:       toItemOutput(outcome.Item),
		Matched:    outcome.Candidate.Title,
		Confidence: outcome.Match.Confidence,
		MatchType:  string(outcome.Match.Type),
		Existing:   existing,
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), out)
	}
	printAdd(cmd.OutOrStdout(), out)
	return nil
}

func printAdd(w io.Writer, out addOutput) {
	if out.Existing {
		fmt.Fprintf(w, "Already in library: %q (ID: %d, %s)\n", out.Item.Title, out.Item.ID, out.Item.Status)
		return
	}
	fmt.Fprintf(w, "Added %q by %s as wanted (ID: %d)\n", out.Item.Title, out.Item.Author, out.Item.ID)
	fmt.Fprintf(w, "  Matched %q with confidence %.2f (%s)\n", out.Matched, out.Confidence, out.MatchType)
}
