package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfmatch/internal/library"
	"github.com/vmunix/shelfmatch/pkg/bibmatch"
	"github.com/vmunix/shelfmatch/pkg/recommend"
)

// itemOutput is the JSON form of a library item.
type itemOutput struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	ISBN10      string    `json:"isbn10,omitempty"`
	ISBN13      string    `json:"isbn13,omitempty"`
	Series      string    `json:"series,omitempty"`
	SeriesIndex *float64  `json:"series_index,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Status      string    `json:"status"`
	Source      string    `json:"source,omitempty"`
	SourceID    string    `json:"source_id,omitempty"`
	AddedAt     time.Time `json:"added_at"`
}

type listOutput struct {
	Items  []itemOutput `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type profileOutput struct {
	Books           int      `json:"books"`
	Audiobooks      int      `json:"audiobooks"`
	FavoriteAuthors []string `json:"favorite_authors"`
	TopGenres       []string `json:"top_genres"`
	TopTags         []string `json:"top_tags"`
	PreferredSeries []string `json:"preferred_series"`
}

func toItemOutput(it *library.Item) itemOutput {
	return itemOutput{
		ID:          it.ID,
		Kind:        string(it.Kind),
		Title:       it.Title,
		Author:      it.Author,
		ISBN10:      it.ISBN10,
		ISBN13:      it.ISBN13,
		Series:      it.Series,
		SeriesIndex: it.SeriesIndex,
		Tags:        it.Tags,
		Status:      string(it.Status),
		Source:      it.Source,
		SourceID:    it.SourceID,
		AddedAt:     it.AddedAt,
	}
}

func init() {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local library",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List library items",
		RunE:  runLibraryList,
	}
	listCmd.Flags().StringP("kind", "k", "", "Filter by kind (book, audiobook)")
	listCmd.Flags().StringP("status", "s", "", "Filter by status (owned, wanted)")
	listCmd.Flags().StringP("author", "a", "", "Filter by author (substring)")
	listCmd.Flags().String("series", "", "Filter by series")
	listCmd.Flags().IntP("limit", "l", 50, "Maximum number of items to return")
	listCmd.Flags().Int("offset", 0, "Number of items to skip")

	itemAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the library",
		Long:  "Adds a book or audiobook you own (or want) without consulting any catalog.",
		RunE:  runLibraryAdd,
	}
	itemAddCmd.Flags().String("title", "", "Title (required)")
	itemAddCmd.Flags().String("author", "", "Author(s), separated by , ; or &")
	itemAddCmd.Flags().String("isbn", "", "ISBN-10 or ISBN-13")
	itemAddCmd.Flags().String("series", "", "Series name")
	itemAddCmd.Flags().Float64("series-index", 0, "Position in the series")
	itemAddCmd.Flags().StringArray("tag", nil, "Tag or genre (repeatable)")
	itemAddCmd.Flags().Bool("audiobook", false, "Item is an audiobook")
	itemAddCmd.Flags().Bool("wanted", false, "Mark as wanted instead of owned")
	_ = itemAddCmd.MarkFlagRequired("title")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item from the library",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryDelete,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the reading profile inferred from owned items",
		RunE:  runLibraryProfile,
	}

	libraryCmd.AddCommand(listCmd)
	libraryCmd.AddCommand(itemAddCmd)
	libraryCmd.AddCommand(deleteCmd)
	libraryCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	status, _ := cmd.Flags().GetString("status")
	author, _ := cmd.Flags().GetString("author")
	series, _ := cmd.Flags().GetString("series")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	f := library.ItemFilter{Limit: limit, Offset: offset}
	if kind != "" {
		k, err := parseKind(kind)
		if err != nil {
			return err
		}
		f.Kind = &k
	}
	if status != "" {
		s, err := parseStatus(status)
		if err != nil {
			return err
		}
		f.Status = &s
	}
	if author != "" {
		f.Author = &author
	}
	if series != "" {
		f.Series = &series
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	items, total, err := a.store.ListItems(f)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	if jsonOutput {
		out := listOutput{Items: make([]itemOutput, 0, len(items)), Total: total, Limit: limit, Offset: offset}
		for _, it := range items {
			out.Items = append(out.Items, toItemOutput(it))
		}
		return printJSON(cmd.OutOrStdout(), out)
	}

	printLibraryList(cmd.OutOrStdout(), items, total)
	return nil
}

func printLibraryList(w io.Writer, items []*library.Item, total int) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items in library")
		return
	}

	fmt.Fprintf(w, "Library (%d of %d):\n\n", len(items), total)
	fmt.Fprintf(w, "  %-4s %-9s %-40s %-24s %-6s %s\n", "ID", "KIND", "TITLE", "AUTHOR", "STATUS", "SERIES")
	fmt.Fprintf(w, "  %s\n", separator(100))
	for _, it := range items {
		fmt.Fprintf(w, "  %-4d %-9s %-40s %-24s %-6s %s\n",
			it.ID, it.Kind, truncate(it.Title, 40), truncate(it.Author, 24), it.Status,
			formatSeries(it.Series, it.SeriesIndex))
	}
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	isbn, _ := cmd.Flags().GetString("isbn")
	series, _ := cmd.Flags().GetString("series")
	tags, _ := cmd.Flags().GetStringArray("tag")
	audiobook, _ := cmd.Flags().GetBool("audiobook")
	wanted, _ := cmd.Flags().GetBool("wanted")

	it := &library.Item{
		Kind:   library.KindBook,
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Series: series,
		Tags:   tags,
		Status: library.StatusOwned,
		Source: "manual",
	}
	if audiobook {
		it.Kind = library.KindAudiobook
	}
	if wanted {
		it.Status = library.StatusWanted
	}
	if cmd.Flags().Changed("series-index") {
		idx, _ := cmd.Flags().GetFloat64("series-index")
		it.SeriesIndex = &idx
	}
	setISBN(it, isbn)

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.AddItem(it); err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), toItemOutput(it))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q (ID: %d)\n", it.Kind, it.Title, it.ID)
	return nil
}

// setISBN files isbn under ISBN10 or ISBN13 by its normalized length.
func setISBN(it *library.Item, isbn string) {
	isbn = bibmatch.NormalizeISBN(isbn)
	switch len(isbn) {
	case 0:
	case 10:
		it.ISBN10 = isbn
	default:
		it.ISBN13 = isbn
	}
}

func runLibraryDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID: %s", args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.DeleteItem(id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
	return nil
}

func runLibraryProfile(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	items, _, err := a.store.ListItems(library.ItemFilter{})
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	books, audiobooks := library.SplitOwned(items)
	p := recommend.AnalyzeLibrary(books, audiobooks)

	out := profileOutput{
		Books:           len(books),
		Audiobooks:      len(audiobooks),
		FavoriteAuthors: p.FavoriteAuthors,
		TopGenres:       p.TopGenres,
		TopTags:         p.TopTags,
		PreferredSeries: p.PreferredSeries,
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), out)
	}
	printProfile(cmd.OutOrStdout(), out)
	return nil
}

func printProfile(w io.Writer, p profileOutput) {
	fmt.Fprintf(w, "Owned: %d books, %d audiobooks\n\n", p.Books, p.Audiobooks)
	fmt.Fprintf(w, "  Favorite authors: %s\n", joinOrNone(p.FavoriteAuthors))
	fmt.Fprintf(w, "  Top genres:       %s\n", joinOrNone(p.TopGenres))
	fmt.Fprintf(w, "  Preferred series: %s\n", joinOrNone(p.PreferredSeries))
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return "(none)"
	}
	return strings.Join(s, ", ")
}

func parseKind(s string) (library.Kind, error) {
	switch k := library.Kind(strings.ToLower(s)); k {
	case library.KindBook, library.KindAudiobook:
		return k, nil
	}
	return "", fmt.Errorf("invalid kind %q (want book or audiobook)", s)
}

func parseStatus(s string) (library.Status, error) {
	switch st := library.Status(strings.ToLower(s)); st {
	case library.StatusOwned, library.StatusWanted:
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q (want owned or wanted)", s)
}
