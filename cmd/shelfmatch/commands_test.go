package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig writes a config whose database lives in a temp dir.
// extra is appended verbatim.
func writeTestConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf("[log]\nlevel = \"error\"\n\n[database]\npath = %q\n\n%s", filepath.Join(dir, "shelfmatch.db"), extra)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		jsonOutput = false
		configPath = ""
		logLevel = ""
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMatchCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "match", "Dune", "dune",
		"--author", "Frank Herbert",
		"--target-author", "Herbert, Frank",
		"--json")
	require.NoError(t, err)

	var got matchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.IsMatch)
	assert.Equal(t, "title-author", got.Type)
	assert.InDelta(t, 0.98, got.Confidence, 1e-9)
	assert.InDelta(t, 1.0, got.TitleScore, 1e-9)
	assert.InDelta(t, 0.95, got.AuthorScore, 1e-9)
	assert.False(t, got.ISBNMatch)
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	printMatch(&buf, matchOutput{IsMatch: false, Type: "none", Confidence: 0.31, TitleScore: 0.31})
	assert.Contains(t, buf.String(), "Match:        no (none)")
	assert.Contains(t, buf.String(), "Confidence:   0.31")
}

func TestLibraryCommands(t *testing.T) {
	cfg := writeTestConfig(t, "")

	out, err := executeCommand(t, "--config", cfg, "--json", "library", "add",
		"--title", "Dune",
		"--author", "Frank Herbert",
		"--isbn", "978-0-441-17271-9",
		"--tag", "Science Fiction")
	require.NoError(t, err)

	var added itemOutput
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.NotZero(t, added.ID)
	assert.Equal(t, "book", added.Kind)
	assert.Equal(t, "owned", added.Status)
	assert.Equal(t, "9780441172719", added.ISBN13)

	out, err = executeCommand(t, "--config", cfg, "--json", "library", "list")
	require.NoError(t, err)

	var list listOutput
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Dune", list.Items[0].Title)
	assert.Equal(t, []string{"Science Fiction"}, list.Items[0].Tags)

	out, err = executeCommand(t, "--config", cfg, "--json", "library", "profile")
	require.NoError(t, err)

	var profile profileOutput
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, 1, profile.Books)
	assert.Empty(t, profile.FavoriteAuthors, "one book is not enough for a favorite")
	assert.Equal(t, []string{"Science Fiction"}, profile.TopGenres)

	out, err = executeCommand(t, "--config", cfg, "library", "delete", fmt.Sprint(added.ID))
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted item")
}

func newVolumesServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAddCommand_AddsWanted(t *testing.T) {
	srv := newVolumesServer(t, `{
		"kind": "books#volumes",
		"totalItems": 2,
		"items": [
			{"id": "cook", "volumeInfo": {"title": "The Dune Cookbook", "authors": ["Someone Else"]}},
			{"id": "dune1", "volumeInfo": {
				"title": "Dune",
				"authors": ["Frank Herbert"],
				"categories": ["Fiction"],
				"industryIdentifiers": [{"type": "ISBN_13", "identifier": "9780441172719"}]
			}}
		]
	}`)
	cfg := writeTestConfig(t, fmt.Sprintf("[catalog.google_books]\nurl = %q\nrequests_per_second = 100\n", srv.URL))

	out, err := executeCommand(t, "--config", cfg, "--json", "add", "Dune", "--author", "Frank Herbert")
	require.NoError(t, err)

	var got addOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Existing)
	assert.Equal(t, "Dune", got.Item.Title)
	assert.Equal(t, "wanted", got.Item.Status)
	assert.Equal(t, "google_books", got.Item.Source)
	assert.Equal(t, "dune1", got.Item.SourceID)
	assert.Equal(t, "title-author", got.MatchType)
}

func TestAddCommand_NoSuitableMatch(t *testing.T) {
	srv := newVolumesServer(t, `{"kind": "books#volumes", "totalItems": 1, "items": [
		{"id": "x", "volumeInfo": {"title": "A Completely Different Book", "authors": ["Nobody"]}}
	]}`)
	cfg := writeTestConfig(t, fmt.Sprintf("[catalog.google_books]\nurl = %q\nrequests_per_second = 100\n", srv.URL))

	out, err := executeCommand(t, "--config", cfg, "add", "Neuromancer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suitable match")
	assert.True(t, strings.Contains(out, "try searching manually"))
}

func TestAddCommand_RequiresGoogleBooks(t *testing.T) {
	cfg := writeTestConfig(t, "")

	_, err := executeCommand(t, "--config", cfg, "add", "Dune")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoGoogleBooks)
}

func TestConfigTestCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[recommend]\nlimit = -1\n")

	out, err := executeCommand(t, "config", "test", cfg)
	require.Error(t, err)
	assert.Contains(t, out, "recommend.limit")

	good := writeTestConfig(t, "")
	out, err = executeCommand(t, "config", "test", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid!")
	assert.Contains(t, out, "Catalogs:   none")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	out, err := executeCommand(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.FileExists(t, path)

	out, err = executeCommand(t, "config", "test", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Configuration valid!")

	_, err = executeCommand(t, "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
