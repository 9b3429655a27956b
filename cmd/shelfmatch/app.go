package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vmunix/shelfmatch/internal/config"
	"github.com/vmunix/shelfmatch/internal/library"
	"github.com/vmunix/shelfmatch/internal/metadata"
	"github.com/vmunix/shelfmatch/internal/migrations"
	"github.com/vmunix/shelfmatch/pkg/googlebooks"
	"github.com/vmunix/shelfmatch/pkg/openlibrary"
)

var errNoGoogleBooks = errors.New("google books catalog is not configured ([catalog.google_books])")

// app holds everything a command needs once the config is loaded.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	db    *sql.DB
	store *library.Store
	cache *metadata.Cache
	books *metadata.BookService
}

// loadConfig reads --config, else the discovered config file, else the
// built-in defaults.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return config.Default(), nil
		}
		path = discovered
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger := newLogger(os.Stderr, level)

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	cache := metadata.NewCache(db)

	var volumes metadata.VolumeSearcher
	ttl := config.DefaultCacheTTL
	if gb := cfg.Catalog.GoogleBooks; gb != nil {
		volumes = googlebooks.New(gb.APIKey,
			googlebooks.WithBaseURL(gb.URL),
			googlebooks.WithRateLimit(gb.RequestsPerSecond),
			googlebooks.WithCacheTTL(gb.CacheTTL),
			googlebooks.WithLogger(logger),
		)
		ttl = gb.CacheTTL
	}

	var works metadata.WorkSearcher
	if ol := cfg.Catalog.OpenLibrary; ol != nil {
		works = openlibrary.New(
			openlibrary.WithBaseURL(ol.URL),
			openlibrary.WithLogger(logger),
		)
	}

	return &app{
		cfg:   cfg,
		log:   logger,
		db:    db,
		store: library.NewStore(db),
		cache: cache,
		books: metadata.NewBookService(volumes, works, cache, ttl, logger),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// requireGoogleBooks fails commands that search for volumes when the
// catalog is disabled.
func (a *app) requireGoogleBooks() error {
	if a.cfg.Catalog.GoogleBooks == nil {
		return errNoGoogleBooks
	}
	return nil
}

// openDB opens the SQLite database, creating its directory and schema.
func openDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
