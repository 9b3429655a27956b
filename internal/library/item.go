package library

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/shelfmatch/pkg/bibmatch"
)

const itemColumns = "id, kind, title, author, isbn10, isbn13, series, series_index, tags, status, source, source_id, added_at, updated_at"

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(r rowScanner) (*Item, error) {
	it := &Item{}
	var seriesIndex sql.NullFloat64
	var tags string
	if err := r.Scan(&it.ID, &it.Kind, &it.Title, &it.Author, &it.ISBN10, &it.ISBN13,
		&it.Series, &seriesIndex, &tags, &it.Status, &it.Source, &it.SourceID, &it.AddedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if seriesIndex.Valid {
		v := seriesIndex.Float64
		it.SeriesIndex = &v
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &it.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	return it, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

// normalizeItem fills defaults and stores ISBNs without separators.
func normalizeItem(it *Item) {
	if it.Kind == "" {
		it.Kind = KindBook
	}
	if it.Status == "" {
		it.Status = StatusOwned
	}
	it.ISBN10 = bibmatch.NormalizeISBN(it.ISBN10)
	it.ISBN13 = bibmatch.NormalizeISBN(it.ISBN13)
}

func addItem(q querier, it *Item) error {
	normalizeItem(it)
	tags, err := encodeTags(it.Tags)
	if err != nil {
		return err
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO items (kind, title, author, isbn10, isbn13, series, series_index, tags, status, source, source_id, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Kind, it.Title, it.Author, it.ISBN10, it.ISBN13, it.Series, it.SeriesIndex, tags, it.Status, it.Source, it.SourceID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	it.ID = id
	it.AddedAt = now
	it.UpdatedAt = now
	return nil
}

// AddItem inserts a new item into the library.
// Sets ID, AddedAt, and UpdatedAt on the struct.
func (s *Store) AddItem(it *Item) error { return addItem(s.db, it) }

// AddItem inserts a new item within a transaction.
func (t *Tx) AddItem(it *Item) error { return addItem(t.tx, it) }

func getItem(q querier, id int64) (*Item, error) {
	it, err := scanItem(q.QueryRow("SELECT "+itemColumns+" FROM items WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, mapSQLiteError(err))
	}
	return it, nil
}

// GetItem retrieves an item by ID.
func (s *Store) GetItem(id int64) (*Item, error) { return getItem(s.db, id) }

// GetItem retrieves an item by ID within a transaction.
func (t *Tx) GetItem(id int64) (*Item, error) { return getItem(t.tx, id) }

func listItems(q querier, f ItemFilter) ([]*Item, int, error) {
	var conditions []string
	var args []any

	if f.Kind != nil {
		conditions = append(conditions, "kind = ?")
		args = append(args, *f.Kind)
	}
	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}
	if f.Author != nil {
		conditions = append(conditions, "LOWER(author) LIKE ?")
		args = append(args, "%"+strings.ToLower(*f.Author)+"%")
	}
	if f.Series != nil {
		conditions = append(conditions, "series = ?")
		args = append(args, *f.Series)
	}
	if f.MissingSeries {
		conditions = append(conditions, "series = ''")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM items "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := "SELECT " + itemColumns + " FROM items " + whereClause + " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		results = append(results, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}

	return results, total, nil
}

// ListItems returns items matching the filter with pagination.
// Returns (results, totalCount, error).
func (s *Store) ListItems(f ItemFilter) ([]*Item, int, error) { return listItems(s.db, f) }

// ListItems returns items matching the filter within a transaction.
func (t *Tx) ListItems(f ItemFilter) ([]*Item, int, error) { return listItems(t.tx, f) }

func updateItem(q querier, it *Item) error {
	normalizeItem(it)
	tags, err := encodeTags(it.Tags)
	if err != nil {
		return err
	}
	now := time.Now()
	result, err := q.Exec(`
		UPDATE items SET kind = ?, title = ?, author = ?, isbn10 = ?, isbn13 = ?, series = ?, series_index = ?,
			tags = ?, status = ?, source = ?, source_id = ?, updated_at = ?
		WHERE id = ?`,
		it.Kind, it.Title, it.Author, it.ISBN10, it.ISBN13, it.Series, it.SeriesIndex,
		tags, it.Status, it.Source, it.SourceID, now, it.ID,
	)
	if err != nil {
		return fmt.Errorf("update item %d: %w", it.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update item %d: %w", it.ID, ErrNotFound)
	}
	it.UpdatedAt = now
	return nil
}

// UpdateItem updates an existing item.
// Updates UpdatedAt on the struct.
func (s *Store) UpdateItem(it *Item) error { return updateItem(s.db, it) }

// UpdateItem updates an existing item within a transaction.
func (t *Tx) UpdateItem(it *Item) error { return updateItem(t.tx, it) }

func setSeries(q querier, id int64, series string, index *float64) error {
	result, err := q.Exec(`UPDATE items SET series = ?, series_index = ?, updated_at = ? WHERE id = ?`,
		series, index, time.Now(), id)
	if err != nil {
		return fmt.Errorf("set series for item %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("set series for item %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetSeries records series membership for an item.
func (s *Store) SetSeries(id int64, series string, index *float64) error {
	return setSeries(s.db, id, series, index)
}

// SetSeries records series membership within a transaction.
func (t *Tx) SetSeries(id int64, series string, index *float64) error {
	return setSeries(t.tx, id, series, index)
}

func deleteItem(q querier, id int64) error {
	_, err := q.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

// DeleteItem removes an item. Idempotent.
func (s *Store) DeleteItem(id int64) error { return deleteItem(s.db, id) }

// DeleteItem removes an item within a transaction.
func (t *Tx) DeleteItem(id int64) error { return deleteItem(t.tx, id) }

func findByISBN(q querier, isbn string) (*Item, error) {
	isbn = bibmatch.NormalizeISBN(isbn)
	if isbn == "" {
		return nil, nil
	}
	it, err := scanItem(q.QueryRow(
		"SELECT "+itemColumns+" FROM items WHERE isbn13 = ? OR isbn10 = ? ORDER BY id LIMIT 1", isbn, isbn))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item by isbn %s: %w", isbn, mapSQLiteError(err))
	}
	return it, nil
}

// FindByISBN returns the first item carrying the ISBN as its ISBN-10 or
// ISBN-13. Returns nil, nil if none exists.
func (s *Store) FindByISBN(isbn string) (*Item, error) { return findByISBN(s.db, isbn) }

// FindByISBN looks up an item by ISBN within a transaction.
func (t *Tx) FindByISBN(isbn string) (*Item, error) { return findByISBN(t.tx, isbn) }

func findBySource(q querier, source, sourceID string) (*Item, error) {
	it, err := scanItem(q.QueryRow(
		"SELECT "+itemColumns+" FROM items WHERE source = ? AND source_id = ?", source, sourceID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item %s/%s: %w", source, sourceID, mapSQLiteError(err))
	}
	return it, nil
}

// FindBySource returns the item added from the given catalog entry.
// Returns nil, nil if none exists.
func (s *Store) FindBySource(source, sourceID string) (*Item, error) {
	return findBySource(s.db, source, sourceID)
}

// FindBySource looks up a catalog entry within a transaction.
func (t *Tx) FindBySource(source, sourceID string) (*Item, error) {
	return findBySource(t.tx, source, sourceID)
}

// findExisting returns the stored item that it duplicates: same catalog
// entry first, then same ISBN-13, then same ISBN-10.
func findExisting(q querier, it *Item) (*Item, error) {
	if it.Source != "" && it.SourceID != "" {
		found, err := findBySource(q, it.Source, it.SourceID)
		if err != nil || found != nil {
			return found, err
		}
	}
	for _, isbn := range []string{it.ISBN13, it.ISBN10} {
		found, err := findByISBN(q, isbn)
		if err != nil || found != nil {
			return found, err
		}
	}
	return nil, nil
}

// AddIfAbsent adds it unless the library already holds the same book. When
// it does, the stored item is returned and nothing is written. The check
// and the insert share one transaction.
func (s *Store) AddIfAbsent(it *Item) (*Item, error) {
	var existing *Item
	err := s.WithTx(func(tx *Tx) error {
		var err error
		existing, err = findExisting(tx.tx, it)
		if err != nil || existing != nil {
			return err
		}
		return addItem(tx.tx, it)
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}
