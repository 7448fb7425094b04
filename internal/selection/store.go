// Package selection persists the librarian's curated movie list.
//
// The store replaces the ambient UI session state of a typical web app
// with an explicit SQLite-backed list, so the selection survives between
// CLI invocations. Records are keyed by (provider, movie id); insertion
// order is preserved for listing and export.
package selection

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/cinedex/cinedex/internal/catalog"
)

// Store manages the SQLite database holding the selection.
type Store struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

// Open opens (or creates) the selection database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selection database: %w", err)
	}

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to connect to selection database: %w", err), closeErr)
	}

	if _, err := db.Exec(selectionSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to create selection table: %w", err), closeErr)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add inserts a record into the selection. Adding a movie that is already
// selected is a no-op; the return value reports whether anything changed.
func (s *Store) Add(record catalog.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO selection
		 (provider, movie_id, title, year, summary, poster_url, rating, director)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(record.Provider), record.ID, record.Title, record.Year,
		record.Summary, record.PosterURL, record.Rating, record.Director,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add %s: %w", record.QualifiedID(), err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Remove deletes one movie from the selection by its qualified identity.
func (s *Store) Remove(provider catalog.Provider, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(
		"DELETE FROM selection WHERE provider = ? AND movie_id = ?",
		string(provider), id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove %s:%s: %w", provider, id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// List returns the selection in the order movies were added.
func (s *Store) List() ([]catalog.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT provider, movie_id, title, year, summary, poster_url, rating, director
		 FROM selection ORDER BY added_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list selection: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []catalog.Record
	for rows.Next() {
		var record catalog.Record
		var provider string
		if err := rows.Scan(&provider, &record.ID, &record.Title, &record.Year,
			&record.Summary, &record.PosterURL, &record.Rating, &record.Director); err != nil {
			return nil, fmt.Errorf("failed to scan selection row: %w", err)
		}
		record.Provider = catalog.Provider(provider)
		records = append(records, record)
	}

	return records, rows.Err()
}

// Clear empties the selection and returns how many movies were removed.
func (s *Store) Clear() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec("DELETE FROM selection")
	if err != nil {
		return 0, fmt.Errorf("failed to clear selection: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the number of selected movies.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM selection").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count selection: %w", err)
	}
	return count, nil
}
