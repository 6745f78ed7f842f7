// Package storage archives computed charts and match results in a local
// SQLite database. The archive is strictly optional: the computation core
// never reads from it, every chart remains a pure recomputation of its
// inputs. Use ":memory:" as the path for an ephemeral database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/kushalp/jyotish/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS charts (
    id         TEXT PRIMARY KEY,
    birth_date TEXT NOT NULL,
    birth_time TEXT NOT NULL,
    utc_offset REAL NOT NULL,
    latitude   REAL NOT NULL,
    longitude  REAL NOT NULL,
    chart_json TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS matches (
    id          TEXT PRIMARY KEY,
    chart_a     TEXT NOT NULL REFERENCES charts(id),
    chart_b     TEXT NOT NULL REFERENCES charts(id),
    total       INTEGER NOT NULL,
    result_json TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Storage is the chart archive. Safe for concurrent use; SQLite's single
// writer is serialized through one pooled connection.
type Storage struct {
	db *sql.DB
}

// ChartSummary is one row of the chart listing.
type ChartSummary struct {
	ID        string    `json:"id"`
	BirthDate string    `json:"birth_date"`
	BirthTime string    `json:"birth_time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchSummary is one row of the match listing.
type MatchSummary struct {
	ID        string    `json:"id"`
	ChartA    string    `json:"chart_a"`
	ChartB    string    `json:"chart_b"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// New opens (or creates) the database at dbPath, enables WAL mode and a busy
// timeout, and creates the schema tables if they do not exist.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}

	// One connection: SQLite supports a single writer, and a single pooled
	// connection avoids SQLITE_BUSY contention between connections that
	// each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close releases the database handle.
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveChart archives a chart under its ID. The chart must carry an ID and
// pass validation; saving the same ID twice replaces the record.
func (s *Storage) SaveChart(ctx context.Context, chart *models.NatalChart) error {
	if chart.ID == "" {
		return errors.New("storage: chart ID must not be empty")
	}
	if err := chart.Validate(); err != nil {
		return fmt.Errorf("storage: invalid chart: %w", err)
	}

	payload, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("storage: marshal chart: %w", err)
	}

	const q = `
		INSERT INTO charts (id, birth_date, birth_time, utc_offset, latitude, longitude, chart_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET chart_json = excluded.chart_json`
	birthDate := fmt.Sprintf("%04d-%02d-%02d", chart.Instant.Year, chart.Instant.Month, chart.Instant.Day)
	birthTime := fmt.Sprintf("%02d:%02d", chart.Instant.Hour, chart.Instant.Minute)
	_, err = s.db.ExecContext(ctx, q,
		chart.ID, birthDate, birthTime, chart.Instant.UTCOffset,
		chart.Latitude, chart.Longitude, string(payload))
	if err != nil {
		return fmt.Errorf("storage: save chart %s: %w", chart.ID, err)
	}
	return nil
}

// GetChart retrieves an archived chart by ID.
func (s *Storage) GetChart(ctx context.Context, id string) (*models.NatalChart, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT chart_json FROM charts WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: chart %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get chart %s: %w", id, err)
	}

	var chart models.NatalChart
	if err := json.Unmarshal([]byte(payload), &chart); err != nil {
		return nil, fmt.Errorf("storage: unmarshal chart %s: %w", id, err)
	}
	return &chart, nil
}

// ListCharts returns summaries of all archived charts, newest first.
func (s *Storage) ListCharts(ctx context.Context) ([]ChartSummary, error) {
	const q = `
		SELECT id, birth_date, birth_time, latitude, longitude, created_at
		FROM charts ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("storage: list charts: %w", err)
	}
	defer rows.Close()

	var out []ChartSummary
	for rows.Next() {
		var c ChartSummary
		if err := rows.Scan(&c.ID, &c.BirthDate, &c.BirthTime, &c.Latitude, &c.Longitude, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan chart row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SaveMatch archives one compatibility result between two archived charts.
func (s *Storage) SaveMatch(ctx context.Context, id, chartA, chartB string, result models.CompatibilityResult) error {
	if id == "" {
		return errors.New("storage: match ID must not be empty")
	}
	if err := result.Validate(); err != nil {
		return fmt.Errorf("storage: invalid match result: %w", err)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("storage: marshal match result: %w", err)
	}

	const q = `
		INSERT INTO matches (id, chart_a, chart_b, total, result_json)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET result_json = excluded.result_json, total = excluded.total`
	if _, err := s.db.ExecContext(ctx, q, id, chartA, chartB, result.Total, string(payload)); err != nil {
		return fmt.Errorf("storage: save match %s: %w", id, err)
	}
	return nil
}

// ListMatches returns summaries of all archived matches, newest first.
func (s *Storage) ListMatches(ctx context.Context) ([]MatchSummary, error) {
	const q = `
		SELECT id, chart_a, chart_b, total, created_at
		FROM matches ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("storage: list matches: %w", err)
	}
	defer rows.Close()

	var out []MatchSummary
	for rows.Next() {
		var m MatchSummary
		if err := rows.Scan(&m.ID, &m.ChartA, &m.ChartB, &m.Total, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan match row: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
