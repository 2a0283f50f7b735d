// Package visits is privacy-conscious page view tracking: client addresses
// are hashed with a per-process salt before they reach the database.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PathCount is a path and how often it was viewed.
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats is the admin summary.
type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TopPaths         []PathCount `json:"top_paths"`
	RecentVisitors   []Visit     `json:"recent_visitors"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp);`

// Store writes and summarises visits in sqlite.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("visits: opening %s: %w", path, err)
	}
	// sqlite allows one writer; a single connection also keeps :memory:
	// databases from splitting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("visits: creating schema: %w", err)
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		db.Close()
		return nil, fmt.Errorf("visits: generating salt: %w", err)
	}
	return &Store{db: db, salt: hex.EncodeToString(salt), now: time.Now}, nil
}

// OpenMemory opens a throwaway in-memory store.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// HashIP is consistent for the lifetime of the store.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores one view of path.
func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC())
	if err != nil {
		return fmt.Errorf("visits: recording: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than maxAge and returns how many went.
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM visitors WHERE timestamp < ?`, s.now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("visits: cleanup: %w", err)
	}
	return res.RowsAffected()
}

// Stats summarises the table.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{TopPaths: []PathCount{}, RecentVisitors: []Visit{}}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("visits: stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views FROM visitors
		GROUP BY path ORDER BY views DESC, path LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("visits: top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, fmt.Errorf("visits: top paths: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

// Recent returns the latest limit visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("visits: recent: %w", err)
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("visits: recent: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
