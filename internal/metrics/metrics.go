// Package metrics records privacy-conscious visitor analytics in sqlite.
// IP addresses are salted and hashed before storage; the salt is regenerated
// per process, so hashes are only comparable within one run.
package metrics

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

type Visitor struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path string `json:"path"`
	Hits int64  `json:"hits"`
}

type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TopPaths         []PathStat `json:"top_paths"`
	RecentVisitors   []Visitor  `json:"recent_visitors"`
}

// Tracker owns the analytics database.
type Tracker struct {
	db   *sql.DB
	salt string
}

// Open opens (or creates) the analytics database and starts a background
// cleanup of records older than twelve months.
func Open(path string) (*Tracker, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open metrics db: %w", err)
	}

	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createVisitorTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visitors table: %w", err)
	}

	t := &Tracker{db: db, salt: newSalt()}
	go t.cleanupOldVisitorData()
	return t, nil
}

func (t *Tracker) Close() error {
	return t.db.Close()
}

func newSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// HashIP hashes an IP with the per-process salt, truncated for storage
// efficiency. Consistent per IP within a run.
func (t *Tracker) HashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + t.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Record stores one page hit.
func (t *Tracker) Record(ip, userAgent, path string) {
	_, err := t.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, t.HashIP(ip), userAgent, path, time.Now())
	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

func (t *Tracker) cleanupOldVisitorData() {
	result, err := t.db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", rowsDeleted)
	}
}

// Stats aggregates visitor counts, top paths, and the most recent hits.
func (t *Tracker) Stats() (*Stats, error) {
	stats := &Stats{}

	err := t.db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors)
	if err != nil {
		return nil, err
	}

	err = t.db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors)
	if err != nil {
		return nil, err
	}

	err = t.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday)
	if err != nil {
		return nil, err
	}

	err = t.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek)
	if err != nil {
		return nil, err
	}

	rows, err := t.db.Query(`
		SELECT path, COUNT(*) as hits
		FROM visitors
		GROUP BY path
		ORDER BY hits DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var stat PathStat
		if err := rows.Scan(&stat.Path, &stat.Hits); err != nil {
			continue
		}
		stats.TopPaths = append(stats.TopPaths, stat)
	}

	rows, err = t.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var visitor Visitor
		if err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, visitor)
	}

	return stats, nil
}
