package journal

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/voidlight/starfolio/status"
	"github.com/voidlight/starfolio/travel"
)

// Entry is one recorded flight.
type Entry struct {
	AttemptID string
	SectionID string
	Result    string
	Phase     string
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the flight length.
func (e Entry) Duration() time.Duration {
	return e.EndedAt.Sub(e.StartedAt)
}

// Store is the SQLite flight journal. Writes go through a buffered
// channel to a single writer goroutine, so Record never blocks the
// main loop; reads run on the caller's goroutine.
type Store struct {
	db       *sql.DB
	registry *status.Registry

	ch   chan travel.Outcome
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

// Open creates or opens the journal database at path and starts the
// writer goroutine.
func Open(path string, registry *status.Registry) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty journal path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal pragmas: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal schema: %w", err)
	}

	s := &Store{
		db:       db,
		registry: registry,
		// Flights are rare; a small buffer still decouples the loop
		// from disk latency.
		ch: make(chan travel.Outcome, 64),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL suits the append-only flight log; NORMAL sync is plenty for
	// a journal that is cosmetic on loss.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			attempt_id TEXT NOT NULL,
			section_id TEXT NOT NULL,
			result TEXT NOT NULL,
			phase TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_flights_section ON flights(section_id);`,
		`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1');`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record queues a flight outcome. Never blocks: a full buffer or a
// closed store drops the entry and counts the loss.
func (s *Store) Record(o travel.Outcome) {
	if s == nil || s.closed.Load() {
		return
	}
	select {
	case s.ch <- o:
	default:
		s.countError()
		log.Printf("Journal buffer full, dropped %s flight to %q", o.Result, o.SectionID)
	}
}

// Close drains pending writes and closes the database. Safe to call
// more than once.
func (s *Store) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// Recent returns up to limit flights, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT attempt_id, section_id, result, phase, started_at, ended_at
		 FROM flights ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var started, ended string
		if err := rows.Scan(&e.AttemptID, &e.SectionID, &e.Result, &e.Phase,
			&started, &ended); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		e.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		e.EndedAt, _ = time.Parse(time.RFC3339Nano, ended)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByResult returns flight totals keyed by result.
func (s *Store) CountByResult() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT result, COUNT(*) FROM flights GROUP BY result`)
	if err != nil {
		return nil, fmt.Errorf("count flights: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var result string
		var n int
		if err := rows.Scan(&result, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[result] = n
	}
	return counts, rows.Err()
}

func (s *Store) loop() {
	insert, err := s.db.Prepare(
		`INSERT INTO flights(attempt_id, section_id, result, phase, started_at, ended_at)
		 VALUES(?,?,?,?,?,?)`)
	if err != nil {
		log.Printf("Journal writer disabled: %v", err)
		for range s.ch {
			s.countError()
		}
		return
	}
	defer insert.Close()

	for o := range s.ch {
		_, err := insert.Exec(
			o.AttemptID.String(),
			o.SectionID,
			o.Result,
			o.Phase,
			o.StartedAt.UTC().Format(time.RFC3339Nano),
			o.EndedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			s.countError()
			log.Printf("Journal write failed: %v", err)
			continue
		}
		if s.registry != nil {
			s.registry.Ints.Get(status.KeyJournalEntries).Add(1)
		}
	}
}

func (s *Store) countError() {
	if s.registry != nil {
		s.registry.Ints.Get(status.KeyJournalWriteErrors).Add(1)
	}
}
