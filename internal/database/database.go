// Package database provides SQLite-backed key/value storage areas for the application
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Area names a storage namespace. Sync holds the settings shared across
// browser instances; Local holds per-instance transient records.
type Area string

const (
	AreaSync  Area = "sync"
	AreaLocal Area = "local"
)

// Change describes a write to one key
type Change struct {
	Area    Area
	Key     string
	Removed bool
}

// DB wraps the SQLite database connection
type DB struct {
	conn   *sql.DB
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[chan Change]struct{}
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Add connection parameters to help with concurrent access
	connString := dbPath
	if dbPath != ":memory:" {
		connString = dbPath + "?_busy_timeout=30000&_journal_mode=WAL&_synchronous=NORMAL"
	}

	conn, err := sql.Open("sqlite", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well, and :memory: databases
	// are per-connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{
		conn:        conn,
		logger:      slog.Default(),
		subscribers: make(map[chan Change]struct{}),
	}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection and all subscriptions
func (db *DB) Close() error {
	db.mu.Lock()
	for ch := range db.subscribers {
		close(ch)
		delete(db.subscribers, ch)
	}
	db.mu.Unlock()
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS storage (
		area TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (area, key)
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Get returns the value stored under key. The boolean is false when the key
// does not exist.
func (db *DB) Get(area Area, key string) (string, bool, error) {
	var value string
	err := db.conn.QueryRow(`SELECT value FROM storage WHERE area = ? AND key = ?`, area, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s/%s: %w", area, key, err)
	}
	return value, true, nil
}

// Set upserts key and notifies subscribers
func (db *DB) Set(area Area, key, value string) error {
	query := `
	INSERT INTO storage (area, key, value, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(area, key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`
	if _, err := db.conn.Exec(query, area, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", area, key, err)
	}

	db.publish(Change{Area: area, Key: key})
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (db *DB) Remove(area Area, key string) error {
	result, err := db.conn.Exec(`DELETE FROM storage WHERE area = ? AND key = ?`, area, key)
	if err != nil {
		return fmt.Errorf("failed to remove %s/%s: %w", area, key, err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		db.publish(Change{Area: area, Key: key, Removed: true})
	}
	return nil
}

// Keys lists the keys of an area
func (db *DB) Keys(area Area) ([]string, error) {
	rows, err := db.conn.Query(`SELECT key FROM storage WHERE area = ? ORDER BY key`, area)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", area, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Subscribe returns a channel receiving every change. The returned function
// cancels the subscription.
func (db *DB) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 16)

	db.mu.Lock()
	db.subscribers[ch] = struct{}{}
	db.mu.Unlock()

	return ch, func() {
		db.mu.Lock()
		defer db.mu.Unlock()
		if _, ok := db.subscribers[ch]; ok {
			delete(db.subscribers, ch)
			close(ch)
		}
	}
}

func (db *DB) publish(change Change) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for ch := range db.subscribers {
		select {
		case ch <- change:
		default:
			db.logger.Warn("Dropping storage change for slow subscriber", "area", change.Area, "key", change.Key)
		}
	}
}
