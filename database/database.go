package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"reddit-monitor/models"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// DB handles storage of scan discoveries.
type DB struct {
	conn *sql.DB
}

// InitDB opens (creating if necessary) the discoveries database at the given
// path and ensures the schema exists. Safe to call repeatedly.
func InitDB(dbPath string) (*DB, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	// Open the SQLite database. It will be created if it doesn't exist.
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	// Ping the database to verify the connection.
	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createDiscoveriesTable(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create discoveries table: %w", err)
	}

	log.Println("Successfully connected to the database at", dbPath)
	return &DB{conn: conn}, nil
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.conn.Close()
}

// createDiscoveriesTable creates the 'discoveries' table if it doesn't exist.
func createDiscoveriesTable(conn *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS discoveries (
        id TEXT PRIMARY KEY,
        forum TEXT,
        title TEXT,
        url TEXT,
        score INTEGER,
        relevance INTEGER,
        discovered_at INTEGER NOT NULL,
        notified INTEGER DEFAULT 0
    );`
	_, err := conn.Exec(query)
	return err
}

// InsertDiscovery saves a discovery, ignoring it if a row with the same id
// already exists. Reports whether a new row was actually written, so callers
// can tell genuinely new discoveries from re-discoveries.
func (d *DB) InsertDiscovery(disc models.Discovery) (bool, error) {
	discoveredAt := disc.DiscoveredAt
	if discoveredAt == 0 {
		discoveredAt = time.Now().Unix()
	}

	query := `
    INSERT OR IGNORE INTO discoveries (id, forum, title, url, score, relevance, discovered_at)
    VALUES (?, ?, ?, ?, ?, ?, ?);`

	stmt, err := d.conn.Prepare(query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare statement for saving discovery: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(disc.ID, disc.Forum, disc.Title, disc.URL, disc.Score, disc.Relevance, discoveredAt)
	if err != nil {
		return false, fmt.Errorf("failed to execute statement for saving discovery %s: %w", disc.ID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected for discovery %s: %w", disc.ID, err)
	}
	return rows > 0, nil
}

// ListUnnotified returns up to limit discoveries that have not been included
// in a digest yet, highest relevance first. Ties keep insertion order.
func (d *DB) ListUnnotified(limit int) ([]models.Discovery, error) {
	query := `
    SELECT id, forum, title, url, score, relevance, discovered_at, notified
    FROM discoveries
    WHERE notified = 0
    ORDER BY relevance DESC, rowid ASC
    LIMIT ?;`

	rows, err := d.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unnotified discoveries: %w", err)
	}
	defer rows.Close()

	var discoveries []models.Discovery
	for rows.Next() {
		var disc models.Discovery
		if err := rows.Scan(&disc.ID, &disc.Forum, &disc.Title, &disc.URL,
			&disc.Score, &disc.Relevance, &disc.DiscoveredAt, &disc.Notified); err != nil {
			return nil, fmt.Errorf("failed to scan discovery row: %w", err)
		}
		discoveries = append(discoveries, disc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unnotified discoveries: %w", err)
	}

	return discoveries, nil
}

// MarkNotified flags a discovery as included in a sent digest. Marking an
// already-notified or unknown id is a no-op.
func (d *DB) MarkNotified(id string) error {
	query := `UPDATE discoveries SET notified = 1 WHERE id = ?;`

	stmt, err := d.conn.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for marking discovery notified: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return fmt.Errorf("failed to mark discovery %s notified: %w", id, err)
	}
	return nil
}
