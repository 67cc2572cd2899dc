package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the path to the single shared database. FISHCAST_DB
// overrides the default per-user location.
func DBPath() string {
	if path := os.Getenv("FISHCAST_DB"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("data", "fishcast.db")
	}
	return filepath.Join(dir, "fishcast", "fishcast.db")
}

// EnsureUserSchema ensures that the user-specific tables (like spots) exist.
func EnsureUserSchema(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS spots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			place TEXT NOT NULL,
			timezone TEXT NOT NULL,
			sealevel_location TEXT,
			hours INTEGER NOT NULL DEFAULT 48,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_spots_name ON spots(name);
	`)
	if err != nil {
		return fmt.Errorf("creating spots table: %w", err)
	}

	return nil
}
