// Package spots persists saved fishing locations and their forecast
// preferences.
package spots

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jhakala/fishcast/internal/database"
	"github.com/jhakala/fishcast/internal/models"
)

// Repository handles persistence for saved fishing spots.
type Repository struct {
	dbPath string
}

// NewRepository creates a repository on the shared database.
func NewRepository() *Repository {
	return &Repository{dbPath: database.DBPath()}
}

// NewRepositoryAt creates a repository on a specific database file.
func NewRepositoryAt(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// SaveSpot saves a spot, replacing an existing spot with the same name.
func (r *Repository) SaveSpot(spot *models.Spot) error {
	// Ensure schema exists (safe to call multiple times)
	if err := database.EnsureUserSchema(r.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	query := `
		INSERT INTO spots (name, place, timezone, sealevel_location, hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			place = excluded.place,
			timezone = excluded.timezone,
			sealevel_location = excluded.sealevel_location,
			hours = excluded.hours,
			created_at = excluded.created_at
	`

	if spot.CreatedAt.IsZero() {
		spot.CreatedAt = time.Now()
	}
	if spot.Hours <= 0 {
		spot.Hours = 48
	}

	res, err := db.Exec(query,
		spot.Name,
		spot.Place,
		spot.Timezone,
		spot.SeaLevelLocation,
		spot.Hours,
		spot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving spot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	spot.ID = id

	return nil
}

// ListSpots retrieves all saved spots ordered by name.
func (r *Repository) ListSpots() ([]models.Spot, error) {
	if err := database.EnsureUserSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, place, timezone, sealevel_location, hours, created_at FROM spots ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying spots: %w", err)
	}
	defer rows.Close()

	var spots []models.Spot
	for rows.Next() {
		var s models.Spot
		var seaLevel sql.NullString

		if err := rows.Scan(&s.ID, &s.Name, &s.Place, &s.Timezone, &seaLevel, &s.Hours, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning spot: %w", err)
		}
		s.SeaLevelLocation = seaLevel.String
		spots = append(spots, s)
	}

	return spots, rows.Err()
}

// GetSpot retrieves a spot by its name.
func (r *Repository) GetSpot(name string) (*models.Spot, error) {
	spots, err := r.ListSpots()
	if err != nil {
		return nil, err
	}
	for _, s := range spots {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("spot not found: %s", name)
}

// DeleteSpot removes a spot by name.
func (r *Repository) DeleteSpot(name string) error {
	if err := database.EnsureUserSchema(r.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec("DELETE FROM spots WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting spot: %w", err)
	}

	return nil
}
