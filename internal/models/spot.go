package models

import "time"

// Spot represents a saved fishing location and its forecast preferences.
type Spot struct {
	ID               int64     `json:"id"`       // Database primary key (0 if not saved)
	Name             string    `json:"name"`     // User-friendly name
	Place            string    `json:"place"`    // FMI place name (e.g. "Oulu")
	Timezone         string    `json:"timezone"` // IANA timezone (e.g. "Europe/Helsinki")
	SeaLevelLocation string    `json:"sealevel_location"` // Sea level station name, empty when disabled
	Hours            int       `json:"hours"`    // Forecast window in hours
	CreatedAt        time.Time `json:"created_at"`
}
