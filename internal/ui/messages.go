package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhakala/fishcast/internal/forecast"
	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/moon"
	"github.com/jhakala/fishcast/internal/spots"
)

// Message types for async operations

// forecastMsg is sent when a forecast has been fetched and scored
type forecastMsg struct {
	place    string
	seaLevel string
	records  []models.ScoredRecord
	phases   moon.PhaseWindow
	err      error
}

// spotsLoadedMsg is sent when the saved spots have been loaded
type spotsLoadedMsg struct {
	spots []models.Spot
	err   error
}

// spotSavedMsg is sent when a spot has been saved
type spotSavedMsg struct {
	spot *models.Spot
	err  error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// fetchForecast fetches and scores a forecast in the background
func fetchForecast(svc *forecast.Service, req forecast.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		records, err := svc.ScoreForecast(ctx, req)
		if err != nil {
			return forecastMsg{place: req.Place, err: err}
		}

		return forecastMsg{
			place:    req.Place,
			seaLevel: req.SeaLevelLocation,
			records:  records,
			phases:   svc.MoonPhases(time.Now()),
		}
	}
}

// loadSpots loads the saved spots in the background
func loadSpots(repo *spots.Repository) tea.Cmd {
	return func() tea.Msg {
		saved, err := repo.ListSpots()
		return spotsLoadedMsg{spots: saved, err: err}
	}
}

// saveSpot persists a spot in the background
func saveSpot(repo *spots.Repository, spot models.Spot) tea.Cmd {
	return func() tea.Msg {
		err := repo.SaveSpot(&spot)
		return spotSavedMsg{spot: &spot, err: err}
	}
}
