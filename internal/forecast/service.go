// Package forecast orchestrates fetching and scoring fishing forecasts.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhakala/fishcast/internal/fmi"
	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/moon"
	"github.com/jhakala/fishcast/internal/scoring"
)

// ErrNoData indicates the weather source failed or returned nothing.
// Callers should surface it as a message, not a crash.
var ErrNoData = errors.New("no forecast data available")

// Request describes one scoring run. Timezone applies to returned
// timestamps and moon phase dates; nil means UTC.
type Request struct {
	Place            string
	Hours            int
	Timezone         *time.Location
	SeaLevelLocation string // sea level station name, empty disables sea level tracking
}

// Service scores weather forecasts into fishing index series.
type Service struct {
	client   fmi.Client
	resolver moon.PhaseResolver
}

// NewService creates a forecast service on top of a weather client and a
// moon phase resolver.
func NewService(client fmi.Client, resolver moon.PhaseResolver) *Service {
	return &Service{client: client, resolver: resolver}
}

// ScoreForecast fetches the forecast for req and scores it pairwise.
// A fetched series too short to score yields an empty result with no
// error. An unknown sea level location fails before any fetch.
func (s *Service) ScoreForecast(ctx context.Context, req Request) ([]models.ScoredRecord, error) {
	var geoid string
	if req.SeaLevelLocation != "" {
		g, err := fmi.SeaLevelGeoid(req.SeaLevelLocation)
		if err != nil {
			return nil, err
		}
		geoid = g
	}

	series, err := s.client.GetForecast(ctx, fmi.ForecastQuery{
		Place:         req.Place,
		Hours:         req.Hours,
		Timezone:      req.Timezone,
		SeaLevelGeoid: geoid,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoData, req.Place)
	}

	agg := scoring.NewAggregator(s.resolver, geoid != "")
	records := agg.BuildSeries(series)

	log.Info().Str("place", req.Place).Int("hours", req.Hours).
		Int("scored", len(records)).Msg("Scored fishing forecast")

	return records, nil
}

// Top returns the n best hours of a scored series in chronological order.
func (s *Service) Top(records []models.ScoredRecord, n int) []models.ScoredRecord {
	return scoring.TopN(records, n)
}

// MoonPhases returns the full and new moon instants around ref.
func (s *Service) MoonPhases(ref time.Time) moon.PhaseWindow {
	return s.resolver.Phases(ref)
}
