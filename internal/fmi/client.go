// Package fmi fetches forecast time series from the Finnish
// Meteorological Institute's open data WFS API.
package fmi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhakala/fishcast/internal/models"
)

const (
	surfaceQueryID  = "fmi::forecast::harmonie::surface::point::timevaluepair"
	seaLevelQueryID = "fmi::forecast::sealevel::point::timevaluepair"

	paramPressure      = "Pressure"
	paramWindSpeed     = "WindSpeedMS"
	paramWindDirection = "WindDirection"
	paramSeaLevel      = "SeaLevelN2000"
)

// ForecastQuery describes one forecast fetch.
type ForecastQuery struct {
	Place         string
	Hours         int
	Start         time.Time      // zero value: one hour before now
	Timezone      *time.Location // nil: UTC
	SeaLevelGeoid string         // empty: sea level disabled
}

// Client defines the interface for fetching forecast data from the FMI
// open data API.
type Client interface {
	// GetForecast retrieves an ordered measurement series, one entry per
	// forecasted hour, localized to the requested timezone.
	GetForecast(ctx context.Context, q ForecastQuery) ([]models.Measurement, error)
}

// FMIClient implements Client against the FMI open data WFS endpoint.
type FMIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new FMI open data client.
func NewClient() *FMIClient {
	return &FMIClient{
		baseURL: "https://opendata.fmi.fi/wfs",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetForecast fetches the surface forecast for a place and, when a geoid
// is given, merges the sea level forecast into the same series.
func (c *FMIClient) GetForecast(ctx context.Context, q ForecastQuery) ([]models.Measurement, error) {
	start := q.Start
	if start.IsZero() {
		start = time.Now().UTC().Add(-time.Hour)
	}
	end := start.Add(time.Duration(q.Hours) * time.Hour)

	tz := q.Timezone
	if tz == nil {
		tz = time.UTC
	}

	surface, err := c.fetchSeries(ctx, surfaceQueryParams(q.Place, start, end))
	if err != nil {
		return nil, fmt.Errorf("fetching surface forecast: %w", err)
	}

	pressure := surface.pointsFor(paramPressure)
	windSpeed := surface.pointsFor(paramWindSpeed)
	windDirection := surface.pointsFor(paramWindDirection)

	if len(pressure) == 0 {
		return nil, fmt.Errorf("no forecast data for place %q", q.Place)
	}
	if len(windSpeed) != len(pressure) || len(windDirection) != len(pressure) {
		return nil, fmt.Errorf("mismatched series lengths: pressure %d, wind speed %d, wind direction %d",
			len(pressure), len(windSpeed), len(windDirection))
	}

	series := make([]models.Measurement, len(pressure))
	for i := range pressure {
		ts, err := time.Parse(time.RFC3339, pressure[i].Time)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", pressure[i].Time, err)
		}

		m := models.Measurement{Time: ts.In(tz)}
		if m.Pressure, err = pressure[i].float(); err != nil {
			return nil, fmt.Errorf("parsing pressure: %w", err)
		}
		if m.WindSpeed, err = windSpeed[i].float(); err != nil {
			return nil, fmt.Errorf("parsing wind speed: %w", err)
		}
		if m.WindDirection, err = windDirection[i].float(); err != nil {
			return nil, fmt.Errorf("parsing wind direction: %w", err)
		}
		series[i] = m
	}

	if q.SeaLevelGeoid != "" {
		if err := c.mergeSeaLevel(ctx, q.SeaLevelGeoid, start, end, series); err != nil {
			return nil, err
		}
	}

	log.Debug().Str("place", q.Place).Int("measurements", len(series)).
		Bool("sealevel", q.SeaLevelGeoid != "").Msg("Fetched FMI forecast")

	return series, nil
}

// mergeSeaLevel attaches sea level values to an already-fetched surface
// series. The sea level series must cover the same hours.
func (c *FMIClient) mergeSeaLevel(ctx context.Context, geoid string, start, end time.Time, series []models.Measurement) error {
	resp, err := c.fetchSeries(ctx, seaLevelQueryParams(geoid, start, end))
	if err != nil {
		return fmt.Errorf("fetching sea level forecast: %w", err)
	}

	points := resp.pointsFor(paramSeaLevel)
	if len(points) != len(series) {
		return fmt.Errorf("sea level series length %d does not match surface series length %d",
			len(points), len(series))
	}

	for i := range series {
		value, err := points[i].float()
		if err != nil {
			return fmt.Errorf("parsing sea level: %w", err)
		}
		v := value
		series[i].SeaLevel = &v
	}
	return nil
}

// fetchSeries performs one WFS stored query and parses the response.
func (c *FMIClient) fetchSeries(ctx context.Context, params url.Values) (*wfsResponse, error) {
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return parseWFS(resp.Body)
}

func surfaceQueryParams(place string, start, end time.Time) url.Values {
	params := commonQueryParams(start, end)
	params.Add("storedquery_id", surfaceQueryID)
	params.Add("place", place)
	params.Add("parameters", fmt.Sprintf("%s,%s,%s", paramWindDirection, paramWindSpeed, paramPressure))
	return params
}

func seaLevelQueryParams(geoid string, start, end time.Time) url.Values {
	params := commonQueryParams(start, end)
	params.Add("storedquery_id", seaLevelQueryID)
	params.Add("geoid", geoid)
	return params
}

func commonQueryParams(start, end time.Time) url.Values {
	params := url.Values{}
	params.Add("service", "WFS")
	params.Add("version", "2.0.0")
	params.Add("request", "getFeature")
	params.Add("starttime", start.UTC().Format("2006-01-02T15:04:05")+"Z")
	params.Add("endtime", end.UTC().Format("2006-01-02T15:04:05")+"Z")
	return params
}
