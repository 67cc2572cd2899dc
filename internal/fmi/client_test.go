package fmi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.baseURL != "https://opendata.fmi.fi/wfs" {
		t.Errorf("baseURL = %s, want https://opendata.fmi.fi/wfs", client.baseURL)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
}

func TestFMIClient_GetForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("storedquery_id") != surfaceQueryID {
			t.Errorf("storedquery_id = %s, want %s", query.Get("storedquery_id"), surfaceQueryID)
		}
		if query.Get("place") != "Oulu" {
			t.Errorf("place = %s, want Oulu", query.Get("place"))
		}
		if !strings.HasSuffix(query.Get("starttime"), "Z") {
			t.Errorf("starttime %q is not UTC-suffixed", query.Get("starttime"))
		}

		data, err := os.ReadFile("testdata/surface_response.xml")
		if err != nil {
			t.Fatalf("reading fixture: %v", err)
		}
		w.Header().Set("Content-Type", "text/xml")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	helsinki, _ := time.LoadLocation("Europe/Helsinki")
	series, err := client.GetForecast(context.Background(), ForecastQuery{
		Place:    "Oulu",
		Hours:    4,
		Start:    time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
		Timezone: helsinki,
	})
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	if len(series) != 4 {
		t.Fatalf("len(series) = %d, want 4", len(series))
	}

	first := series[0]
	if first.Pressure != 1000.0 {
		t.Errorf("Pressure = %v, want 1000.0", first.Pressure)
	}
	if first.WindSpeed != 5.2 {
		t.Errorf("WindSpeed = %v, want 5.2", first.WindSpeed)
	}
	if first.WindDirection != 220.0 {
		t.Errorf("WindDirection = %v, want 220.0", first.WindDirection)
	}
	if first.SeaLevel != nil {
		t.Errorf("SeaLevel = %v, want nil when no geoid is given", *first.SeaLevel)
	}

	// 12:00 UTC is 14:00 in Helsinki during standard time.
	if first.Time.Location().String() != "Europe/Helsinki" {
		t.Errorf("timezone = %v, want Europe/Helsinki", first.Time.Location())
	}
	if first.Time.Hour() != 14 {
		t.Errorf("local hour = %d, want 14", first.Time.Hour())
	}

	for i := 1; i < len(series); i++ {
		if !series[i-1].Time.Before(series[i].Time) {
			t.Errorf("timestamps not strictly increasing at %d", i)
		}
	}
}

func TestFMIClient_GetForecast_SeaLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")

		var fixture string
		switch r.URL.Query().Get("storedquery_id") {
		case surfaceQueryID:
			fixture = "testdata/surface_response.xml"
		case seaLevelQueryID:
			if got := r.URL.Query().Get("geoid"); got != "643492" {
				t.Errorf("geoid = %s, want 643492", got)
			}
			fixture = "testdata/sealevel_response.xml"
		default:
			t.Errorf("unexpected stored query %q", r.URL.Query().Get("storedquery_id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		data, err := os.ReadFile(fixture)
		if err != nil {
			t.Fatalf("reading fixture: %v", err)
		}
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	series, err := client.GetForecast(context.Background(), ForecastQuery{
		Place:         "Oulu",
		Hours:         4,
		Start:         time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
		SeaLevelGeoid: "643492",
	})
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	want := []float64{12.0, 16.5, 23.0, 13.5}
	for i, m := range series {
		if m.SeaLevel == nil {
			t.Fatalf("series[%d].SeaLevel is nil", i)
		}
		if *m.SeaLevel != want[i] {
			t.Errorf("series[%d].SeaLevel = %v, want %v", i, *m.SeaLevel, want[i])
		}
	}
}

func TestFMIClient_GetForecast_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"server error",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			"place not found returns empty collection",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<?xml version="1.0"?><wfs:FeatureCollection xmlns:wfs="http://www.opengis.net/wfs/2.0" numberReturned="0"></wfs:FeatureCollection>`))
			},
		},
		{
			"malformed response",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not xml at all <"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient()
			client.baseURL = server.URL

			_, err := client.GetForecast(context.Background(), ForecastQuery{Place: "Nowhere", Hours: 4})
			if err == nil {
				t.Error("GetForecast() expected an error")
			}
		})
	}
}

func TestSeaLevelGeoid(t *testing.T) {
	geoid, err := SeaLevelGeoid("Oulu")
	if err != nil {
		t.Fatalf("SeaLevelGeoid(Oulu) error = %v", err)
	}
	if geoid != "643492" {
		t.Errorf("geoid = %s, want 643492", geoid)
	}

	_, err = SeaLevelGeoid("Atlantis")
	if err == nil {
		t.Fatal("SeaLevelGeoid(Atlantis) expected an error")
	}
	// The error lists valid station names for the user.
	if !strings.Contains(err.Error(), "Helsinki") || !strings.Contains(err.Error(), "Degerby") {
		t.Errorf("error %q should list valid locations", err)
	}
}

func TestSeaLevelLocations_Sorted(t *testing.T) {
	names := SeaLevelLocations()
	if len(names) != 14 {
		t.Fatalf("len(names) = %d, want 14", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}
