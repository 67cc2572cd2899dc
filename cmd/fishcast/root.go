package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhakala/fishcast/internal/config"
	"github.com/jhakala/fishcast/internal/fmi"
	"github.com/jhakala/fishcast/internal/forecast"
	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/moon"
)

var (
	flagConfig    string
	flagTimezone  string
	flagLocation  string
	flagHours     int
	flagSeaLevel  string
	flagVisualize bool
	flagTop       int
	flagVerbose   bool
)

// rootCmd prints a fishing forecast to the terminal
var rootCmd = &cobra.Command{
	Use:   "fishcast",
	Short: "Fishing forecast from FMI weather and moon data",
	Long: `Fishcast scores the next hours of FMI weather forecasts into a fishing
favorability index built from pressure trends, wind direction, moon phase
proximity and optionally Baltic sea level forecasts.

Example usage:
  fishcast                            # Forecast for the configured location
  fishcast -l Vaasa -n 24             # 24 hour forecast for Vaasa
  fishcast --sealevel Hanko           # Include the Hanko sea level forecast
  fishcast -v                         # Draw an index chart`,
	RunE:          runForecast,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "timezone", "", "Timezone for timestamps (default: Europe/Helsinki)")
	rootCmd.PersistentFlags().StringVarP(&flagLocation, "location", "l", "", "Location in Finland (default: Oulu)")
	rootCmd.PersistentFlags().IntVarP(&flagHours, "hours", "n", 0, "Forecast hours (default: 48)")
	rootCmd.PersistentFlags().StringVar(&flagSeaLevel, "sealevel", "",
		fmt.Sprintf("Sea level measurement location (default: OFF)\nPossible values: %s",
			strings.Join(fmi.SeaLevelLocations(), ", ")))
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.Flags().BoolVarP(&flagVisualize, "visualize", "v", false, "Draw an ASCII chart of the index (default: OFF)")
	rootCmd.Flags().IntVar(&flagTop, "top", 5, "Number of best fishing hours to list")
}

// loadSettings merges the config file, environment and flags. Flags win.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagTimezone != "" {
		cfg.Timezone = flagTimezone
	}
	if flagLocation != "" {
		cfg.Location = flagLocation
	}
	if flagHours > 0 {
		cfg.Hours = flagHours
	}
	if flagSeaLevel != "" {
		cfg.SeaLevel = flagSeaLevel
	}

	if _, err := cfg.LoadTimezone(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func newService(tz *time.Location) *forecast.Service {
	return forecast.NewService(fmi.NewClient(), moon.NewEphemeris(tz))
}

func runForecast(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	tz, err := cfg.LoadTimezone()
	if err != nil {
		return err
	}

	svc := newService(tz)

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	records, err := svc.ScoreForecast(ctx, forecast.Request{
		Place:            cfg.Location,
		Hours:            cfg.Hours,
		Timezone:         tz,
		SeaLevelLocation: cfg.SeaLevel,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	printHeader(out, "Moon phases:")
	phases := svc.MoonPhases(time.Now().In(tz))
	fmt.Fprintf(out, "Previous full moon:\t %s\n", phases.PrevFull.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Previous new moon:\t %s\n", phases.PrevNew.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Next full moon:\t\t %s\n", phases.NextFull.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Next new moon:\t\t %s\n", phases.NextNew.Format("2006-01-02 15:04"))

	printHeader(out, fmt.Sprintf("Fishing forecast for %s for next %d hours:", cfg.Location, cfg.Hours))
	seaLevelOn := cfg.SeaLevel != ""
	for _, rec := range records {
		fmt.Fprintln(out, recordLine(rec, seaLevelOn))
	}

	if len(records) == 0 {
		return nil
	}

	if flagVisualize {
		fmt.Fprint(out, renderIndexChart(records))
	}

	printHeader(out, fmt.Sprintf("Top %d best fishing hours in %s in next %d hours:", flagTop, cfg.Location, cfg.Hours))
	for _, rec := range svc.Top(records, flagTop) {
		fmt.Fprintln(out, recordLine(rec, seaLevelOn))
	}
	fmt.Fprintln(out)

	return nil
}

func printHeader(out io.Writer, text string) {
	fmt.Fprintf(out, "\n%s\n%s\n", text, strings.Repeat("-", len(text)))
}

// recordLine formats one scored hour for terminal output.
func recordLine(rec models.ScoredRecord, seaLevel bool) string {
	strSeaLevel := "N/A"
	if seaLevel && rec.SeaLevel != nil {
		diff := 0.0
		if rec.SeaLevelDiff != nil {
			diff = *rec.SeaLevelDiff
		}
		strSeaLevel = fmt.Sprintf("%.1f cm (%+.1f)", *rec.SeaLevel, diff)
	}

	return fmt.Sprintf("%s - Index: %3d - Pressure: %6.1f hPa (%+.1f), Wind: %5.1f° (%.1f m/s) Sealevel: %s",
		rec.Time.Format("2006-01-02 15:04"),
		int(rec.FishingIndex),
		rec.Pressure, rec.PressureDiff,
		rec.WindDirection, rec.WindSpeed,
		strSeaLevel)
}
