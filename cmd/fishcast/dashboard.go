package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jhakala/fishcast/internal/spots"
	"github.com/jhakala/fishcast/internal/ui"
)

// dashboardCmd launches the interactive terminal dashboard
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive forecast dashboard",
	Long: `Open a full screen terminal dashboard with an index chart, the best
fishing hours, moon phase dates and saved spot management.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	tz, err := cfg.LoadTimezone()
	if err != nil {
		return err
	}

	// Logging would corrupt the alternate screen. Send it to a file in
	// verbose mode, otherwise drop it.
	if flagVerbose {
		f, err := os.OpenFile("fishcast.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		log.Logger = zerolog.New(io.Discard)
	}

	m := ui.NewModel(newService(tz), spots.NewRepository(), cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}

	return nil
}
