package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhakala/fishcast/internal/moon"
)

// moonCmd prints the surrounding full and new moon dates
var moonCmd = &cobra.Command{
	Use:   "moon",
	Short: "Show the surrounding full and new moon dates",
	RunE:  runMoon,
}

func init() {
	rootCmd.AddCommand(moonCmd)
}

func runMoon(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	tz, err := cfg.LoadTimezone()
	if err != nil {
		return err
	}

	phases := moon.NewEphemeris(tz).Phases(time.Now().In(tz))

	out := cmd.OutOrStdout()
	printHeader(out, "Moon phases:")
	fmt.Fprintf(out, "Previous full moon:\t %s\n", phases.PrevFull.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Previous new moon:\t %s\n", phases.PrevNew.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Next full moon:\t\t %s\n", phases.NextFull.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Next new moon:\t\t %s\n", phases.NextNew.Format("2006-01-02 15:04"))

	return nil
}
