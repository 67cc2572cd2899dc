package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhakala/fishcast/internal/fmi"
	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/spots"
)

var (
	spotPlace    string
	spotHours    int
	spotSeaLevel string
)

// spotCmd is the parent command for saved spot management
var spotCmd = &cobra.Command{
	Use:   "spot",
	Short: "Manage saved fishing spots",
	Long: `Saved spots bundle a place, forecast length and optional sea level
station under a name, so a forecast is one command away.`,
}

var spotAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save a fishing spot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpotAdd,
}

var spotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved fishing spots",
	RunE:  runSpotList,
}

var spotRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a saved fishing spot",
	Args:    cobra.ExactArgs(1),
	RunE:    runSpotRemove,
}

func init() {
	rootCmd.AddCommand(spotCmd)
	spotCmd.AddCommand(spotAddCmd)
	spotCmd.AddCommand(spotListCmd)
	spotCmd.AddCommand(spotRemoveCmd)

	spotAddCmd.Flags().StringVar(&spotPlace, "place", "", "Place in Finland (default: the spot name)")
	spotAddCmd.Flags().IntVar(&spotHours, "hours", 48, "Forecast hours")
	spotAddCmd.Flags().StringVar(&spotSeaLevel, "sealevel", "", "Sea level measurement location")
}

func runSpotAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	name := args[0]
	place := spotPlace
	if place == "" {
		place = name
	}

	if spotSeaLevel != "" {
		if _, err := fmi.SeaLevelGeoid(spotSeaLevel); err != nil {
			return err
		}
	}

	spot := models.Spot{
		Name:             name,
		Place:            place,
		Timezone:         cfg.Timezone,
		SeaLevelLocation: spotSeaLevel,
		Hours:            spotHours,
	}

	repo := spots.NewRepository()
	if err := repo.SaveSpot(&spot); err != nil {
		return fmt.Errorf("saving spot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved spot %q (%s, %dh)\n", spot.Name, spot.Place, spot.Hours)
	return nil
}

func runSpotList(cmd *cobra.Command, args []string) error {
	repo := spots.NewRepository()
	saved, err := repo.ListSpots()
	if err != nil {
		return fmt.Errorf("listing spots: %w", err)
	}

	if len(saved) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved spots. Add one with 'fishcast spot add'.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLACE\tHOURS\tSEA LEVEL\tTIMEZONE")
	for _, spot := range saved {
		seaLevel := spot.SeaLevelLocation
		if seaLevel == "" {
			seaLevel = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", spot.Name, spot.Place, spot.Hours, seaLevel, spot.Timezone)
	}
	return w.Flush()
}

func runSpotRemove(cmd *cobra.Command, args []string) error {
	repo := spots.NewRepository()
	if err := repo.DeleteSpot(args[0]); err != nil {
		return fmt.Errorf("removing spot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed spot %q\n", args[0])
	return nil
}
