package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/jhakala/fishcast/internal/models"
)

// spotItem wraps a Spot for use in a list
type spotItem struct {
	spot models.Spot
}

// FilterValue implements list.Item
func (s spotItem) FilterValue() string {
	return s.spot.Name
}

// Title implements list.DefaultItem
func (s spotItem) Title() string {
	return s.spot.Name
}

// Description implements list.DefaultItem
func (s spotItem) Description() string {
	desc := fmt.Sprintf("%s • %dh", s.spot.Place, s.spot.Hours)
	if s.spot.SeaLevelLocation != "" {
		desc += fmt.Sprintf(" • sea level: %s", s.spot.SeaLevelLocation)
	}
	return desc
}

// createSpotList creates a list.Model from saved spots
func createSpotList(saved []models.Spot, width, height int) list.Model {
	items := make([]list.Item, len(saved))
	for i, spot := range saved {
		items[i] = spotItem{spot: spot}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Saved Spots"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
