package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhakala/fishcast/internal/config"
	"github.com/jhakala/fishcast/internal/forecast"
	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/moon"
	"github.com/jhakala/fishcast/internal/spots"
)

// AppState represents the current state of the application
type AppState int

const (
	StateInput   AppState = iota // Enter a place name
	StateSpots                   // Pick a saved spot
	StateLoading                 // Fetching and scoring the forecast
	StateDisplay                 // Show the scored forecast
	StateError                   // Error state
)

// ActivePane represents which pane is currently focused
type ActivePane int

const (
	PaneChart ActivePane = iota
	PaneSignals
	PaneBest
	PaneMoon
)

const paneCount = 4

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ActivePane
	width      int
	height     int
	err        error

	// Input
	placeInput textinput.Model
	seaLevel   bool // include the place's sea level forecast

	// Services
	svc  *forecast.Service
	repo *spots.Repository
	cfg  config.Config

	// Saved spots
	spotList  list.Model
	spotCount int

	// Forecast data
	place     string      // place of the displayed forecast
	current   models.Spot // place + preferences behind the displayed forecast
	records   []models.ScoredRecord
	best      []models.ScoredRecord
	phases    moon.PhaseWindow
	fetchedAt time.Time

	// Charts
	chart         timeserieslinechart.Model
	pressureChart timeserieslinechart.Model
	windChart     timeserieslinechart.Model
	seaChart      timeserieslinechart.Model
	hasSeaSeries  bool

	spinner spinner.Model
	status  string // transient status line, e.g. after saving a spot
}

// NewModel creates a new application model
func NewModel(svc *forecast.Service, repo *spots.Repository, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Enter a place in Finland (e.g. %s)...", cfg.Location)
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:      StateInput,
		activePane: PaneChart,
		placeInput: ti,
		seaLevel:   cfg.SeaLevel != "",
		svc:        svc,
		repo:       repo,
		cfg:        cfg,
		spinner:    s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateSpots {
			m.spotList.SetSize(msg.Width-4, msg.Height-10)
		}
		if m.state == StateDisplay {
			m.rebuildCharts()
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case forecastMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.place = msg.place
		m.records = msg.records
		m.best = m.svc.Top(msg.records, bestHours)
		m.phases = msg.phases
		m.fetchedAt = time.Now()
		m.rebuildCharts()
		m.state = StateDisplay
		m.status = ""
		return m, nil

	case spotsLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading saved spots: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.spotCount = len(msg.spots)
		m.spotList = createSpotList(msg.spots, m.width-4, m.height-10)
		m.state = StateSpots
		return m, nil

	case spotSavedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Saving spot failed: %v", msg.err))
		} else {
			m.status = mutedStyle.Render(fmt.Sprintf("Saved spot %q", msg.spot.Name))
		}
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global quit
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateInput:
			return m.handleInput(keyMsg)

		case StateSpots:
			return m.handleSpotList(msg)

		case StateDisplay:
			return m.handleDisplay(keyMsg)

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to input
			m.state = StateInput
			m.err = nil
			m.placeInput.Focus()
			return m, textinput.Blink
		}
	}

	// Update the focused component
	switch m.state {
	case StateInput:
		m.placeInput, cmd = m.placeInput.Update(msg)
	case StateSpots:
		m.spotList, cmd = m.spotList.Update(msg)
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	}

	return m, cmd
}

// handleInput handles keyboard input in the place input state
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.Type == tea.KeyEnter:
		place := strings.TrimSpace(m.placeInput.Value())
		if place == "" {
			place = m.cfg.Location
		}
		spot := models.Spot{Place: place, Timezone: m.cfg.Timezone, Hours: m.cfg.Hours}
		if m.seaLevel {
			// Free text carries no separate station; the configured
			// station wins, otherwise the place itself names it.
			spot.SeaLevelLocation = m.cfg.SeaLevel
			if spot.SeaLevelLocation == "" {
				spot.SeaLevelLocation = place
			}
		}
		return m.startFetch(spot)

	case msg.String() == "ctrl+s":
		m.seaLevel = !m.seaLevel
		return m, nil

	case msg.String() == "ctrl+p":
		return m, loadSpots(m.repo)
	}

	m.placeInput, cmd = m.placeInput.Update(msg)
	return m, cmd
}

// handleSpotList handles keyboard input in the saved spots state
func (m Model) handleSpotList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.spotList.SelectedItem().(spotItem); ok {
				return m.startFetch(item.spot)
			}
		}
		if keyMsg.String() == "s" || keyMsg.Type == tea.KeyEsc {
			m.state = StateInput
			m.placeInput.Focus()
			return m, textinput.Blink
		}
	}

	m.spotList, cmd = m.spotList.Update(msg)
	return m, cmd
}

// handleDisplay handles keyboard input in the display state
func (m Model) handleDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s":
		m.state = StateInput
		m.placeInput.SetValue("")
		m.placeInput.Focus()
		m.status = ""
		return m, textinput.Blink

	case "p":
		return m, loadSpots(m.repo)

	case "r":
		return m.startFetch(m.current)

	case "w":
		spot := m.current
		if spot.Name == "" {
			spot.Name = spot.Place
		}
		return m, saveSpot(m.repo, spot)

	case "tab":
		m.activePane = (m.activePane + 1) % paneCount
		return m, nil
	}

	return m, nil
}

// startFetch transitions to loading and kicks off a forecast fetch for
// spot. Stored preferences win; empty fields fall back to the config.
func (m Model) startFetch(spot models.Spot) (tea.Model, tea.Cmd) {
	if spot.Timezone == "" {
		spot.Timezone = m.cfg.Timezone
	}
	if spot.Hours <= 0 {
		spot.Hours = m.cfg.Hours
	}

	tz, err := time.LoadLocation(spot.Timezone)
	if err != nil {
		m.err = fmt.Errorf("invalid timezone %q: %w", spot.Timezone, err)
		m.state = StateError
		return m, nil
	}

	m.state = StateLoading
	m.place = spot.Place
	m.seaLevel = spot.SeaLevelLocation != ""
	m.current = spot

	req := forecast.Request{
		Place:            spot.Place,
		Hours:            spot.Hours,
		Timezone:         tz,
		SeaLevelLocation: spot.SeaLevelLocation,
	}
	return m, tea.Batch(m.spinner.Tick, fetchForecast(m.svc, req))
}

// rebuildCharts refits every chart to the current records and window size.
func (m *Model) rebuildCharts() {
	m.chart = newIndexChart(m.chartWidth(), m.chartHeight(), m.records)

	w, h := m.signalChartWidth(), m.signalChartHeight()
	m.pressureChart = newSignalChart(w, h, m.records, func(rec models.ScoredRecord) (float64, bool) {
		return rec.Pressure, true
	})
	m.windChart = newSignalChart(w, h, m.records, func(rec models.ScoredRecord) (float64, bool) {
		return rec.WindSpeed, true
	})

	m.hasSeaSeries = false
	for _, rec := range m.records {
		if rec.SeaLevel != nil {
			m.hasSeaSeries = true
			break
		}
	}
	if m.hasSeaSeries {
		m.seaChart = newSignalChart(m.chartWidth(), h, m.records, func(rec models.ScoredRecord) (float64, bool) {
			if rec.SeaLevel == nil {
				return 0, false
			}
			return *rec.SeaLevel, true
		})
	}
}

func (m Model) chartWidth() int {
	w := m.width - 10
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) chartHeight() int {
	h := m.height / 3
	if h < 8 {
		h = 8
	}
	return h
}

func (m Model) signalChartWidth() int {
	w := (m.chartWidth() - 4) / 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) signalChartHeight() int {
	h := m.height / 5
	if h < 6 {
		h = 6
	}
	return h
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateInput:
		return m.viewInput()
	case StateSpots:
		return m.viewSpots()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewInput renders the place input view
func (m Model) viewInput() string {
	title := titleStyle.Render("🎣 Fishcast")
	subtitle := mutedStyle.Render("Fishing forecast from FMI weather and moon data")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(48).
		Render(m.placeInput.View())

	seaLevelLine := "[ ] Include sea level forecast"
	if m.seaLevel {
		seaLevelLine = "[x] Include sea level forecast"
	}

	help := helpStyle.Render("Enter: fetch • Ctrl+S: toggle sea level • Ctrl+P: saved spots • Ctrl+C: quit")

	sections := []string{
		title,
		subtitle,
		"",
		inputBox,
		"",
		mutedStyle.Render(seaLevelLine),
		"",
		help,
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewSpots renders the saved spot selection list
func (m Model) viewSpots() string {
	title := titleStyle.Render("🎣 Saved Spots")
	subtitle := mutedStyle.Render(fmt.Sprintf("%d saved spots", m.spotCount))

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • S/Esc: Back • Ctrl+C: Quit")

	sections := []string{
		title,
		subtitle,
		"",
		m.spotList.View(),
		"",
		help,
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	line := fmt.Sprintf("%s Fetching forecast for %s...", m.spinner.View(), m.place)
	if m.seaLevel {
		line += " (with sea level)"
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", line)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorText string
	if m.err != nil {
		errorText = m.err.Error()
	} else {
		errorText = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return • Q: Quit")

	sections := []string{
		title,
		"",
		errorText,
		"",
		help,
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewDisplay renders the main display
func (m Model) viewDisplay() string {
	var sections []string

	headerStyle := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Padding(0, 1).
		MarginBottom(1)
	header := headerStyle.Render(fmt.Sprintf("🎣 %s — next %d hours", m.place, m.current.Hours))
	sections = append(sections, header)

	fetched := mutedStyle.Render(fmt.Sprintf("Updated %s • %d scored hours",
		m.fetchedAt.Format("15:04:05"), len(m.records)))
	sections = append(sections, fetched, "")

	width := m.width - 4
	sections = append(sections,
		m.renderChartPane(width),
		sectionHeaderStyle.Render("📈 WEATHER"),
		m.renderSignalsPane(width),
		sectionHeaderStyle.Render("⭐ BEST FISHING HOURS"),
		m.renderBestPane(width),
		sectionHeaderStyle.Render("🌙 MOON PHASES"),
		m.renderMoonPane(width),
	)

	if m.status != "" {
		sections = append(sections, "", m.status)
	}

	help := helpStyle.Render("S: New search • P: Spots • W: Save spot • R: Refresh • Tab: Panes • Q: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
