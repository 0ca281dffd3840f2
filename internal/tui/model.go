package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"quakemap/internal/feed"
	"quakemap/internal/geom"
	"quakemap/internal/quake"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayTally
	overlayTop
)

type Model struct {
	width  int
	height int

	showSidebar bool
	showPicker  bool
	helpVisible bool
	showBorders bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data
	bbox      geom.BBox
	countries []quake.Country
	agg       *quake.Aggregator
	sel       quake.State
	topN      int

	// city picker
	l list.Model

	// report table
	view overlay
	tbl  table.Model

	// hover position in lon/lat for the footer
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
}

// New builds the map model over a loaded, classified dataset.
func New(ds *feed.Dataset, topN int) Model {
	m := Model{
		showSidebar: true,
		helpVisible: true,
		showBorders: true,
		zoom:        1.0,
		status:      "quakemap ready",
		bbox:        geom.World,
		countries:   ds.Countries,
		agg:         quake.NewAggregator(ds.Quakes, ds.Cities),
		topN:        topN,
	}
	m.sel = m.agg.Initial()

	// city picker setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(cityItems(ds.Cities), d, 0, 0)
	m.l.Title = "Cities"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	// report table setup (columns depend on the report)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
