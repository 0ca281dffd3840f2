package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quakemap/internal/quake"
)

// legendHeight is the rendered height of the key box, borders included.
const legendHeight = 11

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" quakemap ─ earthquakes and the cities they threaten ")
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	// Map viewport, or the report table centered in the map area
	var mapView string
	if m.view != overlayNone {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderMap(lay.mapW, lay.mapH))
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(lay), " ", mapView)
	}

	// Footer / help
	status := dimStyle.Render(" " + truncate(m.status, lay.contentW/2) + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.3f lat=%.3f  ", m.hoverLon, m.hoverLat))
	}
	spacerW := max(0, lay.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	top := lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(
		lipgloss.JoinVertical(lipgloss.Left, top, m.renderHoverOrHelp(lay.contentW)),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderSidebar(lay layout) string {
	parts := []string{m.renderLegend()}
	if m.showPicker {
		parts = append(parts, m.l.View())
	} else if info, ok := m.agg.Info(m.sel); ok {
		parts = append(parts, renderInfo(info))
	}
	return lipgloss.NewStyle().Width(lay.sidebarW).MaxHeight(lay.contentH).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderLegend() string {
	lines := []string{
		titleStyle.Render("Earthquake Key"),
		cityStyle.Render(cityGlyph) + " City Marker",
		"● Land Quake",
		"■ Ocean Quake",
		shallowStyle.Render("●") + " " + quake.Shallow.String(),
		intermediateStyle.Render("●") + " " + quake.Intermediate.String(),
		deepStyle.Render("●") + " " + quake.Deep.String(),
		"⊗ " + quake.PastHour.String(),
		dimStyle.Render(fmt.Sprintf("%d quakes, %d cities", len(m.agg.Quakes()), len(m.agg.Cities()))),
	}
	return boxStyle.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

// renderInfo is the panel for the last clicked city.
func renderInfo(info quake.Info) string {
	w := sidebarWidth - 6
	lines := []string{
		titleStyle.Render(truncate(info.City, w)),
		"Quakes Nearby:",
		fmt.Sprintf(" %d", info.QuakesNearby),
		"Average Magnitude:",
		fmt.Sprintf(" %.2f", info.AverageMagnitude),
	}
	if info.HasMostRecent {
		lines = append(lines,
			"Most Recent Quake:",
			lipgloss.NewStyle().Width(w).Render(" "+info.MostRecentTitle),
		)
	}
	return boxStyle.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

// renderHoverOrHelp shows the hovered marker's label, or the key help.
func (m Model) renderHoverOrHelp(w int) string {
	switch h := m.sel.Hovered; h.Kind {
	case quake.QuakeMarker:
		q := m.agg.Quakes()[h.Index]
		where := "ocean"
		if q.OnLand {
			where = q.Country
		}
		return hoverLabelStyle.Render(truncate(fmt.Sprintf(" %s  [%s, %.0f km, %s]", q.Title, where, q.Depth, q.Age), w))
	case quake.CityMarker:
		c := m.agg.Cities()[h.Index]
		return hoverLabelStyle.Render(truncate(fmt.Sprintf(" %s  %s", c.Name, c.Country), w))
	}
	return truncate(m.renderHelp(), w)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"click select",
		"esc clear",
		"↑↓←→ pan",
		"+/- zoom",
		"Tab cities",
		"r by country",
		"t top quakes",
		"b borders",
		"s sidebar",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
