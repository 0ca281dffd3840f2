package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"quakemap/internal/geom"
	"quakemap/internal/quake"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
	case tea.KeyMsg:
		// While the picker is filtering, keys belong to the list.
		if m.showPicker && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.view != overlayNone {
			switch msg.String() {
			case "esc", "r", "t", "q":
				m.view = overlayNone
				m.status = "map"
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.5 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showPicker = !m.showPicker
			if m.showPicker {
				m.showSidebar = true
				m.resizeList()
			}
		case "s":
			m.showSidebar = !m.showSidebar
			if !m.showSidebar {
				m.showPicker = false
			}
		case "b":
			m.showBorders = !m.showBorders
			m.status = fmt.Sprintf("borders: %v", m.showBorders)
		case "h":
			m.helpVisible = !m.helpVisible
		case "r":
			m.showOverlay(overlayTally)
		case "t":
			m.showOverlay(overlayTop)
		case "esc":
			m.sel = m.agg.ClickEmpty(m.sel)
			m.status = "selection cleared"
		case "enter":
			if m.showPicker {
				m.pickCity()
				return m, nil
			}
		case "up":
			if !m.showPicker {
				m.offsetY -= 1
			}
		case "down":
			if !m.showPicker {
				m.offsetY += 1
			}
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showPicker {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse turns pointer motion into hover and left presses into clicks.
// Positions outside the map hit no marker.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lay := m.layout()
	cx, cy := msg.X-lay.mapX, msg.Y-lay.mapY
	inMap := m.view == overlayNone && cx >= 0 && cx < lay.mapW && cy >= 0 && cy < lay.mapH

	var probe quake.Probe = func(geom.Point) bool { return false }
	if inMap {
		probe = m.probeAt(cx, cy, lay.mapW, lay.mapH)
		if lon, lat, ok := m.cellToLonLat(cx, cy, lay.mapW, lay.mapH); ok {
			m.hoverHasGeo, m.hoverLon, m.hoverLat = true, lon, lat
		}
	} else {
		m.hoverHasGeo = false
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.sel = m.agg.Hover(m.sel, probe)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.view != overlayNone {
			// the report table covers the map
			return m, nil
		}
		if !inMap && m.showSidebar && msg.X < lay.sidebarW {
			// clicks on the sidebar belong to the sidebar
			return m, nil
		}
		m.sel = m.agg.Click(m.sel, probe)
		m.status = m.clickStatus()
	}
	return m, nil
}

func (m *Model) resizeList() {
	lay := m.layout()
	m.l.SetSize(sidebarWidth-2, max(4, lay.contentH-legendHeight))
}

// clickStatus describes the clicked marker for the footer.
func (m Model) clickStatus() string {
	switch c := m.sel.Clicked; c.Kind {
	case quake.QuakeMarker:
		q := m.agg.Quakes()[c.Index]
		return fmt.Sprintf("quake: %s (threat radius %.0f km)", q.Title, q.ThreatRadius())
	case quake.CityMarker:
		info, _ := m.agg.Info(m.sel)
		return fmt.Sprintf("city: %s, %d quakes nearby", info.City, info.QuakesNearby)
	}
	return "all markers shown"
}
