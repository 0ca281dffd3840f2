package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"quakemap/internal/quake"
)

// tallyTable lists land quakes per country followed by the ocean total.
func tallyTable(tally quake.Tally) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "Country", Width: 28},
		{Title: "Quakes", Width: 8},
	}
	rows := make([]table.Row, 0, len(tally.Countries)+1)
	for _, c := range tally.Countries {
		rows = append(rows, table.Row{c.Country, fmt.Sprintf("%d", c.Quakes)})
	}
	rows = append(rows, table.Row{"OCEAN QUAKES", fmt.Sprintf("%d", tally.Ocean)})
	return cols, rows
}

// topTable lists the strongest quakes, largest magnitude first.
func topTable(quakes []quake.Earthquake, n int) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "Mag", Width: 5},
		{Title: "Depth", Width: 7},
		{Title: "Where", Width: 16},
		{Title: "Title", Width: 36},
	}
	idx := quake.ByMagnitude(quakes, n)
	rows := make([]table.Row, 0, len(idx))
	for _, i := range idx {
		q := quakes[i]
		where := q.Country
		if !q.OnLand {
			where = "ocean"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%.1f", q.Magnitude),
			fmt.Sprintf("%.0f km", q.Depth),
			truncate(where, 16),
			truncate(q.Title, 36),
		})
	}
	return cols, rows
}

// showOverlay fills the table for v, or closes it when v is already shown.
func (m *Model) showOverlay(v overlay) {
	if m.view == v {
		m.view = overlayNone
		m.status = "map"
		return
	}
	var cols []table.Column
	var rows []table.Row
	switch v {
	case overlayTally:
		cols, rows = tallyTable(quake.TallyByCountry(m.agg.Quakes(), m.countries))
		m.status = "quakes per country"
	case overlayTop:
		cols, rows = topTable(m.agg.Quakes(), m.topN)
		m.status = fmt.Sprintf("top %d quakes by magnitude", len(rows))
	default:
		m.view = overlayNone
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.view = v
}
