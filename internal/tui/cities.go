package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"quakemap/internal/quake"
)

type cityItem struct {
	title, desc string
	index       int
}

func (c cityItem) Title() string       { return c.title }
func (c cityItem) Description() string { return c.desc }
func (c cityItem) FilterValue() string { return c.title }

// cityItems keeps city order so item.index maps straight back into the arena.
func cityItems(cities []quake.City) []list.Item {
	items := make([]list.Item, 0, len(cities))
	for i, c := range cities {
		desc := c.Country
		if c.Population > 0 {
			desc = fmt.Sprintf("%s  pop %.1fM", c.Country, c.Population)
		}
		items = append(items, cityItem{title: c.Name, desc: desc, index: i})
	}
	return items
}

// pickCity selects the highlighted city as if it had been clicked.
func (m *Model) pickCity() {
	it, ok := m.l.SelectedItem().(cityItem)
	if !ok {
		return
	}
	m.sel = m.agg.SelectCity(m.sel, it.index)
	m.view = overlayNone
	m.status = m.clickStatus()
}
