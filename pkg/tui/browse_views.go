package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gidipin/gidisearch/pkg/models"
)

func (m *BrowseModel) View() string {
	var sections []string

	header := titleStyle.Render("GIDISEARCH")
	count := countStyle.Render(fmt.Sprintf("%d items", len(m.results)))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, header, " ", count))

	sections = append(sections, m.searchBar.View())

	if m.showHistory {
		sections = append(sections, m.historyView())
	} else {
		sections = append(sections, m.resultsView())
		if m.settings.UI.ShowDetails {
			if detail := m.detailView(); detail != "" {
				sections = append(sections, detail)
			}
		}
	}

	sections = append(sections, m.helpView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *BrowseModel) resultsView() string {
	if len(m.results) == 0 {
		if m.controller.IsSearching() {
			return emptyStyle.Render("Searching...")
		}
		return emptyStyle.Render("No matching items")
	}

	var b strings.Builder
	for i, item := range m.results {
		line := m.renderItem(item, i == m.cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *BrowseModel) renderItem(item models.SearchableItem, selected bool) string {
	icon := typeIcon(models.NormalizeItemType(item.Type))
	label := fmt.Sprintf("%s %s", icon, item.Title)

	meta := typeStyle.Render(models.NormalizeItemType(item.Type))
	if len(item.Tags) > 0 {
		meta += " " + tagStyle.Render("["+strings.Join(item.Tags, ", ")+"]")
	}

	if selected {
		return selectedItemStyle.Render("▸ "+label) + " " + meta
	}
	return itemStyle.Render(label) + " " + meta
}

func (m *BrowseModel) detailView() string {
	if m.cursor >= len(m.results) {
		return ""
	}
	item := m.results[m.cursor]
	if item.Description == "" && len(item.Metadata) == 0 {
		return ""
	}

	width := m.width - 8
	if width < 20 {
		width = 20
	}

	var lines []string
	if item.Description != "" {
		lines = append(lines, wordwrap.String(item.Description, width))
	}
	for key, value := range item.Metadata {
		lines = append(lines, countStyle.Render(fmt.Sprintf("%s: %s", key, value)))
	}

	return detailStyle.Width(width + 2).Render(strings.Join(lines, "\n"))
}

func (m *BrowseModel) historyView() string {
	entries := m.controller.History()

	var b strings.Builder
	b.WriteString(historyTitleStyle.Render("RECENT SEARCHES"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(emptyStyle.Render("No search history"))
		b.WriteString("\n")
		return b.String()
	}

	for i, entry := range entries {
		if i == m.historyCursor {
			b.WriteString(selectedItemStyle.Render("▸ " + entry))
		} else {
			b.WriteString(itemStyle.Render(entry))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *BrowseModel) helpView() string {
	if m.showHistory {
		return helpStyle.Render("↑/↓ navigate • enter search again • d delete • c clear all • esc close")
	}
	return helpStyle.Render("↑/↓ navigate • ctrl+r history • ctrl+y copy id • esc clear • ctrl+c quit")
}
