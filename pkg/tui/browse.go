package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gidipin/gidisearch/pkg/files"
	"github.com/gidipin/gidisearch/pkg/models"
	"github.com/gidipin/gidisearch/pkg/search"
	"github.com/gidipin/gidisearch/pkg/search/history"
	"github.com/gidipin/gidisearch/pkg/search/session"
)

// sessionUpdateMsg signals that a debounced search pass has landed and
// the model should re-read the session state.
type sessionUpdateMsg struct{}

// BrowseModel is the interactive search view: a search bar feeding the
// session controller, a results list and an optional history overlay.
type BrowseModel struct {
	searchBar  *SearchBar
	controller *session.Controller
	settings   *models.Settings
	allItems   []models.SearchableItem

	results       []models.SearchableItem
	cursor        int
	showHistory   bool
	historyCursor int

	width  int
	height int
}

// NewBrowseModel loads the catalog and settings and wires up a search
// session over them.
func NewBrowseModel() (*BrowseModel, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}

	items, err := files.LoadAllItems()
	if err != nil {
		return nil, err
	}

	store := history.NewStore(history.NewFileStorage(files.GidiDir))
	cfg := session.Config{
		MinQueryLength:   settings.Search.MinQueryLength,
		DebounceInterval: time.Duration(settings.Search.DebounceMs) * time.Millisecond,
		SaveHistory:      settings.Search.SaveHistory,
		Ranker: search.Options{
			Threshold: settings.Search.Threshold,
			Limit:     settings.Search.Limit,
		},
	}

	m := &BrowseModel{
		searchBar:  NewSearchBar(),
		settings:   settings,
		allItems:   items,
		results:    items,
	}
	m.controller = session.NewController(m.source, store, cfg)
	m.searchBar.SetActive(true)

	return m, nil
}

// source supplies the loaded catalog to each search pass.
func (m *BrowseModel) source() []models.SearchableItem {
	return m.allItems
}

func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.searchBar.Focus(), m.waitForSession())
}

// waitForSession blocks on the controller's update channel and turns
// each signal into a message.
func (m *BrowseModel) waitForSession() tea.Cmd {
	updates := m.controller.Updates()
	return func() tea.Msg {
		<-updates
		return sessionUpdateMsg{}
	}
}

// Close cancels any pending search pass.
func (m *BrowseModel) Close() {
	m.controller.Close()
}

// SetSize updates the layout dimensions.
func (m *BrowseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionUpdateMsg:
		m.refreshResults()
		return m, m.waitForSession()

	case tea.KeyMsg:
		if m.showHistory {
			return m.updateHistoryOverlay(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *BrowseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Clear the search and fall back to browsing everything.
		m.searchBar.Reset()
		m.controller.SetQuery("")
		m.results = m.allItems
		m.cursor = 0
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case "ctrl+r":
		m.showHistory = true
		m.historyCursor = 0
		return m, nil

	case "ctrl+y":
		return m, m.copySelectedID()

	default:
		var cmd tea.Cmd
		before := m.searchBar.Value()
		m.searchBar, cmd = m.searchBar.Update(msg)
		if after := m.searchBar.Value(); after != before {
			m.controller.SetQuery(after)
		}
		return m, cmd
	}
}

func (m *BrowseModel) updateHistoryOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.controller.History()

	switch msg.String() {
	case "esc", "ctrl+r":
		m.showHistory = false
		return m, nil

	case "up":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
		return m, nil

	case "down":
		if m.historyCursor < len(entries)-1 {
			m.historyCursor++
		}
		return m, nil

	case "enter":
		if m.historyCursor < len(entries) {
			q := entries[m.historyCursor]
			m.searchBar.SetValue(q)
			m.controller.SetQuery(q)
		}
		m.showHistory = false
		return m, nil

	case "d":
		if m.historyCursor < len(entries) {
			m.controller.RemoveFromHistory(entries[m.historyCursor])
			if m.historyCursor > 0 {
				m.historyCursor--
			}
		}
		return m, nil

	case "c":
		m.controller.ClearHistory()
		m.historyCursor = 0
		return m, nil
	}

	return m, nil
}

// refreshResults re-reads the session state after a pass lands. Short
// or empty queries fall back to browsing the whole catalog.
func (m *BrowseModel) refreshResults() {
	query := strings.TrimSpace(m.controller.Query())
	if len(query) < m.settings.Search.MinQueryLength {
		m.results = m.allItems
	} else {
		m.results = m.controller.Results()
	}

	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// copySelectedID puts the selected item's ID on the system clipboard.
func (m *BrowseModel) copySelectedID() tea.Cmd {
	if m.cursor >= len(m.results) {
		return nil
	}
	item := m.results[m.cursor]

	if err := clipboard.WriteAll(item.ID); err != nil {
		return func() tea.Msg {
			return StatusMsg(fmt.Sprintf("Copy failed: %v", err))
		}
	}
	return func() tea.Msg {
		return StatusMsg(fmt.Sprintf("Copied %s to clipboard", item.ID))
	}
}
