package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the top-level bubbletea model: the browse view plus a status bar.
type App struct {
	browse    *BrowseModel
	width     int
	height    int
	statusMsg string
}

// NewApp loads the current project and creates the application model.
func NewApp() (*App, error) {
	browse, err := NewBrowseModel()
	if err != nil {
		return nil, err
	}
	return &App{browse: browse}, nil
}

func (a *App) Init() tea.Cmd {
	return a.browse.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browse.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			a.browse.Close()
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	var cmd tea.Cmd
	m, cmd := a.browse.Update(msg)
	if bm, ok := m.(*BrowseModel); ok {
		a.browse = bm
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.browse.View()

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// StatusMsg carries a transient message for the status bar.
type StatusMsg string
