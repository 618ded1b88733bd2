package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return &App{browse: newTestBrowseModel(t), width: 80, height: 24}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)

	updated, _ := app.Update(StatusMsg("Copied p1 to clipboard"))
	a := updated.(*App)

	if a.statusMsg != "Copied p1 to clipboard" {
		t.Errorf("expected status message, got %q", a.statusMsg)
	}
	if !strings.Contains(a.View(), "Copied p1 to clipboard") {
		t.Error("expected status bar in view")
	}
}

func TestAppWindowSizePropagates(t *testing.T) {
	app := newTestApp(t)

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a := updated.(*App)

	if a.width != 120 || a.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", a.width, a.height)
	}
	if a.browse.width != 120 {
		t.Errorf("expected browse width 120, got %d", a.browse.width)
	}
}

func TestAppViewBeforeFirstResize(t *testing.T) {
	app := &App{browse: newTestBrowseModel(t)}
	if got := app.View(); got != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", got)
	}
}
