package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ainatrbl/aina/internal/nav"
)

var moreItems = []string{"My profile", "Sign out", "Quit"}

func (a *App) updateMore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handlePortalKey(msg, false); handled {
		return a, cmd
	}
	switch msg.String() {
	case "up", "k":
		a.more.cursor = moveCursor(a.more.cursor, -1, len(moreItems))
	case "down", "j":
		a.more.cursor = moveCursor(a.more.cursor, 1, len(moreItems))
	case "esc":
		a.nav.GoBack()
	case "enter":
		switch a.more.cursor {
		case 0:
			a.nav.Select(nav.ScreenProfile)
		case 1:
			a.signOut()
		case 2:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) viewMore() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("More") + "\n\n")
	for i, item := range moreItems {
		prefix := "  "
		line := item
		if i == a.more.cursor {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(item)
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("AINA · PPMK community portal"))
	return b.String()
}
