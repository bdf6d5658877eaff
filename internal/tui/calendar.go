package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ainatrbl/aina/internal/service"
)

func (a *App) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handlePortalKey(msg, false); handled {
		return a, cmd
	}
	switch msg.String() {
	case "up", "k":
		a.calendar.cursor = moveCursor(a.calendar.cursor, -1, len(a.calendar.events))
	case "down", "j":
		a.calendar.cursor = moveCursor(a.calendar.cursor, 1, len(a.calendar.events))
	case "esc":
		a.nav.GoBack()
	}
	return a, nil
}

func (a *App) viewCalendar() string {
	who, _ := a.session.Current()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upcoming Events") + "\n\n")
	if len(a.calendar.events) == 0 {
		b.WriteString(dimStyle.Render("Nothing coming up."))
		return b.String()
	}
	for i, ev := range a.calendar.events {
		prefix := "  "
		if i == a.calendar.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := ev.Title
		if service.Registered(ev, who) {
			line += " " + successStyle.Render("✓ registered")
		}
		meta := fmt.Sprintf(" [%s]", categoryStyle(ev.Category).Render(ev.Category))
		b.WriteString(prefix + line + meta + "\n")
		b.WriteString("    " + dimStyle.Render(ev.StartsOn+" "+ev.StartsAt+" · "+ev.Location) + "\n")
	}
	sel := a.calendar.events[a.calendar.cursor]
	b.WriteString("\n" + boxStyle.Render(sel.Description+"\n"+
		dimStyle.Render(fmt.Sprintf("%d attending", sel.Attendees))))
	return b.String()
}
