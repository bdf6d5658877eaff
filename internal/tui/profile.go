package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handlePortalKey(msg, false); handled {
		return a, cmd
	}
	if msg.String() == "esc" {
		a.nav.GoBack()
	}
	return a, nil
}

func (a *App) viewProfile() string {
	who, ok := a.session.Current()
	if !ok {
		return dimStyle.Render("Not signed in.")
	}
	var b strings.Builder
	name := who.FullName
	if who.IsAdmin {
		name += " " + adminBadge.Render("ADMIN")
	}
	b.WriteString(titleStyle.Render(name) + "\n")
	b.WriteString(dimStyle.Render(who.PPMKID) + "\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(statusStyle.Render(fmt.Sprintf("%-12s", label)) + value + "\n")
	}
	row("University", who.University)
	row("Course", who.Course)
	if who.YearOfStudy > 0 {
		row("Year", fmt.Sprintf("Year %d", who.YearOfStudy))
	}
	row("Scholarship", who.Scholarship)
	row("Batch", who.Batch)
	row("Email", who.Email)
	row("Phone", who.Phone)
	if len(who.Clubs) > 0 {
		row("Clubs", strings.Join(who.Clubs, ", "))
	}
	if len(who.Events) > 0 {
		row("Events", strings.Join(who.Events, ", "))
	}
	return boxStyle.Render(b.String())
}
