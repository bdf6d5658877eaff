package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateAnnouncements(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handlePortalKey(msg, false); handled {
		return a, cmd
	}
	switch msg.String() {
	case "up", "k":
		a.home.cursor = moveCursor(a.home.cursor, -1, len(a.home.list))
	case "down", "j":
		a.home.cursor = moveCursor(a.home.cursor, 1, len(a.home.list))
	case "f":
		a.home.catIndex = (a.home.catIndex + 1) % len(announcementCategories)
		a.home.cursor = 0
		return a, a.loadAnnouncements(announcementCategories[a.home.catIndex])
	case "esc":
		a.nav.GoBack()
	}
	return a, nil
}

func (a *App) viewAnnouncements() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Announcements"))
	b.WriteString(dimStyle.Render("  filter: "+announcementCategories[a.home.catIndex]) + "\n\n")
	if len(a.home.list) == 0 {
		b.WriteString(dimStyle.Render("No announcements."))
		return b.String()
	}
	for i, ann := range a.home.list {
		prefix := "  "
		if i == a.home.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := ann.Title
		if ann.Pinned {
			line = pinnedStyle.Render("📌 ") + line
		}
		meta := fmt.Sprintf(" [%s] %s · %s",
			categoryStyle(ann.Category).Render(ann.Category),
			ann.Author,
			a.formatDate(ann.PostedAt))
		b.WriteString(prefix + line + dimStyle.Render(meta) + "\n")
	}
	sel := a.home.list[a.home.cursor]
	b.WriteString("\n" + boxStyle.Render(sel.Content+"\n"+
		dimStyle.Render(fmt.Sprintf("♥ %d   💬 %d", sel.Likes, sel.Comments))))
	return b.String()
}
