package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateChannelList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &a.channels
	if handled, cmd := a.handlePortalKey(msg, c.searching); handled {
		return a, cmd
	}
	switch msg.String() {
	case "/":
		if !c.searching {
			c.searching = true
			c.search.Focus()
			return a, nil
		}
	case "esc":
		if c.searching {
			c.searching = false
			c.search.Blur()
			c.search.SetValue("")
			return a, a.loadChannels("")
		}
		a.nav.GoBack()
		return a, nil
	case "up", "k":
		if !c.searching {
			c.cursor = moveCursor(c.cursor, -1, len(c.list))
			return a, nil
		}
	case "down", "j":
		if !c.searching {
			c.cursor = moveCursor(c.cursor, 1, len(c.list))
			return a, nil
		}
	case "enter":
		if c.searching {
			c.searching = false
			c.search.Blur()
			return a, nil
		}
		if len(c.list) == 0 {
			return a, nil
		}
		ch := c.list[c.cursor]
		a.nav.OpenChannel(ch.ID)
		return a, a.loadChannel(ch.ID)
	}
	if c.searching {
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(msg)
		c.cursor = 0
		return a, tea.Batch(cmd, a.loadChannels(c.search.Value()))
	}
	return a, nil
}

func (a *App) viewChannelList() string {
	c := &a.channels
	var b strings.Builder
	b.WriteString(titleStyle.Render("Channels") + "\n\n")
	if c.searching || c.search.Value() != "" {
		b.WriteString(c.search.View() + "\n\n")
	}
	if len(c.list) == 0 {
		b.WriteString(dimStyle.Render("No channels found."))
		return b.String()
	}
	for i, ch := range c.list {
		prefix := "  "
		if i == c.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := ch.Name
		if ch.Pinned {
			line = pinnedStyle.Render("📌 ") + line
		}
		meta := " [" + categoryStyle(ch.Type).Render(ch.Type) + "] " +
			statusColor(ch.Status).Render(ch.Status)
		if ch.MaxParticipants > 0 {
			meta += dimStyle.Render(fmt.Sprintf(" · %d/%d joined", ch.Participants, ch.MaxParticipants))
		}
		b.WriteString(prefix + line + meta + "\n")
	}
	return b.String()
}

func (a *App) updateChannelDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handlePortalKey(msg, false); handled {
		return a, cmd
	}
	if msg.String() == "esc" {
		a.nav.GoBack()
		return a, a.loadChannels(a.channels.search.Value())
	}
	return a, nil
}

func (a *App) viewChannelDetail() string {
	c := &a.channels
	ch := c.channel
	var b strings.Builder
	b.WriteString(titleStyle.Render(ch.Name))
	b.WriteString(" [" + categoryStyle(ch.Type).Render(ch.Type) + "] " +
		statusColor(ch.Status).Render(ch.Status) + "\n")
	if ch.EventDate != "" || ch.Location != "" {
		b.WriteString(dimStyle.Render(strings.TrimSpace(ch.EventDate+"  "+ch.Location)) + "\n")
	}
	b.WriteString("\n" + ch.Description + "\n\n")
	if len(c.posts) == 0 {
		b.WriteString(dimStyle.Render("No posts yet."))
		return b.String()
	}
	for _, p := range c.posts {
		if p.System {
			b.WriteString(dimStyle.Render("· "+p.Body) + "\n")
			continue
		}
		author := p.Author
		if p.AuthorRole == "admin" {
			author += " " + adminBadge.Render("ADMIN")
		}
		stamp := dimStyle.Render(a.formatDate(p.PostedAt) + p.PostedAt.In(a.tz).Format(" 15:04"))
		b.WriteString(statusStyle.Render(author) + " " + stamp + "\n")
		b.WriteString("  " + p.Body + "\n")
	}
	return b.String()
}
