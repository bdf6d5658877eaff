package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateChatList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &a.chat
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
			return a, a.loadRooms("")
		}
		a.nav.GoBack()
		return a, nil
	case "up", "k":
		if !c.searching {
			c.cursor = moveCursor(c.cursor, -1, len(c.rooms))
			return a, nil
		}
	case "down", "j":
		if !c.searching {
			c.cursor = moveCursor(c.cursor, 1, len(c.rooms))
			return a, nil
		}
	case "enter":
		if c.searching {
			c.searching = false
			c.search.Blur()
			return a, nil
		}
		if len(c.rooms) == 0 {
			return a, nil
		}
		room := c.rooms[c.cursor]
		a.nav.OpenRoom(room.ID)
		return a, a.loadRoom(room.ID)
	}
	if c.searching {
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(msg)
		c.cursor = 0
		return a, tea.Batch(cmd, a.loadRooms(c.search.Value()))
	}
	return a, nil
}

func (a *App) viewChatList() string {
	c := &a.chat
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chats") + "\n\n")
	if c.searching || c.search.Value() != "" {
		b.WriteString(c.search.View() + "\n\n")
	}
	if len(c.rooms) == 0 {
		b.WriteString(dimStyle.Render("No chats found."))
		return b.String()
	}
	for i, room := range c.rooms {
		prefix := "  "
		if i == c.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := room.Name
		var tags []string
		if room.Private {
			tags = append(tags, "private")
		}
		if room.AdminOnly {
			tags = append(tags, "admin")
		}
		meta := fmt.Sprintf(" · %d members", room.Participants)
		if len(tags) > 0 {
			meta += " · " + strings.Join(tags, ", ")
		}
		b.WriteString(prefix + line + dimStyle.Render(meta) + "\n")
	}
	return b.String()
}

func (a *App) updateChatRoom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &a.chat
	switch msg.String() {
	case "esc":
		a.nav.GoBack()
		c.composer.SetValue("")
		return a, a.loadRooms(c.search.Value())
	case "enter":
		body := strings.TrimSpace(c.composer.Value())
		if body == "" {
			return a, nil
		}
		return a, a.postMessage(c.room.ID, body)
	case "ctrl+o":
		a.signOut()
		return a, nil
	}
	if !c.composer.Focused() {
		c.composer.Focus()
	}
	var cmd tea.Cmd
	c.composer, cmd = c.composer.Update(msg)
	return a, cmd
}

func (a *App) viewChatRoom() string {
	c := &a.chat
	who, _ := a.session.Current()
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.room.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d members", c.room.Participants)) + "\n\n")
	if len(c.messages) == 0 {
		b.WriteString(dimStyle.Render("No messages yet. Say hi!") + "\n")
	}
	for _, m := range c.messages {
		sender := m.Sender
		style := statusStyle
		if sender == who.FullName {
			sender = "You"
			style = ownMsgStyle
		}
		stamp := dimStyle.Render(m.SentAt.In(a.tz).Format("15:04"))
		b.WriteString(style.Render(sender) + " " + stamp + "\n")
		b.WriteString("  " + m.Body + "\n")
	}
	b.WriteString("\n" + c.composer.View())
	return b.String()
}
