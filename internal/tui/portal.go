package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ainatrbl/aina/internal/nav"
)

// tabLabels maps each bottom-bar tab to its display name and hotkey.
var tabLabels = map[nav.Tab]string{
	nav.TabAnnouncements: "1 Home",
	nav.TabChat:          "2 Chat",
	nav.TabChannel:       "3 Channels",
	nav.TabCalendar:      "4 Calendar",
	nav.TabMore:          "5 More",
}

// portalFrame wraps an authenticated screen with the header, the tab bar and
// the footer help line.
func (a *App) portalFrame(body string) string {
	var b strings.Builder
	b.WriteString(a.headerLine() + "\n\n")
	b.WriteString(body)
	b.WriteString("\n\n" + a.tabBar() + "\n")
	b.WriteString(footerStyle.Render(renderHelp(a.keys.listHelp())))
	if a.status != "" {
		b.WriteString("\n" + statusStyle.Render(a.status))
	}
	return b.String()
}

func (a *App) headerLine() string {
	left := headerStyle.Render("AINA")
	who, ok := a.session.Current()
	if !ok {
		return left
	}
	name := statusStyle.Render(" " + who.FullName)
	if who.IsAdmin {
		name += " " + adminBadge.Render("ADMIN")
	}
	return left + name
}

func (a *App) tabBar() string {
	active := a.nav.ActiveTab()
	parts := make([]string, 0, len(nav.Tabs()))
	for _, t := range nav.Tabs() {
		style := tabInactiveSt
		if t == active {
			style = tabActiveSt
		}
		parts = append(parts, style.Render(tabLabels[t]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderHelp formats key bindings as "key action • key action".
func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
