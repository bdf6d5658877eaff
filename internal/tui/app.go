// Package tui is the terminal front end of the portal. It follows the usual
// bubbletea shape: a single App model, typed messages for everything that
// touches I/O, and a View that renders exactly one screen: whichever one the
// navigation coordinator says is active.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/config"
	"github.com/ainatrbl/aina/internal/database/repository"
	"github.com/ainatrbl/aina/internal/nav"
	"github.com/ainatrbl/aina/internal/service"
	"github.com/ainatrbl/aina/internal/session"
)

// App ties together the session store, the navigation coordinator and the
// portal screens.
type App struct {
	ctx       context.Context
	cfg       config.Config
	keys      keyMap
	session   *session.Store
	nav       *nav.Coordinator
	directory *service.DirectoryService
	messenger *service.MessengerService
	tz        *time.Location

	width  int
	height int
	status string

	authForm authForm
	home     homeState
	chat     chatState
	channels channelState
	calendar calendarState
	more     moreState
}

type homeState struct {
	list     []repository.Announcement
	cursor   int
	catIndex int
}

type chatState struct {
	rooms     []repository.Room
	cursor    int
	search    textinput.Model
	searching bool
	room      repository.Room
	messages  []repository.Message
	composer  textinput.Model
}

type channelState struct {
	list      []repository.Channel
	cursor    int
	search    textinput.Model
	searching bool
	channel   repository.Channel
	posts     []repository.ChannelPost
}

type calendarState struct {
	events []repository.Event
	cursor int
}

type moreState struct {
	cursor int
}

// announcementCategories is the home screen's filter cycle.
var announcementCategories = []string{"all", "urgent", "event", "academic", "general"}

func New(ctx context.Context, cfg config.Config, store *session.Store, coord *nav.Coordinator,
	directory *service.DirectoryService, messenger *service.MessengerService, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	if cfg.UI.DateFormat == "" {
		cfg.UI.DateFormat = "02 Jan 2006"
	}
	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		keys:      newKeyMap(),
		session:   store,
		nav:       coord,
		directory: directory,
		messenger: messenger,
		tz:        tz,
	}
	a.chat.search = newSearchInput("Search chats...")
	a.chat.composer = newSearchInput("Type a message...")
	a.chat.composer.CharLimit = 500
	a.channels.search = newSearchInput("Search channels...")
	return a
}

func newSearchInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 80
	in.Width = 40
	return in
}

func (a *App) Init() tea.Cmd {
	return a.loadSession()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case sessionLoadedMsg:
		if msg.state == session.StateAuthenticated {
			if who, ok := a.session.Current(); ok {
				a.status = "Welcome back, " + who.FullName
			}
			return a, a.loadPortal()
		}
		return a, nil

	case authDoneMsg:
		a.authForm.busy = false
		if msg.err != nil {
			a.authForm.errLine = friendlyAuthError(msg.err)
			return a, nil
		}
		a.resetScreens()
		a.status = "Signed in as " + msg.identity.FullName
		return a, a.loadPortal()

	case eligibilityMsg:
		a.authForm.busy = false
		if msg.err != nil {
			a.authForm.errLine = friendlyAuthError(msg.err)
			return a, nil
		}
		a.authForm.beginPasswordStep(msg.eligibility)
		return a, nil

	case announcementsMsg:
		a.home.list = msg
		a.home.cursor = clamp(a.home.cursor, len(msg))
		return a, nil

	case roomsMsg:
		a.chat.rooms = msg
		a.chat.cursor = clamp(a.chat.cursor, len(msg))
		return a, nil

	case roomLoadedMsg:
		a.chat.room = msg.room
		a.chat.messages = msg.messages
		return a, nil

	case messagePostedMsg:
		a.chat.messages = append(a.chat.messages, repository.Message(msg))
		a.chat.composer.SetValue("")
		return a, nil

	case channelsMsg:
		a.channels.list = msg
		a.channels.cursor = clamp(a.channels.cursor, len(msg))
		return a, nil

	case channelLoadedMsg:
		a.channels.channel = msg.channel
		a.channels.posts = msg.posts
		return a, nil

	case eventsMsg:
		a.calendar.events = msg
		a.calendar.cursor = clamp(a.calendar.cursor, len(msg))
		return a, nil

	case errMsg:
		a.status = errorLine(msg.err)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKey(msg)
	}

	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.nav.Current().Screen {
	case nav.ScreenWelcome:
		return a.updateWelcome(msg)
	case nav.ScreenLogin:
		return a.updateLogin(msg)
	case nav.ScreenSignup:
		return a.updateSignup(msg)
	case nav.ScreenAnnouncements:
		return a.updateAnnouncements(msg)
	case nav.ScreenChat:
		return a.updateChatList(msg)
	case nav.ScreenChatRoom:
		return a.updateChatRoom(msg)
	case nav.ScreenChannels:
		return a.updateChannelList(msg)
	case nav.ScreenChannelDetail:
		return a.updateChannelDetail(msg)
	case nav.ScreenCalendar:
		return a.updateCalendar(msg)
	case nav.ScreenProfile:
		return a.updateProfile(msg)
	case nav.ScreenMore:
		return a.updateMore(msg)
	}
	return a, nil
}

func (a *App) View() string {
	switch a.nav.Current().Screen {
	case nav.ScreenUnknown:
		return statusStyle.Render("Loading...")
	case nav.ScreenWelcome:
		return a.viewWelcome()
	case nav.ScreenLogin:
		return a.viewLogin()
	case nav.ScreenSignup:
		return a.viewSignup()
	case nav.ScreenAnnouncements:
		return a.portalFrame(a.viewAnnouncements())
	case nav.ScreenChat:
		return a.portalFrame(a.viewChatList())
	case nav.ScreenChatRoom:
		return a.portalFrame(a.viewChatRoom())
	case nav.ScreenChannels:
		return a.portalFrame(a.viewChannelList())
	case nav.ScreenChannelDetail:
		return a.portalFrame(a.viewChannelDetail())
	case nav.ScreenCalendar:
		return a.portalFrame(a.viewCalendar())
	case nav.ScreenProfile:
		return a.portalFrame(a.viewProfile())
	case nav.ScreenMore:
		return a.portalFrame(a.viewMore())
	}
	return ""
}

// loadPortal refreshes every list the authenticated screens read.
func (a *App) loadPortal() tea.Cmd {
	return tea.Batch(
		a.loadAnnouncements(announcementCategories[a.home.catIndex]),
		a.loadRooms(""),
		a.loadChannels(""),
		a.loadEvents(),
	)
}

// handlePortalKey applies keys shared by all authenticated screens. typing
// suppresses them while a text input is focused.
func (a *App) handlePortalKey(msg tea.KeyMsg, typing bool) (bool, tea.Cmd) {
	if typing {
		return false, nil
	}
	switch msg.String() {
	case "1":
		a.nav.Select(nav.ScreenAnnouncements)
		return true, nil
	case "2":
		a.nav.Select(nav.ScreenChat)
		return true, a.loadRooms(a.chat.search.Value())
	case "3":
		a.nav.Select(nav.ScreenChannels)
		return true, a.loadChannels(a.channels.search.Value())
	case "4":
		a.nav.Select(nav.ScreenCalendar)
		return true, a.loadEvents()
	case "5":
		a.nav.Select(nav.ScreenMore)
		return true, nil
	case "p":
		a.nav.Select(nav.ScreenProfile)
		return true, nil
	case "ctrl+o":
		a.signOut()
		return true, nil
	case "q":
		return true, tea.Quit
	}
	return false, nil
}

func (a *App) signOut() {
	a.session.SignOut()
	a.resetScreens()
	a.status = "Signed out"
}

// resetScreens drops all per-screen state so nothing leaks across sessions.
func (a *App) resetScreens() {
	a.authForm = authForm{}
	a.home = homeState{}
	a.chat.rooms = nil
	a.chat.cursor = 0
	a.chat.search.SetValue("")
	a.chat.searching = false
	a.chat.room = repository.Room{}
	a.chat.messages = nil
	a.chat.composer.SetValue("")
	a.channels.list = nil
	a.channels.cursor = 0
	a.channels.search.SetValue("")
	a.channels.searching = false
	a.channels.channel = repository.Channel{}
	a.channels.posts = nil
	a.calendar = calendarState{}
	a.more = moreState{}
}

func (a *App) today() string {
	return time.Now().In(a.tz).Format("2006-01-02")
}

// formatDate renders a timestamp in the configured display timezone and
// ui.date_format layout.
func (a *App) formatDate(t time.Time) string {
	return t.In(a.tz).Format(a.cfg.UI.DateFormat)
}

func clamp(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func moveCursor(cursor, delta, length int) int {
	return clamp(cursor+delta, length)
}

func errorLine(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}

func friendlyAuthError(err error) string {
	if auth.IsTransient(err) {
		return "Service unavailable right now. Please try again."
	}
	return err.Error()
}
