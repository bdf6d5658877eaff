package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/database/repository"
	"github.com/ainatrbl/aina/internal/session"
)

type sessionLoadedMsg struct {
	state session.State
}

type authDoneMsg struct {
	identity auth.Identity
	err      error
}

type eligibilityMsg struct {
	eligibility auth.Eligibility
	err         error
}

type announcementsMsg []repository.Announcement

type roomsMsg []repository.Room

type roomLoadedMsg struct {
	room     repository.Room
	messages []repository.Message
}

type channelsMsg []repository.Channel

type channelLoadedMsg struct {
	channel repository.Channel
	posts   []repository.ChannelPost
}

type eventsMsg []repository.Event

type messagePostedMsg repository.Message

type errMsg struct {
	err error
}

func (a *App) loadSession() tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{state: a.session.Load()}
	}
}

func (a *App) signIn(ppmkID, password string) tea.Cmd {
	return func() tea.Msg {
		id, err := a.session.SignIn(a.ctx, ppmkID, password)
		return authDoneMsg{identity: id, err: err}
	}
}

func (a *App) signUp(ppmkID, password string) tea.Cmd {
	return func() tea.Msg {
		id, err := a.session.SignUp(a.ctx, ppmkID, password)
		return authDoneMsg{identity: id, err: err}
	}
}

func (a *App) verifyEligibility(ppmkID, nationalID string) tea.Cmd {
	return func() tea.Msg {
		el, err := a.session.VerifyEligibility(a.ctx, ppmkID, nationalID)
		return eligibilityMsg{eligibility: el, err: err}
	}
}

func (a *App) loadAnnouncements(category string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.directory.ListAnnouncements(a.ctx, category)
		if err != nil {
			return errMsg{err}
		}
		return announcementsMsg(list)
	}
}

func (a *App) loadRooms(query string) tea.Cmd {
	who, _ := a.session.Current()
	return func() tea.Msg {
		list, err := a.directory.AccessibleRooms(a.ctx, who, query)
		if err != nil {
			return errMsg{err}
		}
		return roomsMsg(list)
	}
}

func (a *App) loadRoom(roomID string) tea.Cmd {
	who, _ := a.session.Current()
	return func() tea.Msg {
		room, msgs, err := a.messenger.Room(a.ctx, who, roomID)
		if err != nil {
			return errMsg{err}
		}
		return roomLoadedMsg{room: room, messages: msgs}
	}
}

func (a *App) postMessage(roomID, body string) tea.Cmd {
	who, _ := a.session.Current()
	return func() tea.Msg {
		m, err := a.messenger.Post(a.ctx, who, roomID, body)
		if err != nil {
			return errMsg{err}
		}
		return messagePostedMsg(m)
	}
}

func (a *App) loadChannels(query string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.directory.SearchChannels(a.ctx, query)
		if err != nil {
			return errMsg{err}
		}
		return channelsMsg(list)
	}
}

func (a *App) loadChannel(channelID string) tea.Cmd {
	return func() tea.Msg {
		ch, err := a.directory.Channels.Get(a.ctx, channelID)
		if err != nil {
			return errMsg{err}
		}
		posts, err := a.directory.Channels.Posts(a.ctx, channelID)
		if err != nil {
			return errMsg{err}
		}
		return channelLoadedMsg{channel: ch, posts: posts}
	}
}

func (a *App) loadEvents() tea.Cmd {
	today := a.today()
	return func() tea.Msg {
		list, err := a.directory.UpcomingEvents(a.ctx, today)
		if err != nil {
			return errMsg{err}
		}
		return eventsMsg(list)
	}
}
