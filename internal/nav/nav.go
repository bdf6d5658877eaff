// Package nav decides which screen is visible. One Position value is active
// at a time; there is no way to represent two screens shown at once, which is
// the point.
package nav

import (
	"sync"

	"github.com/ainatrbl/aina/internal/session"
)

// Screen is the exclusive set of full-screen views.
type Screen string

const (
	// ScreenUnknown mirrors the session store's startup state; it is shown
	// until the first OnAuthChange.
	ScreenUnknown Screen = "unknown"

	// Unauthenticated flow.
	ScreenWelcome Screen = "welcome"
	ScreenLogin   Screen = "login"
	ScreenSignup  Screen = "signup"

	// Authenticated portal.
	ScreenAnnouncements Screen = "announcements"
	ScreenChat          Screen = "chat"
	ScreenChatRoom      Screen = "chat_room"
	ScreenChannels      Screen = "channels"
	ScreenChannelDetail Screen = "channel_detail"
	ScreenCalendar      Screen = "calendar"
	ScreenProfile       Screen = "profile"
	ScreenMore          Screen = "more"
)

// Tab identifies a bottom-bar entry, used purely for highlighting.
type Tab string

const (
	TabAnnouncements Tab = "announcements"
	TabChat          Tab = "chat"
	TabChannel       Tab = "channel"
	TabCalendar      Tab = "calendar"
	TabMore          Tab = "more"
)

// Tabs lists the bottom-bar entries in display order.
func Tabs() []Tab {
	return []Tab{TabAnnouncements, TabChat, TabChannel, TabCalendar, TabMore}
}

// Position is the current navigation state. RoomID is set only for
// ScreenChatRoom and ChannelID only for ScreenChannelDetail; selecting any
// other screen clears both.
type Position struct {
	Screen    Screen
	RoomID    string
	ChannelID string
}

// Coordinator owns the visible-screen selection. It raises no errors: inputs
// arrive pre-validated from the UI layer. The mutex is there because session
// store subscribers run on command goroutines while the UI loop reads Current.
type Coordinator struct {
	mu  sync.Mutex
	pos Position
	tab Tab
}

func New() *Coordinator {
	return &Coordinator{
		pos: Position{Screen: ScreenUnknown},
		tab: TabAnnouncements,
	}
}

// Current returns the active position.
func (c *Coordinator) Current() Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// ActiveTab returns the bottom-bar entry to highlight.
func (c *Coordinator) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// Select switches to a parameterless screen, clearing any room or channel
// selection. Tab highlighting follows the five tab screens; Profile keeps the
// prior tab, matching how the header shortcut behaves.
func (c *Coordinator) Select(s Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectLocked(s)
}

func (c *Coordinator) selectLocked(s Screen) {
	c.pos = Position{Screen: s}
	switch s {
	case ScreenAnnouncements:
		c.tab = TabAnnouncements
	case ScreenChat:
		c.tab = TabChat
	case ScreenChannels:
		c.tab = TabChannel
	case ScreenCalendar:
		c.tab = TabCalendar
	case ScreenMore:
		c.tab = TabMore
	case ScreenWelcome, ScreenLogin, ScreenSignup, ScreenUnknown:
		c.tab = TabAnnouncements
	}
}

// OpenRoom drills into a chat room from the chat list.
func (c *Coordinator) OpenRoom(roomID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = Position{Screen: ScreenChatRoom, RoomID: roomID}
	c.tab = TabChat
}

// OpenChannel drills into a channel from the channel list.
func (c *Coordinator) OpenChannel(channelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = Position{Screen: ScreenChannelDetail, ChannelID: channelID}
	c.tab = TabChannel
}

// GoBack applies each variant's deterministic return target: detail views
// return to their parent list with that list's tab active; top-level views
// return home; auth sub-screens return to the welcome chooser.
func (c *Coordinator) GoBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.pos.Screen {
	case ScreenChatRoom:
		c.selectLocked(ScreenChat)
	case ScreenChannelDetail:
		c.selectLocked(ScreenChannels)
	case ScreenLogin, ScreenSignup:
		c.selectLocked(ScreenWelcome)
	case ScreenChat, ScreenChannels, ScreenCalendar, ScreenMore, ScreenProfile, ScreenAnnouncements:
		c.selectLocked(ScreenAnnouncements)
	}
	// Welcome and Unknown have nowhere to go back to.
}

// OnAuthChange reacts to session store transitions. Anonymous discards all
// navigation state and shows the welcome chooser; Authenticated lands on the
// announcements home with no stale sub-selections.
func (c *Coordinator) OnAuthChange(st session.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch st {
	case session.StateAnonymous:
		c.selectLocked(ScreenWelcome)
	case session.StateAuthenticated:
		c.selectLocked(ScreenAnnouncements)
	case session.StateUnknown:
		c.pos = Position{Screen: ScreenUnknown}
		c.tab = TabAnnouncements
	}
}
