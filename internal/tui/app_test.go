package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/config"
	"github.com/ainatrbl/aina/internal/database"
	"github.com/ainatrbl/aina/internal/database/repository"
	"github.com/ainatrbl/aina/internal/nav"
	"github.com/ainatrbl/aina/internal/service"
	"github.com/ainatrbl/aina/internal/session"
)

// newTestApp wires a full app over a seeded throwaway database, the way main
// does, with demo mode on so the login form comes prefilled.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, database.SeedDefaults(ctx, db))

	memberRepo := repository.NewMemberRepo(db)
	roomRepo := repository.NewRoomRepo(db)

	store := session.NewStore(auth.NewLocalProvider(memberRepo), t.TempDir())
	coord := nav.New()
	store.Subscribe(coord.OnAuthChange)

	directory := &service.DirectoryService{
		Announcements: repository.NewAnnouncementRepo(db),
		Rooms:         roomRepo,
		Channels:      repository.NewChannelRepo(db),
		Events:        repository.NewEventRepo(db),
	}
	messenger := &service.MessengerService{Rooms: roomRepo}

	cfg := config.Config{}
	cfg.UI.DemoMode = true
	cfg.UI.Timezone = "Asia/Seoul"
	cfg.UI.DateFormat = "2006/01/02"

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	require.NoError(t, err)

	return New(ctx, cfg, store, coord, directory, messenger, loc)
}

// drain runs a command synchronously and feeds every resulting message back
// through Update, flattening batches.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, a, c)
		}
		return
	}
	_, next := a.Update(msg)
	drain(t, a, next)
}

func press(t *testing.T, a *App, key tea.KeyMsg) {
	t.Helper()
	_, cmd := a.Update(key)
	drain(t, a, cmd)
}

func enter() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func escape() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFullSignInBrowseSignOutFlow(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	// Startup resolves to the welcome chooser.
	drain(t, a, a.Init())
	require.Equal(t, nav.ScreenWelcome, a.nav.Current().Screen)
	require.Equal(t, session.StateAnonymous, a.session.State())

	// Welcome -> login, form prefilled with the demo account.
	press(t, a, enter())
	require.Equal(t, nav.ScreenLogin, a.nav.Current().Screen)
	require.Equal(t, "demo", a.authForm.inputs[0].Value())

	// Enter advances to the password field, then submits.
	press(t, a, enter())
	press(t, a, enter())
	require.Equal(t, session.StateAuthenticated, a.session.State())
	require.Equal(t, nav.ScreenAnnouncements, a.nav.Current().Screen)
	require.NotEmpty(t, a.home.list, "portal data loads after sign-in")

	// Channels tab, open the first channel, back out.
	press(t, a, runes("3"))
	require.Equal(t, nav.ScreenChannels, a.nav.Current().Screen)
	require.NotEmpty(t, a.channels.list)

	press(t, a, enter())
	pos := a.nav.Current()
	require.Equal(t, nav.ScreenChannelDetail, pos.Screen)
	require.NotEmpty(t, pos.ChannelID)
	require.Equal(t, a.channels.list[0].Name, a.channels.channel.Name)

	press(t, a, escape())
	require.Equal(t, nav.ScreenChannels, a.nav.Current().Screen)
	require.Equal(t, nav.TabChannel, a.nav.ActiveTab())
	require.Empty(t, a.nav.Current().ChannelID)

	// Sign out lands on welcome with nothing left behind.
	press(t, a, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, nav.ScreenWelcome, a.nav.Current().Screen)
	require.Equal(t, session.StateAnonymous, a.session.State())
	_, ok := a.session.Current()
	require.False(t, ok)
	require.Empty(t, a.channels.list, "screen state cleared on sign-out")
}

func TestDatesUseConfiguredFormat(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)
	drain(t, a, a.Init())

	press(t, a, enter()) // welcome -> login
	press(t, a, enter()) // advance to password
	press(t, a, enter()) // submit
	require.Equal(t, session.StateAuthenticated, a.session.State())
	require.NotEmpty(t, a.home.list)

	want := a.home.list[0].PostedAt.In(a.tz).Format("2006/01/02")
	require.Contains(t, a.viewAnnouncements(), want)

	press(t, a, runes("3")) // channels tab
	press(t, a, enter())    // open the first channel
	require.NotEmpty(t, a.channels.posts)
	want = a.channels.posts[len(a.channels.posts)-1].PostedAt.In(a.tz).Format("2006/01/02")
	require.Contains(t, a.viewChannelDetail(), want)
}

func TestLoginErrorKeepsFormUsable(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)
	drain(t, a, a.Init())

	press(t, a, enter()) // welcome -> login
	a.authForm.inputs[1].SetValue("wrong-password")
	press(t, a, enter()) // advance to password
	press(t, a, enter()) // submit

	require.Equal(t, session.StateAnonymous, a.session.State())
	require.Equal(t, nav.ScreenLogin, a.nav.Current().Screen)
	require.False(t, a.authForm.busy)
	require.NotEmpty(t, a.authForm.errLine)
}

func TestSignupFlowForRosterMember(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)
	drain(t, a, a.Init())

	// Welcome -> signup.
	press(t, a, runes("j"))
	press(t, a, enter())
	require.Equal(t, nav.ScreenSignup, a.nav.Current().Screen)

	a.authForm.inputs[0].SetValue("PPMK2024-104")
	a.authForm.inputs[1].SetValue("020315-10-5512")
	press(t, a, enter()) // advance
	press(t, a, enter()) // verify
	require.Equal(t, 1, a.authForm.step, "eligibility check moves to the password step")
	require.Equal(t, "Aina Zulkifli", a.authForm.eligibility.FullName)

	a.authForm.inputs[0].SetValue("kimchi-stew")
	a.authForm.inputs[1].SetValue("kimchi-stew")
	press(t, a, enter())
	press(t, a, enter())

	require.Equal(t, session.StateAuthenticated, a.session.State())
	who, ok := a.session.Current()
	require.True(t, ok)
	require.Equal(t, "PPMK2024-104", who.PPMKID)
}
