package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/database"
	"github.com/ainatrbl/aina/internal/database/repository"
)

func newPortalServices(t *testing.T) (*DirectoryService, *MessengerService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.SeedDefaults(context.Background(), db))

	roomRepo := repository.NewRoomRepo(db)
	dir := &DirectoryService{
		Announcements: repository.NewAnnouncementRepo(db),
		Rooms:         roomRepo,
		Channels:      repository.NewChannelRepo(db),
		Events:        repository.NewEventRepo(db),
	}
	return dir, &MessengerService{Rooms: roomRepo}
}

func demoMember() auth.Identity {
	return auth.Identity{
		ID:       "demo-id",
		PPMKID:   "demo",
		FullName: "Demo Student",
		Clubs:    []string{"Badminton Club"},
		Events:   []string{"Hackathon: Hacktopus"},
	}
}

func roomNames(rooms []repository.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.Name
	}
	return out
}

func TestAnnouncementFiltering(t *testing.T) {
	t.Parallel()
	dir, _ := newPortalServices(t)
	ctx := context.Background()

	all, err := dir.ListAnnouncements(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.True(t, all[0].Pinned, "pinned announcements sort first")
	require.True(t, all[1].Pinned)

	urgent, err := dir.ListAnnouncements(ctx, "urgent")
	require.NoError(t, err)
	require.Len(t, urgent, 1)
	require.Equal(t, "urgent", urgent[0].Category)
}

func TestAccessibleRoomsHonorMemberships(t *testing.T) {
	t.Parallel()
	dir, _ := newPortalServices(t)
	ctx := context.Background()

	rooms, err := dir.AccessibleRooms(ctx, demoMember(), "")
	require.NoError(t, err)
	names := roomNames(rooms)
	require.Contains(t, names, "General Discussion")
	require.Contains(t, names, "Hackathon Team Alpha", "event membership grants access")
	require.NotContains(t, names, "Study Group - CS", "no Study Group membership")
	require.NotContains(t, names, "Academic Committee", "not an admin")
}

func TestAccessibleRoomsForAdmin(t *testing.T) {
	t.Parallel()
	dir, _ := newPortalServices(t)

	admin := auth.Identity{ID: "admin-id", PPMKID: "PPMK2023-021", FullName: "Hafiz Rahman", IsAdmin: true}
	rooms, err := dir.AccessibleRooms(context.Background(), admin, "")
	require.NoError(t, err)
	names := roomNames(rooms)
	require.Contains(t, names, "Academic Committee")
	require.NotContains(t, names, "Hackathon Team Alpha", "admin flag does not stand in for event membership")
}

func TestRoomSearchToleratesTypos(t *testing.T) {
	t.Parallel()
	dir, _ := newPortalServices(t)

	rooms, err := dir.AccessibleRooms(context.Background(), demoMember(), "badmintn")
	require.NoError(t, err)
	require.NotEmpty(t, rooms)
	require.Equal(t, "Badminton Club", rooms[0].Name)
}

func TestChannelSearch(t *testing.T) {
	t.Parallel()
	dir, _ := newPortalServices(t)
	ctx := context.Background()

	hits, err := dir.SearchChannels(ctx, "hack")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "HackPPMK25", hits[0].Name)

	all, err := dir.SearchChannels(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.True(t, all[0].Pinned, "pinned channels sort first")
}

func TestUpcomingEventsCutoff(t *testing.T) {
	t.Parallel()
	dir, _ := newPortalServices(t)

	events, err := dir.UpcomingEvents(context.Background(), "2026-03-17")
	require.NoError(t, err)
	require.Len(t, events, 4)
	require.Equal(t, "Study Group - Data Structures", events[0].Title, "soonest first")
	for _, e := range events {
		require.GreaterOrEqual(t, e.StartsOn, "2026-03-17")
	}
}

func TestRegistered(t *testing.T) {
	t.Parallel()
	who := demoMember()
	require.True(t, Registered(repository.Event{RegisterClub: "Badminton Club"}, who))
	require.True(t, Registered(repository.Event{RegisterEvent: "Hackathon: Hacktopus"}, who))
	require.False(t, Registered(repository.Event{RegisterClub: "Photography Club"}, who))
	require.False(t, Registered(repository.Event{}, who))
}

func TestMessengerPostAndHistory(t *testing.T) {
	t.Parallel()
	dir, msgr := newPortalServices(t)
	ctx := context.Background()
	who := demoMember()

	rooms, err := dir.AccessibleRooms(ctx, who, "general")
	require.NoError(t, err)
	require.NotEmpty(t, rooms)
	roomID := rooms[0].ID

	posted, err := msgr.Post(ctx, who, roomID, "  annyeong!  ")
	require.NoError(t, err)
	require.Equal(t, "annyeong!", posted.Body, "message body is trimmed")
	require.Equal(t, who.FullName, posted.Sender)

	room, history, err := msgr.Room(ctx, who, roomID)
	require.NoError(t, err)
	require.Equal(t, "General Discussion", room.Name)
	require.Equal(t, "annyeong!", history[len(history)-1].Body, "newest message last")
}

func TestMessengerDeniesNonMembers(t *testing.T) {
	t.Parallel()
	dir, msgr := newPortalServices(t)
	ctx := context.Background()

	nobody := auth.Identity{ID: "x", PPMKID: "PPMK0000-000", FullName: "Outsider"}
	rooms, err := dir.AccessibleRooms(ctx, demoMember(), "hackathon team")
	require.NoError(t, err)
	require.NotEmpty(t, rooms)
	privateID := rooms[0].ID

	_, _, err = msgr.Room(ctx, nobody, privateID)
	require.Error(t, err)

	_, err = msgr.Post(ctx, nobody, privateID, "let me in")
	require.Error(t, err)

	_, err = msgr.Post(ctx, demoMember(), privateID, "   ")
	require.Error(t, err, "blank messages are rejected")
}
