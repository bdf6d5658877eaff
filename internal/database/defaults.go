package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ainatrbl/aina/internal/database/repository"
)

// SeedDefaults populates a fresh database with the portal's baseline content
// and the demo account. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}
	// One transaction: a failed insert leaves no partial seed behind.
	return WithTx(db, func(tx *sql.Tx) error {
		if err := seedMembers(ctx, tx); err != nil {
			return fmt.Errorf("seed members: %w", err)
		}
		if err := seedAnnouncements(ctx, tx); err != nil {
			return fmt.Errorf("seed announcements: %w", err)
		}
		if err := seedRooms(ctx, tx); err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
		if err := seedChannels(ctx, tx); err != nil {
			return fmt.Errorf("seed channels: %w", err)
		}
		if err := seedEvents(ctx, tx); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
		return nil
	})
}

// seedID derives a stable UUID from a seed label so reseeding never
// duplicates rows.
func seedID(label string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("aina:"+label)).String()
}

func seedMembers(ctx context.Context, db repository.DBTX) error {
	repo := repository.NewMemberRepo(db)

	demoHash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(demoHash)

	demo := repository.Member{
		ID:           seedID("member:demo"),
		PPMKID:       "demo",
		NationalID:   "000000-00-0000",
		FullName:     "Demo Student",
		Email:        "demo@ppmk.or.kr",
		University:   "Seoul National University",
		Course:       "Computer Science",
		YearOfStudy:  2,
		Scholarship:  "JPA",
		Batch:        "2024",
		IsAdmin:      false,
		PasswordHash: &hash,
	}
	if err := repo.Upsert(ctx, demo); err != nil {
		return err
	}
	for _, m := range []struct{ kind, name string }{
		{"club", "Badminton Club"},
		{"event", "Hackathon: Hacktopus"},
	} {
		if err := repo.AddMembership(ctx, demo.ID, m.kind, m.name); err != nil {
			return err
		}
	}

	// Roster members without accounts yet; they can complete signup through
	// the eligibility check.
	roster := []repository.Member{
		{
			ID:         seedID("member:PPMK2024-104"),
			PPMKID:     "PPMK2024-104",
			NationalID: "020315-10-5512",
			FullName:   "Aina Zulkifli",
			Email:      "aina.z@ppmk.or.kr",
			University: "KAIST",
			Course:     "Electrical Engineering",
			Batch:      "2024",
		},
		{
			ID:         seedID("member:PPMK2023-021"),
			PPMKID:     "PPMK2023-021",
			NationalID: "010822-14-3307",
			FullName:   "Hafiz Rahman",
			Email:      "hafiz.r@ppmk.or.kr",
			University: "Yonsei University",
			Course:     "Business Administration",
			Batch:      "2023",
			IsAdmin:    true,
		},
	}
	for _, m := range roster {
		if err := repo.Upsert(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func seedAnnouncements(ctx context.Context, db repository.DBTX) error {
	repo := repository.NewAnnouncementRepo(db)
	now := Now()
	list := []repository.Announcement{
		{
			Title:    "Hackathon: Hacktopus Registration Open!",
			Content:  "Join us for the biggest hackathon of the year! Hacktopus is now accepting registrations. Build innovative solutions and compete for amazing prizes.",
			Author:   "PPMK Admin",
			Category: "event",
			Pinned:   true,
			Likes:    45, Comments: 12,
			PostedAt: now.Add(-2 * time.Hour),
		},
		{
			Title:    "New Study Groups Formation",
			Content:  "We are forming new study groups for various subjects. If you are interested in joining or leading a study group, please contact the academic committee.",
			Author:   "Academic Committee",
			Category: "academic",
			Likes:    23, Comments: 8,
			PostedAt: now.Add(-5 * time.Hour),
		},
		{
			Title:    "Cultural Night - Call for Performers",
			Content:  "Showcase your talents at Cultural Night! We are looking for singers, dancers, musicians, and other performers. Auditions will be held next week.",
			Author:   "Cultural Committee",
			Category: "event",
			Likes:    67, Comments: 25,
			PostedAt: now.Add(-24 * time.Hour),
		},
		{
			Title:    "Scholarship Application Deadline Reminder",
			Content:  "Scholarship applications for the next semester are due by March 20th. Please ensure all required documents are submitted on time.",
			Author:   "PPMK Admin",
			Category: "urgent",
			Pinned:   true,
			Likes:    89, Comments: 15,
			PostedAt: now.Add(-48 * time.Hour),
		},
		{
			Title:    "Badminton Club Weekly Tournament",
			Content:  "Join us every Saturday for our weekly badminton tournament! All skill levels welcome. Equipment will be provided. Location: Sports Complex.",
			Author:   "Badminton Club",
			Category: "general",
			Likes:    34, Comments: 7,
			PostedAt: now.Add(-72 * time.Hour),
		},
	}
	for _, a := range list {
		a.ID = seedID("announcement:" + a.Title)
		if err := repo.Upsert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedRooms(ctx context.Context, db repository.DBTX) error {
	repo := repository.NewRoomRepo(db)
	rooms := []repository.Room{
		{Name: "General Discussion", Kind: "group", Participants: 45},
		{Name: "Batch 2024", Kind: "group", Participants: 28},
		{Name: "Badminton Club", Kind: "group", Participants: 12},
		{Name: "Study Group - CS", Kind: "group", Private: true, RequiredClub: "Study Group", Participants: 8},
		{Name: "Hackathon Team Alpha", Kind: "group", Private: true, RequiredEvent: "Hackathon: Hacktopus", Participants: 4},
		{Name: "Academic Committee", Kind: "group", Private: true, AdminOnly: true, Participants: 6},
	}
	for _, room := range rooms {
		room.ID = seedID("room:" + room.Name)
		if err := repo.Upsert(ctx, room); err != nil {
			return err
		}
	}

	now := Now()
	history := []struct {
		sender, body string
		ago          time.Duration
	}{
		{"Ahmad Rahman", "Hey everyone! How was the workshop today?", 50 * time.Minute},
		{"Sarah Lee", "Really informative! The instructor explained the hard parts well.", 45 * time.Minute},
		{"Ahmad Rahman", "Notes are in the shared drive if anyone missed it.", 40 * time.Minute},
	}
	roomID := seedID("room:General Discussion")
	for _, h := range history {
		if _, err := repo.AppendMessage(ctx, roomID, h.sender, h.body, now.Add(-h.ago)); err != nil {
			return err
		}
	}
	return nil
}

func seedChannels(ctx context.Context, db repository.DBTX) error {
	repo := repository.NewChannelRepo(db)
	now := Now()
	channels := []repository.Channel{
		{
			Name:        "HackPPMK25",
			Description: "Innovation for Malaysian Students in Korea. Register now and showcase your coding skills!",
			Type:        "hackathon", Status: "upcoming",
			EventDate: "Nov 15-17", Location: "Tech Hub, Building A",
			Author: "PPMK Tech Committee", Pinned: true,
			Participants: 127, MaxParticipants: 200,
			Reactions: 45, Comments: 23,
			PostedAt: now.Add(-2 * time.Hour),
		},
		{
			Name:        "KASUMA Fall 2025",
			Description: "Badminton, football, basketball and more. Registration opens next week.",
			Type:        "sports", Status: "upcoming",
			EventDate: "Mar 8-10", Location: "Sports Complex",
			Author: "KASUMA Committee", Pinned: true,
			Participants: 89, MaxParticipants: 150,
			Reactions: 38, Comments: 17,
			PostedAt: now.Add(-5 * time.Hour),
		},
		{
			Name:        "Cultural Night",
			Description: "A showcase of talents from the PPMK community.",
			Type:        "cultural", Status: "upcoming",
			EventDate: "Mar 20", Location: "Main Auditorium",
			Author: "Cultural Committee",
			Participants: 156,
			Reactions: 52, Comments: 31,
			PostedAt: now.Add(-26 * time.Hour),
		},
		{
			Name:        "Academic Conference",
			Description: "Research presentations and academic discussions.",
			Type:        "academic", Status: "completed",
			EventDate: "Feb 2", Location: "Conference Hall",
			Author: "Academic Committee",
			Participants: 67,
			Reactions: 19, Comments: 9,
			PostedAt: now.Add(-40 * 24 * time.Hour),
		},
	}
	for _, ch := range channels {
		ch.ID = seedID("channel:" + ch.Name)
		if err := repo.Upsert(ctx, ch); err != nil {
			return err
		}
	}

	posts := []repository.ChannelPost{
		{
			ChannelID: seedID("channel:HackPPMK25"),
			Author:    "PPMK Tech Committee", AuthorRole: "admin",
			Body:      "Welcome to the HackPPMK25 channel. Announcements only; questions go to the chat rooms.",
			System:    true,
			PostedAt:  now.Add(-2 * time.Hour),
		},
		{
			ChannelID: seedID("channel:HackPPMK25"),
			Author:    "PPMK Tech Committee", AuthorRole: "admin",
			Body:      "Team registration closes two weeks before the event. Solo entries will be matched into teams.",
			PostedAt:  now.Add(-90 * time.Minute),
		},
		{
			ChannelID: seedID("channel:KASUMA Fall 2025"),
			Author:    "KASUMA Committee", AuthorRole: "moderator",
			Body:      "Venue confirmed: Sports Complex halls A and B. Schedule follows next week.",
			PostedAt:  now.Add(-4 * time.Hour),
		},
	}
	for i, p := range posts {
		p.ID = seedID(fmt.Sprintf("channel_post:%s:%d", p.ChannelID, i))
		if err := repo.InsertPost(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, db repository.DBTX) error {
	repo := repository.NewEventRepo(db)
	events := []repository.Event{
		{
			Title: "Hackathon: Hacktopus", Description: "Annual hackathon competition with amazing prizes",
			StartsOn: "2026-03-15", StartsAt: "09:00", Location: "Tech Hub, Building A",
			Attendees: 89, Category: "workshop", RegisterEvent: "Hackathon: Hacktopus",
		},
		{
			Title: "Cultural Night", Description: "Showcase of talents from the PPMK community",
			StartsOn: "2026-03-20", StartsAt: "19:00", Location: "Main Auditorium",
			Attendees: 156, Category: "social", RegisterEvent: "Cultural Night",
		},
		{
			Title: "Badminton Tournament", Description: "Weekly badminton tournament for all skill levels",
			StartsOn: "2026-03-16", StartsAt: "14:00", Location: "Sports Complex",
			Attendees: 24, Category: "club", RegisterClub: "Badminton Club",
		},
		{
			Title: "Study Group - Data Structures", Description: "Weekly study session for computer science students",
			StartsOn: "2026-03-18", StartsAt: "16:00", Location: "Library Room 201",
			Attendees: 12, Category: "academic", RegisterClub: "Study Group",
		},
		{
			Title: "Photography Workshop", Description: "Learn advanced photography techniques",
			StartsOn: "2026-03-22", StartsAt: "10:00", Location: "Art Studio",
			Attendees: 18, Category: "workshop", RegisterClub: "Photography Club",
		},
		{
			Title: "Academic Conference", Description: "Research presentations and academic discussions",
			StartsOn: "2026-03-25", StartsAt: "09:00", Location: "Conference Hall",
			Attendees: 67, Category: "academic", RegisterEvent: "Academic Conference",
		},
	}
	for _, e := range events {
		e.ID = seedID("event:" + e.Title)
		if err := repo.Upsert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
