package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the querying surface shared by *sql.DB and *sql.Tx, so the same
// repository code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Member is a roster row. PasswordHash is nil until the member creates an
// account through signup.
type Member struct {
	ID           string
	PPMKID       string
	NationalID   string
	FullName     string
	Email        string
	Phone        string
	University   string
	Course       string
	YearOfStudy  int
	Scholarship  string
	Batch        string
	IsAdmin      bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Clubs        []string
	Events       []string
}

// Announcement is a portal announcement row.
type Announcement struct {
	ID       string
	Title    string
	Content  string
	Author   string
	Category string
	Pinned   bool
	Likes    int
	Comments int
	PostedAt time.Time
}

// Room is a chat room row. Private rooms name the membership that grants
// access; AdminOnly rooms are visible to admins regardless.
type Room struct {
	ID            string
	Name          string
	Kind          string
	Private       bool
	RequiredClub  string
	RequiredEvent string
	AdminOnly     bool
	Participants  int
}

// Message is a chat message row.
type Message struct {
	ID     string
	RoomID string
	Sender string
	Body   string
	SentAt time.Time
}

// Channel is an organisation/event channel row.
type Channel struct {
	ID              string
	Name            string
	Description     string
	Type            string
	Status          string
	EventDate       string
	Location        string
	Author          string
	Pinned          bool
	Participants    int
	MaxParticipants int
	Reactions       int
	Comments        int
	PostedAt        time.Time
}

// ChannelPost is a broadcast post inside a channel.
type ChannelPost struct {
	ID         string
	ChannelID  string
	Author     string
	AuthorRole string
	Body       string
	System     bool
	PostedAt   time.Time
}

// Event is a calendar event row. RegisterClub/RegisterEvent name the
// membership that marks a member as registered.
type Event struct {
	ID            string
	Title         string
	Description   string
	StartsOn      string
	StartsAt      string
	Location      string
	Attendees     int
	Category      string
	RegisterClub  string
	RegisterEvent string
}
