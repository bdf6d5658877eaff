package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoomRepo handles chat rooms and their messages.
type RoomRepo struct {
	db DBTX
}

func NewRoomRepo(db DBTX) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomColumns = `id, name, kind, private, required_club, required_event, admin_only, participants`

func (r *RoomRepo) List(ctx context.Context) ([]Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *RoomRepo) Get(ctx context.Context, id string) (Room, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	return scanRoom(row)
}

func (r *RoomRepo) Upsert(ctx context.Context, room Room) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO rooms(id, name, kind, private, required_club, required_event, admin_only, participants)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 kind=excluded.kind,
	 private=excluded.private,
	 required_club=excluded.required_club,
	 required_event=excluded.required_event,
	 admin_only=excluded.admin_only,
	 participants=excluded.participants;
	`, room.ID, room.Name, room.Kind, room.Private, room.RequiredClub, room.RequiredEvent,
		room.AdminOnly, room.Participants)
	return err
}

// Messages returns the room history, oldest first.
func (r *RoomRepo) Messages(ctx context.Context, roomID string) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, room_id, sender, body, sent_at FROM messages WHERE room_id = ? ORDER BY sent_at, id`,
		roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.Sender, &m.Body, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// AppendMessage stores a new message and returns it with its generated ID.
func (r *RoomRepo) AppendMessage(ctx context.Context, roomID, sender, body string, at time.Time) (Message, error) {
	m := Message{
		ID:     uuid.NewString(),
		RoomID: roomID,
		Sender: sender,
		Body:   body,
		SentAt: at,
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages(id, room_id, sender, body, sent_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.RoomID, m.Sender, m.Body, m.SentAt)
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

func scanRoom(row rowScanner) (Room, error) {
	var room Room
	err := row.Scan(&room.ID, &room.Name, &room.Kind, &room.Private, &room.RequiredClub,
		&room.RequiredEvent, &room.AdminOnly, &room.Participants)
	return room, err
}
