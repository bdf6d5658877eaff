package repository

import "context"

// EventRepo handles calendar events.
type EventRepo struct {
	db DBTX
}

func NewEventRepo(db DBTX) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, title, description, starts_on, starts_at, location, attendees,
 category, register_club, register_event`

// List returns all events ordered by date.
func (r *EventRepo) List(ctx context.Context) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY starts_on, starts_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartsOn, &e.StartsAt,
			&e.Location, &e.Attendees, &e.Category, &e.RegisterClub, &e.RegisterEvent); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepo) Upsert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(id, title, description, starts_on, starts_at, location, attendees,
	 category, register_club, register_event)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 description=excluded.description,
	 starts_on=excluded.starts_on,
	 starts_at=excluded.starts_at,
	 location=excluded.location,
	 attendees=excluded.attendees,
	 category=excluded.category,
	 register_club=excluded.register_club,
	 register_event=excluded.register_event;
	`, e.ID, e.Title, e.Description, e.StartsOn, e.StartsAt, e.Location, e.Attendees,
		e.Category, e.RegisterClub, e.RegisterEvent)
	return err
}
