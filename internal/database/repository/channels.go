package repository

import "context"

// ChannelRepo handles organisation/event channels and their posts.
type ChannelRepo struct {
	db DBTX
}

func NewChannelRepo(db DBTX) *ChannelRepo {
	return &ChannelRepo{db: db}
}

const channelColumns = `id, name, description, type, status, event_date, location, author,
 pinned, participants, max_participants, reactions, comments, posted_at`

// List returns channels, pinned first then newest first.
func (r *ChannelRepo) List(ctx context.Context) ([]Channel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels ORDER BY pinned DESC, posted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Channel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

func (r *ChannelRepo) Get(ctx context.Context, id string) (Channel, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+channelColumns+` FROM channels WHERE id = ?`, id)
	return scanChannel(row)
}

func (r *ChannelRepo) Upsert(ctx context.Context, ch Channel) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO channels(id, name, description, type, status, event_date, location, author,
	 pinned, participants, max_participants, reactions, comments, posted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 type=excluded.type,
	 status=excluded.status,
	 event_date=excluded.event_date,
	 location=excluded.location,
	 author=excluded.author,
	 pinned=excluded.pinned,
	 participants=excluded.participants,
	 max_participants=excluded.max_participants,
	 reactions=excluded.reactions,
	 comments=excluded.comments;
	`, ch.ID, ch.Name, ch.Description, ch.Type, ch.Status, ch.EventDate, ch.Location, ch.Author,
		ch.Pinned, ch.Participants, ch.MaxParticipants, ch.Reactions, ch.Comments, ch.PostedAt)
	return err
}

// Posts returns a channel's broadcast posts, oldest first.
func (r *ChannelRepo) Posts(ctx context.Context, channelID string) ([]ChannelPost, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, channel_id, author, author_role, body, system, posted_at
	 FROM channel_posts WHERE channel_id = ? ORDER BY posted_at, id`, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ChannelPost
	for rows.Next() {
		var p ChannelPost
		if err := rows.Scan(&p.ID, &p.ChannelID, &p.Author, &p.AuthorRole, &p.Body,
			&p.System, &p.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ChannelRepo) InsertPost(ctx context.Context, p ChannelPost) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO channel_posts(id, channel_id, author, author_role, body, system, posted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ChannelID, p.Author, p.AuthorRole, p.Body, p.System, p.PostedAt)
	return err
}

func scanChannel(row rowScanner) (Channel, error) {
	var ch Channel
	err := row.Scan(&ch.ID, &ch.Name, &ch.Description, &ch.Type, &ch.Status, &ch.EventDate,
		&ch.Location, &ch.Author, &ch.Pinned, &ch.Participants, &ch.MaxParticipants,
		&ch.Reactions, &ch.Comments, &ch.PostedAt)
	return ch, err
}
