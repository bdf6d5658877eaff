package repository

import "context"

// AnnouncementRepo handles portal announcements.
type AnnouncementRepo struct {
	db DBTX
}

func NewAnnouncementRepo(db DBTX) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

// List returns announcements, pinned first then newest first. An empty or
// "all" category returns everything.
func (r *AnnouncementRepo) List(ctx context.Context, category string) ([]Announcement, error) {
	query := `SELECT id, title, content, author, category, pinned, likes, comments, posted_at
	 FROM announcements`
	args := []any{}
	if category != "" && category != "all" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY pinned DESC, posted_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.Category,
			&a.Pinned, &a.Likes, &a.Comments, &a.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnnouncementRepo) Upsert(ctx context.Context, a Announcement) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO announcements(id, title, content, author, category, pinned, likes, comments, posted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 content=excluded.content,
	 author=excluded.author,
	 category=excluded.category,
	 pinned=excluded.pinned,
	 likes=excluded.likes,
	 comments=excluded.comments;
	`, a.ID, a.Title, a.Content, a.Author, a.Category, a.Pinned, a.Likes, a.Comments, a.PostedAt)
	return err
}
