package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// MemberRepo handles the member roster and memberships.
type MemberRepo struct {
	db DBTX
}

func NewMemberRepo(db DBTX) *MemberRepo {
	return &MemberRepo{db: db}
}

const memberColumns = `id, ppmk_id, national_id, full_name, email, phone, university, course,
 year_of_study, scholarship, batch, is_admin, password_hash, created_at, updated_at`

func (r *MemberRepo) GetByPPMKID(ctx context.Context, ppmkID string) (Member, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE ppmk_id = ?`, ppmkID)
	m, err := scanMember(row)
	if err != nil {
		return Member{}, err
	}
	if err := r.loadMemberships(ctx, &m); err != nil {
		return Member{}, err
	}
	return m, nil
}

// SetPassword stores the bcrypt hash for a member and bumps updated_at.
func (r *MemberRepo) SetPassword(ctx context.Context, ppmkID, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE members SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE ppmk_id = ?`,
		hash, ppmkID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *MemberRepo) Upsert(ctx context.Context, m Member) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO members(id, ppmk_id, national_id, full_name, email, phone, university, course,
	 year_of_study, scholarship, batch, is_admin, password_hash, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(ppmk_id) DO UPDATE SET
	 national_id=excluded.national_id,
	 full_name=excluded.full_name,
	 email=excluded.email,
	 phone=excluded.phone,
	 university=excluded.university,
	 course=excluded.course,
	 year_of_study=excluded.year_of_study,
	 scholarship=excluded.scholarship,
	 batch=excluded.batch,
	 is_admin=excluded.is_admin,
	 updated_at=CURRENT_TIMESTAMP;
	`, m.ID, m.PPMKID, m.NationalID, m.FullName, m.Email, m.Phone, m.University, m.Course,
		m.YearOfStudy, m.Scholarship, m.Batch, m.IsAdmin, m.PasswordHash)
	return err
}

func (r *MemberRepo) AddMembership(ctx context.Context, memberID, kind, name string) error {
	if kind != "club" && kind != "event" {
		return fmt.Errorf("membership kind %q not recognised", kind)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO memberships(member_id, kind, name) VALUES (?, ?, ?)
	ON CONFLICT(member_id, kind, name) DO NOTHING;
	`, memberID, kind, name)
	return err
}

func (r *MemberRepo) loadMemberships(ctx context.Context, m *Member) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, name FROM memberships WHERE member_id = ? ORDER BY name`, m.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var kind, name string
		if err := rows.Scan(&kind, &name); err != nil {
			return err
		}
		switch kind {
		case "club":
			m.Clubs = append(m.Clubs, name)
		case "event":
			m.Events = append(m.Events, name)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.PPMKID, &m.NationalID, &m.FullName, &m.Email, &m.Phone,
		&m.University, &m.Course, &m.YearOfStudy, &m.Scholarship, &m.Batch, &m.IsAdmin,
		&m.PasswordHash, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
