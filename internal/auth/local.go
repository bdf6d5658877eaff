package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ainatrbl/aina/internal/database/repository"
)

// LocalProvider verifies credentials against the bundled member roster. It
// implements the same three operations the hosted service exposes, which
// makes it the offline/demo backend and the test double for everything that
// consumes the Provider contract.
type LocalProvider struct {
	members *repository.MemberRepo
}

func NewLocalProvider(members *repository.MemberRepo) *LocalProvider {
	return &LocalProvider{members: members}
}

func (p *LocalProvider) Authenticate(ctx context.Context, ppmkID, password string) (Identity, error) {
	ppmkID = strings.TrimSpace(ppmkID)
	m, err := p.members.GetByPPMKID(ctx, ppmkID)
	if errors.Is(err, sql.ErrNoRows) {
		return Identity{}, ErrBadCredentials
	}
	if err != nil {
		return Identity{}, &TransientError{Err: err}
	}
	if m.PasswordHash == nil {
		return Identity{}, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*m.PasswordHash), []byte(password)) != nil {
		return Identity{}, ErrBadCredentials
	}
	return identityFromMember(m), nil
}

func (p *LocalProvider) CreateAccount(ctx context.Context, ppmkID, password string) (Identity, error) {
	ppmkID = strings.TrimSpace(ppmkID)
	if len(password) < MinPasswordLen {
		return Identity{}, &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	m, err := p.members.GetByPPMKID(ctx, ppmkID)
	if errors.Is(err, sql.ErrNoRows) {
		return Identity{}, &ValidationError{Field: "ppmk_id", Reason: "not on the member roster"}
	}
	if err != nil {
		return Identity{}, &TransientError{Err: err}
	}
	if m.PasswordHash != nil {
		return Identity{}, ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, err
	}
	if err := p.members.SetPassword(ctx, ppmkID, string(hash)); err != nil {
		return Identity{}, &TransientError{Err: err}
	}
	m, err = p.members.GetByPPMKID(ctx, ppmkID)
	if err != nil {
		return Identity{}, &TransientError{Err: err}
	}
	return identityFromMember(m), nil
}

func (p *LocalProvider) VerifyEligibility(ctx context.Context, ppmkID, nationalID string) (Eligibility, error) {
	ppmkID = strings.TrimSpace(ppmkID)
	m, err := p.members.GetByPPMKID(ctx, ppmkID)
	if errors.Is(err, sql.ErrNoRows) {
		return Eligibility{}, ErrNotEligible
	}
	if err != nil {
		return Eligibility{}, &TransientError{Err: err}
	}
	if m.NationalID != strings.TrimSpace(nationalID) {
		return Eligibility{}, ErrNotEligible
	}
	if m.PasswordHash != nil {
		return Eligibility{}, ErrAlreadyRegistered
	}
	return Eligibility{
		PPMKID:     m.PPMKID,
		FullName:   m.FullName,
		University: m.University,
		Batch:      m.Batch,
	}, nil
}

func identityFromMember(m repository.Member) Identity {
	return Identity{
		ID:          m.ID,
		PPMKID:      m.PPMKID,
		FullName:    m.FullName,
		Email:       m.Email,
		Phone:       m.Phone,
		University:  m.University,
		Course:      m.Course,
		YearOfStudy: m.YearOfStudy,
		Scholarship: m.Scholarship,
		Batch:       m.Batch,
		Clubs:       m.Clubs,
		Events:      m.Events,
		IsAdmin:     m.IsAdmin,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
