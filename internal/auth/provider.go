package auth

import (
	"context"
	"time"
)

// Provider is the authentication/verification collaborator. The rest of the
// app only ever sees this contract; whether it is backed by the hosted
// service or the bundled sqlite store is a wiring decision in cmd/aina.
type Provider interface {
	// Authenticate verifies a PPMK ID / password pair and returns the member's
	// profile. Fails with ErrBadCredentials or *TransientError.
	Authenticate(ctx context.Context, ppmkID, password string) (Identity, error)

	// CreateAccount sets the password for a verified member and returns the
	// resulting profile. Fails with *ValidationError, ErrConflict or
	// *TransientError.
	CreateAccount(ctx context.Context, ppmkID, password string) (Identity, error)

	// VerifyEligibility checks that a PPMK ID / national ID pair belongs to a
	// registered member who has not yet created an account. Fails with
	// ErrNotEligible or ErrAlreadyRegistered.
	VerifyEligibility(ctx context.Context, ppmkID, nationalID string) (Eligibility, error)
}

// Identity is the authenticated member profile. Memberships and the admin
// flag are resolved by the provider; nothing downstream derives them.
type Identity struct {
	ID          string    `json:"id"`
	PPMKID      string    `json:"ppmk_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	University  string    `json:"university,omitempty"`
	Course      string    `json:"course,omitempty"`
	YearOfStudy int       `json:"year_of_study,omitempty"`
	Scholarship string    `json:"scholarship,omitempty"`
	Batch       string    `json:"batch,omitempty"`
	Clubs       []string  `json:"clubs,omitempty"`
	Events      []string  `json:"events,omitempty"`
	IsAdmin     bool      `json:"is_admin,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InClub reports membership in the named club.
func (id Identity) InClub(name string) bool {
	for _, c := range id.Clubs {
		if c == name {
			return true
		}
	}
	return false
}

// InEvent reports registration for the named event.
func (id Identity) InEvent(name string) bool {
	for _, e := range id.Events {
		if e == name {
			return true
		}
	}
	return false
}

// Eligibility is the pre-signup verification result: the member exists on the
// roster and may proceed to choose a password.
type Eligibility struct {
	PPMKID     string `json:"ppmk_id"`
	FullName   string `json:"full_name"`
	University string `json:"university,omitempty"`
	Batch      string `json:"batch,omitempty"`
}

// MinPasswordLen is enforced client-side before any provider call so a short
// password fails without a network round trip.
const MinPasswordLen = 6
