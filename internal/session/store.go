// Package session owns the authenticated-identity lifecycle: load on start,
// persist on change, clear on logout. It is the single source of truth for
// "is someone logged in, and who".
package session

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ainatrbl/aina/internal/auth"
)

// State is the store's authentication state.
type State string

const (
	// StateUnknown is the transient startup state before Load resolves.
	// It is left exactly once and never revisited.
	StateUnknown       State = "unknown"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Store holds the active session. Construct one in main and pass it down;
// there are no package-level singletons.
//
// bubbletea runs commands on their own goroutines, so reads from the Update
// loop can race a SignIn in flight; the mutex covers that.
type Store struct {
	mu       sync.Mutex
	provider auth.Provider
	path     string
	state    State
	identity auth.Identity
	subs     []func(State)
	logf     func(format string, args ...any)
}

// NewStore builds a Store persisting to dir/session.json and delegating
// verification to provider.
func NewStore(provider auth.Provider, dir string) *Store {
	return &Store{
		provider: provider,
		path:     filepath.Join(dir, sessionFile),
		state:    StateUnknown,
		logf:     log.Printf,
	}
}

// Subscribe registers fn to run after every state transition. Registration
// order is delivery order.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Load resolves the startup state from the persisted record. A missing record
// means Anonymous; a malformed one is discarded with a diagnostic and also
// means Anonymous. Load never returns an error to the caller and is a no-op
// after the first call.
func (s *Store) Load() State {
	s.mu.Lock()
	if s.state != StateUnknown {
		st := s.state
		s.mu.Unlock()
		return st
	}

	rec, err := readRecord(s.path)
	switch {
	case err == nil:
		s.identity = rec.Identity
		s.state = StateAuthenticated
	default:
		var corrupt *CorruptStateError
		if errors.As(err, &corrupt) {
			s.logf("session: discarding corrupt record: %v", corrupt.Err)
			if rmErr := removeRecord(s.path); rmErr != nil {
				s.logf("session: remove corrupt record: %v", rmErr)
			}
		}
		s.state = StateAnonymous
	}
	st := s.state
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, st)
	return st
}

// SignIn verifies credentials with the provider and, on success, persists and
// activates the identity. On failure the prior state is untouched and the
// provider's typed error is returned verbatim.
func (s *Store) SignIn(ctx context.Context, ppmkID, password string) (auth.Identity, error) {
	ppmkID = strings.TrimSpace(ppmkID)
	if ppmkID == "" || password == "" {
		return auth.Identity{}, &auth.ValidationError{Field: "credentials", Reason: "PPMK ID and password are required"}
	}
	id, err := s.provider.Authenticate(ctx, ppmkID, password)
	if err != nil {
		return auth.Identity{}, err
	}
	s.activate(id)
	return id, nil
}

// SignUp creates the account with the provider and behaves like SignIn on
// success. The minimum password length is checked here first so a weak
// password fails without a round trip.
func (s *Store) SignUp(ctx context.Context, ppmkID, password string) (auth.Identity, error) {
	if len(password) < auth.MinPasswordLen {
		return auth.Identity{}, &auth.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	id, err := s.provider.CreateAccount(ctx, strings.TrimSpace(ppmkID), password)
	if err != nil {
		return auth.Identity{}, err
	}
	s.activate(id)
	return id, nil
}

// VerifyEligibility checks the roster ahead of signup. Pure delegation; no
// state changes.
func (s *Store) VerifyEligibility(ctx context.Context, ppmkID, nationalID string) (auth.Eligibility, error) {
	return s.provider.VerifyEligibility(ctx, ppmkID, nationalID)
}

// SignOut clears the persisted record and the in-memory identity. It always
// succeeds; signing out while already anonymous is a no-op.
func (s *Store) SignOut() {
	s.mu.Lock()
	if err := removeRecord(s.path); err != nil {
		s.logf("session: clear record: %v", err)
	}
	already := s.state == StateAnonymous
	s.identity = auth.Identity{}
	s.state = StateAnonymous
	subs := s.snapshotSubs()
	s.mu.Unlock()

	if !already {
		notify(subs, StateAnonymous)
	}
}

// Current returns the active identity. It never performs I/O.
func (s *Store) Current() (auth.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.state == StateAuthenticated
}

// State returns the store's authentication state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) activate(id auth.Identity) {
	s.mu.Lock()
	rec := record{Identity: id, SavedAt: time.Now().UTC()}
	if err := writeRecord(s.path, rec); err != nil {
		// Persistence trouble degrades to a memory-only session rather than
		// failing a verified sign-in.
		s.logf("session: persist record: %v", err)
	}
	s.identity = id
	s.state = StateAuthenticated
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, StateAuthenticated)
}

func (s *Store) snapshotSubs() []func(State) {
	out := make([]func(State), len(s.subs))
	copy(out, s.subs)
	return out
}

func notify(subs []func(State), st State) {
	for _, fn := range subs {
		fn(st)
	}
}
