package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ainatrbl/aina/internal/auth"
)

// fakeProvider answers with canned results and records calls.
type fakeProvider struct {
	identity    auth.Identity
	authErr     error
	createErr   error
	eligibility auth.Eligibility
	verifyErr   error
	createCalls int
}

func (f *fakeProvider) Authenticate(ctx context.Context, ppmkID, password string) (auth.Identity, error) {
	if f.authErr != nil {
		return auth.Identity{}, f.authErr
	}
	return f.identity, nil
}

func (f *fakeProvider) CreateAccount(ctx context.Context, ppmkID, password string) (auth.Identity, error) {
	f.createCalls++
	if f.createErr != nil {
		return auth.Identity{}, f.createErr
	}
	return f.identity, nil
}

func (f *fakeProvider) VerifyEligibility(ctx context.Context, ppmkID, nationalID string) (auth.Eligibility, error) {
	if f.verifyErr != nil {
		return auth.Eligibility{}, f.verifyErr
	}
	return f.eligibility, nil
}

func demoIdentity() auth.Identity {
	return auth.Identity{ID: "id-1", PPMKID: "demo", FullName: "Demo Student"}
}

func newTestStore(t *testing.T, p auth.Provider) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore(p, dir)
	s.logf = t.Logf
	return s, filepath.Join(dir, sessionFile)
}

func TestLoadWithoutRecordIsAnonymous(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t, &fakeProvider{})

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	require.Equal(t, StateAnonymous, s.Load())
	require.Equal(t, []State{StateAnonymous}, seen)
	_, ok := s.Current()
	require.False(t, ok)
}

func TestLoadIsSingleShot(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t, &fakeProvider{})

	calls := 0
	s.Subscribe(func(State) { calls++ })

	require.Equal(t, StateAnonymous, s.Load())
	require.Equal(t, StateAnonymous, s.Load())
	require.Equal(t, 1, calls, "second Load must not re-notify")
}

func TestLoadMalformedRecordDiscarded(t *testing.T) {
	t.Parallel()
	for name, payload := range map[string]string{
		"not json":         "{{{",
		"missing identity": `{"saved_at":"2026-01-01T00:00:00Z"}`,
		"empty object":     `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			s, path := newTestStore(t, &fakeProvider{})
			require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

			require.Equal(t, StateAnonymous, s.Load())

			_, err := os.Stat(path)
			require.True(t, os.IsNotExist(err), "corrupt record should be removed")
		})
	}
}

func TestSignInRoundTripsThroughDisk(t *testing.T) {
	t.Parallel()
	p := &fakeProvider{identity: demoIdentity()}
	s, path := newTestStore(t, p)
	s.Load()

	id, err := s.SignIn(context.Background(), "demo", "demo123")
	require.NoError(t, err)
	require.Equal(t, "demo", id.PPMKID)
	require.Equal(t, StateAuthenticated, s.State())

	// A fresh store over the same directory restores the identity.
	s2 := NewStore(p, filepath.Dir(path))
	s2.logf = t.Logf
	require.Equal(t, StateAuthenticated, s2.Load())
	who, ok := s2.Current()
	require.True(t, ok)
	require.Equal(t, "Demo Student", who.FullName)
}

func TestSignInFailureLeavesStateAlone(t *testing.T) {
	t.Parallel()
	p := &fakeProvider{authErr: auth.ErrBadCredentials}
	s, _ := newTestStore(t, p)
	s.Load()

	_, err := s.SignIn(context.Background(), "demo", "wrong")
	require.ErrorIs(t, err, auth.ErrBadCredentials)
	require.Equal(t, StateAnonymous, s.State())
}

func TestSignInRejectsBlankCredentials(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t, &fakeProvider{identity: demoIdentity()})
	s.Load()

	_, err := s.SignIn(context.Background(), "   ", "")
	var verr *auth.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSignUpRejectsShortPasswordBeforeProvider(t *testing.T) {
	t.Parallel()
	p := &fakeProvider{identity: demoIdentity()}
	s, _ := newTestStore(t, p)
	s.Load()

	_, err := s.SignUp(context.Background(), "PPMK2024-104", "12345")
	var verr *auth.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Zero(t, p.createCalls, "provider must not be called for a weak password")
}

func TestSignOutIsIdempotent(t *testing.T) {
	t.Parallel()
	p := &fakeProvider{identity: demoIdentity()}
	s, path := newTestStore(t, p)
	s.Load()

	_, err := s.SignIn(context.Background(), "demo", "demo123")
	require.NoError(t, err)

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	s.SignOut()
	s.SignOut()

	require.Equal(t, []State{StateAnonymous}, seen, "repeat SignOut must not re-notify")
	require.Equal(t, StateAnonymous, s.State())
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestSubscribersRunInRegistrationOrder(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t, &fakeProvider{identity: demoIdentity()})

	var order []int
	s.Subscribe(func(State) { order = append(order, 1) })
	s.Subscribe(func(State) { order = append(order, 2) })

	s.Load()
	require.Equal(t, []int{1, 2}, order)
}

func TestCorruptStateErrorUnwraps(t *testing.T) {
	t.Parallel()
	inner := errors.New("boom")
	err := &CorruptStateError{Path: "/tmp/x", Err: inner}
	require.ErrorIs(t, err, inner)
}
