package auth

import (
	"errors"
	"fmt"
)

// Sentinel failures from the provider. Callers match with errors.Is.
var (
	// ErrBadCredentials means the PPMK ID / password pair did not verify.
	ErrBadCredentials = errors.New("invalid PPMK ID or password")

	// ErrNotEligible means the PPMK ID / national ID pair is not on the
	// member roster.
	ErrNotEligible = errors.New("PPMK ID or national ID not recognised")

	// ErrAlreadyRegistered means the member already has an account and should
	// sign in instead.
	ErrAlreadyRegistered = errors.New("this PPMK ID already has an account")

	// ErrConflict means account creation raced with an existing account.
	ErrConflict = errors.New("account already exists")
)

// ValidationError reports input rejected before it reaches the provider.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransientError wraps a failure that is safe to retry (provider unreachable,
// timeout). Retry policy belongs to the caller; the providers never retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("auth provider unavailable: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is safe to retry.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
