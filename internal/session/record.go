package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ainatrbl/aina/internal/auth"
)

// sessionFile is the well-known name of the persisted session record.
const sessionFile = "session.json"

// record is the on-disk session layout: the identity plus bookkeeping.
// There is no schema versioning; anything that fails to parse or validate is
// discarded wholesale.
type record struct {
	auth.Identity
	SavedAt time.Time `json:"saved_at"`
}

// CorruptStateError reports a persisted session that failed to parse or
// validate. It is self-healed by Load and never shown to the user.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt session record at %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// DefaultDir returns the per-user directory holding the session record,
// creating it if needed.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "aina")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// readRecord loads and validates the persisted record. A missing file returns
// os.ErrNotExist; a malformed one returns *CorruptStateError.
func readRecord(path string) (record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record{}, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, &CorruptStateError{Path: path, Err: err}
	}
	if rec.ID == "" || rec.PPMKID == "" {
		return record{}, &CorruptStateError{Path: path, Err: errors.New("missing identity fields")}
	}
	return rec, nil
}

// writeRecord persists the record atomically with owner-only permissions.
func writeRecord(path string, rec record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// removeRecord deletes the persisted record; a missing file is a no-op.
func removeRecord(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
