package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// storeFile is the fixed name the current user is persisted under.
const storeFile = "currentUser.json"

// Session is the single mutable slot holding the current user, or none.
// It is written only through SetCurrentUser; the role flags are derived from
// the stored user on every call so they cannot drift out of sync with it.
type Session struct {
	path    string
	current *User
}

// NewSession restores a previously persisted user from dir. A missing,
// empty, literal-null or unparseable file means "no user" and is never an
// error: corrupted client state is recovered silently.
func NewSession(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}

	s := &Session{path: filepath.Join(dir, storeFile)}
	s.current = restore(s.path)

	return s, nil
}

func restore(path string) *User {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}

	// json.Unmarshal accepts "null" without error.
	if u.ID == "" {
		return nil
	}

	return &u
}

// CurrentUser returns the current user, or nil when logged out.
func (s *Session) CurrentUser() *User {
	return s.current
}

// SetCurrentUser replaces the current user and persists the change: a user is
// written to disk, nil removes the stored value.
func (s *Session) SetCurrentUser(u *User) error {
	s.current = u

	if u == nil {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clearing stored user: %w", err)
		}

		return nil
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("storing user: %w", err)
	}

	return nil
}

// IsSubmitter reports whether the current user holds the submitter role.
func (s *Session) IsSubmitter() bool {
	return s.current != nil && s.current.Role == RoleSubmitter
}

// IsReviewer reports whether the current user holds the reviewer role.
func (s *Session) IsReviewer() bool {
	return s.current != nil && s.current.Role == RoleReviewer
}
