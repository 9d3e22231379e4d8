package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/pkg"
)

var ErrNotLoggedIn = errors.New("not logged in, use: fitctl login <user id>")

// sessionStore persists the id of the logged-in user, one user at a time.
type sessionStore struct {
	path string
}

// defaultSessionStore keeps the session in $XDG_CONFIG_HOME/fittrack/session.
func defaultSessionStore() (*sessionStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &sessionStore{
		path: filepath.Join(dir, "fittrack", "session"),
	}, nil
}

func (s *sessionStore) Load() (int, error) {
	exists, err := pkg.PathExists(s.path, false)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotLoggedIn
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("read session: %w", err)
	}
	userID, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || userID <= 0 {
		return 0, ErrNotLoggedIn
	}
	return userID, nil
}

func (s *sessionStore) Save(userID int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(userID)+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *sessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
