// Package credstore persists simterm account credentials as a flat JSON
// registry on disk.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gofrs/flock"
)

var (
	// ErrUserExists indicates an account with that username already exists.
	ErrUserExists = errors.New("username already exists")

	// ErrInvalidUsername indicates the username is empty.
	ErrInvalidUsername = errors.New("invalid username")
)

// RegistryFileName is the name of the credential registry file.
const RegistryFileName = "users.json"

// lockFileName is the sidecar file used for cross-process locking.
const lockFileName = "users.lock"

// Store provides thread-safe access to the credential registry.
//
// The registry is a single JSON object mapping username to password. Every
// operation re-reads it from disk and every mutation writes the whole map
// back, so nothing is cached between calls and concurrent runs of the
// binary observe each other's writes. Passwords are stored and compared in
// plain text; see the design notes before reusing this anywhere real.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates a Store rooted at the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// RegistryPath returns the path of the registry file.
func (s *Store) RegistryPath() string {
	return filepath.Join(s.dir, RegistryFileName)
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, lockFileName)
}

// load reads the registry from disk. A missing or malformed file degrades
// to an empty map rather than an error.
func (s *Store) load() map[string]string {
	users := map[string]string{}

	data, err := os.ReadFile(s.RegistryPath())
	if err != nil {
		return users
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return map[string]string{}
	}
	return users
}

// save writes the whole registry back to disk.
func (s *Store) save(users map[string]string) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credential registry: %w", err)
	}

	if err := os.WriteFile(s.RegistryPath(), data, 0600); err != nil {
		return fmt.Errorf("writing credential registry: %w", err)
	}
	return nil
}

// lock acquires the cross-process file lock, creating the store directory
// if needed. The caller must hold s.mu.
func (s *Store) lock() (*flock.Flock, error) {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	fl := flock.New(s.lockPath())
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("locking credential registry: %w", err)
	}
	return fl, nil
}

// CreateAccount inserts a new username/password pair and persists the
// registry. Returns ErrUserExists if the username is already taken.
func (s *Store) CreateAccount(username, password string) error {
	if username == "" {
		return ErrInvalidUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fl, err := s.lock()
	if err != nil {
		return err
	}
	defer fl.Unlock()

	users := s.load()
	if _, ok := users[username]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, username)
	}

	users[username] = password
	return s.save(users)
}

// Verify reports whether the username exists and the stored password
// matches the supplied one. The comparison is plain string equality.
func (s *Store) Verify(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.load()[username]
	return ok && stored == password
}

// List returns all registered usernames in sorted order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
