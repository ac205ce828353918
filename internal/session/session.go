// Package session holds the single authenticated-user record. The record
// is persisted as one JSON file and mirrored in memory; every mutation
// notifies all subscribers so that anything rendering the session (the
// CLI header line, guarded commands) converges without re-reading disk.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/leojp04/drarea/internal/model"
)

// FileName is the fixed on-disk key for the session record.
const FileName = "authUser.json"

// DefaultDir returns the default session directory (~/.drarea).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".drarea"
	}
	return filepath.Join(home, ".drarea")
}

// Store owns the persisted session record.
type Store struct {
	path string

	mu      sync.Mutex
	current *model.Usuario
	loaded  bool
	subs    map[int]func(*model.Usuario)
	nextSub int
}

// NewStore builds a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, FileName),
		subs: make(map[int]func(*model.Usuario)),
	}
}

// Read returns the persisted user, or nil when the record is absent or
// malformed. It never fails: a corrupt session is the same as no session.
func (s *Store) Read() *model.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.current = readFile(s.path)
		s.loaded = true
	}
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func readFile(path string) *model.Usuario {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var u model.Usuario
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// Persist writes the record and notifies subscribers.
func (s *Store) Persist(u model.Usuario) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &u
	s.loaded = true
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(&u)
	}
	return nil
}

// Clear removes the record and notifies subscribers with nil.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.loaded = true
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

// Subscribe registers fn to run on every mutation. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(*model.Usuario)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshot copies the subscriber list so notifications run unlocked.
func (s *Store) snapshot() []func(*model.Usuario) {
	out := make([]func(*model.Usuario), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
