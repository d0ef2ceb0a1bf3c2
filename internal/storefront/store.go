package storefront

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore owns per-session State. Update applies fn atomically with
// respect to other updates of the same session; a non-nil error from fn
// leaves the stored State unchanged.
type SessionStore interface {
	Create(ctx context.Context, initial State) (string, error)
	Get(ctx context.Context, id string) (State, error)
	Update(ctx context.Context, id string, fn func(State) (State, error)) (State, error)
}

type session struct {
	mu       sync.Mutex
	state    State
	lastSeen time.Time
	// Set by Sweep once the session is no longer reachable from the map.
	removed bool
}

type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		sessions: map[string]*session{},
		now:      time.Now,
	}
}

func (s *MemStore) Create(ctx context.Context, initial State) (string, error) {
	id := "s_" + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{state: initial, lastSeen: s.now()}
	return id, nil
}

func (s *MemStore) lookup(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *MemStore) Get(ctx context.Context, id string) (State, error) {
	sess, ok := s.lookup(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.removed {
		return State{}, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess.state, nil
}

func (s *MemStore) Update(ctx context.Context, id string, fn func(State) (State, error)) (State, error) {
	sess, ok := s.lookup(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return s.apply(sess, fn)
}

func (s *MemStore) apply(sess *session, fn func(State) (State, error)) (State, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.removed {
		return State{}, ErrSessionNotFound
	}
	sess.lastSeen = s.now()

	next, err := fn(sess.state)
	if err != nil {
		return sess.state, err
	}
	sess.state = next
	return next, nil
}

// Sweep drops sessions idle for longer than ttl and returns how many
// were removed.
func (s *MemStore) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		if idle {
			sess.removed = true
		}
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemStore) RunSweeper(ctx context.Context, interval, ttl time.Duration, onSweep func(removed int)) {
	if interval <= 0 || ttl <= 0 {
		return
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n := s.Sweep(ttl)
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
