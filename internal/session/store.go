// Package session holds the client's process-wide answer to "who is logged
// in". The Store keeps the current identity and token in memory, mirrors them
// into the durable local store, and broadcasts every change to subscribers.
// The route guard in this package turns a Store snapshot plus a screen's
// declared requirement into a navigation decision.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

// State is the lifecycle state of the client session.
type State int

const (
	// StateUninitialized means Bootstrap has not resolved yet. The guard
	// holds navigation in this state instead of redirecting.
	StateUninitialized State = iota

	// StateAnonymous means no session is active.
	StateAnonymous

	// StateAuthenticated means a token and identity are loaded.
	StateAuthenticated
)

// Snapshot is an immutable view of the session at one point in time.
// Identity and Token are only meaningful when State is StateAuthenticated.
type Snapshot struct {
	State    State
	Identity models.User
	Token    string
}

// Authenticated reports whether the snapshot carries a resolved identity.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}

// ServerSession is the slice of the server adapter the store needs to retire
// a session remotely.
type ServerSession interface {
	Logout(ctx context.Context) error
}

// serverLogoutTimeout bounds the fire-and-forget server logout so a dead
// server cannot leak the goroutine for long.
const serverLogoutTimeout = 5 * time.Second

// Store is the single process-wide session holder. All methods are safe for
// concurrent use. Subscribers are invoked synchronously after each state
// change and must not call back into the Store.
type Store struct {
	mu          sync.Mutex
	snapshot    Snapshot
	generation  uint64
	subscribers []func(Snapshot)

	sessions store.LocalSessionRepository
	server   ServerSession
	logger   *logger.Logger
}

// NewStore constructs a Store in the uninitialized state. server may be nil
// when no remote logout is wanted (tests, offline tooling).
func NewStore(sessions store.LocalSessionRepository, server ServerSession, logger *logger.Logger) *Store {
	return &Store{
		snapshot: Snapshot{State: StateUninitialized},
		sessions: sessions,
		server:   server,
		logger:   logger,
	}
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Subscribe registers a callback invoked synchronously with every snapshot
// the Store publishes from now on.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Bootstrap resolves the initial session state from the durable local store.
// Absence of a record, or any read or decode failure, resolves anonymous;
// Bootstrap never returns an error. If a login or logout lands while the
// read is in flight, the fresher state wins and the read result is dropped.
func (s *Store) Bootstrap(ctx context.Context) Snapshot {
	s.mu.Lock()
	startedAt := s.generation
	s.mu.Unlock()

	resolved := Snapshot{State: StateAnonymous}

	record, err := s.sessions.LoadSession(ctx)
	switch {
	case err == nil && record.Token != "":
		resolved = Snapshot{
			State:    StateAuthenticated,
			Identity: record.Identity,
			Token:    record.Token,
		}
	case err != nil && !errors.Is(err, store.ErrLocalSessionNotFound):
		s.logger.Warn().Err(err).Msg("local session unreadable, starting anonymous")
	}

	s.mu.Lock()
	if s.generation != startedAt {
		// superseded by a login or logout that raced the read
		current := s.snapshot
		s.mu.Unlock()
		return current
	}
	s.snapshot = resolved
	subscribers := s.copySubscribersLocked()
	s.mu.Unlock()

	notify(subscribers, resolved)
	return resolved
}

// SetAuth installs a fresh session. Memory is overwritten first, then the
// record is persisted with one retry. A persistence failure is logged but
// never reverts the in-memory state.
func (s *Store) SetAuth(ctx context.Context, identity models.User, token string) Snapshot {
	snapshot := Snapshot{State: StateAuthenticated, Identity: identity, Token: token}

	s.mu.Lock()
	s.generation++
	s.snapshot = snapshot
	subscribers := s.copySubscribersLocked()
	s.mu.Unlock()

	record := models.SessionRecord{
		Token:    token,
		Identity: identity,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.sessions.SaveSession(ctx, record); err != nil {
		if err = s.sessions.SaveSession(ctx, record); err != nil {
			s.logger.Warn().Err(err).Msg("session not persisted, it will not survive a restart")
		}
	}

	notify(subscribers, snapshot)
	return snapshot
}

// Logout clears the session. Memory is cleared first so the caller observes
// the anonymous state immediately, the durable record is cleared best-effort,
// and the server logout is fired without blocking on its result.
func (s *Store) Logout(ctx context.Context) Snapshot {
	snapshot := Snapshot{State: StateAnonymous}

	s.mu.Lock()
	s.generation++
	s.snapshot = snapshot
	subscribers := s.copySubscribersLocked()
	s.mu.Unlock()

	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stale session record left in local store")
	}

	notify(subscribers, snapshot)

	if s.server != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), serverLogoutTimeout)
			defer cancel()
			if err := s.server.Logout(ctx); err != nil {
				s.logger.Debug().Err(err).Msg("server logout failed, token expires on its own")
			}
		}()
	}

	return snapshot
}

func (s *Store) copySubscribersLocked() []func(Snapshot) {
	subscribers := make([]func(Snapshot), len(s.subscribers))
	copy(subscribers, s.subscribers)
	return subscribers
}

func notify(subscribers []func(Snapshot), snapshot Snapshot) {
	for _, fn := range subscribers {
		fn(snapshot)
	}
}
