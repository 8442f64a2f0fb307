package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

var errStorage = errors.New("storage failure")

// mockSessionRepository is a func-field test double for
// store.LocalSessionRepository.
type mockSessionRepository struct {
	saveFn  func(ctx context.Context, record models.SessionRecord) error
	loadFn  func(ctx context.Context) (models.SessionRecord, error)
	clearFn func(ctx context.Context) error
}

func (m *mockSessionRepository) SaveSession(ctx context.Context, record models.SessionRecord) error {
	if m.saveFn == nil {
		return nil
	}
	return m.saveFn(ctx, record)
}

func (m *mockSessionRepository) LoadSession(ctx context.Context) (models.SessionRecord, error) {
	if m.loadFn == nil {
		return models.SessionRecord{}, store.ErrLocalSessionNotFound
	}
	return m.loadFn(ctx)
}

func (m *mockSessionRepository) ClearSession(ctx context.Context) error {
	if m.clearFn == nil {
		return nil
	}
	return m.clearFn(ctx)
}

// mockServerSession records remote logout calls.
type mockServerSession struct {
	called chan struct{}
	err    error
}

func (m *mockServerSession) Logout(context.Context) error {
	if m.called != nil {
		close(m.called)
	}
	return m.err
}

func testIdentity() models.User {
	return models.User{ID: "user-1", Name: "Rahim", Email: "rahim@mess.example", Role: models.RoleMember}
}

// ── Bootstrap ───────────────────────────────────────────────────────────────

func TestBootstrap_RestoresPersistedSession(t *testing.T) {
	repo := &mockSessionRepository{
		loadFn: func(context.Context) (models.SessionRecord, error) {
			return models.SessionRecord{Token: "stored-token", Identity: testIdentity()}, nil
		},
	}
	st := NewStore(repo, nil, logger.Nop())

	snapshot := st.Bootstrap(context.Background())

	assert.Equal(t, StateAuthenticated, snapshot.State)
	assert.Equal(t, "stored-token", snapshot.Token)
	assert.Equal(t, "user-1", snapshot.Identity.ID)
	assert.Equal(t, snapshot, st.Current())
}

func TestBootstrap_NoRecord_ResolvesAnonymous(t *testing.T) {
	st := NewStore(&mockSessionRepository{}, nil, logger.Nop())

	snapshot := st.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, snapshot.State)
}

func TestBootstrap_CorruptStorage_ResolvesAnonymous(t *testing.T) {
	repo := &mockSessionRepository{
		loadFn: func(context.Context) (models.SessionRecord, error) {
			return models.SessionRecord{}, errStorage
		},
	}
	st := NewStore(repo, nil, logger.Nop())

	snapshot := st.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, snapshot.State)
}

func TestBootstrap_EmptyToken_ResolvesAnonymous(t *testing.T) {
	repo := &mockSessionRepository{
		loadFn: func(context.Context) (models.SessionRecord, error) {
			return models.SessionRecord{Identity: testIdentity()}, nil
		},
	}
	st := NewStore(repo, nil, logger.Nop())

	snapshot := st.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, snapshot.State)
}

func TestBootstrap_SupersededByLogin_ReadResultDiscarded(t *testing.T) {
	var st *Store
	repo := &mockSessionRepository{}
	repo.loadFn = func(ctx context.Context) (models.SessionRecord, error) {
		// a login lands while the durable read is still in flight
		st.SetAuth(ctx, testIdentity(), "fresh-token")
		return models.SessionRecord{}, store.ErrLocalSessionNotFound
	}
	st = NewStore(repo, nil, logger.Nop())

	snapshot := st.Bootstrap(context.Background())

	assert.Equal(t, StateAuthenticated, snapshot.State)
	assert.Equal(t, "fresh-token", snapshot.Token)
	assert.Equal(t, StateAuthenticated, st.Current().State)
}

// ── SetAuth ─────────────────────────────────────────────────────────────────

func TestSetAuth_PersistsRecord(t *testing.T) {
	var saved models.SessionRecord
	repo := &mockSessionRepository{
		saveFn: func(_ context.Context, record models.SessionRecord) error {
			saved = record
			return nil
		},
	}
	st := NewStore(repo, nil, logger.Nop())

	snapshot := st.SetAuth(context.Background(), testIdentity(), "new-token")

	assert.Equal(t, StateAuthenticated, snapshot.State)
	assert.Equal(t, "new-token", saved.Token)
	assert.Equal(t, "user-1", saved.Identity.ID)
	assert.False(t, saved.SavedAt.IsZero())
}

func TestSetAuth_RetriesPersistenceOnce(t *testing.T) {
	attempts := 0
	repo := &mockSessionRepository{
		saveFn: func(context.Context, models.SessionRecord) error {
			attempts++
			if attempts == 1 {
				return errStorage
			}
			return nil
		},
	}
	st := NewStore(repo, nil, logger.Nop())

	st.SetAuth(context.Background(), testIdentity(), "new-token")

	assert.Equal(t, 2, attempts)
}

func TestSetAuth_PersistFailureDoesNotRevertMemory(t *testing.T) {
	repo := &mockSessionRepository{
		saveFn: func(context.Context, models.SessionRecord) error {
			return errStorage
		},
	}
	st := NewStore(repo, nil, logger.Nop())

	st.SetAuth(context.Background(), testIdentity(), "new-token")

	current := st.Current()
	assert.Equal(t, StateAuthenticated, current.State)
	assert.Equal(t, "new-token", current.Token)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_ClearsMemoryAndDurableRecord(t *testing.T) {
	cleared := false
	repo := &mockSessionRepository{
		clearFn: func(context.Context) error {
			cleared = true
			return nil
		},
	}
	st := NewStore(repo, nil, logger.Nop())
	st.SetAuth(context.Background(), testIdentity(), "token")

	snapshot := st.Logout(context.Background())

	assert.Equal(t, StateAnonymous, snapshot.State)
	assert.Empty(t, snapshot.Token)
	assert.True(t, cleared)
}

func TestLogout_DurableClearFailureStillAnonymous(t *testing.T) {
	repo := &mockSessionRepository{
		clearFn: func(context.Context) error {
			return errStorage
		},
	}
	st := NewStore(repo, nil, logger.Nop())
	st.SetAuth(context.Background(), testIdentity(), "token")

	st.Logout(context.Background())

	assert.Equal(t, StateAnonymous, st.Current().State)
}

func TestLogout_FiresServerLogoutWithoutBlocking(t *testing.T) {
	server := &mockServerSession{called: make(chan struct{})}
	st := NewStore(&mockSessionRepository{}, server, logger.Nop())
	st.SetAuth(context.Background(), testIdentity(), "token")

	snapshot := st.Logout(context.Background())

	// the local state is already anonymous when Logout returns
	assert.Equal(t, StateAnonymous, snapshot.State)

	select {
	case <-server.called:
	case <-time.After(time.Second):
		t.Fatal("server logout was never fired")
	}
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestSubscribe_ReceivesEveryStateChange(t *testing.T) {
	st := NewStore(&mockSessionRepository{}, nil, logger.Nop())

	var states []State
	st.Subscribe(func(snapshot Snapshot) {
		states = append(states, snapshot.State)
	})

	st.Bootstrap(context.Background())
	st.SetAuth(context.Background(), testIdentity(), "token")
	st.Logout(context.Background())

	require.Equal(t, []State{StateAnonymous, StateAuthenticated, StateAnonymous}, states)
}
