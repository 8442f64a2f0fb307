package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
)

func newTestSessionRepo(t *testing.T) (*localSessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localSessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_Upsert(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.SessionRecord{
		Token:    "tok",
		Identity: models.User{ID: "u1", Email: "a@b.c", Role: models.RoleMember},
		SavedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"token", "identity", "saved_at"}).
		AddRow("tok", `{"id":"u1","name":"","email":"a@b.c","role":"admin","status":"active","created_at":"0001-01-01T00:00:00Z"}`, now)

	mock.ExpectQuery("SELECT token, identity, saved_at").
		WillReturnRows(rows)

	record, err := repo.LoadSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Token != "tok" || record.Identity.Role != models.RoleAdmin {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestLoadSession_Absent(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token, identity, saved_at").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestLoadSession_CorruptIdentity(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"token", "identity", "saved_at"}).
		AddRow("tok", `{not json`, time.Now())

	mock.ExpectQuery("SELECT token, identity, saved_at").
		WillReturnRows(rows)

	// Corrupt payloads surface as a plain error; the session store treats
	// every load failure as the anonymous state.
	_, err := repo.LoadSession(context.Background())
	if err == nil {
		t.Fatal("expected error for corrupt identity payload")
	}
}

func TestClearSession_AbsentIsNoop(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
