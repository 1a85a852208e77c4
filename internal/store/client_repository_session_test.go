package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testUserView() models.UserView {
	return models.UserView{
		UID:         "uid-1",
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice A",
		Bio:         "I cook",
	}
}

// ── SaveSession ──────────────────────────────────────────────────────────────

func TestSaveSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	user := testUserView()

	mock.ExpectExec("INSERT OR REPLACE INTO session").
		WithArgs(
			sessionRowID,
			user.UID,
			user.Username,
			user.Email,
			user.DisplayName,
			user.FirstName,
			user.LastName,
			user.ProfileImage,
			user.Bio,
			user.FollowersCount,
			user.FollowingCount,
			user.RecipesCount,
			"refresh-1",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), user, "refresh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT OR REPLACE INTO session").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveSession(context.Background(), testUserView(), "refresh-1")
	if err == nil || !strings.Contains(err.Error(), "failed to save session") {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
}

// ── LoadSession ──────────────────────────────────────────────────────────────

func TestLoadSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("uid-1", "alice", "alice@example.com", "Alice A", "Alice", "A", "", "I cook", 3, 5, 2, "refresh-1")

	mock.ExpectQuery("SELECT (.+) FROM session").
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	user, token, err := repo.LoadSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UID != "uid-1" || user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.FollowersCount != 3 || user.RecipesCount != 2 {
		t.Errorf("counters not scanned: %+v", user)
	}
	if token != "refresh-1" {
		t.Errorf("expected refresh token refresh-1, got %q", token)
	}
}

func TestLoadSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM session").
		WithArgs(sessionRowID).
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.LoadSession(context.Background())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

// ── ClearSession ─────────────────────────────────────────────────────────────

func TestClearSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ── SaveRefreshToken ─────────────────────────────────────────────────────────

func TestSaveRefreshToken_UpdatesExistingRow(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE session SET").
		WithArgs("uid-1", "refresh-2", sqlmock.AnyArg(), sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveRefreshToken(context.Background(), "uid-1", "refresh-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveRefreshToken_InsertsWhenNoRow(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE session SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO session").
		WithArgs(sessionRowID, "uid-1", "refresh-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveRefreshToken(context.Background(), "uid-1", "refresh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ── LoadRefreshToken ─────────────────────────────────────────────────────────

func TestLoadRefreshToken_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"uid", "refresh_token"}).
		AddRow("uid-1", "refresh-1")

	mock.ExpectQuery("SELECT uid, refresh_token FROM session").
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	uid, token, err := repo.LoadRefreshToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != "uid-1" || token != "refresh-1" {
		t.Errorf("unexpected result: uid=%q token=%q", uid, token)
	}
}

func TestLoadRefreshToken_NoRowMeansEmpty(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT uid, refresh_token FROM session").
		WithArgs(sessionRowID).
		WillReturnError(sql.ErrNoRows)

	uid, token, err := repo.LoadRefreshToken(context.Background())
	if err != nil {
		t.Fatalf("a missing row must not be an error, got %v", err)
	}
	if uid != "" || token != "" {
		t.Errorf("expected empty values, got uid=%q token=%q", uid, token)
	}
}

// ── ClearRefreshToken ────────────────────────────────────────────────────────

func TestClearRefreshToken_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE session SET").
		WithArgs("", sqlmock.AnyArg(), sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearRefreshToken(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
