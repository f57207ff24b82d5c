package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

const testUserID = "0190b3a4-7c1e-7d2a-9f00-000000000001"

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	db, mock, raw := newTestDB(t)
	repo := &userRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock, func() { raw.Close() }
}

// ── GetUserByID / GetUserByEmail ──

func TestGetUserByID_Success(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	id := uuid.MustParse(testUserID)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(userRows(testUserID, "john@example.com", "active", 0))

	user, err := repo.GetUserByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != id {
		t.Errorf("expected id %s, got %s", id, user.ID)
	}
	if user.AccountStatus != models.AccountStatusActive {
		t.Errorf("expected status active, got %s", user.AccountStatus)
	}
	if user.MiddleName != nil {
		t.Errorf("expected nil middle name, got %v", *user.MiddleName)
	}
	if user.FullName() != "John Doe" {
		t.Errorf("unexpected full name %q", user.FullName())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetUserByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE lower\\(email\\) = lower\\(\\$1\\)").
		WithArgs("John@Example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByEmail(context.Background(), "John@Example.com")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ── UpdatePassword / ResetLoginAttempts ──

func TestUpdatePassword_Success(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	id := uuid.MustParse(testUserID)
	mock.ExpectExec("UPDATE users SET password_hash = \\$2").
		WithArgs(id, "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), id, "new-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdatePassword_NoRows(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), uuid.New(), "hash")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetLoginAttempts_ExecError(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	mock.ExpectExec("UPDATE users SET failed_login_attempts = 0").
		WillReturnError(errors.New("boom"))

	err := repo.ResetLoginAttempts(context.Background(), uuid.New())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ── RecordFailedLogin ──

func TestRecordFailedLogin_LocksAccount(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	id := uuid.MustParse(testUserID)
	at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE users SET failed_login_attempts = failed_login_attempts \\+ 1").
		WithArgs(id, at, 3).
		WillReturnRows(userRows(testUserID, "john@example.com", "locked", 3))

	user, err := repo.RecordFailedLogin(context.Background(), id, 3, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.AccountStatus != models.AccountStatusLocked {
		t.Errorf("expected locked, got %s", user.AccountStatus)
	}
	if user.FailedLoginAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", user.FailedLoginAttempts)
	}
}

func TestRecordFailedLogin_UnknownUser(t *testing.T) {
	repo, mock, done := newTestUserRepo(t)
	defer done()

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.RecordFailedLogin(context.Background(), uuid.New(), 3, time.Now())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
