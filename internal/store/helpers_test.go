package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &DB{
		DB:                 db,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
		txMaxRetries:       2,
		txRetryBackoff:     time.Millisecond,
	}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var (
	userRowColumns = []string{
		"id", "username", "email", "first_name", "middle_name", "last_name", "id_no",
		"password_hash", "security_question", "security_answer", "account_status", "role",
		"is_active", "is_superuser", "failed_login_attempts", "last_failed_login",
		"created_at", "updated_at",
	}

	profileRowColumns = []string{
		"id", "user_id", "title", "gender", "marital_status", "date_of_birth",
		"country_of_birth", "place_of_birth", "identification_type", "means_of_identification",
		"id_issued_date", "id_expiry_date", "passport_number", "phone_number", "nationality",
		"address", "city", "country", "employment_status", "employer_name", "employer_address",
		"employer_city", "employer_country", "annual_income", "date_of_employment",
		"profile_photo_url", "id_photo_url", "signature_photo_url", "created_at", "updated_at",
	}

	nextOfKinRowColumns = []string{
		"id", "user_id", "full_name", "relationship", "email", "phone_number",
		"address", "city", "country", "nationality", "id_number", "is_primary",
		"created_at", "updated_at",
	}
)

func userRows(id, email, status string, attempts int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userRowColumns).AddRow(
		id, "jdoe", email, "John", nil, "Doe", int64(12345678),
		"$2a$10$hash", "favorite_color", "blue", status, "customer",
		true, false, attempts, nil,
		now, now,
	)
}

func profileRows(id, userID string, profilePhotoURL any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileRowColumns).AddRow(
		id, userID, "Mr.", "Male", "Single", time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		"Kenya", "Nairobi", "National ID", "National ID",
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil, "+254700000000", "Kenyan",
		"1 Main St", "Nairobi", "Kenya", "Employed", "Acme", nil,
		nil, nil, "50000.00", nil,
		profilePhotoURL, nil, nil, now, now,
	)
}

func nextOfKinRow(rows *sqlmock.Rows, id, userID, name string, primary bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, userID, name, "sibling", "kin@example.com", "+254711111111",
		"2 Side St", "Nairobi", "Kenya", "Kenyan", nil, primary,
		now, now,
	)
}
