package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

const (
	userColumns = `id, username, email, first_name, middle_name, last_name, id_no,
		password_hash, security_question, security_answer, account_status, role,
		is_active, is_superuser, failed_login_attempts, last_failed_login,
		created_at, updated_at`

	getUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	getUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1);`

	updateUserPassword = `UPDATE users
		SET password_hash = $2,
			failed_login_attempts = 0,
			last_failed_login = NULL,
			updated_at = NOW()
		WHERE id = $1;`

	recordFailedLogin = `UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
			last_failed_login = $2,
			account_status = CASE
				WHEN failed_login_attempts + 1 >= $3 THEN 'locked'
				ELSE account_status
			END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	resetLoginAttempts = `UPDATE users
		SET failed_login_attempts = 0,
			last_failed_login = NULL,
			account_status = CASE
				WHEN account_status = 'locked' THEN 'active'
				ELSE account_status
			END,
			updated_at = NOW()
		WHERE id = $1;`

	profileColumns = `id, user_id, title, gender, marital_status, date_of_birth,
		country_of_birth, place_of_birth, identification_type, means_of_identification,
		id_issued_date, id_expiry_date, passport_number, phone_number, nationality,
		address, city, country, employment_status, employer_name, employer_address,
		employer_city, employer_country, annual_income, date_of_employment,
		profile_photo_url, id_photo_url, signature_photo_url, created_at, updated_at`

	getProfileByUserID = `SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1;`

	createProfile = `INSERT INTO profiles (
			user_id, title, gender, marital_status, date_of_birth,
			country_of_birth, place_of_birth, identification_type, means_of_identification,
			id_issued_date, id_expiry_date, passport_number, phone_number, nationality,
			address, city, country, employment_status, employer_name, employer_address,
			employer_city, employer_country, annual_income, date_of_employment
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		RETURNING ` + profileColumns + `;`

	nextOfKinColumns = `id, user_id, full_name, relationship, email, phone_number,
		address, city, country, nationality, id_number, is_primary, created_at, updated_at`

	lockUserRow = `SELECT id
		FROM users
		WHERE id = $1
		FOR UPDATE;`

	listNextOfKin = `SELECT ` + nextOfKinColumns + `
		FROM next_of_kin
		WHERE user_id = $1
		ORDER BY is_primary DESC, created_at ASC;`

	createNextOfKin = `INSERT INTO next_of_kin (
			user_id, full_name, relationship, email, phone_number,
			address, city, country, nationality, id_number, is_primary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + nextOfKinColumns + `;`

	nextOfKinPrimaryIndex            = "next_of_kin_one_primary_idx"
	passportNumberRequiredConstraint = "passport_number_required"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateProfileQuery builds a partial UPDATE touching only the columns
// present in update. It returns an empty query when nothing is set.
func buildUpdateProfileQuery(userID uuid.UUID, update models.ProfileUpdateRequest) (string, []any, error) {
	columns := update.Columns()
	if len(columns) == 0 {
		return "", nil, nil
	}

	query, args, err := psql.Update(models.Profile{}.TableName()).
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		// uuid.UUID is an array, sq.Eq would expand it into IN (...).
		Where("user_id = ?", userID).
		Suffix("RETURNING " + profileColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSetImageURLQuery builds the UPDATE that stores a hosted image URL into
// the column matching imageType.
func buildSetImageURLQuery(userID uuid.UUID, imageType models.ImageType, url string) (string, []any, error) {
	column, ok := models.ImageURLColumn(imageType)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownImageColumn, imageType)
	}

	query, args, err := psql.Update(models.Profile{}.TableName()).
		Set(column, url).
		Set("updated_at", sq.Expr("NOW()")).
		Where("user_id = ?", userID).
		Suffix("RETURNING " + profileColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.MiddleName, &u.LastName, &u.IDNo,
		&u.PasswordHash, &u.SecurityQuestion, &u.SecurityAnswer, &u.AccountStatus, &u.Role,
		&u.IsActive, &u.IsSuperuser, &u.FailedLoginAttempts, &u.LastFailedLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Gender, &p.MaritalStatus, &p.DateOfBirth,
		&p.CountryOfBirth, &p.PlaceOfBirth, &p.IdentificationType, &p.MeansOfIdentification,
		&p.IDIssuedDate, &p.IDExpiryDate, &p.PassportNumber, &p.PhoneNumber, &p.Nationality,
		&p.Address, &p.City, &p.Country, &p.EmploymentStatus, &p.EmployerName, &p.EmployerAddress,
		&p.EmployerCity, &p.EmployerCountry, &p.AnnualIncome, &p.DateOfEmployment,
		&p.ProfilePhotoURL, &p.IDPhotoURL, &p.SignaturePhotoURL, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanNextOfKin(row rowScanner) (models.NextOfKin, error) {
	var n models.NextOfKin
	err := row.Scan(
		&n.ID, &n.UserID, &n.FullName, &n.Relationship, &n.Email, &n.PhoneNumber,
		&n.Address, &n.City, &n.Country, &n.Nationality, &n.IDNumber, &n.IsPrimary,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}
