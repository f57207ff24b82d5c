package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a bank customer or staff account used for authentication
// and authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user. It is the "id" claim of every
	// token issued for the user.
	ID uuid.UUID `json:"id"`

	// Username is an optional unique handle of at most 12 characters.
	Username *string `json:"username,omitempty"`

	// Email is the unique login identifier and the destination of
	// transactional emails.
	Email string `json:"email"`

	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`

	// IDNo is the unique, strictly positive national identification number.
	IDNo int64 `json:"id_no"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	SecurityQuestion SecurityQuestion `json:"security_question"`
	SecurityAnswer   string           `json:"-"`

	AccountStatus AccountStatus `json:"account_status"`
	Role          Role          `json:"role"`
	IsActive      bool          `json:"is_active"`
	IsSuperuser   bool          `json:"is_superuser"`

	// FailedLoginAttempts counts consecutive failed logins since the last
	// successful one. Reaching the configured limit locks the account.
	FailedLoginAttempts int `json:"-"`

	// LastFailedLogin is the time of the latest failed login. Together with
	// the lockout duration it decides when a locked account unlocks.
	LastFailedLogin *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first, middle and last name, skipping blank parts.
func (u User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstName, deref(u.MiddleName), u.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Summary returns the public subset of the user returned by auth endpoints.
func (u User) Summary() UserSummary {
	return UserSummary{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Username:  u.Username,
		Email:     u.Email,
		IDNo:      u.IDNo,
		Role:      u.Role,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the user block embedded into login and refresh responses.
type UserSummary struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Username  *string `json:"username"`
	Email     string  `json:"email"`
	IDNo      int64   `json:"id_no"`
	Role      Role    `json:"role"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
