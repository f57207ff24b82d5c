package service

import "errors"

var (
	ErrTokenMissing        = errors.New("token is missing")
	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrInvalidTokenType    = errors.New("invalid token type")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrAccountPending     = errors.New("account is pending activation")

	ErrResetTokenExpired = errors.New("password reset token is expired")
	ErrResetTokenInvalid = errors.New("password reset token is invalid")
	ErrResetTokenUsed    = errors.New("password reset token was already used")

	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrProfileNotFound      = errors.New("profile not found")

	ErrMaxNextOfKinReached    = errors.New("maximum number of next of kin reached")
	ErrPrimaryNextOfKinExists = errors.New("primary next of kin already exists")

	ErrInvalidImageType        = errors.New("invalid image type")
	ErrUploadTaskNotFound      = errors.New("upload task not found")
	ErrMissingTaskResultFields = errors.New("missing required fields in the task result")
	ErrInvalidTaskResult       = errors.New("invalid task result format")
	ErrSecureURLNotReceived    = errors.New("upload successful but secure URL not received")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// ValidationError is a user-facing validation failure whose message is
// composed at runtime. Action optionally tells the user what to do next.
type ValidationError struct {
	Message string
	Action  string
}

func (e *ValidationError) Error() string {
	return e.Message
}
