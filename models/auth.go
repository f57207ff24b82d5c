package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=40"`
}

// PasswordResetRequest is the body of POST /auth/request-password-reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest is the body of POST /auth/reset-password/{token}.
// Both fields must match.
type PasswordResetConfirmRequest struct {
	NewPassword        string `json:"new_password" validate:"required,min=8,max=40"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,min=8,max=40"`
}

// MessageResponse is the body of endpoints that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}
