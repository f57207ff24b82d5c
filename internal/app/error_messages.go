// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Finbank API handlers and middleware.
//
// Msg* constants are the human-readable messages written into the "message"
// field of JSON response bodies. Action* constants fill the optional "action"
// field and tell the client what to do next. Keeping them in one place keeps
// the wording consistent throughout the API.
package app

// Authentication and session messages.
const (
	// MsgTokenMissing is returned when a protected route is called without
	// the access token cookie.
	MsgTokenMissing = "Authentication token is missing."

	// MsgTokenExpired is returned when the access token is past its expiry.
	MsgTokenExpired = "Token has expired."

	// MsgInvalidTokenType is returned when a refresh or reset token is sent
	// where an access token is expected.
	MsgInvalidTokenType = "Invalid token type."

	// MsgCouldNotValidateCredentials covers every other access token defect.
	MsgCouldNotValidateCredentials = "Could not validate credentials."

	MsgUserNotFound = "User not found."

	// MsgAuthenticationFailed is returned when the auth guard fails for a
	// reason the client cannot fix.
	MsgAuthenticationFailed = "Authentication failed."

	MsgAccountLocked   = "Your account is temporarily locked due to too many failed login attempts."
	MsgAccountInactive = "Your account is not active."
	MsgAccountPending  = "Your account is pending activation."

	MsgInvalidCredentials = "Invalid email or password."
	MsgLoginSuccessful    = "Login successful."
	MsgLoginFailed        = "Failed to log in user."

	MsgRefreshTokenMissing        = "Refresh token missing"
	MsgRefreshInvalidTokenType    = "Invalid token type"
	MsgRefreshTokenExpired        = "Refresh token expired"
	MsgRefreshTokenInvalid        = "Invalid refresh token"
	MsgAccessTokenRefreshed       = "Access token refreshed successfully."
	MsgFailedToRefreshAccessToken = "Failed to refresh access token."

	MsgLoggedOut      = "Successfully logged out."
	MsgFailedToLogout = "Failed to log out user."
)

// Password reset messages.
const (
	// MsgPasswordResetRequested is returned whether or not the email belongs
	// to an account.
	MsgPasswordResetRequested     = "If an account with that email exists, a password reset link has been sent."
	MsgFailedPasswordResetRequest = "Failed to process password reset request."
	MsgPasswordResetSuccessful    = "Password has been successfully reset."
	MsgFailedToResetPassword      = "Failed to reset password."
	MsgResetTokenExpired          = "Password reset token has expired."
	MsgResetTokenInvalid          = "Invalid password reset token."
	MsgResetTokenUsed             = "Password reset token has already been used."
)

// Profile and next-of-kin messages.
const (
	MsgProfileAlreadyExists  = "Profile already exists for this user."
	MsgProfileNotFound       = "Profile not found."
	MsgFailedToCreateProfile = "Failed to create user profile."
	MsgFailedToUpdateProfile = "Failed to update user profile."
	MsgFailedToFetchProfile  = "Failed to fetch user profile."

	MsgMaxNextOfKinReached     = "Maximum number of kin (3) already reached."
	MsgPrimaryNextOfKinExists  = "A primary next of kin already exists."
	MsgFailedToCreateNextOfKin = "Failed to create next of kin."
	MsgFailedToFetchNextOfKin  = "Failed to fetch next of kin."
)

// Image upload messages.
const (
	MsgInvalidImageType           = "Invalid image type"
	MsgImageUploadScheduled       = "Image upload scheduled."
	MsgFailedToProcessImageUpload = "Failed to process image upload."
	MsgMissingImageFile           = "Image file is required in the \"file\" field."
	MsgUploadTaskNotFound         = "Upload task not found."
	MsgMissingTaskResultFields    = "Missing required fields in the task result"
	MsgInvalidTaskResult          = "Invalid task result format"
	MsgFailedToGetUploadStatus    = "Failed to get upload status"
)

// Generic messages.
const (
	// MsgInvalidRequestBody is returned when the body is empty or is not
	// valid JSON.
	MsgInvalidRequestBody = "Invalid request body."

	MsgInternalServerError = "Internal server error."
	MsgMethodNotAllowed    = "Method not allowed."
	MsgRouteNotFound       = "Resource not found."
	MsgWelcome             = "Welcome to Finbank API"
)

// Follow-up actions.
const (
	ActionLoginToContinue     = "Please login to continue."
	ActionLoginAgain          = "Please login again."
	ActionLogInAgain          = "Please log in again."
	ActionTryAgainLater       = "Please try again later."
	ActionRequestNewResetLink = "Please request a new password reset link."
	ActionCreateProfileFirst  = "Please create a profile first."
	ActionContactSupport      = "Please contact support."
	ActionWaitForActivation   = "Please wait for your account to be activated."
)
