package http

import (
	"errors"
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/internal/validators"
)

const statusError = "error"

// errorResponse is the body of every failed request.
type errorResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Action  string                  `json:"action,omitempty"`
	Details []validators.FieldError `json:"details,omitempty"`
}

// apiError is what a known error turns into on the wire.
type apiError struct {
	status  int
	message string
	action  string
}

type errorTable map[error]apiError

// commonErrors applies to every route. Route specific tables passed to
// writeError are consulted first.
var commonErrors = errorTable{
	ErrInvalidRequestBody: {http.StatusBadRequest, app.MsgInvalidRequestBody, ""},
	ErrMissingImageFile:   {http.StatusBadRequest, app.MsgMissingImageFile, ""},

	service.ErrUserNotFound:    {http.StatusNotFound, app.MsgUserNotFound, ""},
	service.ErrAccountLocked:   {http.StatusForbidden, app.MsgAccountLocked, app.ActionTryAgainLater},
	service.ErrAccountInactive: {http.StatusForbidden, app.MsgAccountInactive, app.ActionContactSupport},
	service.ErrAccountPending:  {http.StatusForbidden, app.MsgAccountPending, app.ActionWaitForActivation},

	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials, ""},

	service.ErrResetTokenExpired: {http.StatusBadRequest, app.MsgResetTokenExpired, app.ActionRequestNewResetLink},
	service.ErrResetTokenInvalid: {http.StatusBadRequest, app.MsgResetTokenInvalid, app.ActionRequestNewResetLink},
	service.ErrResetTokenUsed:    {http.StatusBadRequest, app.MsgResetTokenUsed, app.ActionRequestNewResetLink},

	service.ErrProfileAlreadyExists: {http.StatusBadRequest, app.MsgProfileAlreadyExists, ""},
	service.ErrProfileNotFound:      {http.StatusNotFound, app.MsgProfileNotFound, app.ActionCreateProfileFirst},

	service.ErrMaxNextOfKinReached:    {http.StatusBadRequest, app.MsgMaxNextOfKinReached, ""},
	service.ErrPrimaryNextOfKinExists: {http.StatusBadRequest, app.MsgPrimaryNextOfKinExists, ""},

	service.ErrInvalidImageType:        {http.StatusBadRequest, app.MsgInvalidImageType, ""},
	service.ErrUploadTaskNotFound:      {http.StatusNotFound, app.MsgUploadTaskNotFound, ""},
	service.ErrMissingTaskResultFields: {http.StatusBadRequest, app.MsgMissingTaskResultFields, ""},
	service.ErrInvalidTaskResult:       {http.StatusBadRequest, app.MsgInvalidTaskResult, ""},
}

// accessTokenErrors is used by the auth middleware.
var accessTokenErrors = errorTable{
	service.ErrTokenMissing:     {http.StatusUnauthorized, app.MsgTokenMissing, app.ActionLoginToContinue},
	service.ErrTokenExpired:     {http.StatusUnauthorized, app.MsgTokenExpired, app.ActionLoginAgain},
	service.ErrInvalidTokenType: {http.StatusUnauthorized, app.MsgInvalidTokenType, ""},
	service.ErrTokenInvalid:     {http.StatusUnauthorized, app.MsgCouldNotValidateCredentials, ""},
}

// refreshTokenErrors is used by POST /auth/refresh.
var refreshTokenErrors = errorTable{
	service.ErrTokenMissing:     {http.StatusUnauthorized, app.MsgRefreshTokenMissing, app.ActionLogInAgain},
	service.ErrTokenExpired:     {http.StatusUnauthorized, app.MsgRefreshTokenExpired, ""},
	service.ErrInvalidTokenType: {http.StatusUnauthorized, app.MsgRefreshInvalidTokenType, ""},
	service.ErrTokenInvalid:     {http.StatusUnauthorized, app.MsgRefreshTokenInvalid, ""},
}

// internalError builds the fallback used when no table knows the error.
func internalError(message string) apiError {
	return apiError{http.StatusInternalServerError, message, app.ActionTryAgainLater}
}

// resolveError turns err into a status code and a response body. Validation
// errors carry their own message; everything else is looked up in tables,
// then in commonErrors, and falls back to fallback.
func resolveError(err error, fallback apiError, tables ...errorTable) (int, errorResponse) {
	var requestErr *validators.RequestValidationError
	if errors.As(err, &requestErr) {
		return http.StatusBadRequest, errorResponse{
			Status:  statusError,
			Message: requestErr.Message(),
			Details: requestErr.Details,
		}
	}

	var imageErr *validators.ImageValidationError
	if errors.As(err, &imageErr) {
		return http.StatusBadRequest, errorResponse{Status: statusError, Message: imageErr.Message}
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, errorResponse{
			Status:  statusError,
			Message: validationErr.Message,
			Action:  validationErr.Action,
		}
	}

	known, ok := lookupError(err, append(tables, commonErrors)...)
	if !ok {
		known = fallback
	}

	return known.status, errorResponse{Status: statusError, Message: known.message, Action: known.action}
}

func lookupError(err error, tables ...errorTable) (apiError, bool) {
	for _, table := range tables {
		for target, known := range table {
			if errors.Is(err, target) {
				return known, true
			}
		}
	}
	return apiError{}, false
}

// writeError logs err and writes the JSON error body. Server side failures
// are logged at error level; the raw error text never reaches the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback apiError, tables ...errorTable) {
	log := logger.FromRequest(r)

	status, body := resolveError(err, fallback, tables...)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(body.Message)
	} else {
		log.Info().Err(err).Int("status", status).Msg(body.Message)
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeJSON writes data with status and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeBody decodes the JSON body of r into dst. Any failure is reported
// as ErrInvalidRequestBody.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return errors.Join(ErrInvalidRequestBody, err)
	}
	return nil
}
