package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/internal/validators"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── profile ─────────────────────────────────────────────────────────────────

func TestCreateProfile_Created(t *testing.T) {
	h, ts := newTestHandler(t)
	user := testUser()
	ts.authenticateAs(user)
	created := models.Profile{ID: uuid.New(), UserID: user.ID, City: "Nairobi"}
	ts.profile.EXPECT().CreateProfile(gomock.Any(), user.ID, gomock.Any()).Return(created, nil)

	rr := serve(h, authorized(jsonRequest(t, http.MethodPost, "/profile/create", map[string]any{"city": "Nairobi"})))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"city":"Nairobi"`)
}

func TestCreateProfile_Failures(t *testing.T) {
	schemaErr := &validators.RequestValidationError{Details: []validators.FieldError{
		{Field: "phone_number", Message: "Invalid phone number", Type: "e164"},
	}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"already exists", service.ErrProfileAlreadyExists, http.StatusBadRequest, "Profile already exists for this user."},
		{"schema", schemaErr, http.StatusBadRequest, "Invalid request data"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to create user profile."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			user := testUser()
			ts.authenticateAs(user)
			ts.profile.EXPECT().CreateProfile(gomock.Any(), user.ID, gomock.Any()).Return(models.Profile{}, tt.err)

			rr := serve(h, authorized(jsonRequest(t, http.MethodPost, "/profile/create", map[string]any{})))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeErrorBody(t, rr).Message)
		})
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	h, ts := newTestHandler(t)
	user := testUser()
	ts.authenticateAs(user)
	ts.profile.EXPECT().UpdateProfile(gomock.Any(), user.ID, gomock.Any()).Return(models.Profile{}, service.ErrProfileNotFound)

	rr := serve(h, authorized(jsonRequest(t, http.MethodPatch, "/profile/update", map[string]any{"city": "Mombasa"})))

	require.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, "Profile not found.", body.Message)
	assert.Equal(t, "Please create a profile first.", body.Action)
}

func TestUpdateProfile_PassesOnlySuppliedFields(t *testing.T) {
	h, ts := newTestHandler(t)
	user := testUser()
	ts.authenticateAs(user)
	ts.profile.EXPECT().UpdateProfile(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.ProfileUpdateRequest) (models.Profile, error) {
			columns := req.Columns()
			assert.Equal(t, map[string]any{"city": "Mombasa"}, columns)
			return models.Profile{UserID: user.ID, City: "Mombasa"}, nil
		})

	rr := serve(h, authorized(jsonRequest(t, http.MethodPatch, "/profile/update", map[string]any{
		"city":              "Mombasa",
		"profile_photo_url": "https://evil.example/x.png",
	})))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateProfile_ExplicitNullClearsColumn(t *testing.T) {
	h, ts := newTestHandler(t)
	user := testUser()
	ts.authenticateAs(user)
	ts.profile.EXPECT().UpdateProfile(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.ProfileUpdateRequest) (models.Profile, error) {
			assert.Equal(t, map[string]any{"employer_name": nil, "employer_city": "Kisumu"}, req.Columns())
			return models.Profile{UserID: user.ID}, nil
		})

	rr := serve(h, authorized(jsonRequest(t, http.MethodPatch, "/profile/update", map[string]any{
		"employer_name": nil,
		"employer_city": "Kisumu",
	})))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateProfile_WrongMethod(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.authenticateAs(testUser())

	rr := serve(h, authorized(jsonRequest(t, http.MethodPut, "/profile/update", map[string]any{})))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, []string{http.MethodPatch}, rr.Header().Values("Allow"))
}

// Protected routes authenticate before method matching, so an anonymous
// request with the wrong method gets 401 rather than 405.
func TestUpdateProfile_WrongMethod_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, jsonRequest(t, http.MethodPut, "/profile/update", map[string]any{}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Authentication token is missing.", decodeErrorBody(t, rr).Message)
}

// ── next of kin ─────────────────────────────────────────────────────────────

func TestCreateNextOfKin_Created(t *testing.T) {
	h, ts := newTestHandler(t)
	user := testUser()
	ts.authenticateAs(user)
	ts.kin.EXPECT().CreateNextOfKin(gomock.Any(), user.ID, gomock.Any()).
		Return(models.NextOfKin{UserID: user.ID, FullName: "Bob", IsPrimary: true}, nil)

	rr := serve(h, authorized(jsonRequest(t, http.MethodPost, "/next-of-kin/create", map[string]any{"full_name": "Bob", "is_primary": false})))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"is_primary":true`)
}

func TestCreateNextOfKin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"fourth record", service.ErrMaxNextOfKinReached, http.StatusBadRequest, "Maximum number of kin (3) already reached."},
		{"second primary", service.ErrPrimaryNextOfKinExists, http.StatusBadRequest, "A primary next of kin already exists."},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to create next of kin."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			user := testUser()
			ts.authenticateAs(user)
			ts.kin.EXPECT().CreateNextOfKin(gomock.Any(), user.ID, gomock.Any()).Return(models.NextOfKin{}, tt.err)

			rr := serve(h, authorized(jsonRequest(t, http.MethodPost, "/next-of-kin/create", map[string]any{"full_name": "Bob"})))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeErrorBody(t, rr).Message)
		})
	}
}

func TestListNextOfKin_Empty(t *testing.T) {
	h, ts := newTestHandler(t)
	user := testUser()
	ts.authenticateAs(user)
	ts.kin.EXPECT().ListNextOfKin(gomock.Any(), user.ID).Return([]models.NextOfKin{}, nil)

	rr := serve(h, authorized(jsonRequest(t, http.MethodGet, "/next-of-kin/all", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
