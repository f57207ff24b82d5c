// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/finbank/finbank-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }

func validProfileCreate() models.ProfileCreateRequest {
	return models.ProfileCreateRequest{
		Title:                 models.SalutationMs,
		Gender:                models.GenderFemale,
		MaritalStatus:         models.MaritalStatusMarried,
		DateOfBirth:           models.NewDate(1992, time.May, 4),
		CountryOfBirth:        "Kenya",
		PlaceOfBirth:          "Kisumu",
		IdentificationType:    models.IdentificationTypeNationalID,
		MeansOfIdentification: models.IdentificationTypeNationalID,
		IDIssuedDate:          models.NewDate(2019, time.March, 1),
		IDExpiryDate:          models.NewDate(2029, time.March, 1),
		PhoneNumber:           "+254712345678",
		Nationality:           "Kenyan",
		Address:               "4 Lake Rd",
		City:                  "Kisumu",
		Country:               "Kenya",
		EmploymentStatus:      models.EmploymentStatusSelfEmployed,
		AnnualIncome:          decimal.RequireFromString("120000"),
	}
}

func validationDetails(t *testing.T, err error) *RequestValidationError {
	t.Helper()
	var rve *RequestValidationError
	require.ErrorAs(t, err, &rve)
	return rve
}

func hasDetail(rve *RequestValidationError, field, typ string) bool {
	for _, d := range rve.Details {
		if d.Field == field && d.Type == typ {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestRequestValidator_AcceptsPointers(t *testing.T) {
	v := NewRequestValidator()
	req := validProfileCreate()
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ---------------------------------------------------------------------------
// Profile create
// ---------------------------------------------------------------------------

func TestProfileCreate_Valid(t *testing.T) {
	assert.NoError(t, NewRequestValidator().Validate(context.Background(), validProfileCreate()))
}

func TestProfileCreate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.ProfileCreateRequest)
		field  string
		typ    string
	}{
		{"expiry before issue", func(r *models.ProfileCreateRequest) {
			r.IDExpiryDate = models.NewDate(2018, time.January, 1)
		}, "id_expiry_date", tagIDDates},
		{"expiry equals issue", func(r *models.ProfileCreateRequest) {
			r.IDExpiryDate = r.IDIssuedDate
		}, "id_expiry_date", tagIDDates},
		{"passport without number", func(r *models.ProfileCreateRequest) {
			r.IdentificationType = models.IdentificationTypePassport
		}, "passport_number", tagPassportRequired},
		{"unknown identification type", func(r *models.ProfileCreateRequest) {
			r.MeansOfIdentification = "Library Card"
		}, "means_of_identification", "identification_type"},
		{"bad salutation", func(r *models.ProfileCreateRequest) {
			r.Title = "Dr."
		}, "title", "oneof"},
		{"phone not e164", func(r *models.ProfileCreateRequest) {
			r.PhoneNumber = "0712 345 678"
		}, "phone_number", "e164"},
		{"zero income", func(r *models.ProfileCreateRequest) {
			r.AnnualIncome = decimal.Zero
		}, "annual_income", tagPositive},
		{"missing date of birth", func(r *models.ProfileCreateRequest) {
			r.DateOfBirth = models.Date{}
		}, "date_of_birth", tagRequiredDate},
		{"missing city", func(r *models.ProfileCreateRequest) {
			r.City = ""
		}, "city", "required"},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProfileCreate()
			tt.mutate(&req)

			rve := validationDetails(t, v.Validate(context.Background(), req))
			assert.True(t, hasDetail(rve, tt.field, tt.typ), "details: %+v", rve.Details)
		})
	}
}

func TestProfileCreate_PassportWithNumber(t *testing.T) {
	req := validProfileCreate()
	req.IdentificationType = models.IdentificationTypePassport
	req.PassportNumber = strPtr("A1234567")

	assert.NoError(t, NewRequestValidator().Validate(context.Background(), req))
}

func TestProfileCreate_CrossFieldMessageWins(t *testing.T) {
	req := validProfileCreate()
	req.IDExpiryDate = models.NewDate(2000, time.January, 1)
	req.City = ""

	rve := validationDetails(t, NewRequestValidator().Validate(context.Background(), req))
	assert.Equal(t, "The expiry date of the identification document must be later than its issue date.", rve.Message())
}

// ---------------------------------------------------------------------------
// Profile update
// ---------------------------------------------------------------------------

func TestProfileUpdate_EmptyIsValid(t *testing.T) {
	assert.NoError(t, NewRequestValidator().Validate(context.Background(), models.ProfileUpdateRequest{}))
}

func TestProfileUpdate_Rules(t *testing.T) {
	v := NewRequestValidator()

	issued := models.NewDate(2020, time.January, 1)
	expiry := models.NewDate(2019, time.January, 1)
	rve := validationDetails(t, v.Validate(context.Background(), models.ProfileUpdateRequest{IDIssuedDate: &issued, IDExpiryDate: &expiry}))
	assert.True(t, hasDetail(rve, "id_expiry_date", tagIDDates))

	// a lone expiry date cannot be compared and passes
	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdateRequest{IDExpiryDate: &expiry}))

	passport := models.IdentificationTypePassport
	rve = validationDetails(t, v.Validate(context.Background(), models.ProfileUpdateRequest{IdentificationType: &passport}))
	assert.True(t, hasDetail(rve, "passport_number", tagPassportRequired))

	negative := decimal.NewFromInt(-5)
	rve = validationDetails(t, v.Validate(context.Background(), models.ProfileUpdateRequest{AnnualIncome: &negative}))
	assert.True(t, hasDetail(rve, "annual_income", tagPositive))

	bad := models.Gender("Unknown")
	rve = validationDetails(t, v.Validate(context.Background(), models.ProfileUpdateRequest{Gender: &bad}))
	assert.True(t, hasDetail(rve, "gender", "oneof"))
	assert.Equal(t, messageInvalidRequest, rve.Message())
}

func TestProfileUpdate_NullableFields(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdateRequest{
		PassportNumber: models.Null[string](),
		EmployerName:   models.NewNullable("Acme"),
	}))

	rve := validationDetails(t, v.Validate(context.Background(), models.ProfileUpdateRequest{
		EmployerName: models.NewNullable(strings.Repeat("x", 51)),
	}))
	assert.True(t, hasDetail(rve, "employer_name", "max"))

	passport := models.IdentificationTypePassport
	rve = validationDetails(t, v.Validate(context.Background(), models.ProfileUpdateRequest{
		IdentificationType: &passport,
		PassportNumber:     models.Null[string](),
	}))
	assert.True(t, hasDetail(rve, "passport_number", tagPassportRequired))

	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdateRequest{
		IdentificationType: &passport,
		PassportNumber:     models.NewNullable("A1234567"),
	}))
}

func TestPassportRequiredError(t *testing.T) {
	err := PassportRequiredError()
	assert.True(t, hasDetail(err, "passport_number", tagPassportRequired))
	assert.Equal(t, "passport_number is required when identification_type is Passport", err.Message())
}

// ---------------------------------------------------------------------------
// Next of kin
// ---------------------------------------------------------------------------

func TestNextOfKinCreate(t *testing.T) {
	v := NewRequestValidator()
	req := models.NextOfKinCreateRequest{
		FullName:     "Jane Doe",
		Relationship: models.RelationshipSpouse,
		Email:        "jane@example.com",
		PhoneNumber:  "+254711111111",
		Address:      "1 Main St",
		City:         "Nairobi",
		Country:      "Kenya",
		Nationality:  "Kenyan",
	}
	assert.NoError(t, v.Validate(context.Background(), req))

	req.Email = "not-an-email"
	req.Relationship = "cousin"
	rve := validationDetails(t, v.Validate(context.Background(), req))
	assert.True(t, hasDetail(rve, "email", "email"))
	assert.True(t, hasDetail(rve, "relationship", "oneof"))
}

// ---------------------------------------------------------------------------
// Auth bodies
// ---------------------------------------------------------------------------

func TestPasswordResetConfirm(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.PasswordResetConfirmRequest{
		NewPassword: "s3cretpass", ConfirmNewPassword: "s3cretpass",
	}))

	rve := validationDetails(t, v.Validate(context.Background(), models.PasswordResetConfirmRequest{
		NewPassword: "s3cretpass", ConfirmNewPassword: "s3cretpasz",
	}))
	assert.Equal(t, "New passwords did not match", rve.Message())

	rve = validationDetails(t, v.Validate(context.Background(), models.PasswordResetConfirmRequest{
		NewPassword: "short", ConfirmNewPassword: "short",
	}))
	assert.True(t, hasDetail(rve, "new_password", "min"))
}

func TestLoginAndResetRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "password1"}))
	assert.NoError(t, v.Validate(context.Background(), models.PasswordResetRequest{Email: "a@b.co"}))

	rve := validationDetails(t, v.Validate(context.Background(), models.PasswordResetRequest{}))
	assert.True(t, hasDetail(rve, "email", "required"))
}
