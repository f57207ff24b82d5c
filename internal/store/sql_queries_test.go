// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setClause returns the part of an UPDATE between SET and WHERE.
func setClause(t *testing.T, query string) string {
	t.Helper()

	start := strings.Index(query, "SET ")
	end := strings.Index(query, " WHERE ")
	require.True(t, start >= 0 && end > start, "unexpected query shape: %s", query)
	return query[start+len("SET ") : end]
}

func Test_buildUpdateProfileQuery_OnlyPresentFields(t *testing.T) {
	userID := uuid.New()
	city := "Mombasa"
	income := decimal.RequireFromString("72000.50")

	query, args, err := buildUpdateProfileQuery(userID, models.ProfileUpdateRequest{
		City:         &city,
		AnnualIncome: &income,
	})
	require.NoError(t, err)

	set := setClause(t, query)
	assert.Contains(t, set, "annual_income = $1")
	assert.Contains(t, set, "city = $2")
	assert.Contains(t, set, "updated_at = NOW()")
	assert.NotContains(t, set, "country")

	require.Len(t, args, 3)
	assert.Equal(t, income, args[0])
	assert.Equal(t, city, args[1])
	assert.Equal(t, userID, args[2])

	assert.Contains(t, query, "WHERE user_id = $3")
	assert.Contains(t, query, "RETURNING id, user_id")
}

func Test_buildUpdateProfileQuery_NeverTouchesImageColumns(t *testing.T) {
	s := "x"
	income := decimal.NewFromInt(1)
	dob := models.NewDate(1990, 1, 1)
	title := models.SalutationMrs

	// every updatable field set at once
	update := models.ProfileUpdateRequest{
		Title: &title, DateOfBirth: &dob, CountryOfBirth: &s, PlaceOfBirth: &s,
		PassportNumber: models.NewNullable(s), PhoneNumber: &s, Nationality: &s, Address: &s, City: &s,
		Country: &s, EmployerName: models.NewNullable(s), EmployerAddress: models.NewNullable(s),
		EmployerCity: models.NewNullable(s), EmployerCountry: models.NewNullable(s), AnnualIncome: &income,
		DateOfEmployment: models.Null[models.Date](),
	}

	query, _, err := buildUpdateProfileQuery(uuid.New(), update)
	require.NoError(t, err)

	set := setClause(t, query)
	for _, column := range []string{"profile_photo_url", "id_photo_url", "signature_photo_url"} {
		assert.NotContains(t, set, column)
	}
}

func Test_buildUpdateProfileQuery_ExplicitNull(t *testing.T) {
	userID := uuid.New()
	query, args, err := buildUpdateProfileQuery(userID, models.ProfileUpdateRequest{
		PassportNumber:   models.Null[string](),
		DateOfEmployment: models.Null[models.Date](),
	})
	require.NoError(t, err)

	set := setClause(t, query)
	assert.Contains(t, set, "date_of_employment = $1")
	assert.Contains(t, set, "passport_number = $2")
	assert.Equal(t, []any{nil, nil, userID}, args)
}

func Test_buildUpdateProfileQuery_EmptyUpdate(t *testing.T) {
	query, args, err := buildUpdateProfileQuery(uuid.New(), models.ProfileUpdateRequest{})
	require.NoError(t, err)
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func Test_buildSetImageURLQuery(t *testing.T) {
	tests := []struct {
		imageType models.ImageType
		column    string
	}{
		{models.ImageTypeProfilePhoto, "profile_photo_url"},
		{models.ImageTypeIDPhoto, "id_photo_url"},
		{models.ImageTypeSignaturePhoto, "signature_photo_url"},
	}

	for _, tt := range tests {
		t.Run(string(tt.imageType), func(t *testing.T) {
			userID := uuid.New()
			query, args, err := buildSetImageURLQuery(userID, tt.imageType, "https://img")
			require.NoError(t, err)

			assert.Equal(t, tt.column+" = $1, updated_at = NOW()", setClause(t, query))
			assert.Equal(t, []any{"https://img", userID}, args)
		})
	}
}

func Test_buildSetImageURLQuery_UnknownType(t *testing.T) {
	_, _, err := buildSetImageURLQuery(uuid.New(), "avatar", "https://img")
	require.ErrorIs(t, err, ErrUnknownImageColumn)
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.LockNotAvailable, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.CheckViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
		{"XX999", NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_NonPgErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
}
