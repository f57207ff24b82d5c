package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/finbank/finbank-api/models"
	"github.com/go-playground/validator/v10"
)

// Tags of rules that span several fields. They are reported through
// struct-level validation and carry fixed messages.
const (
	tagIDDates          = "id_dates"
	tagPassportRequired = "passport_required"
	tagPasswordsMatch   = "passwords_match"
	tagPositive         = "positive"
	tagRequiredDate     = "required_date"
)

var crossFieldMessages = map[string]string{
	tagIDDates:          "The expiry date of the identification document must be later than its issue date.",
	tagPassportRequired: "passport_number is required when identification_type is Passport",
	tagPasswordsMatch:   "New passwords did not match",
}

// RequestValidator validates request bodies with go-playground/validator.
// Field names in reported errors are the JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// registration errors only occur for empty tags or nil funcs
	_ = v.RegisterValidation("identification_type", validateIdentificationType)
	v.RegisterCustomTypeFunc(nullableValue, models.Nullable[string]{}, models.Nullable[models.Date]{})

	v.RegisterStructValidation(profileCreateRules, models.ProfileCreateRequest{})
	v.RegisterStructValidation(profileUpdateRules, models.ProfileUpdateRequest{})
	v.RegisterStructValidation(passwordResetConfirmRules, models.PasswordResetConfirmRequest{})

	return &RequestValidator{validate: v}
}

// Validate checks obj. When fields are given only those fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.ProfileCreateRequest, *models.ProfileCreateRequest,
		models.ProfileUpdateRequest, *models.ProfileUpdateRequest,
		models.NextOfKinCreateRequest, *models.NextOfKinCreateRequest,
		models.LoginRequest, *models.LoginRequest,
		models.PasswordResetRequest, *models.PasswordResetRequest,
		models.PasswordResetConfirmRequest, *models.PasswordResetConfirmRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	details := make([]FieldError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
			Type:    fe.Tag(),
		})
	}

	return &RequestValidationError{Details: details}
}

// PassportRequiredError reports a missing passport number for a passport
// identification the same way struct validation does.
func PassportRequiredError() *RequestValidationError {
	return &RequestValidationError{Details: []FieldError{{
		Field:   "passport_number",
		Message: crossFieldMessages[tagPassportRequired],
		Type:    tagPassportRequired,
	}}}
}

func fieldErrorMessage(fe validator.FieldError) string {
	if msg, ok := crossFieldMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required", tagRequiredDate:
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "e164":
		return "Invalid phone number, expected E.164 format such as +254712345678"
	case "min":
		return "Value is too short, minimum length is " + fe.Param()
	case "max":
		return "Value is too long, maximum length is " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "identification_type":
		return "Value must be one of: Passport, National ID, Driver's License"
	case tagPositive:
		return "Value must be greater than 0"
	default:
		return "Invalid value"
	}
}

func validateIdentificationType(fl validator.FieldLevel) bool {
	switch models.IdentificationType(fl.Field().String()) {
	case models.IdentificationTypePassport,
		models.IdentificationTypeNationalID,
		models.IdentificationTypeDriversLicense:
		return true
	}
	return false
}

func profileCreateRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.ProfileCreateRequest)

	if req.DateOfBirth.IsZero() {
		sl.ReportError(req.DateOfBirth, "date_of_birth", "DateOfBirth", tagRequiredDate, "")
	}
	if req.IDIssuedDate.IsZero() {
		sl.ReportError(req.IDIssuedDate, "id_issued_date", "IDIssuedDate", tagRequiredDate, "")
	}
	if req.IDExpiryDate.IsZero() {
		sl.ReportError(req.IDExpiryDate, "id_expiry_date", "IDExpiryDate", tagRequiredDate, "")
	}
	if !req.IDIssuedDate.IsZero() && !req.IDExpiryDate.IsZero() && !req.IDExpiryDate.After(req.IDIssuedDate.Time) {
		sl.ReportError(req.IDExpiryDate, "id_expiry_date", "IDExpiryDate", tagIDDates, "")
	}
	if req.IdentificationType == models.IdentificationTypePassport && isBlank(req.PassportNumber) {
		sl.ReportError(req.PassportNumber, "passport_number", "PassportNumber", tagPassportRequired, "")
	}
	if !req.AnnualIncome.IsPositive() {
		sl.ReportError(req.AnnualIncome, "annual_income", "AnnualIncome", tagPositive, "")
	}
}

// profileUpdateRules applies cross-field rules only to the fields being
// changed.
func profileUpdateRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.ProfileUpdateRequest)

	if req.IDIssuedDate != nil && req.IDExpiryDate != nil && !req.IDExpiryDate.After(req.IDIssuedDate.Time) {
		sl.ReportError(req.IDExpiryDate, "id_expiry_date", "IDExpiryDate", tagIDDates, "")
	}
	if req.IdentificationType != nil && *req.IdentificationType == models.IdentificationTypePassport && isBlank(req.PassportNumber.Ptr()) {
		sl.ReportError(req.PassportNumber, "passport_number", "PassportNumber", tagPassportRequired, "")
	}
	if req.AnnualIncome != nil && !req.AnnualIncome.IsPositive() {
		sl.ReportError(req.AnnualIncome, "annual_income", "AnnualIncome", tagPositive, "")
	}
}

// nullableValue lets field tags such as omitempty,max apply to the wrapped
// value. Absent and null values are validated as empty.
func nullableValue(field reflect.Value) any {
	if n, ok := field.Interface().(interface{ OrNil() any }); ok {
		return n.OrNil()
	}
	return nil
}

func passwordResetConfirmRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.PasswordResetConfirmRequest)

	if req.NewPassword != req.ConfirmNewPassword {
		sl.ReportError(req.ConfirmNewPassword, "confirm_new_password", "ConfirmNewPassword", tagPasswordsMatch, "")
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
