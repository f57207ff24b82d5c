package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile is the KYC record of a user. Each user owns at most one profile.
type Profile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Title         Salutation    `json:"title"`
	Gender        Gender        `json:"gender"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	DateOfBirth   Date          `json:"date_of_birth"`

	CountryOfBirth string `json:"country_of_birth"`
	PlaceOfBirth   string `json:"place_of_birth"`

	// IdentificationType and MeansOfIdentification describe the identity
	// document on file. A passport requires PassportNumber.
	IdentificationType    IdentificationType `json:"identification_type"`
	MeansOfIdentification IdentificationType `json:"means_of_identification"`
	IDIssuedDate          Date               `json:"id_issued_date"`
	IDExpiryDate          Date               `json:"id_expiry_date"`
	PassportNumber        *string            `json:"passport_number,omitempty"`

	PhoneNumber string `json:"phone_number"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`

	EmploymentStatus EmploymentStatus `json:"employment_status"`
	EmployerName     *string          `json:"employer_name,omitempty"`
	EmployerAddress  *string          `json:"employer_address,omitempty"`
	EmployerCity     *string          `json:"employer_city,omitempty"`
	EmployerCountry  *string          `json:"employer_country,omitempty"`
	AnnualIncome     decimal.Decimal  `json:"annual_income"`
	DateOfEmployment *Date            `json:"date_of_employment,omitempty"`

	// Photo URLs are written only by the image upload pipeline.
	ProfilePhotoURL   *string `json:"profile_photo_url,omitempty"`
	IDPhotoURL        *string `json:"id_photo_url,omitempty"`
	SignaturePhotoURL *string `json:"signature_photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ImageURLColumn maps an image slot to the profile column storing its URL.
func ImageURLColumn(t ImageType) (string, bool) {
	switch t {
	case ImageTypeProfilePhoto:
		return "profile_photo_url", true
	case ImageTypeIDPhoto:
		return "id_photo_url", true
	case ImageTypeSignaturePhoto:
		return "signature_photo_url", true
	}
	return "", false
}

// ProfileCreateRequest is the payload of profile creation.
type ProfileCreateRequest struct {
	Title                 Salutation         `json:"title" validate:"required,oneof=Mr. Mrs. Ms."`
	Gender                Gender             `json:"gender" validate:"required,oneof=Male Female Other"`
	MaritalStatus         MaritalStatus      `json:"marital_status" validate:"required,oneof=Single Married Divorced Widowed"`
	DateOfBirth           Date               `json:"date_of_birth"`
	CountryOfBirth        string             `json:"country_of_birth" validate:"required,max=100"`
	PlaceOfBirth          string             `json:"place_of_birth" validate:"required,max=100"`
	IdentificationType    IdentificationType `json:"identification_type" validate:"required,identification_type"`
	MeansOfIdentification IdentificationType `json:"means_of_identification" validate:"required,identification_type"`
	IDIssuedDate          Date               `json:"id_issued_date"`
	IDExpiryDate          Date               `json:"id_expiry_date"`
	PassportNumber        *string            `json:"passport_number" validate:"omitempty,max=30"`
	PhoneNumber           string             `json:"phone_number" validate:"required,e164"`
	Nationality           string             `json:"nationality" validate:"required,max=50"`
	Address               string             `json:"address" validate:"required,max=255"`
	City                  string             `json:"city" validate:"required,max=100"`
	Country               string             `json:"country" validate:"required,max=100"`
	EmploymentStatus      EmploymentStatus   `json:"employment_status" validate:"required,oneof=Employed Self-Employed Unemployed Student Retired"`
	EmployerName          *string            `json:"employer_name" validate:"omitempty,max=50"`
	EmployerAddress       *string            `json:"employer_address" validate:"omitempty,max=255"`
	EmployerCity          *string            `json:"employer_city" validate:"omitempty,max=100"`
	EmployerCountry       *string            `json:"employer_country" validate:"omitempty,max=100"`
	AnnualIncome          decimal.Decimal    `json:"annual_income"`
	DateOfEmployment      *Date              `json:"date_of_employment"`
}

// ToProfile builds a new profile owned by userID from the request.
func (r ProfileCreateRequest) ToProfile(userID uuid.UUID) Profile {
	return Profile{
		UserID:                userID,
		Title:                 r.Title,
		Gender:                r.Gender,
		MaritalStatus:         r.MaritalStatus,
		DateOfBirth:           r.DateOfBirth,
		CountryOfBirth:        r.CountryOfBirth,
		PlaceOfBirth:          r.PlaceOfBirth,
		IdentificationType:    r.IdentificationType,
		MeansOfIdentification: r.MeansOfIdentification,
		IDIssuedDate:          r.IDIssuedDate,
		IDExpiryDate:          r.IDExpiryDate,
		PassportNumber:        r.PassportNumber,
		PhoneNumber:           r.PhoneNumber,
		Nationality:           r.Nationality,
		Address:               r.Address,
		City:                  r.City,
		Country:               r.Country,
		EmploymentStatus:      r.EmploymentStatus,
		EmployerName:          r.EmployerName,
		EmployerAddress:       r.EmployerAddress,
		EmployerCity:          r.EmployerCity,
		EmployerCountry:       r.EmployerCountry,
		AnnualIncome:          r.AnnualIncome,
		DateOfEmployment:      r.DateOfEmployment,
	}
}

// ProfileUpdateRequest is a partial profile update.
// Only fields present in the request are written. Nullable columns can be
// cleared with an explicit null; for the others null means not supplied.
// It has no photo URL fields, so those columns cannot be changed here.
type ProfileUpdateRequest struct {
	Title                 *Salutation         `json:"title,omitempty" validate:"omitempty,oneof=Mr. Mrs. Ms."`
	Gender                *Gender             `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus         *MaritalStatus      `json:"marital_status,omitempty" validate:"omitempty,oneof=Single Married Divorced Widowed"`
	DateOfBirth           *Date               `json:"date_of_birth,omitempty"`
	CountryOfBirth        *string             `json:"country_of_birth,omitempty" validate:"omitempty,max=100"`
	PlaceOfBirth          *string             `json:"place_of_birth,omitempty" validate:"omitempty,max=100"`
	IdentificationType    *IdentificationType `json:"identification_type,omitempty" validate:"omitempty,identification_type"`
	MeansOfIdentification *IdentificationType `json:"means_of_identification,omitempty" validate:"omitempty,identification_type"`
	IDIssuedDate          *Date               `json:"id_issued_date,omitempty"`
	IDExpiryDate          *Date               `json:"id_expiry_date,omitempty"`
	PassportNumber        Nullable[string]    `json:"passport_number,omitzero" validate:"omitempty,max=30"`
	PhoneNumber           *string             `json:"phone_number,omitempty" validate:"omitempty,e164"`
	Nationality           *string             `json:"nationality,omitempty" validate:"omitempty,max=50"`
	Address               *string             `json:"address,omitempty" validate:"omitempty,max=255"`
	City                  *string             `json:"city,omitempty" validate:"omitempty,max=100"`
	Country               *string             `json:"country,omitempty" validate:"omitempty,max=100"`
	EmploymentStatus      *EmploymentStatus   `json:"employment_status,omitempty" validate:"omitempty,oneof=Employed Self-Employed Unemployed Student Retired"`
	EmployerName          Nullable[string]    `json:"employer_name,omitzero" validate:"omitempty,max=50"`
	EmployerAddress       Nullable[string]    `json:"employer_address,omitzero" validate:"omitempty,max=255"`
	EmployerCity          Nullable[string]    `json:"employer_city,omitzero" validate:"omitempty,max=100"`
	EmployerCountry       Nullable[string]    `json:"employer_country,omitzero" validate:"omitempty,max=100"`
	AnnualIncome          *decimal.Decimal    `json:"annual_income,omitempty"`
	DateOfEmployment      Nullable[Date]      `json:"date_of_employment,omitzero"`
}

// Columns returns the column/value pairs of the fields present in the request.
func (r ProfileUpdateRequest) Columns() map[string]any {
	cols := make(map[string]any)
	set := func(name string, present bool, v any) {
		if present {
			cols[name] = v
		}
	}

	set("title", r.Title != nil, ptrValue(r.Title))
	set("gender", r.Gender != nil, ptrValue(r.Gender))
	set("marital_status", r.MaritalStatus != nil, ptrValue(r.MaritalStatus))
	set("date_of_birth", r.DateOfBirth != nil, ptrValue(r.DateOfBirth))
	set("country_of_birth", r.CountryOfBirth != nil, ptrValue(r.CountryOfBirth))
	set("place_of_birth", r.PlaceOfBirth != nil, ptrValue(r.PlaceOfBirth))
	set("identification_type", r.IdentificationType != nil, ptrValue(r.IdentificationType))
	set("means_of_identification", r.MeansOfIdentification != nil, ptrValue(r.MeansOfIdentification))
	set("id_issued_date", r.IDIssuedDate != nil, ptrValue(r.IDIssuedDate))
	set("id_expiry_date", r.IDExpiryDate != nil, ptrValue(r.IDExpiryDate))
	set("passport_number", r.PassportNumber.Set, r.PassportNumber.OrNil())
	set("phone_number", r.PhoneNumber != nil, ptrValue(r.PhoneNumber))
	set("nationality", r.Nationality != nil, ptrValue(r.Nationality))
	set("address", r.Address != nil, ptrValue(r.Address))
	set("city", r.City != nil, ptrValue(r.City))
	set("country", r.Country != nil, ptrValue(r.Country))
	set("employment_status", r.EmploymentStatus != nil, ptrValue(r.EmploymentStatus))
	set("employer_name", r.EmployerName.Set, r.EmployerName.OrNil())
	set("employer_address", r.EmployerAddress.Set, r.EmployerAddress.OrNil())
	set("employer_city", r.EmployerCity.Set, r.EmployerCity.OrNil())
	set("employer_country", r.EmployerCountry.Set, r.EmployerCountry.OrNil())
	set("annual_income", r.AnnualIncome != nil, ptrValue(r.AnnualIncome))
	set("date_of_employment", r.DateOfEmployment.Set, r.DateOfEmployment.OrNil())

	return cols
}

func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
