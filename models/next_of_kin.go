package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxNextOfKin is the maximum number of next-of-kin records a user may hold.
const MaxNextOfKin = 3

// NextOfKin is an emergency/beneficiary contact attached to a user.
//
// A user holds at most [MaxNextOfKin] records and at most one of them is
// primary. The first record a user creates is always primary.
type NextOfKin struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	FullName     string           `json:"full_name"`
	Relationship RelationshipType `json:"relationship"`
	Email        string           `json:"email"`
	PhoneNumber  string           `json:"phone_number"`
	Address      string           `json:"address"`
	City         string           `json:"city"`
	Country      string           `json:"country"`
	Nationality  string           `json:"nationality"`
	IDNumber     *string          `json:"id_number,omitempty"`
	IsPrimary    bool             `json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the NextOfKin model.
func (n NextOfKin) TableName() string {
	return "next_of_kin"
}

// NextOfKinCreateRequest is the payload of next-of-kin creation.
type NextOfKinCreateRequest struct {
	FullName     string           `json:"full_name" validate:"required,max=100"`
	Relationship RelationshipType `json:"relationship" validate:"required,oneof=spouse parent child sibling relative friend other"`
	Email        string           `json:"email" validate:"required,email"`
	PhoneNumber  string           `json:"phone_number" validate:"required,e164"`
	Address      string           `json:"address" validate:"required,max=255"`
	City         string           `json:"city" validate:"required,max=100"`
	Country      string           `json:"country" validate:"required,max=100"`
	Nationality  string           `json:"nationality" validate:"required,max=50"`
	IDNumber     *string          `json:"id_number" validate:"omitempty,max=30"`
	IsPrimary    bool             `json:"is_primary"`
}

// ToNextOfKin builds a record owned by userID from the request.
func (r NextOfKinCreateRequest) ToNextOfKin(userID uuid.UUID) NextOfKin {
	return NextOfKin{
		UserID:       userID,
		FullName:     r.FullName,
		Relationship: r.Relationship,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		City:         r.City,
		Country:      r.Country,
		Nationality:  r.Nationality,
		IDNumber:     r.IDNumber,
		IsPrimary:    r.IsPrimary,
	}
}
