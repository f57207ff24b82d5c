package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccount is a customer account held at the bank.
// Balance and InterestRate are exact decimals; floating point is never used
// for money.
type BankAccount struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	AccountNumber   string            `json:"account_number"`
	AccountName     string            `json:"account_name"`
	AccountType     AccountType       `json:"account_type"`
	AccountStatus   BankAccountStatus `json:"account_status"`
	AccountCurrency AccountCurrency   `json:"account_currency"`

	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	IsPrimary    bool            `json:"is_primary"`

	// KYC flags. KYCVerifiedBy references the staff user who approved it.
	KYCSubmitted  bool       `json:"kyc_submitted"`
	KYCVerified   bool       `json:"kyc_verified"`
	KYCVerifiedBy *uuid.UUID `json:"kyc_verified_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the BankAccount model.
func (b BankAccount) TableName() string {
	return "bank_accounts"
}
