package models

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusLocked   AccountStatus = "locked"
	AccountStatusPending  AccountStatus = "pending"
)

// Role is the authorization role assigned to a user.
type Role string

const (
	RoleCustomer         Role = "customer"
	RoleAccountExecutive Role = "account_executive"
	RoleBranchManager    Role = "branch_manager"
	RoleAdmin            Role = "admin"
	RoleSuperAdmin       Role = "super_admin"
	RoleTeller           Role = "teller"
)

// SecurityQuestion identifies the account recovery question chosen by the user.
type SecurityQuestion string

const (
	SecurityQuestionMotherMaidenName SecurityQuestion = "mother_maiden_name"
	SecurityQuestionChildhoodFriend  SecurityQuestion = "childhood_friend"
	SecurityQuestionFavoriteColor    SecurityQuestion = "favorite_color"
	SecurityQuestionBirthCity        SecurityQuestion = "birth_city"
)

type Salutation string

const (
	SalutationMr  Salutation = "Mr."
	SalutationMrs Salutation = "Mrs."
	SalutationMs  Salutation = "Ms."
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "Single"
	MaritalStatusMarried  MaritalStatus = "Married"
	MaritalStatusDivorced MaritalStatus = "Divorced"
	MaritalStatusWidowed  MaritalStatus = "Widowed"
)

// IdentificationType is the kind of identity document presented during KYC.
type IdentificationType string

const (
	IdentificationTypePassport       IdentificationType = "Passport"
	IdentificationTypeNationalID     IdentificationType = "National ID"
	IdentificationTypeDriversLicense IdentificationType = "Driver's License"
)

type EmploymentStatus string

const (
	EmploymentStatusEmployed     EmploymentStatus = "Employed"
	EmploymentStatusSelfEmployed EmploymentStatus = "Self-Employed"
	EmploymentStatusUnemployed   EmploymentStatus = "Unemployed"
	EmploymentStatusStudent      EmploymentStatus = "Student"
	EmploymentStatusRetired      EmploymentStatus = "Retired"
)

// RelationshipType describes how a next of kin is related to the user.
type RelationshipType string

const (
	RelationshipSpouse   RelationshipType = "spouse"
	RelationshipParent   RelationshipType = "parent"
	RelationshipChild    RelationshipType = "child"
	RelationshipSibling  RelationshipType = "sibling"
	RelationshipRelative RelationshipType = "relative"
	RelationshipFriend   RelationshipType = "friend"
	RelationshipOther    RelationshipType = "other"
)

// ImageType selects which profile image slot an upload fills.
type ImageType string

const (
	ImageTypeProfilePhoto   ImageType = "profile_photo"
	ImageTypeIDPhoto        ImageType = "id_photo"
	ImageTypeSignaturePhoto ImageType = "signature_photo"
)

// IsValid reports whether t is one of the known image slots.
func (t ImageType) IsValid() bool {
	switch t {
	case ImageTypeProfilePhoto, ImageTypeIDPhoto, ImageTypeSignaturePhoto:
		return true
	}
	return false
}

type AccountType string

const (
	AccountTypeSavings      AccountType = "savings"
	AccountTypeCurrent      AccountType = "current"
	AccountTypeFixedDeposit AccountType = "fixed_deposit"
)

type BankAccountStatus string

const (
	BankAccountStatusActive   BankAccountStatus = "active"
	BankAccountStatusInactive BankAccountStatus = "inactive"
	BankAccountStatusPending  BankAccountStatus = "pending"
	BankAccountStatusClosed   BankAccountStatus = "closed"
	BankAccountStatusFrozen   BankAccountStatus = "frozen"
)

type AccountCurrency string

const (
	CurrencyUSD AccountCurrency = "USD"
	CurrencyEUR AccountCurrency = "EUR"
	CurrencyGBP AccountCurrency = "GBP"
	CurrencyKES AccountCurrency = "KES"
	CurrencyNGN AccountCurrency = "NGN"
)
