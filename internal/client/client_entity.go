package client

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

// Client is the master record for any party the firm acts for: an
// individual, company, firm, LLP, HUF, trust, AOP or BOI. Individual-only
// KYC and portal credential columns stay null for non-individuals.
// Password columns marked "encrypted" hold Fernet ciphertext, never
// plaintext.
type Client struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	PAN          string    `gorm:"column:pan;type:text;not null;uniqueIndex"`
	Constitution string    `gorm:"column:constitution;type:constitution_type;not null"`
	DisplayName  string    `gorm:"column:display_name;type:text;not null"`
	LegalName    string    `gorm:"column:legal_name;type:text;not null"`

	DateOfIncorporationBirth *types.Date `gorm:"column:date_of_incorporation_birth;type:date"`
	CinLlpin                 *string     `gorm:"column:cin_llpin;type:text"`
	TAN                      *string     `gorm:"column:tan;type:text"`
	IsDirectClient           bool        `gorm:"column:is_direct_client;not null;default:true"`
	IsActive                 bool        `gorm:"column:is_active;not null;default:true"`
	IsOnRetainer             bool        `gorm:"column:is_on_retainer;not null;default:false"`
	ClientSince              *types.Date `gorm:"column:client_since;type:date"`

	// Individual KYC
	FatherName     *string     `gorm:"column:father_name;type:text"`
	MotherName     *string     `gorm:"column:mother_name;type:text"`
	Gender         *string     `gorm:"column:gender;type:gender_type"`
	Nationality    *string     `gorm:"column:nationality;type:text"`
	AadhaarNo      *string     `gorm:"column:aadhaar_no;type:text"`
	DIN            *string     `gorm:"column:din;type:text"`
	PassportNo     *string     `gorm:"column:passport_no;type:text"`
	PassportExpiry *types.Date `gorm:"column:passport_expiry;type:date"`

	// MCA v3 portal
	MCAUserID   *string `gorm:"column:mca_user_id;type:text"`
	MCAPassword *string `gorm:"column:mca_password;type:text"` // encrypted

	// DSC
	DSCProvider      *string     `gorm:"column:dsc_provider;type:text"`
	DSCExpiryDate    *types.Date `gorm:"column:dsc_expiry_date;type:date"`
	DSCTokenPassword *string     `gorm:"column:dsc_token_password;type:text"` // encrypted

	// Contact
	PrimaryPhone   *string `gorm:"column:primary_phone;type:text"`
	SecondaryPhone *string `gorm:"column:secondary_phone;type:text"`
	PrimaryEmail   *string `gorm:"column:primary_email;type:text"`
	SecondaryEmail *string `gorm:"column:secondary_email;type:text"`

	// Address
	AddressLine1 *string `gorm:"column:address_line1;type:text"`
	AddressLine2 *string `gorm:"column:address_line2;type:text"`
	City         *string `gorm:"column:city;type:text"`
	State        *string `gorm:"column:state;type:text"`
	PinCode      *string `gorm:"column:pin_code;type:text"`

	// Income-Tax portal
	ITPortalUserID    *string `gorm:"column:it_portal_user_id;type:text"`
	ITPortalPassword  *string `gorm:"column:it_portal_password;type:text"` // encrypted
	ITPortalUserIDTDS *string `gorm:"column:it_portal_user_id_tds;type:text"`
	ITPasswordTDS     *string `gorm:"column:it_password_tds;type:text"` // encrypted
	Password26AS      *string `gorm:"column:password_26as;type:text"`   // encrypted
	PasswordAISTIS    *string `gorm:"column:password_ais_tis;type:text"` // encrypted

	// TRACES
	TracesUserIDDeductor   *string `gorm:"column:traces_user_id_deductor;type:text"`
	TracesPasswordDeductor *string `gorm:"column:traces_password_deductor;type:text"` // encrypted
	TracesUserIDTaxpayer   *string `gorm:"column:traces_user_id_taxpayer;type:text"`
	TracesPasswordTaxpayer *string `gorm:"column:traces_password_taxpayer;type:text"` // encrypted

	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Client) TableName() string { return "clients" }
