package client

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"
)

type CreateClientRequest struct {
	PAN          string `json:"pan" binding:"required"`
	Constitution string `json:"constitution" binding:"required,oneof=Individual 'Partnership Firm' LLP Company HUF Trust AOP BOI"`
	DisplayName  string `json:"display_name" binding:"required"`
	LegalName    string `json:"legal_name" binding:"required"`

	DateOfIncorporationBirth *types.Date `json:"date_of_incorporation_birth"`
	CinLlpin                 *string     `json:"cin_llpin"`
	TAN                      *string     `json:"tan"`
	IsDirectClient           *bool       `json:"is_direct_client"`
	IsOnRetainer             *bool       `json:"is_on_retainer"`
	ClientSince              *types.Date `json:"client_since"`

	FatherName     *string     `json:"father_name"`
	MotherName     *string     `json:"mother_name"`
	Gender         *string     `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Nationality    *string     `json:"nationality"`
	AadhaarNo      *string     `json:"aadhaar_no"`
	DIN            *string     `json:"din"`
	PassportNo     *string     `json:"passport_no"`
	PassportExpiry *types.Date `json:"passport_expiry"`

	MCAUserID   *string `json:"mca_user_id"`
	MCAPassword *string `json:"mca_password"`

	DSCProvider      *string     `json:"dsc_provider"`
	DSCExpiryDate    *types.Date `json:"dsc_expiry_date"`
	DSCTokenPassword *string     `json:"dsc_token_password"`

	PrimaryPhone   *string `json:"primary_phone"`
	SecondaryPhone *string `json:"secondary_phone"`
	PrimaryEmail   *string `json:"primary_email" binding:"omitempty,email"`
	SecondaryEmail *string `json:"secondary_email" binding:"omitempty,email"`

	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PinCode      *string `json:"pin_code"`

	ITPortalUserID    *string `json:"it_portal_user_id"`
	ITPortalPassword  *string `json:"it_portal_password"`
	ITPortalUserIDTDS *string `json:"it_portal_user_id_tds"`
	ITPasswordTDS     *string `json:"it_password_tds"`
	Password26AS      *string `json:"password_26as"`
	PasswordAISTIS    *string `json:"password_ais_tis"`

	TracesUserIDDeductor   *string `json:"traces_user_id_deductor"`
	TracesPasswordDeductor *string `json:"traces_password_deductor"`
	TracesUserIDTaxpayer   *string `json:"traces_user_id_taxpayer"`
	TracesPasswordTaxpayer *string `json:"traces_password_taxpayer"`

	Notes *string `json:"notes"`
}

// UpdateClientRequest is a partial patch: only non-nil fields are applied to
// the stored record.
type UpdateClientRequest struct {
	PAN          *string `json:"pan"`
	Constitution *string `json:"constitution" binding:"omitempty,oneof=Individual 'Partnership Firm' LLP Company HUF Trust AOP BOI"`
	DisplayName  *string `json:"display_name"`
	LegalName    *string `json:"legal_name"`

	DateOfIncorporationBirth *types.Date `json:"date_of_incorporation_birth"`
	CinLlpin                 *string     `json:"cin_llpin"`
	TAN                      *string     `json:"tan"`
	IsDirectClient           *bool       `json:"is_direct_client"`
	IsActive                 *bool       `json:"is_active"`
	IsOnRetainer             *bool       `json:"is_on_retainer"`
	ClientSince              *types.Date `json:"client_since"`

	FatherName     *string     `json:"father_name"`
	MotherName     *string     `json:"mother_name"`
	Gender         *string     `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Nationality    *string     `json:"nationality"`
	AadhaarNo      *string     `json:"aadhaar_no"`
	DIN            *string     `json:"din"`
	PassportNo     *string     `json:"passport_no"`
	PassportExpiry *types.Date `json:"passport_expiry"`

	MCAUserID   *string `json:"mca_user_id"`
	MCAPassword *string `json:"mca_password"`

	DSCProvider      *string     `json:"dsc_provider"`
	DSCExpiryDate    *types.Date `json:"dsc_expiry_date"`
	DSCTokenPassword *string     `json:"dsc_token_password"`

	PrimaryPhone   *string `json:"primary_phone"`
	SecondaryPhone *string `json:"secondary_phone"`
	PrimaryEmail   *string `json:"primary_email" binding:"omitempty,email"`
	SecondaryEmail *string `json:"secondary_email" binding:"omitempty,email"`

	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PinCode      *string `json:"pin_code"`

	ITPortalUserID    *string `json:"it_portal_user_id"`
	ITPortalPassword  *string `json:"it_portal_password"`
	ITPortalUserIDTDS *string `json:"it_portal_user_id_tds"`
	ITPasswordTDS     *string `json:"it_password_tds"`
	Password26AS      *string `json:"password_26as"`
	PasswordAISTIS    *string `json:"password_ais_tis"`

	TracesUserIDDeductor   *string `json:"traces_user_id_deductor"`
	TracesPasswordDeductor *string `json:"traces_password_deductor"`
	TracesUserIDTaxpayer   *string `json:"traces_user_id_taxpayer"`
	TracesPasswordTaxpayer *string `json:"traces_password_taxpayer"`

	Notes *string `json:"notes"`
}

type ClientResponse struct {
	ID           string `json:"id"`
	PAN          string `json:"pan"`
	Constitution string `json:"constitution"`
	DisplayName  string `json:"display_name"`
	LegalName    string `json:"legal_name"`

	DateOfIncorporationBirth *types.Date `json:"date_of_incorporation_birth"`
	CinLlpin                 *string     `json:"cin_llpin"`
	TAN                      *string     `json:"tan"`
	IsDirectClient           bool        `json:"is_direct_client"`
	IsActive                 bool        `json:"is_active"`
	IsOnRetainer             bool        `json:"is_on_retainer"`
	ClientSince              *types.Date `json:"client_since"`

	FatherName     *string     `json:"father_name"`
	MotherName     *string     `json:"mother_name"`
	Gender         *string     `json:"gender"`
	Nationality    *string     `json:"nationality"`
	AadhaarNo      *string     `json:"aadhaar_no"`
	DIN            *string     `json:"din"`
	PassportNo     *string     `json:"passport_no"`
	PassportExpiry *types.Date `json:"passport_expiry"`

	MCAUserID   *string `json:"mca_user_id"`
	MCAPassword *string `json:"mca_password"`

	DSCProvider      *string     `json:"dsc_provider"`
	DSCExpiryDate    *types.Date `json:"dsc_expiry_date"`
	DSCTokenPassword *string     `json:"dsc_token_password"`

	PrimaryPhone   *string `json:"primary_phone"`
	SecondaryPhone *string `json:"secondary_phone"`
	PrimaryEmail   *string `json:"primary_email"`
	SecondaryEmail *string `json:"secondary_email"`

	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PinCode      *string `json:"pin_code"`

	ITPortalUserID    *string `json:"it_portal_user_id"`
	ITPortalPassword  *string `json:"it_portal_password"`
	ITPortalUserIDTDS *string `json:"it_portal_user_id_tds"`
	ITPasswordTDS     *string `json:"it_password_tds"`
	Password26AS      *string `json:"password_26as"`
	PasswordAISTIS    *string `json:"password_ais_tis"`

	TracesUserIDDeductor   *string `json:"traces_user_id_deductor"`
	TracesPasswordDeductor *string `json:"traces_password_deductor"`
	TracesUserIDTaxpayer   *string `json:"traces_user_id_taxpayer"`
	TracesPasswordTaxpayer *string `json:"traces_password_taxpayer"`

	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListItem is the slim list-view projection: no credentials.
type ClientListItem struct {
	ID             string    `json:"id"`
	PAN            string    `json:"pan"`
	Constitution   string    `json:"constitution"`
	DisplayName    string    `json:"display_name"`
	LegalName      string    `json:"legal_name"`
	IsActive       bool      `json:"is_active"`
	IsDirectClient bool      `json:"is_direct_client"`
	IsOnRetainer   bool      `json:"is_on_retainer"`
	PrimaryPhone   *string   `json:"primary_phone"`
	PrimaryEmail   *string   `json:"primary_email"`
	DIN            *string   `json:"din"`
	CreatedAt      time.Time `json:"created_at"`
}

func mapToResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:                       c.ID.String(),
		PAN:                      c.PAN,
		Constitution:             c.Constitution,
		DisplayName:              c.DisplayName,
		LegalName:                c.LegalName,
		DateOfIncorporationBirth: c.DateOfIncorporationBirth,
		CinLlpin:                 c.CinLlpin,
		TAN:                      c.TAN,
		IsDirectClient:           c.IsDirectClient,
		IsActive:                 c.IsActive,
		IsOnRetainer:             c.IsOnRetainer,
		ClientSince:              c.ClientSince,
		FatherName:               c.FatherName,
		MotherName:               c.MotherName,
		Gender:                   c.Gender,
		Nationality:              c.Nationality,
		AadhaarNo:                c.AadhaarNo,
		DIN:                      c.DIN,
		PassportNo:               c.PassportNo,
		PassportExpiry:           c.PassportExpiry,
		MCAUserID:                c.MCAUserID,
		MCAPassword:              c.MCAPassword,
		DSCProvider:              c.DSCProvider,
		DSCExpiryDate:            c.DSCExpiryDate,
		DSCTokenPassword:         c.DSCTokenPassword,
		PrimaryPhone:             c.PrimaryPhone,
		SecondaryPhone:           c.SecondaryPhone,
		PrimaryEmail:             c.PrimaryEmail,
		SecondaryEmail:           c.SecondaryEmail,
		AddressLine1:             c.AddressLine1,
		AddressLine2:             c.AddressLine2,
		City:                     c.City,
		State:                    c.State,
		PinCode:                  c.PinCode,
		ITPortalUserID:           c.ITPortalUserID,
		ITPortalPassword:         c.ITPortalPassword,
		ITPortalUserIDTDS:        c.ITPortalUserIDTDS,
		ITPasswordTDS:            c.ITPasswordTDS,
		Password26AS:             c.Password26AS,
		PasswordAISTIS:           c.PasswordAISTIS,
		TracesUserIDDeductor:     c.TracesUserIDDeductor,
		TracesPasswordDeductor:   c.TracesPasswordDeductor,
		TracesUserIDTaxpayer:     c.TracesUserIDTaxpayer,
		TracesPasswordTaxpayer:   c.TracesPasswordTaxpayer,
		Notes:                    c.Notes,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}

func mapToListItem(c Client) ClientListItem {
	return ClientListItem{
		ID:             c.ID.String(),
		PAN:            c.PAN,
		Constitution:   c.Constitution,
		DisplayName:    c.DisplayName,
		LegalName:      c.LegalName,
		IsActive:       c.IsActive,
		IsDirectClient: c.IsDirectClient,
		IsOnRetainer:   c.IsOnRetainer,
		PrimaryPhone:   c.PrimaryPhone,
		PrimaryEmail:   c.PrimaryEmail,
		DIN:            c.DIN,
		CreatedAt:      c.CreatedAt,
	}
}
