package otherreg

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	ClientID           uuid.UUID   `json:"client_id" binding:"required"`
	RegistrationType   string      `json:"registration_type" binding:"required,oneof='MSME/Udyam' IEC FSSAI 'Professional Tax' 'Shops & Estab' 'Trade License' 'Drug License' 'Import Export Code' Others"`
	RegistrationNumber string      `json:"registration_number" binding:"required"`
	RegistrationDate   *types.Date `json:"registration_date"`
	ValidUntil         *types.Date `json:"valid_until"`
	IssuingAuthority   *string     `json:"issuing_authority"`
	StateJurisdiction  *string     `json:"state_jurisdiction"`
	PortalUserID       *string     `json:"portal_user_id"`
	PortalPassword     *string     `json:"portal_password"`
	IsActive           *bool       `json:"is_active"`
	Notes              *string     `json:"notes"`
}

type UpdateRegistrationRequest struct {
	RegistrationType   *string     `json:"registration_type" binding:"omitempty,oneof='MSME/Udyam' IEC FSSAI 'Professional Tax' 'Shops & Estab' 'Trade License' 'Drug License' 'Import Export Code' Others"`
	RegistrationNumber *string     `json:"registration_number"`
	RegistrationDate   *types.Date `json:"registration_date"`
	ValidUntil         *types.Date `json:"valid_until"`
	IssuingAuthority   *string     `json:"issuing_authority"`
	StateJurisdiction  *string     `json:"state_jurisdiction"`
	PortalUserID       *string     `json:"portal_user_id"`
	PortalPassword     *string     `json:"portal_password"`
	IsActive           *bool       `json:"is_active"`
	Notes              *string     `json:"notes"`
}

type RegistrationResponse struct {
	ID                 string      `json:"id"`
	ClientID           string      `json:"client_id"`
	RegistrationType   string      `json:"registration_type"`
	RegistrationNumber string      `json:"registration_number"`
	RegistrationDate   *types.Date `json:"registration_date"`
	ValidUntil         *types.Date `json:"valid_until"`
	IssuingAuthority   *string     `json:"issuing_authority"`
	StateJurisdiction  *string     `json:"state_jurisdiction"`
	PortalUserID       *string     `json:"portal_user_id"`
	PortalPassword     *string     `json:"portal_password"`
	IsActive           bool        `json:"is_active"`
	Notes              *string     `json:"notes"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func mapToResponse(reg Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                 reg.ID.String(),
		ClientID:           reg.ClientID.String(),
		RegistrationType:   reg.RegistrationType,
		RegistrationNumber: reg.RegistrationNumber,
		RegistrationDate:   reg.RegistrationDate,
		ValidUntil:         reg.ValidUntil,
		IssuingAuthority:   reg.IssuingAuthority,
		StateJurisdiction:  reg.StateJurisdiction,
		PortalUserID:       reg.PortalUserID,
		PortalPassword:     reg.PortalPassword,
		IsActive:           reg.IsActive,
		Notes:              reg.Notes,
		CreatedAt:          reg.CreatedAt,
		UpdatedAt:          reg.UpdatedAt,
	}
}
