package epfesi

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	ClientID            uuid.UUID   `json:"client_id" binding:"required"`
	RegistrationType    string      `json:"registration_type" binding:"required,oneof=EPF ESI"`
	State               *string     `json:"state"`
	EstablishmentCode   string      `json:"establishment_code" binding:"required"`
	RegistrationDate    *types.Date `json:"registration_date"`
	CancellationDate    *types.Date `json:"cancellation_date"`
	IsActive            *bool       `json:"is_active"`
	PortalUserID        *string     `json:"portal_user_id"`
	PortalPassword      *string     `json:"portal_password"`
	DSCHolderName       *string     `json:"dsc_holder_name"`
	AuthorisedSignatory *string     `json:"authorised_signatory"`
	Notes               *string     `json:"notes"`
}

type UpdateRegistrationRequest struct {
	RegistrationType    *string     `json:"registration_type" binding:"omitempty,oneof=EPF ESI"`
	State               *string     `json:"state"`
	EstablishmentCode   *string     `json:"establishment_code"`
	RegistrationDate    *types.Date `json:"registration_date"`
	CancellationDate    *types.Date `json:"cancellation_date"`
	IsActive            *bool       `json:"is_active"`
	PortalUserID        *string     `json:"portal_user_id"`
	PortalPassword      *string     `json:"portal_password"`
	DSCHolderName       *string     `json:"dsc_holder_name"`
	AuthorisedSignatory *string     `json:"authorised_signatory"`
	Notes               *string     `json:"notes"`
}

type RegistrationResponse struct {
	ID                  string      `json:"id"`
	ClientID            string      `json:"client_id"`
	RegistrationType    string      `json:"registration_type"`
	State               *string     `json:"state"`
	EstablishmentCode   string      `json:"establishment_code"`
	RegistrationDate    *types.Date `json:"registration_date"`
	CancellationDate    *types.Date `json:"cancellation_date"`
	IsActive            bool        `json:"is_active"`
	PortalUserID        *string     `json:"portal_user_id"`
	PortalPassword      *string     `json:"portal_password"`
	DSCHolderName       *string     `json:"dsc_holder_name"`
	AuthorisedSignatory *string     `json:"authorised_signatory"`
	Notes               *string     `json:"notes"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func mapToResponse(reg Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                  reg.ID.String(),
		ClientID:            reg.ClientID.String(),
		RegistrationType:    reg.RegistrationType,
		State:               reg.State,
		EstablishmentCode:   reg.EstablishmentCode,
		RegistrationDate:    reg.RegistrationDate,
		CancellationDate:    reg.CancellationDate,
		IsActive:            reg.IsActive,
		PortalUserID:        reg.PortalUserID,
		PortalPassword:      reg.PortalPassword,
		DSCHolderName:       reg.DSCHolderName,
		AuthorisedSignatory: reg.AuthorisedSignatory,
		Notes:               reg.Notes,
		CreatedAt:           reg.CreatedAt,
		UpdatedAt:           reg.UpdatedAt,
	}
}
