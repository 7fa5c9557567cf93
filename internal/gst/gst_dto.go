package gst

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type CreateGSTRequest struct {
	ClientID         uuid.UUID   `json:"client_id" binding:"required"`
	GSTIN            string      `json:"gstin" binding:"required"`
	State            *string     `json:"state"`
	StateCode        *string     `json:"state_code" binding:"omitempty,len=2"`
	RegistrationType *string     `json:"registration_type" binding:"omitempty,oneof=Regular Composition QRMP 'SEZ Unit' 'SEZ Developer' Casual 'Non-Resident'"`
	RegistrationDate *types.Date `json:"registration_date"`
	CancellationDate *types.Date `json:"cancellation_date"`
	IsActive         *bool       `json:"is_active"`
	GSTUserID        *string     `json:"gst_user_id"`
	GSTPassword      *string     `json:"gst_password"`
	EWBUserID        *string     `json:"ewb_user_id"`
	EWBPassword      *string     `json:"ewb_password"`
	EWBAPIUserID     *string     `json:"ewb_api_user_id"`
	EWBAPIPassword   *string     `json:"ewb_api_password"`
	Notes            *string     `json:"notes"`
}

type UpdateGSTRequest struct {
	GSTIN            *string     `json:"gstin"`
	State            *string     `json:"state"`
	StateCode        *string     `json:"state_code" binding:"omitempty,len=2"`
	RegistrationType *string     `json:"registration_type" binding:"omitempty,oneof=Regular Composition QRMP 'SEZ Unit' 'SEZ Developer' Casual 'Non-Resident'"`
	RegistrationDate *types.Date `json:"registration_date"`
	CancellationDate *types.Date `json:"cancellation_date"`
	IsActive         *bool       `json:"is_active"`
	GSTUserID        *string     `json:"gst_user_id"`
	GSTPassword      *string     `json:"gst_password"`
	EWBUserID        *string     `json:"ewb_user_id"`
	EWBPassword      *string     `json:"ewb_password"`
	EWBAPIUserID     *string     `json:"ewb_api_user_id"`
	EWBAPIPassword   *string     `json:"ewb_api_password"`
	Notes            *string     `json:"notes"`
}

type AddSignatoryRequest struct {
	SignatoryClientID uuid.UUID `json:"signatory_client_id" binding:"required"`
}

// SignatoryInfo denormalizes the signatory client's legal name and PAN for
// display.
type SignatoryInfo struct {
	ID                string  `json:"id"`
	SignatoryClientID string  `json:"signatory_client_id"`
	SignatoryName     *string `json:"signatory_name"`
	SignatoryPAN      *string `json:"signatory_pan"`
	IsActive          bool    `json:"is_active"`
}

type GSTResponse struct {
	ID               string      `json:"id"`
	ClientID         string      `json:"client_id"`
	GSTIN            string      `json:"gstin"`
	State            *string     `json:"state"`
	StateCode        *string     `json:"state_code"`
	RegistrationType *string     `json:"registration_type"`
	RegistrationDate *types.Date `json:"registration_date"`
	CancellationDate *types.Date `json:"cancellation_date"`
	IsActive         bool        `json:"is_active"`
	GSTUserID        *string     `json:"gst_user_id"`
	GSTPassword      *string     `json:"gst_password"`
	EWBUserID        *string     `json:"ewb_user_id"`
	EWBPassword      *string     `json:"ewb_password"`
	EWBAPIUserID     *string     `json:"ewb_api_user_id"`
	EWBAPIPassword   *string     `json:"ewb_api_password"`
	Notes            *string     `json:"notes"`
	Signatories      []SignatoryInfo `json:"signatories"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type GSTListItem struct {
	ID               string  `json:"id"`
	ClientID         string  `json:"client_id"`
	GSTIN            string  `json:"gstin"`
	State            *string `json:"state"`
	RegistrationType *string `json:"registration_type"`
	IsActive         bool    `json:"is_active"`
}

func mapToResponse(reg GSTRegistration) GSTResponse {
	sigs := make([]SignatoryInfo, len(reg.Signatories))
	for i, sig := range reg.Signatories {
		sigs[i] = mapToSignatoryInfo(sig)
	}
	return GSTResponse{
		ID:               reg.ID.String(),
		ClientID:         reg.ClientID.String(),
		GSTIN:            reg.GSTIN,
		State:            reg.State,
		StateCode:        reg.StateCode,
		RegistrationType: reg.RegistrationType,
		RegistrationDate: reg.RegistrationDate,
		CancellationDate: reg.CancellationDate,
		IsActive:         reg.IsActive,
		GSTUserID:        reg.GSTUserID,
		GSTPassword:      reg.GSTPassword,
		EWBUserID:        reg.EWBUserID,
		EWBPassword:      reg.EWBPassword,
		EWBAPIUserID:     reg.EWBAPIUserID,
		EWBAPIPassword:   reg.EWBAPIPassword,
		Notes:            reg.Notes,
		Signatories:      sigs,
		CreatedAt:        reg.CreatedAt,
		UpdatedAt:        reg.UpdatedAt,
	}
}

func mapToSignatoryInfo(sig GSTSignatory) SignatoryInfo {
	info := SignatoryInfo{
		ID:                sig.ID.String(),
		SignatoryClientID: sig.SignatoryClientID.String(),
		IsActive:          sig.IsActive,
	}
	if sig.SignatoryClient != nil {
		info.SignatoryName = &sig.SignatoryClient.LegalName
		info.SignatoryPAN = &sig.SignatoryClient.PAN
	}
	return info
}

func mapToListItem(reg GSTRegistration) GSTListItem {
	return GSTListItem{
		ID:               reg.ID.String(),
		ClientID:         reg.ClientID.String(),
		GSTIN:            reg.GSTIN,
		State:            reg.State,
		RegistrationType: reg.RegistrationType,
		IsActive:         reg.IsActive,
	}
}
