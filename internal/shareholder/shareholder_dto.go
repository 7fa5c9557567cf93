package shareholder

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type CreateShareholderRequest struct {
	CompanyClientID       uuid.UUID   `json:"company_client_id" binding:"required"`
	HolderType            string      `json:"holder_type" binding:"required,oneof=Individual Company Trust HUF LLP"`
	IndividualClientID    *uuid.UUID  `json:"individual_client_id"`
	HoldingEntityClientID *uuid.UUID  `json:"holding_entity_client_id"`
	ShareType             *string     `json:"share_type" binding:"omitempty,oneof=Equity Preference CCPS OCPS"`
	NumberOfShares        *int        `json:"number_of_shares"`
	FaceValue             *float64    `json:"face_value"`
	Percentage            *float64    `json:"percentage"`
	DateAcquired          *types.Date `json:"date_acquired"`
	IsActive              *bool       `json:"is_active"`
	Notes                 *string     `json:"notes"`
}

type UpdateShareholderRequest struct {
	HolderType            *string     `json:"holder_type" binding:"omitempty,oneof=Individual Company Trust HUF LLP"`
	IndividualClientID    *uuid.UUID  `json:"individual_client_id"`
	HoldingEntityClientID *uuid.UUID  `json:"holding_entity_client_id"`
	ShareType             *string     `json:"share_type" binding:"omitempty,oneof=Equity Preference CCPS OCPS"`
	NumberOfShares        *int        `json:"number_of_shares"`
	FaceValue             *float64    `json:"face_value"`
	Percentage            *float64    `json:"percentage"`
	DateAcquired          *types.Date `json:"date_acquired"`
	IsActive              *bool       `json:"is_active"`
	Notes                 *string     `json:"notes"`
}

type ShareholderResponse struct {
	ID                    string      `json:"id"`
	CompanyClientID       string      `json:"company_client_id"`
	HolderType            string      `json:"holder_type"`
	IndividualClientID    *uuid.UUID  `json:"individual_client_id"`
	HoldingEntityClientID *uuid.UUID  `json:"holding_entity_client_id"`
	HolderName            *string     `json:"holder_name"`
	HolderPAN             *string     `json:"holder_pan"`
	ShareType             *string     `json:"share_type"`
	NumberOfShares        *int        `json:"number_of_shares"`
	FaceValue             *float64    `json:"face_value"`
	Percentage            *float64    `json:"percentage"`
	DateAcquired          *types.Date `json:"date_acquired"`
	IsActive              bool        `json:"is_active"`
	Notes                 *string     `json:"notes"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

func mapToResponse(sh Shareholder) ShareholderResponse {
	resp := ShareholderResponse{
		ID:                    sh.ID.String(),
		CompanyClientID:       sh.CompanyClientID.String(),
		HolderType:            sh.HolderType,
		IndividualClientID:    sh.IndividualClientID,
		HoldingEntityClientID: sh.HoldingEntityClientID,
		ShareType:             sh.ShareType,
		NumberOfShares:        sh.NumberOfShares,
		FaceValue:             sh.FaceValue,
		Percentage:            sh.Percentage,
		DateAcquired:          sh.DateAcquired,
		IsActive:              sh.IsActive,
		Notes:                 sh.Notes,
		CreatedAt:             sh.CreatedAt,
		UpdatedAt:             sh.UpdatedAt,
	}
	if holder := sh.holderClient(); holder != nil {
		resp.HolderName = &holder.LegalName
		resp.HolderPAN = &holder.PAN
	}
	return resp
}
