package partner

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type CreatePartnerRequest struct {
	FirmLLPClientID     uuid.UUID   `json:"firm_llp_client_id" binding:"required"`
	IndividualClientID  uuid.UUID   `json:"individual_client_id" binding:"required"`
	Role                string      `json:"role" binding:"required,oneof=Partner 'Designated Partner' 'Managing Partner' 'Sleeping Partner' 'Minor Partner'"`
	ProfitSharingRatio  *float64    `json:"profit_sharing_ratio"`
	CapitalContribution *float64    `json:"capital_contribution"`
	DateOfJoining       *types.Date `json:"date_of_joining"`
	DateOfExit          *types.Date `json:"date_of_exit"`
	IsActive            *bool       `json:"is_active"`
	Notes               *string     `json:"notes"`
}

type UpdatePartnerRequest struct {
	Role                *string     `json:"role" binding:"omitempty,oneof=Partner 'Designated Partner' 'Managing Partner' 'Sleeping Partner' 'Minor Partner'"`
	ProfitSharingRatio  *float64    `json:"profit_sharing_ratio"`
	CapitalContribution *float64    `json:"capital_contribution"`
	DateOfJoining       *types.Date `json:"date_of_joining"`
	DateOfExit          *types.Date `json:"date_of_exit"`
	IsActive            *bool       `json:"is_active"`
	Notes               *string     `json:"notes"`
}

type PartnerResponse struct {
	ID                  string      `json:"id"`
	FirmLLPClientID     string      `json:"firm_llp_client_id"`
	IndividualClientID  string      `json:"individual_client_id"`
	IndividualName      *string     `json:"individual_name"`
	FirmName            *string     `json:"firm_name"`
	Role                string      `json:"role"`
	ProfitSharingRatio  *float64    `json:"profit_sharing_ratio"`
	CapitalContribution *float64    `json:"capital_contribution"`
	DateOfJoining       *types.Date `json:"date_of_joining"`
	DateOfExit          *types.Date `json:"date_of_exit"`
	IsActive            bool        `json:"is_active"`
	Notes               *string     `json:"notes"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func mapToResponse(p Partner) PartnerResponse {
	resp := PartnerResponse{
		ID:                  p.ID.String(),
		FirmLLPClientID:     p.FirmLLPClientID.String(),
		IndividualClientID:  p.IndividualClientID.String(),
		Role:                p.Role,
		ProfitSharingRatio:  p.ProfitSharingRatio,
		CapitalContribution: p.CapitalContribution,
		DateOfJoining:       p.DateOfJoining,
		DateOfExit:          p.DateOfExit,
		IsActive:            p.IsActive,
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	if p.Individual != nil {
		resp.IndividualName = &p.Individual.LegalName
	}
	if p.FirmLLP != nil {
		resp.FirmName = &p.FirmLLP.LegalName
	}
	return resp
}
