package director

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type CreateDirectorRequest struct {
	CompanyClientID    uuid.UUID   `json:"company_client_id" binding:"required"`
	IndividualClientID uuid.UUID   `json:"individual_client_id" binding:"required"`
	Designation        string      `json:"designation" binding:"required,oneof=Director 'Managing Director' 'Whole-time Director' 'Independent Director' 'Nominee Director' 'Additional Director'"`
	DateOfAppointment  *types.Date `json:"date_of_appointment"`
	DateOfCessation    *types.Date `json:"date_of_cessation"`
	IsActive           *bool       `json:"is_active"`
	IsKMP              *bool       `json:"is_kmp"`
	Notes              *string     `json:"notes"`
}

type UpdateDirectorRequest struct {
	Designation       *string     `json:"designation" binding:"omitempty,oneof=Director 'Managing Director' 'Whole-time Director' 'Independent Director' 'Nominee Director' 'Additional Director'"`
	DateOfAppointment *types.Date `json:"date_of_appointment"`
	DateOfCessation   *types.Date `json:"date_of_cessation"`
	IsActive          *bool       `json:"is_active"`
	IsKMP             *bool       `json:"is_kmp"`
	Notes             *string     `json:"notes"`
}

// DirectorResponse denormalizes the individual's DIN and both legal names so
// the list view renders without extra lookups.
type DirectorResponse struct {
	CompanyClientID    string      `json:"company_client_id"`
	IndividualClientID string      `json:"individual_client_id"`
	DIN                *string     `json:"din"`
	IndividualName     *string     `json:"individual_name"`
	CompanyName        *string     `json:"company_name"`
	Designation        string      `json:"designation"`
	DateOfAppointment  *types.Date `json:"date_of_appointment"`
	DateOfCessation    *types.Date `json:"date_of_cessation"`
	IsActive           bool        `json:"is_active"`
	IsKMP              bool        `json:"is_kmp"`
	Notes              *string     `json:"notes"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func mapToResponse(d Director) DirectorResponse {
	resp := DirectorResponse{
		CompanyClientID:    d.CompanyClientID.String(),
		IndividualClientID: d.IndividualClientID.String(),
		Designation:        d.Designation,
		DateOfAppointment:  d.DateOfAppointment,
		DateOfCessation:    d.DateOfCessation,
		IsActive:           d.IsActive,
		IsKMP:              d.IsKMP,
		Notes:              d.Notes,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	if d.Individual != nil {
		resp.DIN = d.Individual.DIN
		resp.IndividualName = &d.Individual.LegalName
	}
	if d.Company != nil {
		resp.CompanyName = &d.Company.LegalName
	}
	return resp
}
