package director

import (
	"context"

	directorerrors "github.com/Triyambak-CA/client-dashboard/internal/director/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateDirectorRequest) (DirectorResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]DirectorResponse, error)
	Update(ctx context.Context, companyID, individualID uuid.UUID, req UpdateDirectorRequest) (DirectorResponse, error)
	Delete(ctx context.Context, companyID, individualID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateDirectorRequest) (DirectorResponse, error) {
	d := &Director{
		CompanyClientID:    req.CompanyClientID,
		IndividualClientID: req.IndividualClientID,
		Designation:        req.Designation,
		DateOfAppointment:  req.DateOfAppointment,
		DateOfCessation:    req.DateOfCessation,
		IsActive:           true,
		Notes:              req.Notes,
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
	if req.IsKMP != nil {
		d.IsKMP = *req.IsKMP
	}

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		existing, err := qtx.FindByPair(ctx, req.CompanyClientID, req.IndividualClientID)
		if err != nil {
			return err
		}
		if existing != nil {
			return directorerrors.ErrDirectorExists
		}
		return qtx.Create(ctx, d)
	})
	if err != nil {
		return DirectorResponse{}, err
	}

	// reload to denormalize names and DIN
	created, err := s.repo.FindByPair(ctx, d.CompanyClientID, d.IndividualClientID)
	if err != nil {
		return DirectorResponse{}, err
	}
	if created == nil {
		return mapToResponse(*d), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]DirectorResponse, error) {
	directors, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	res := make([]DirectorResponse, len(directors))
	for i, d := range directors {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, companyID, individualID uuid.UUID, req UpdateDirectorRequest) (DirectorResponse, error) {
	var updated *Director

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		d, err := qtx.FindByPair(ctx, companyID, individualID)
		if err != nil {
			return err
		}
		if d == nil {
			return directorerrors.ErrDirectorNotFound
		}

		applyPatch(d, req)

		if err := qtx.Update(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return DirectorResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, companyID, individualID uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		d, err := qtx.FindByPair(ctx, companyID, individualID)
		if err != nil {
			return err
		}
		if d == nil {
			return directorerrors.ErrDirectorNotFound
		}
		return qtx.Delete(ctx, companyID, individualID)
	})
}

func applyPatch(d *Director, req UpdateDirectorRequest) {
	if req.Designation != nil {
		d.Designation = *req.Designation
	}
	if req.DateOfAppointment != nil {
		d.DateOfAppointment = req.DateOfAppointment
	}
	if req.DateOfCessation != nil {
		d.DateOfCessation = req.DateOfCessation
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
	if req.IsKMP != nil {
		d.IsKMP = *req.IsKMP
	}
	if req.Notes != nil {
		d.Notes = req.Notes
	}
}
