package shareholder

import (
	"context"

	shareholdererrors "github.com/Triyambak-CA/client-dashboard/internal/shareholder/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateShareholderRequest) (ShareholderResponse, error)
	GetAll(ctx context.Context, companyClientID *uuid.UUID) ([]ShareholderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (ShareholderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateShareholderRequest) (ShareholderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create has no duplicate pre-check: the same holder may hold several share
// classes in the same company.
func (s *service) Create(ctx context.Context, req CreateShareholderRequest) (ShareholderResponse, error) {
	sh := &Shareholder{
		ID:                    uuid.New(),
		CompanyClientID:       req.CompanyClientID,
		HolderType:            req.HolderType,
		IndividualClientID:    req.IndividualClientID,
		HoldingEntityClientID: req.HoldingEntityClientID,
		ShareType:             req.ShareType,
		NumberOfShares:        req.NumberOfShares,
		FaceValue:             req.FaceValue,
		Percentage:            req.Percentage,
		DateAcquired:          req.DateAcquired,
		IsActive:              true,
		Notes:                 req.Notes,
	}
	if req.IsActive != nil {
		sh.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		return ShareholderResponse{}, err
	}

	created, err := s.repo.FindByID(ctx, sh.ID)
	if err != nil {
		return ShareholderResponse{}, err
	}
	if created == nil {
		return mapToResponse(*sh), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, companyClientID *uuid.UUID) ([]ShareholderResponse, error) {
	shareholders, err := s.repo.FindAll(ctx, companyClientID)
	if err != nil {
		return nil, err
	}
	res := make([]ShareholderResponse, len(shareholders))
	for i, sh := range shareholders {
		res[i] = mapToResponse(sh)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (ShareholderResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShareholderResponse{}, err
	}
	if sh == nil {
		return ShareholderResponse{}, shareholdererrors.ErrShareholderNotFound
	}
	return mapToResponse(*sh), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateShareholderRequest) (ShareholderResponse, error) {
	var updated *Shareholder

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		sh, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if sh == nil {
			return shareholdererrors.ErrShareholderNotFound
		}

		applyPatch(sh, req)

		if err := qtx.Update(ctx, sh); err != nil {
			return err
		}
		updated = sh
		return nil
	})
	if err != nil {
		return ShareholderResponse{}, err
	}

	// reload so a changed holder reference is reflected in the response
	reloaded, err := s.repo.FindByID(ctx, updated.ID)
	if err != nil {
		return ShareholderResponse{}, err
	}
	if reloaded == nil {
		return mapToResponse(*updated), nil
	}
	return mapToResponse(*reloaded), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		sh, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if sh == nil {
			return shareholdererrors.ErrShareholderNotFound
		}
		return qtx.Delete(ctx, id)
	})
}

func applyPatch(sh *Shareholder, req UpdateShareholderRequest) {
	if req.HolderType != nil {
		sh.HolderType = *req.HolderType
	}
	if req.IndividualClientID != nil {
		sh.IndividualClientID = req.IndividualClientID
	}
	if req.HoldingEntityClientID != nil {
		sh.HoldingEntityClientID = req.HoldingEntityClientID
	}
	if req.ShareType != nil {
		sh.ShareType = req.ShareType
	}
	if req.NumberOfShares != nil {
		sh.NumberOfShares = req.NumberOfShares
	}
	if req.FaceValue != nil {
		sh.FaceValue = req.FaceValue
	}
	if req.Percentage != nil {
		sh.Percentage = req.Percentage
	}
	if req.DateAcquired != nil {
		sh.DateAcquired = req.DateAcquired
	}
	if req.IsActive != nil {
		sh.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		sh.Notes = req.Notes
	}
}
