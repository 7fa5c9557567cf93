package partner

import (
	"context"

	partnererrors "github.com/Triyambak-CA/client-dashboard/internal/partner/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreatePartnerRequest) (PartnerResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]PartnerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (PartnerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (PartnerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePartnerRequest) (PartnerResponse, error) {
	p := &Partner{
		ID:                  uuid.New(),
		FirmLLPClientID:     req.FirmLLPClientID,
		IndividualClientID:  req.IndividualClientID,
		Role:                req.Role,
		ProfitSharingRatio:  req.ProfitSharingRatio,
		CapitalContribution: req.CapitalContribution,
		DateOfJoining:       req.DateOfJoining,
		DateOfExit:          req.DateOfExit,
		IsActive:            true,
		Notes:               req.Notes,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return PartnerResponse{}, err
	}

	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return PartnerResponse{}, err
	}
	if created == nil {
		return mapToResponse(*p), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]PartnerResponse, error) {
	partners, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	res := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (PartnerResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PartnerResponse{}, err
	}
	if p == nil {
		return PartnerResponse{}, partnererrors.ErrPartnerNotFound
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (PartnerResponse, error) {
	var updated *Partner

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		p, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return partnererrors.ErrPartnerNotFound
		}

		applyPatch(p, req)

		if err := qtx.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return PartnerResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		p, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return partnererrors.ErrPartnerNotFound
		}
		return qtx.Delete(ctx, id)
	})
}

func applyPatch(p *Partner, req UpdatePartnerRequest) {
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.ProfitSharingRatio != nil {
		p.ProfitSharingRatio = req.ProfitSharingRatio
	}
	if req.CapitalContribution != nil {
		p.CapitalContribution = req.CapitalContribution
	}
	if req.DateOfJoining != nil {
		p.DateOfJoining = req.DateOfJoining
	}
	if req.DateOfExit != nil {
		p.DateOfExit = req.DateOfExit
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}
}
