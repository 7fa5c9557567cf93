package otherreg

import (
	"context"

	"github.com/Triyambak-CA/client-dashboard/internal/credential"
	otherregerrors "github.com/Triyambak-CA/client-dashboard/internal/otherreg/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateRegistrationRequest) (RegistrationResponse, error)
	GetAll(ctx context.Context, clientID *uuid.UUID) ([]RegistrationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (RegistrationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRegistrationRequest) (RegistrationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	codec *credential.Codec
}

func NewService(repo Repository, codec *credential.Codec) Service {
	return &service{repo: repo, codec: codec}
}

func (s *service) Create(ctx context.Context, req CreateRegistrationRequest) (RegistrationResponse, error) {
	reg := &Registration{
		ID:                 uuid.New(),
		ClientID:           req.ClientID,
		RegistrationType:   req.RegistrationType,
		RegistrationNumber: req.RegistrationNumber,
		RegistrationDate:   req.RegistrationDate,
		ValidUntil:         req.ValidUntil,
		IssuingAuthority:   req.IssuingAuthority,
		StateJurisdiction:  req.StateJurisdiction,
		PortalUserID:       req.PortalUserID,
		PortalPassword:     s.codec.Encrypt(req.PortalPassword),
		IsActive:           true,
		Notes:              req.Notes,
	}
	if req.IsActive != nil {
		reg.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return RegistrationResponse{}, err
	}

	reg.PortalPassword = s.codec.Decrypt(reg.PortalPassword)
	return mapToResponse(*reg), nil
}

func (s *service) GetAll(ctx context.Context, clientID *uuid.UUID) ([]RegistrationResponse, error) {
	regs, err := s.repo.FindAll(ctx, clientID)
	if err != nil {
		return nil, err
	}
	res := make([]RegistrationResponse, len(regs))
	for i, reg := range regs {
		reg.PortalPassword = s.codec.Decrypt(reg.PortalPassword)
		res[i] = mapToResponse(reg)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (RegistrationResponse, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RegistrationResponse{}, err
	}
	if reg == nil {
		return RegistrationResponse{}, otherregerrors.ErrRegistrationNotFound
	}
	reg.PortalPassword = s.codec.Decrypt(reg.PortalPassword)
	return mapToResponse(*reg), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateRegistrationRequest) (RegistrationResponse, error) {
	var updated *Registration

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		reg, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			return otherregerrors.ErrRegistrationNotFound
		}

		req.PortalPassword = s.codec.Encrypt(req.PortalPassword)
		applyPatch(reg, req)

		if err := qtx.Update(ctx, reg); err != nil {
			return err
		}
		updated = reg
		return nil
	})
	if err != nil {
		return RegistrationResponse{}, err
	}

	updated.PortalPassword = s.codec.Decrypt(updated.PortalPassword)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		reg, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			return otherregerrors.ErrRegistrationNotFound
		}
		return qtx.Delete(ctx, id)
	})
}

func applyPatch(reg *Registration, req UpdateRegistrationRequest) {
	if req.RegistrationType != nil {
		reg.RegistrationType = *req.RegistrationType
	}
	if req.RegistrationNumber != nil {
		reg.RegistrationNumber = *req.RegistrationNumber
	}
	if req.RegistrationDate != nil {
		reg.RegistrationDate = req.RegistrationDate
	}
	if req.ValidUntil != nil {
		reg.ValidUntil = req.ValidUntil
	}
	if req.IssuingAuthority != nil {
		reg.IssuingAuthority = req.IssuingAuthority
	}
	if req.StateJurisdiction != nil {
		reg.StateJurisdiction = req.StateJurisdiction
	}
	if req.PortalUserID != nil {
		reg.PortalUserID = req.PortalUserID
	}
	if req.PortalPassword != nil {
		reg.PortalPassword = req.PortalPassword
	}
	if req.IsActive != nil {
		reg.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		reg.Notes = req.Notes
	}
}
