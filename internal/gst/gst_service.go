package gst

import (
	"context"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"
	gsterrors "github.com/Triyambak-CA/client-dashboard/internal/gst/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateGSTRequest) (GSTResponse, error)
	GetAll(ctx context.Context, clientID *uuid.UUID) ([]GSTListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (GSTResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateGSTRequest) (GSTResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddSignatory(ctx context.Context, regID uuid.UUID, req AddSignatoryRequest) (SignatoryInfo, error)
	RemoveSignatory(ctx context.Context, regID, sigID uuid.UUID) error
}

type service struct {
	repo    Repository
	clients client.Repository
	codec   *credential.Codec
}

func NewService(repo Repository, clients client.Repository, codec *credential.Codec) Service {
	return &service{repo: repo, clients: clients, codec: codec}
}

func (s *service) Create(ctx context.Context, req CreateGSTRequest) (GSTResponse, error) {
	reg := &GSTRegistration{
		ID:               uuid.New(),
		ClientID:         req.ClientID,
		GSTIN:            req.GSTIN,
		State:            req.State,
		StateCode:        req.StateCode,
		RegistrationType: req.RegistrationType,
		RegistrationDate: req.RegistrationDate,
		CancellationDate: req.CancellationDate,
		IsActive:         true,
		GSTUserID:        req.GSTUserID,
		GSTPassword:      req.GSTPassword,
		EWBUserID:        req.EWBUserID,
		EWBPassword:      req.EWBPassword,
		EWBAPIUserID:     req.EWBAPIUserID,
		EWBAPIPassword:   req.EWBAPIPassword,
		Notes:            req.Notes,
	}
	if req.IsActive != nil {
		reg.IsActive = *req.IsActive
	}
	s.encryptSensitive(reg)

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		existing, err := qtx.FindByGSTIN(ctx, reg.GSTIN)
		if err != nil {
			return err
		}
		if existing != nil {
			return gsterrors.ErrGSTINExists
		}
		return qtx.Create(ctx, reg)
	})
	if err != nil {
		return GSTResponse{}, err
	}

	s.decryptSensitive(reg)
	return mapToResponse(*reg), nil
}

func (s *service) GetAll(ctx context.Context, clientID *uuid.UUID) ([]GSTListItem, error) {
	regs, err := s.repo.FindAll(ctx, clientID)
	if err != nil {
		return nil, err
	}
	res := make([]GSTListItem, len(regs))
	for i, reg := range regs {
		res[i] = mapToListItem(reg)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (GSTResponse, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return GSTResponse{}, err
	}
	if reg == nil {
		return GSTResponse{}, gsterrors.ErrRegistrationNotFound
	}
	s.decryptSensitive(reg)
	return mapToResponse(*reg), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateGSTRequest) (GSTResponse, error) {
	var updated *GSTRegistration

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		reg, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			return gsterrors.ErrRegistrationNotFound
		}

		if req.GSTIN != nil && *req.GSTIN != reg.GSTIN {
			existing, err := qtx.FindByGSTIN(ctx, *req.GSTIN)
			if err != nil {
				return err
			}
			if existing != nil {
				return gsterrors.ErrGSTINExists
			}
		}

		s.encryptPatch(&req)
		applyPatch(reg, req)

		if err := qtx.Update(ctx, reg); err != nil {
			return err
		}
		updated = reg
		return nil
	})
	if err != nil {
		return GSTResponse{}, err
	}

	s.decryptSensitive(updated)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		reg, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			return gsterrors.ErrRegistrationNotFound
		}
		return qtx.Delete(ctx, id)
	})
}

func (s *service) AddSignatory(ctx context.Context, regID uuid.UUID, req AddSignatoryRequest) (SignatoryInfo, error) {
	var info SignatoryInfo

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		reg, err := qtx.FindByID(ctx, regID)
		if err != nil {
			return err
		}
		if reg == nil {
			return gsterrors.ErrRegistrationNotFound
		}

		signatory, err := s.clients.FindByID(ctx, req.SignatoryClientID)
		if err != nil {
			return err
		}
		if signatory == nil {
			return gsterrors.ErrSignatoryClientNotFound
		}

		existing, err := qtx.FindSignatoryPair(ctx, regID, req.SignatoryClientID)
		if err != nil {
			return err
		}
		if existing != nil {
			return gsterrors.ErrSignatoryExists
		}

		sig := &GSTSignatory{
			ID:                uuid.New(),
			GSTRegistrationID: regID,
			SignatoryClientID: req.SignatoryClientID,
			IsActive:          true,
			SignatoryClient:   signatory,
		}
		if err := qtx.CreateSignatory(ctx, sig); err != nil {
			return err
		}
		info = mapToSignatoryInfo(*sig)
		return nil
	})
	if err != nil {
		return SignatoryInfo{}, err
	}
	return info, nil
}

func (s *service) RemoveSignatory(ctx context.Context, regID, sigID uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		sig, err := qtx.FindSignatoryByID(ctx, regID, sigID)
		if err != nil {
			return err
		}
		if sig == nil {
			return gsterrors.ErrSignatoryNotFound
		}
		return qtx.DeleteSignatory(ctx, sigID)
	})
}

func (s *service) encryptSensitive(reg *GSTRegistration) {
	reg.GSTPassword = s.codec.Encrypt(reg.GSTPassword)
	reg.EWBPassword = s.codec.Encrypt(reg.EWBPassword)
	reg.EWBAPIPassword = s.codec.Encrypt(reg.EWBAPIPassword)
}

func (s *service) decryptSensitive(reg *GSTRegistration) {
	reg.GSTPassword = s.codec.Decrypt(reg.GSTPassword)
	reg.EWBPassword = s.codec.Decrypt(reg.EWBPassword)
	reg.EWBAPIPassword = s.codec.Decrypt(reg.EWBAPIPassword)
}

func (s *service) encryptPatch(req *UpdateGSTRequest) {
	req.GSTPassword = s.codec.Encrypt(req.GSTPassword)
	req.EWBPassword = s.codec.Encrypt(req.EWBPassword)
	req.EWBAPIPassword = s.codec.Encrypt(req.EWBAPIPassword)
}

func applyPatch(reg *GSTRegistration, req UpdateGSTRequest) {
	if req.GSTIN != nil {
		reg.GSTIN = *req.GSTIN
	}
	if req.State != nil {
		reg.State = req.State
	}
	if req.StateCode != nil {
		reg.StateCode = req.StateCode
	}
	if req.RegistrationType != nil {
		reg.RegistrationType = req.RegistrationType
	}
	if req.RegistrationDate != nil {
		reg.RegistrationDate = req.RegistrationDate
	}
	if req.CancellationDate != nil {
		reg.CancellationDate = req.CancellationDate
	}
	if req.IsActive != nil {
		reg.IsActive = *req.IsActive
	}
	if req.GSTUserID != nil {
		reg.GSTUserID = req.GSTUserID
	}
	if req.GSTPassword != nil {
		reg.GSTPassword = req.GSTPassword
	}
	if req.EWBUserID != nil {
		reg.EWBUserID = req.EWBUserID
	}
	if req.EWBPassword != nil {
		reg.EWBPassword = req.EWBPassword
	}
	if req.EWBAPIUserID != nil {
		reg.EWBAPIUserID = req.EWBAPIUserID
	}
	if req.EWBAPIPassword != nil {
		reg.EWBAPIPassword = req.EWBAPIPassword
	}
	if req.Notes != nil {
		reg.Notes = req.Notes
	}
}
