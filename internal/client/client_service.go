package client

import (
	"context"

	clienterrors "github.com/Triyambak-CA/client-dashboard/internal/client/errors"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ClientListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (ClientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (ClientResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	codec *credential.Codec
}

func NewService(repo Repository, codec *credential.Codec) Service {
	return &service{repo: repo, codec: codec}
}

func (s *service) Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error) {
	c := newClientFromRequest(req)
	s.encryptSensitive(c)

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		existing, err := qtx.FindByPAN(ctx, c.PAN)
		if err != nil {
			return err
		}
		if existing != nil {
			return clienterrors.ErrPANExists
		}
		return qtx.Create(ctx, c)
	})
	if err != nil {
		return ClientResponse{}, err
	}

	s.decryptSensitive(c)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ClientListItem, error) {
	clients, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	res := make([]ClientListItem, len(clients))
	for i, c := range clients {
		res[i] = mapToListItem(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ClientResponse{}, err
	}
	if c == nil {
		return ClientResponse{}, clienterrors.ErrClientNotFound
	}
	s.decryptSensitive(c)
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (ClientResponse, error) {
	var updated *Client

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		c, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return clienterrors.ErrClientNotFound
		}

		if req.PAN != nil && *req.PAN != c.PAN {
			existing, err := qtx.FindByPAN(ctx, *req.PAN)
			if err != nil {
				return err
			}
			if existing != nil {
				return clienterrors.ErrPANExists
			}
		}

		s.encryptPatch(&req)
		applyPatch(c, req)

		if err := qtx.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return ClientResponse{}, err
	}

	s.decryptSensitive(updated)
	return mapToResponse(*updated), nil
}

// Deactivate soft-deletes: the row stays retrievable by ID, only is_active
// flips. Clients are never hard-deleted.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		c, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return clienterrors.ErrClientNotFound
		}
		c.IsActive = false
		return qtx.Update(ctx, c)
	})
}

func newClientFromRequest(req CreateClientRequest) *Client {
	c := &Client{
		ID:                       uuid.New(),
		PAN:                      req.PAN,
		Constitution:             req.Constitution,
		DisplayName:              req.DisplayName,
		LegalName:                req.LegalName,
		DateOfIncorporationBirth: req.DateOfIncorporationBirth,
		CinLlpin:                 req.CinLlpin,
		TAN:                      req.TAN,
		IsDirectClient:           true,
		IsActive:                 true,
		IsOnRetainer:             false,
		ClientSince:              req.ClientSince,
		FatherName:               req.FatherName,
		MotherName:               req.MotherName,
		Gender:                   req.Gender,
		Nationality:              req.Nationality,
		AadhaarNo:                req.AadhaarNo,
		DIN:                      req.DIN,
		PassportNo:               req.PassportNo,
		PassportExpiry:           req.PassportExpiry,
		MCAUserID:                req.MCAUserID,
		MCAPassword:              req.MCAPassword,
		DSCProvider:              req.DSCProvider,
		DSCExpiryDate:            req.DSCExpiryDate,
		DSCTokenPassword:         req.DSCTokenPassword,
		PrimaryPhone:             req.PrimaryPhone,
		SecondaryPhone:           req.SecondaryPhone,
		PrimaryEmail:             req.PrimaryEmail,
		SecondaryEmail:           req.SecondaryEmail,
		AddressLine1:             req.AddressLine1,
		AddressLine2:             req.AddressLine2,
		City:                     req.City,
		State:                    req.State,
		PinCode:                  req.PinCode,
		ITPortalUserID:           req.ITPortalUserID,
		ITPortalPassword:         req.ITPortalPassword,
		ITPortalUserIDTDS:        req.ITPortalUserIDTDS,
		ITPasswordTDS:            req.ITPasswordTDS,
		Password26AS:             req.Password26AS,
		PasswordAISTIS:           req.PasswordAISTIS,
		TracesUserIDDeductor:     req.TracesUserIDDeductor,
		TracesPasswordDeductor:   req.TracesPasswordDeductor,
		TracesUserIDTaxpayer:     req.TracesUserIDTaxpayer,
		TracesPasswordTaxpayer:   req.TracesPasswordTaxpayer,
		Notes:                    req.Notes,
	}
	if req.IsDirectClient != nil {
		c.IsDirectClient = *req.IsDirectClient
	}
	if req.IsOnRetainer != nil {
		c.IsOnRetainer = *req.IsOnRetainer
	}
	return c
}

// encryptSensitive replaces the credential columns with ciphertext before
// the entity reaches the store.
func (s *service) encryptSensitive(c *Client) {
	c.MCAPassword = s.codec.Encrypt(c.MCAPassword)
	c.DSCTokenPassword = s.codec.Encrypt(c.DSCTokenPassword)
	c.ITPortalPassword = s.codec.Encrypt(c.ITPortalPassword)
	c.ITPasswordTDS = s.codec.Encrypt(c.ITPasswordTDS)
	c.Password26AS = s.codec.Encrypt(c.Password26AS)
	c.PasswordAISTIS = s.codec.Encrypt(c.PasswordAISTIS)
	c.TracesPasswordDeductor = s.codec.Encrypt(c.TracesPasswordDeductor)
	c.TracesPasswordTaxpayer = s.codec.Encrypt(c.TracesPasswordTaxpayer)
}

func (s *service) decryptSensitive(c *Client) {
	c.MCAPassword = s.codec.Decrypt(c.MCAPassword)
	c.DSCTokenPassword = s.codec.Decrypt(c.DSCTokenPassword)
	c.ITPortalPassword = s.codec.Decrypt(c.ITPortalPassword)
	c.ITPasswordTDS = s.codec.Decrypt(c.ITPasswordTDS)
	c.Password26AS = s.codec.Decrypt(c.Password26AS)
	c.PasswordAISTIS = s.codec.Decrypt(c.PasswordAISTIS)
	c.TracesPasswordDeductor = s.codec.Decrypt(c.TracesPasswordDeductor)
	c.TracesPasswordTaxpayer = s.codec.Decrypt(c.TracesPasswordTaxpayer)
}

// encryptPatch encrypts only the credential fields present in the patch, so
// already-stored ciphertext is never re-encrypted.
func (s *service) encryptPatch(req *UpdateClientRequest) {
	req.MCAPassword = s.codec.Encrypt(req.MCAPassword)
	req.DSCTokenPassword = s.codec.Encrypt(req.DSCTokenPassword)
	req.ITPortalPassword = s.codec.Encrypt(req.ITPortalPassword)
	req.ITPasswordTDS = s.codec.Encrypt(req.ITPasswordTDS)
	req.Password26AS = s.codec.Encrypt(req.Password26AS)
	req.PasswordAISTIS = s.codec.Encrypt(req.PasswordAISTIS)
	req.TracesPasswordDeductor = s.codec.Encrypt(req.TracesPasswordDeductor)
	req.TracesPasswordTaxpayer = s.codec.Encrypt(req.TracesPasswordTaxpayer)
}

func applyPatch(c *Client, req UpdateClientRequest) {
	if req.PAN != nil {
		c.PAN = *req.PAN
	}
	if req.Constitution != nil {
		c.Constitution = *req.Constitution
	}
	if req.DisplayName != nil {
		c.DisplayName = *req.DisplayName
	}
	if req.LegalName != nil {
		c.LegalName = *req.LegalName
	}
	if req.DateOfIncorporationBirth != nil {
		c.DateOfIncorporationBirth = req.DateOfIncorporationBirth
	}
	if req.CinLlpin != nil {
		c.CinLlpin = req.CinLlpin
	}
	if req.TAN != nil {
		c.TAN = req.TAN
	}
	if req.IsDirectClient != nil {
		c.IsDirectClient = *req.IsDirectClient
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.IsOnRetainer != nil {
		c.IsOnRetainer = *req.IsOnRetainer
	}
	if req.ClientSince != nil {
		c.ClientSince = req.ClientSince
	}
	if req.FatherName != nil {
		c.FatherName = req.FatherName
	}
	if req.MotherName != nil {
		c.MotherName = req.MotherName
	}
	if req.Gender != nil {
		c.Gender = req.Gender
	}
	if req.Nationality != nil {
		c.Nationality = req.Nationality
	}
	if req.AadhaarNo != nil {
		c.AadhaarNo = req.AadhaarNo
	}
	if req.DIN != nil {
		c.DIN = req.DIN
	}
	if req.PassportNo != nil {
		c.PassportNo = req.PassportNo
	}
	if req.PassportExpiry != nil {
		c.PassportExpiry = req.PassportExpiry
	}
	if req.MCAUserID != nil {
		c.MCAUserID = req.MCAUserID
	}
	if req.MCAPassword != nil {
		c.MCAPassword = req.MCAPassword
	}
	if req.DSCProvider != nil {
		c.DSCProvider = req.DSCProvider
	}
	if req.DSCExpiryDate != nil {
		c.DSCExpiryDate = req.DSCExpiryDate
	}
	if req.DSCTokenPassword != nil {
		c.DSCTokenPassword = req.DSCTokenPassword
	}
	if req.PrimaryPhone != nil {
		c.PrimaryPhone = req.PrimaryPhone
	}
	if req.SecondaryPhone != nil {
		c.SecondaryPhone = req.SecondaryPhone
	}
	if req.PrimaryEmail != nil {
		c.PrimaryEmail = req.PrimaryEmail
	}
	if req.SecondaryEmail != nil {
		c.SecondaryEmail = req.SecondaryEmail
	}
	if req.AddressLine1 != nil {
		c.AddressLine1 = req.AddressLine1
	}
	if req.AddressLine2 != nil {
		c.AddressLine2 = req.AddressLine2
	}
	if req.City != nil {
		c.City = req.City
	}
	if req.State != nil {
		c.State = req.State
	}
	if req.PinCode != nil {
		c.PinCode = req.PinCode
	}
	if req.ITPortalUserID != nil {
		c.ITPortalUserID = req.ITPortalUserID
	}
	if req.ITPortalPassword != nil {
		c.ITPortalPassword = req.ITPortalPassword
	}
	if req.ITPortalUserIDTDS != nil {
		c.ITPortalUserIDTDS = req.ITPortalUserIDTDS
	}
	if req.ITPasswordTDS != nil {
		c.ITPasswordTDS = req.ITPasswordTDS
	}
	if req.Password26AS != nil {
		c.Password26AS = req.Password26AS
	}
	if req.PasswordAISTIS != nil {
		c.PasswordAISTIS = req.PasswordAISTIS
	}
	if req.TracesUserIDDeductor != nil {
		c.TracesUserIDDeductor = req.TracesUserIDDeductor
	}
	if req.TracesPasswordDeductor != nil {
		c.TracesPasswordDeductor = req.TracesPasswordDeductor
	}
	if req.TracesUserIDTaxpayer != nil {
		c.TracesUserIDTaxpayer = req.TracesUserIDTaxpayer
	}
	if req.TracesPasswordTaxpayer != nil {
		c.TracesPasswordTaxpayer = req.TracesPasswordTaxpayer
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}
}
