package bankaccount

import (
	"context"

	bankaccounterrors "github.com/Triyambak-CA/client-dashboard/internal/bankaccount/errors"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateBankAccountRequest) (BankAccountResponse, error)
	GetAll(ctx context.Context, clientID *uuid.UUID) ([]BankAccountResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (BankAccountResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBankAccountRequest) (BankAccountResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	codec *credential.Codec
}

func NewService(repo Repository, codec *credential.Codec) Service {
	return &service{repo: repo, codec: codec}
}

func (s *service) Create(ctx context.Context, req CreateBankAccountRequest) (BankAccountResponse, error) {
	b := &BankAccount{
		ID:                 uuid.New(),
		ClientID:           req.ClientID,
		BankName:           req.BankName,
		AccountNumber:      req.AccountNumber,
		IFSCCode:           req.IFSCCode,
		BranchName:         req.BranchName,
		AccountType:        req.AccountType,
		NetBankingUserID:   req.NetBankingUserID,
		NetBankingPassword: s.codec.Encrypt(req.NetBankingPassword),
		Notes:              req.Notes,
	}
	if req.IsPrimary != nil {
		b.IsPrimary = *req.IsPrimary
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return BankAccountResponse{}, err
	}

	b.NetBankingPassword = s.codec.Decrypt(b.NetBankingPassword)
	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, clientID *uuid.UUID) ([]BankAccountResponse, error) {
	accounts, err := s.repo.FindAll(ctx, clientID)
	if err != nil {
		return nil, err
	}
	res := make([]BankAccountResponse, len(accounts))
	for i, b := range accounts {
		b.NetBankingPassword = s.codec.Decrypt(b.NetBankingPassword)
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (BankAccountResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BankAccountResponse{}, err
	}
	if b == nil {
		return BankAccountResponse{}, bankaccounterrors.ErrBankAccountNotFound
	}
	b.NetBankingPassword = s.codec.Decrypt(b.NetBankingPassword)
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateBankAccountRequest) (BankAccountResponse, error) {
	var updated *BankAccount

	err := s.repo.Transaction(ctx, func(qtx Repository) error {
		b, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return bankaccounterrors.ErrBankAccountNotFound
		}

		req.NetBankingPassword = s.codec.Encrypt(req.NetBankingPassword)
		applyPatch(b, req)

		if err := qtx.Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return BankAccountResponse{}, err
	}

	updated.NetBankingPassword = s.codec.Decrypt(updated.NetBankingPassword)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(qtx Repository) error {
		b, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return bankaccounterrors.ErrBankAccountNotFound
		}
		return qtx.Delete(ctx, id)
	})
}

func applyPatch(b *BankAccount, req UpdateBankAccountRequest) {
	if req.BankName != nil {
		b.BankName = *req.BankName
	}
	if req.AccountNumber != nil {
		b.AccountNumber = *req.AccountNumber
	}
	if req.IFSCCode != nil {
		b.IFSCCode = *req.IFSCCode
	}
	if req.BranchName != nil {
		b.BranchName = req.BranchName
	}
	if req.AccountType != nil {
		b.AccountType = req.AccountType
	}
	if req.IsPrimary != nil {
		b.IsPrimary = *req.IsPrimary
	}
	if req.NetBankingUserID != nil {
		b.NetBankingUserID = req.NetBankingUserID
	}
	if req.NetBankingPassword != nil {
		b.NetBankingPassword = req.NetBankingPassword
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}
}
