package bankaccount

import (
	"time"

	"github.com/google/uuid"
)

type CreateBankAccountRequest struct {
	ClientID           uuid.UUID `json:"client_id" binding:"required"`
	BankName           string    `json:"bank_name" binding:"required"`
	AccountNumber      string    `json:"account_number" binding:"required"`
	IFSCCode           string    `json:"ifsc_code" binding:"required"`
	BranchName         *string   `json:"branch_name"`
	AccountType        *string   `json:"account_type" binding:"omitempty,oneof=Current Savings 'Cash Credit' Overdraft EEFC"`
	IsPrimary          *bool     `json:"is_primary"`
	NetBankingUserID   *string   `json:"net_banking_user_id"`
	NetBankingPassword *string   `json:"net_banking_password"`
	Notes              *string   `json:"notes"`
}

type UpdateBankAccountRequest struct {
	BankName           *string `json:"bank_name"`
	AccountNumber      *string `json:"account_number"`
	IFSCCode           *string `json:"ifsc_code"`
	BranchName         *string `json:"branch_name"`
	AccountType        *string `json:"account_type" binding:"omitempty,oneof=Current Savings 'Cash Credit' Overdraft EEFC"`
	IsPrimary          *bool   `json:"is_primary"`
	NetBankingUserID   *string `json:"net_banking_user_id"`
	NetBankingPassword *string `json:"net_banking_password"`
	Notes              *string `json:"notes"`
}

type BankAccountResponse struct {
	ID                 string    `json:"id"`
	ClientID           string    `json:"client_id"`
	BankName           string    `json:"bank_name"`
	AccountNumber      string    `json:"account_number"`
	IFSCCode           string    `json:"ifsc_code"`
	BranchName         *string   `json:"branch_name"`
	AccountType        *string   `json:"account_type"`
	IsPrimary          bool      `json:"is_primary"`
	NetBankingUserID   *string   `json:"net_banking_user_id"`
	NetBankingPassword *string   `json:"net_banking_password"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func mapToResponse(b BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:                 b.ID.String(),
		ClientID:           b.ClientID.String(),
		BankName:           b.BankName,
		AccountNumber:      b.AccountNumber,
		IFSCCode:           b.IFSCCode,
		BranchName:         b.BranchName,
		AccountType:        b.AccountType,
		IsPrimary:          b.IsPrimary,
		NetBankingUserID:   b.NetBankingUserID,
		NetBankingPassword: b.NetBankingPassword,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
