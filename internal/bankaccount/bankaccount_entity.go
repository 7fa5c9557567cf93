package bankaccount

import (
	"time"

	"github.com/google/uuid"
)

type BankAccount struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ClientID           uuid.UUID `gorm:"column:client_id;type:uuid;not null"`
	BankName           string    `gorm:"column:bank_name;type:text;not null"`
	AccountNumber      string    `gorm:"column:account_number;type:text;not null"`
	IFSCCode           string    `gorm:"column:ifsc_code;type:text;not null"`
	BranchName         *string   `gorm:"column:branch_name;type:text"`
	AccountType        *string   `gorm:"column:account_type;type:bank_account_type"`
	IsPrimary          bool      `gorm:"column:is_primary;not null;default:false"`
	NetBankingUserID   *string   `gorm:"column:net_banking_user_id;type:text"`
	NetBankingPassword *string   `gorm:"column:net_banking_password;type:text"` // encrypted
	Notes              *string   `gorm:"column:notes;type:text"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (BankAccount) TableName() string { return "bank_accounts" }
