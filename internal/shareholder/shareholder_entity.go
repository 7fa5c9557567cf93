package shareholder

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

// Shareholder records a holding in a company client. The holder is either an
// individual client or a holding-entity client, discriminated by HolderType.
type Shareholder struct {
	ID                    uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	CompanyClientID       uuid.UUID   `gorm:"column:company_client_id;type:uuid;not null"`
	HolderType            string      `gorm:"column:holder_type;type:holder_type;not null"`
	IndividualClientID    *uuid.UUID  `gorm:"column:individual_client_id;type:uuid"`
	HoldingEntityClientID *uuid.UUID  `gorm:"column:holding_entity_client_id;type:uuid"`
	ShareType             *string     `gorm:"column:share_type;type:share_type"`
	NumberOfShares        *int        `gorm:"column:number_of_shares"`
	FaceValue             *float64    `gorm:"column:face_value;type:numeric(12,2)"`
	Percentage            *float64    `gorm:"column:percentage;type:numeric(5,2)"`
	DateAcquired          *types.Date `gorm:"column:date_acquired;type:date"`
	IsActive              bool        `gorm:"column:is_active;not null;default:true"`
	Notes                 *string     `gorm:"column:notes;type:text"`
	CreatedAt             time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time   `gorm:"column:updated_at;autoUpdateTime"`

	Individual    *client.Client `gorm:"foreignKey:IndividualClientID"`
	HoldingEntity *client.Client `gorm:"foreignKey:HoldingEntityClientID"`
}

func (Shareholder) TableName() string { return "shareholders" }

// holderClient resolves the client the holding belongs to, by HolderType.
func (s Shareholder) holderClient() *client.Client {
	if s.HolderType == "Individual" {
		return s.Individual
	}
	return s.HoldingEntity
}
