package partner

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

// Partner records an individual client's stake in a firm or LLP client.
type Partner struct {
	ID                 uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	FirmLLPClientID    uuid.UUID   `gorm:"column:firm_llp_client_id;type:uuid;not null"`
	IndividualClientID uuid.UUID   `gorm:"column:individual_client_id;type:uuid;not null"`
	Role               string      `gorm:"column:role;type:partner_role;not null"`
	ProfitSharingRatio *float64    `gorm:"column:profit_sharing_ratio;type:numeric(5,2)"`
	CapitalContribution *float64   `gorm:"column:capital_contribution;type:numeric(15,2)"`
	DateOfJoining      *types.Date `gorm:"column:date_of_joining;type:date"`
	DateOfExit         *types.Date `gorm:"column:date_of_exit;type:date"`
	IsActive           bool        `gorm:"column:is_active;not null;default:true"`
	Notes              *string     `gorm:"column:notes;type:text"`
	CreatedAt          time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time   `gorm:"column:updated_at;autoUpdateTime"`

	FirmLLP    *client.Client `gorm:"foreignKey:FirmLLPClientID"`
	Individual *client.Client `gorm:"foreignKey:IndividualClientID"`
}

func (Partner) TableName() string { return "partners" }
