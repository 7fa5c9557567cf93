package director

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

// Director links a company client to an individual client. There is no
// surrogate key; the (company, individual) pair is the identity.
type Director struct {
	CompanyClientID    uuid.UUID   `gorm:"column:company_client_id;type:uuid;primaryKey"`
	IndividualClientID uuid.UUID   `gorm:"column:individual_client_id;type:uuid;primaryKey"`
	Designation        string      `gorm:"column:designation;type:designation_type;not null"`
	DateOfAppointment  *types.Date `gorm:"column:date_of_appointment;type:date"`
	DateOfCessation    *types.Date `gorm:"column:date_of_cessation;type:date"`
	IsActive           bool        `gorm:"column:is_active;not null;default:true"`
	IsKMP              bool        `gorm:"column:is_kmp;not null;default:false"`
	Notes              *string     `gorm:"column:notes;type:text"`
	CreatedAt          time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time   `gorm:"column:updated_at;autoUpdateTime"`

	Company    *client.Client `gorm:"foreignKey:CompanyClientID"`
	Individual *client.Client `gorm:"foreignKey:IndividualClientID"`
}

func (Director) TableName() string { return "directors" }
