package epfesi

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

type Registration struct {
	ID                  uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	ClientID            uuid.UUID   `gorm:"column:client_id;type:uuid;not null"`
	RegistrationType    string      `gorm:"column:registration_type;type:epf_esi_type;not null"`
	State               *string     `gorm:"column:state;type:text"`
	EstablishmentCode   string      `gorm:"column:establishment_code;type:text;not null"`
	RegistrationDate    *types.Date `gorm:"column:registration_date;type:date"`
	CancellationDate    *types.Date `gorm:"column:cancellation_date;type:date"`
	IsActive            bool        `gorm:"column:is_active;not null;default:true"`
	PortalUserID        *string     `gorm:"column:portal_user_id;type:text"`
	PortalPassword      *string     `gorm:"column:portal_password;type:text"` // encrypted
	DSCHolderName       *string     `gorm:"column:dsc_holder_name;type:text"`
	AuthorisedSignatory *string     `gorm:"column:authorised_signatory;type:text"`
	Notes               *string     `gorm:"column:notes;type:text"`
	CreatedAt           time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Registration) TableName() string { return "epf_esi_registrations" }
