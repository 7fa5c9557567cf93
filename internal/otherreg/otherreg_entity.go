package otherreg

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

// Registration covers licences and registrations outside the dedicated
// GST and EPF/ESI tables: MSME, IEC, FSSAI, professional tax and the like.
type Registration struct {
	ID                 uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	ClientID           uuid.UUID   `gorm:"column:client_id;type:uuid;not null"`
	RegistrationType   string      `gorm:"column:registration_type;type:other_reg_type;not null"`
	RegistrationNumber string      `gorm:"column:registration_number;type:text;not null"`
	RegistrationDate   *types.Date `gorm:"column:registration_date;type:date"`
	ValidUntil         *types.Date `gorm:"column:valid_until;type:date"`
	IssuingAuthority   *string     `gorm:"column:issuing_authority;type:text"`
	StateJurisdiction  *string     `gorm:"column:state_jurisdiction;type:text"`
	PortalUserID       *string     `gorm:"column:portal_user_id;type:text"`
	PortalPassword     *string     `gorm:"column:portal_password;type:text"` // encrypted
	IsActive           bool        `gorm:"column:is_active;not null;default:true"`
	Notes              *string     `gorm:"column:notes;type:text"`
	CreatedAt          time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Registration) TableName() string { return "other_registrations" }
