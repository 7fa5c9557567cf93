package gst

import (
	"time"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/types"

	"github.com/google/uuid"
)

// GSTRegistration is one GSTIN owned by exactly one client. Removing the
// client cascades here; removing a registration cascades its signatories.
type GSTRegistration struct {
	ID               uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	ClientID         uuid.UUID   `gorm:"column:client_id;type:uuid;not null"`
	GSTIN            string      `gorm:"column:gstin;type:text;not null;uniqueIndex"`
	State            *string     `gorm:"column:state;type:text"`
	StateCode        *string     `gorm:"column:state_code;type:char(2)"`
	RegistrationType *string     `gorm:"column:registration_type;type:gst_registration_type"`
	RegistrationDate *types.Date `gorm:"column:registration_date;type:date"`
	CancellationDate *types.Date `gorm:"column:cancellation_date;type:date"`
	IsActive         bool        `gorm:"column:is_active;not null;default:true"`

	GSTUserID      *string `gorm:"column:gst_user_id;type:text"`
	GSTPassword    *string `gorm:"column:gst_password;type:text"` // encrypted
	EWBUserID      *string `gorm:"column:ewb_user_id;type:text"`
	EWBPassword    *string `gorm:"column:ewb_password;type:text"` // encrypted
	EWBAPIUserID   *string `gorm:"column:ewb_api_user_id;type:text"`
	EWBAPIPassword *string `gorm:"column:ewb_api_password;type:text"` // encrypted

	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Signatories []GSTSignatory `gorm:"foreignKey:GSTRegistrationID"`
}

func (GSTRegistration) TableName() string { return "gst_registrations" }

// GSTSignatory links a registration to the client acting as its authorized
// signatory; the (registration, signatory) pair is unique.
type GSTSignatory struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	GSTRegistrationID uuid.UUID `gorm:"column:gst_registration_id;type:uuid;not null;uniqueIndex:uq_gst_signatory"`
	SignatoryClientID uuid.UUID `gorm:"column:signatory_client_id;type:uuid;not null;uniqueIndex:uq_gst_signatory"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`

	SignatoryClient *client.Client `gorm:"foreignKey:SignatoryClientID"`
}

func (GSTSignatory) TableName() string { return "gst_signatories" }
