package gst

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, reg *GSTRegistration) error
	FindAll(ctx context.Context, clientID *uuid.UUID) ([]GSTRegistration, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GSTRegistration, error)
	FindByGSTIN(ctx context.Context, gstin string) (*GSTRegistration, error)
	Update(ctx context.Context, reg *GSTRegistration) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateSignatory(ctx context.Context, sig *GSTSignatory) error
	FindSignatoryPair(ctx context.Context, regID, clientID uuid.UUID) (*GSTSignatory, error)
	FindSignatoryByID(ctx context.Context, regID, sigID uuid.UUID) (*GSTSignatory, error)
	DeleteSignatory(ctx context.Context, sigID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, reg *GSTRegistration) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(reg).Error)
}

func (r *repository) FindAll(ctx context.Context, clientID *uuid.UUID) ([]GSTRegistration, error) {
	q := r.db.WithContext(ctx).Model(&GSTRegistration{})
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}

	var regs []GSTRegistration
	err := q.Order("gstin").Find(&regs).Error
	return regs, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*GSTRegistration, error) {
	var reg GSTRegistration
	err := r.db.WithContext(ctx).
		Preload("Signatories.SignatoryClient").
		First(&reg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) FindByGSTIN(ctx context.Context, gstin string) (*GSTRegistration, error) {
	var reg GSTRegistration
	err := r.db.WithContext(ctx).First(&reg, "gstin = ?", gstin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) Update(ctx context.Context, reg *GSTRegistration) error {
	return mapRepositoryError(r.db.WithContext(ctx).Omit("Signatories").Save(reg).Error)
}

// Delete hard-deletes; signatories go with it via the FK cascade.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&GSTRegistration{}, "id = ?", id).Error
}

func (r *repository) CreateSignatory(ctx context.Context, sig *GSTSignatory) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(sig).Error)
}

func (r *repository) FindSignatoryPair(ctx context.Context, regID, clientID uuid.UUID) (*GSTSignatory, error) {
	var sig GSTSignatory
	err := r.db.WithContext(ctx).
		Where("gst_registration_id = ? AND signatory_client_id = ?", regID, clientID).
		First(&sig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

func (r *repository) FindSignatoryByID(ctx context.Context, regID, sigID uuid.UUID) (*GSTSignatory, error) {
	var sig GSTSignatory
	err := r.db.WithContext(ctx).
		Where("id = ? AND gst_registration_id = ?", sigID, regID).
		First(&sig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

func (r *repository) DeleteSignatory(ctx context.Context, sigID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&GSTSignatory{}, "id = ?", sigID).Error
}
