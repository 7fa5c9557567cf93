package director

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	CompanyClientID    *uuid.UUID
	IndividualClientID *uuid.UUID
}

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, d *Director) error
	FindAll(ctx context.Context, filter ListFilter) ([]Director, error)
	FindByPair(ctx context.Context, companyID, individualID uuid.UUID) (*Director, error)
	Update(ctx context.Context, d *Director) error
	Delete(ctx context.Context, companyID, individualID uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, d *Director) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(d).Error)
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Director, error) {
	q := r.db.WithContext(ctx).
		Model(&Director{}).
		Preload("Company").
		Preload("Individual")

	if filter.CompanyClientID != nil {
		q = q.Where("company_client_id = ?", *filter.CompanyClientID)
	}
	if filter.IndividualClientID != nil {
		q = q.Where("individual_client_id = ?", *filter.IndividualClientID)
	}

	var directors []Director
	err := q.Find(&directors).Error
	return directors, err
}

func (r *repository) FindByPair(ctx context.Context, companyID, individualID uuid.UUID) (*Director, error) {
	var d Director
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Individual").
		Where("company_client_id = ? AND individual_client_id = ?", companyID, individualID).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, d *Director) error {
	return r.db.WithContext(ctx).
		Omit("Company", "Individual").
		Save(d).Error
}

func (r *repository) Delete(ctx context.Context, companyID, individualID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("company_client_id = ? AND individual_client_id = ?", companyID, individualID).
		Delete(&Director{}).Error
}
