package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	FirmLLPClientID    *uuid.UUID
	IndividualClientID *uuid.UUID
}

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, p *Partner) error
	FindAll(ctx context.Context, filter ListFilter) ([]Partner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	Update(ctx context.Context, p *Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Partner, error) {
	q := r.db.WithContext(ctx).
		Model(&Partner{}).
		Preload("FirmLLP").
		Preload("Individual")

	if filter.FirmLLPClientID != nil {
		q = q.Where("firm_llp_client_id = ?", *filter.FirmLLPClientID)
	}
	if filter.IndividualClientID != nil {
		q = q.Where("individual_client_id = ?", *filter.IndividualClientID)
	}

	var partners []Partner
	err := q.Find(&partners).Error
	return partners, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	var p Partner
	err := r.db.WithContext(ctx).
		Preload("FirmLLP").
		Preload("Individual").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).
		Omit("FirmLLP", "Individual").
		Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Partner{}, "id = ?", id).Error
}
