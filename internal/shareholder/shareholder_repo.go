package shareholder

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, sh *Shareholder) error
	FindAll(ctx context.Context, companyClientID *uuid.UUID) ([]Shareholder, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Shareholder, error)
	Update(ctx context.Context, sh *Shareholder) error
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

func (r *repository) Create(ctx context.Context, sh *Shareholder) error {
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *repository) FindAll(ctx context.Context, companyClientID *uuid.UUID) ([]Shareholder, error) {
	q := r.db.WithContext(ctx).
		Model(&Shareholder{}).
		Preload("Individual").
		Preload("HoldingEntity")

	if companyClientID != nil {
		q = q.Where("company_client_id = ?", *companyClientID)
	}

	var shareholders []Shareholder
	err := q.Find(&shareholders).Error
	return shareholders, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Shareholder, error) {
	var sh Shareholder
	err := r.db.WithContext(ctx).
		Preload("Individual").
		Preload("HoldingEntity").
		First(&sh, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *repository) Update(ctx context.Context, sh *Shareholder) error {
	return r.db.WithContext(ctx).
		Omit("Individual", "HoldingEntity").
		Save(sh).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Shareholder{}, "id = ?", id).Error
}
