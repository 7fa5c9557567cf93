package otherreg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, reg *Registration) error
	FindAll(ctx context.Context, clientID *uuid.UUID) ([]Registration, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Registration, error)
	Update(ctx context.Context, reg *Registration) error
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

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repository) FindAll(ctx context.Context, clientID *uuid.UUID) ([]Registration, error) {
	q := r.db.WithContext(ctx).Model(&Registration{})
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}

	var regs []Registration
	err := q.Order("registration_type, registration_number").Find(&regs).Error
	return regs, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Registration, error) {
	var reg Registration
	err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) Update(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Registration{}, "id = ?", id).Error
}
