package bankaccount

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, b *BankAccount) error
	FindAll(ctx context.Context, clientID *uuid.UUID) ([]BankAccount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	Update(ctx context.Context, b *BankAccount) error
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

func (r *repository) Create(ctx context.Context, b *BankAccount) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context, clientID *uuid.UUID) ([]BankAccount, error) {
	q := r.db.WithContext(ctx).Model(&BankAccount{})
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}

	var accounts []BankAccount
	err := q.Order("bank_name").Find(&accounts).Error
	return accounts, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	var b BankAccount
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *BankAccount) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&BankAccount{}, "id = ?", id).Error
}
