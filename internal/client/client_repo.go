package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter holds the optional list predicates: substring search over
// names/PAN and equality filters on the flags.
type ListFilter struct {
	Search       string
	Constitution string
	IsActive     *bool
	IsDirect     *bool
}

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, client *Client) error
	FindAll(ctx context.Context, filter ListFilter) ([]Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByPAN(ctx context.Context, pan string) (*Client, error)
	Update(ctx context.Context, client *Client) error
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

func (r *repository) Create(ctx context.Context, client *Client) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(client).Error)
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Client, error) {
	q := r.db.WithContext(ctx).Model(&Client{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(
			"display_name ILIKE ? OR legal_name ILIKE ? OR pan ILIKE ?",
			like, like, like,
		)
	}
	if filter.Constitution != "" {
		q = q.Where("constitution = ?", filter.Constitution)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsDirect != nil {
		q = q.Where("is_direct_client = ?", *filter.IsDirect)
	}

	var clients []Client
	err := q.Order("display_name").Find(&clients).Error
	return clients, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	var c Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByPAN(ctx context.Context, pan string) (*Client, error) {
	var c Client
	err := r.db.WithContext(ctx).First(&c, "pan = ?", pan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, client *Client) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(client).Error)
}
