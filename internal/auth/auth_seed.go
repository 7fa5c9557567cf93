package auth

import (
	"context"

	"github.com/Triyambak-CA/client-dashboard/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedAdmin creates the bootstrap admin account unless the configured email
// already exists. Safe to run on every startup.
func SeedAdmin(ctx context.Context, repo Repository, admin config.Admin) error {
	existing, err := repo.FindByEmail(ctx, admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		zap.L().Info("admin already exists, skipping seed", zap.String("email", admin.Email))
		return nil
	}

	hashed, err := HashPassword(admin.Password)
	if err != nil {
		return err
	}

	user := &User{
		ID:           uuid.New(),
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: hashed,
		Role:         RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	zap.L().Info("admin user created", zap.String("email", admin.Email))
	return nil
}
