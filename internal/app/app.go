package app

import (
	"context"

	"github.com/Triyambak-CA/client-dashboard/internal/auth"
	"github.com/Triyambak-CA/client-dashboard/internal/config"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"
	"github.com/Triyambak-CA/client-dashboard/internal/middleware"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/connection"
	"github.com/Triyambak-CA/client-dashboard/migrations"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires configuration, database, schema, the credential codec and
// every module's routes onto the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("Database connection established")

	if err := migrations.Apply(db); err != nil {
		return err
	}

	codec, err := credential.NewCodec(cfg.EncryptionKey)
	if err != nil {
		return err
	}

	authRepo := auth.NewRepository(db)
	if err := auth.SeedAdmin(context.Background(), authRepo, cfg.Admin); err != nil {
		return err
	}

	router.Use(middleware.RequestID())

	return registerModules(router, db, cfg, codec, authRepo)
}
