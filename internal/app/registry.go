package app

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/auth"
	"github.com/Triyambak-CA/client-dashboard/internal/bankaccount"
	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/config"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"
	"github.com/Triyambak-CA/client-dashboard/internal/director"
	"github.com/Triyambak-CA/client-dashboard/internal/epfesi"
	"github.com/Triyambak-CA/client-dashboard/internal/gst"
	"github.com/Triyambak-CA/client-dashboard/internal/otherreg"
	"github.com/Triyambak-CA/client-dashboard/internal/partner"
	"github.com/Triyambak-CA/client-dashboard/internal/shareholder"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	codec *credential.Codec,
	authRepo auth.Repository,
) error {
	// --- Repositories ---
	clientRepo := client.NewRepository(db)
	gstRepo := gst.NewRepository(db)
	directorRepo := director.NewRepository(db)
	shareholderRepo := shareholder.NewRepository(db)
	partnerRepo := partner.NewRepository(db)
	bankAccountRepo := bankaccount.NewRepository(db)
	epfesiRepo := epfesi.NewRepository(db)
	otherRegRepo := otherreg.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	clientService := client.NewService(clientRepo, codec)
	gstService := gst.NewService(gstRepo, clientRepo, codec)
	directorService := director.NewService(directorRepo)
	shareholderService := shareholder.NewService(shareholderRepo)
	partnerService := partner.NewService(partnerRepo)
	bankAccountService := bankaccount.NewService(bankAccountRepo, codec)
	epfesiService := epfesi.NewService(epfesiRepo, codec)
	otherRegService := otherreg.NewService(otherRegRepo, codec)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	clientHandler := client.NewHandler(clientService)
	gstHandler := gst.NewHandler(gstService)
	directorHandler := director.NewHandler(directorService)
	shareholderHandler := shareholder.NewHandler(shareholderService)
	partnerHandler := partner.NewHandler(partnerService)
	bankAccountHandler := bankaccount.NewHandler(bankAccountService)
	epfesiHandler := epfesi.NewHandler(epfesiService)
	otherRegHandler := otherreg.NewHandler(otherRegService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authn := auth.RequireAuth(authService)

	// --- Routes Registration ---
	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler, authService)
		client.RegisterRoutes(api, clientHandler, authn)
		gst.RegisterRoutes(api, gstHandler, authn)
		director.RegisterRoutes(api, directorHandler, authn)
		shareholder.RegisterRoutes(api, shareholderHandler, authn)
		partner.RegisterRoutes(api, partnerHandler, authn)
		bankaccount.RegisterRoutes(api, bankAccountHandler, authn)
		epfesi.RegisterRoutes(api, epfesiHandler, authn)
		otherreg.RegisterRoutes(api, otherRegHandler, authn)
	}

	return nil
}
