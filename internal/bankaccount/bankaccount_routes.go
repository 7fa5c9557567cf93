package bankaccount

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	accounts := r.Group("/bank-accounts")

	accounts.Use(authn)

	{
		accounts.GET("", h.GetAll)
		accounts.POST("", h.Create)
		accounts.GET("/:id", h.GetByID)
		accounts.PUT("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)
	}
}
