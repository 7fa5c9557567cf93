package partner

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	partners := r.Group("/partners")

	partners.Use(authn)

	{
		partners.GET("", h.GetAll)
		partners.POST("", h.Create)
		partners.GET("/:id", h.GetByID)
		partners.PUT("/:id", h.Update)
		partners.DELETE("/:id", h.Delete)
	}
}
