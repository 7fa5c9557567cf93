package shareholder

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	shareholders := r.Group("/shareholders")

	shareholders.Use(authn)

	{
		shareholders.GET("", h.GetAll)
		shareholders.POST("", h.Create)
		shareholders.GET("/:id", h.GetByID)
		shareholders.PUT("/:id", h.Update)
		shareholders.DELETE("/:id", h.Delete)
	}
}
