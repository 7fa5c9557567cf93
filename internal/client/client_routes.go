package client

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	clients := r.Group("/clients")

	clients.Use(authn)

	{
		clients.GET("", h.GetAll)
		clients.POST("", h.Create)
		clients.GET("/:id", h.GetByID)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Deactivate)
	}
}
