package otherreg

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	regs := r.Group("/other-registrations")

	regs.Use(authn)

	{
		regs.GET("", h.GetAll)
		regs.POST("", h.Create)
		regs.GET("/:id", h.GetByID)
		regs.PUT("/:id", h.Update)
		regs.DELETE("/:id", h.Delete)
	}
}
