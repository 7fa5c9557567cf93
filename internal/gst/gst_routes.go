package gst

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	gst := r.Group("/gst")

	gst.Use(authn)

	{
		gst.GET("", h.GetAll)
		gst.POST("", h.Create)
		gst.GET("/:id", h.GetByID)
		gst.PUT("/:id", h.Update)
		gst.DELETE("/:id", h.Delete)

		gst.POST("/:id/signatories", h.AddSignatory)
		gst.DELETE("/:id/signatories/:sigId", h.RemoveSignatory)
	}
}
