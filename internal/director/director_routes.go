package director

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc) {
	directors := r.Group("/directors")

	directors.Use(authn)

	{
		directors.GET("", h.GetAll)
		directors.POST("", h.Create)
		directors.PUT("/:companyId/:individualId", h.Update)
		directors.DELETE("/:companyId/:individualId", h.Delete)
	}
}
