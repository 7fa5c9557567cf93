package auth

import (
	"github.com/Triyambak-CA/client-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, svc Service) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.5, 5), h.Login)
		authGroup.GET("/me", RequireAuth(svc), h.Me)

		users := authGroup.Group("/users", RequireAuth(svc), RequireAdmin())
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
		}
	}
}
