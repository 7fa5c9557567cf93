package auth

import (
	"errors"
	"net/http"
	"strings"

	autherrors "github.com/Triyambak-CA/client-dashboard/internal/auth/errors"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	ContextUserKey   = "current_user"
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"
)

// RequireAuth rejects requests without a valid bearer token. The token's
// subject must resolve to an existing, active user; the loaded user is
// stored in the request context.
func RequireAuth(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		user, err := svc.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			} else {
				response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, autherrors.ErrInvalidToken.Message, nil)
			}
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.ID.String())
		c.Set(ContextRoleKey, user.Role)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) != RoleAdmin {
			response.Error(c, autherrors.ErrAdminOnly.HTTPStatus, autherrors.ErrAdminOnly.Code, autherrors.ErrAdminOnly.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
