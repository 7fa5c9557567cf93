package response

import (
	"errors"
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// FromError maps service errors onto the envelope. Anything that is not an
// AppError is reported as a generic 500 and logged with its cause.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}

	zap.L().Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "An unexpected error occurred", nil)
}
