package response

import (
	domainerrors "formly.backend/internal/domain/errors"
	"github.com/gin-gonic/gin"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. The body always carries a single "error"
// field with a user-facing message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError("Error interno del servidor", err)
	}

	c.JSON(appErr.Code, gin.H{
		"error": appErr.Message,
	})
}
