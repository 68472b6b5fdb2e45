package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/logger"
)

// ErrorHandler is the terminal failure mapper. Handlers attach errors with
// c.Error and return; after the chain runs, the first recorded error is
// narrowed to the closed apperror taxonomy and written as the response.
// Anything unknown becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors[0].Err
		apiErr := apperror.From(err)
		if apiErr.Status >= 500 {
			logger.Get().Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
	}
}
