package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snnyvrz/library-manager/internal/validation"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("request_id", RequestIDFrom(c)),
					zap.Stack("stack"),
				)

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, validation.ErrorResponse{
						Code:    "INTERNAL_ERROR",
						Message: "an internal error occurred",
					})
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
