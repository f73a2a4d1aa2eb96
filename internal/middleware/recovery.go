package middleware

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"calculator/backend/internal/calculator"
	"calculator/backend/internal/model"
)

// Recovery converts a panic into the generic 500 envelope and logs it.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String(RequestIDKey, c.GetString(RequestIDKey)),
		)
		c.AbortWithStatusJSON(calculator.KindInternal.Status(), model.Failure(calculator.MsgUnavailable))
	})
}
