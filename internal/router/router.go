package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"calculator/backend/internal/calculator"
	"calculator/backend/internal/config"
	"calculator/backend/internal/handler"
	"calculator/backend/internal/middleware"
	"calculator/backend/internal/monitoring"
)

// New builds the engine. metrics may be nil, in which case nothing is recorded
// and no metrics route is mounted.
func New(cfg *config.Config, log *zap.Logger, metrics *monitoring.Metrics, calc calculator.Calculator) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	if metrics != nil {
		r.Use(monitoring.Middleware(metrics))
	}
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	h := handler.New(log, calc, metrics)

	r.GET("/ping", handler.Ping)

	r.POST("/add", h.Add)
	r.POST("/subtract", h.Subtract)
	r.POST("/multiply", h.Multiply)
	r.POST("/divide", h.Divide)

	r.POST("/exponent", h.Exponent)
	r.POST("/squareRoot", h.SquareRoot)
	r.POST("/modulo", h.Modulo)

	if cfg.Metrics.Enabled && metrics != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	return r
}
