package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gmartins-dev/salesdesk/config"
	"github.com/gmartins-dev/salesdesk/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a gin engine with all routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, RequestLogger, Recovery,
//     ErrorHandler, RateLimiter) plus CORS for the admin SPA origin.
//   - Adds a per-request timeout.
//   - Mounts Swagger docs (/swagger/*any).
//   - Groups the report API under /api behind bearer-token auth.
//
// Health probes are registered separately in app.InitializeApp().
func NewRouter(sales *SalesReportHandler, reports *ReportsHandler, cfg config.Config) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.Auth(cfg.Auth.JWTSecret))
	{
		api.GET("/reports/sales", sales.GetSalesReport)

		api.GET("/reports", reports.ListReports)
		api.POST("/reports", reports.CreateReport)
		api.GET("/reports/:id", reports.GetReport)
		api.DELETE("/reports/:id", reports.DeleteReport)
	}

	return router
}
