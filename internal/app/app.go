package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gmartins-dev/salesdesk/config"
	"github.com/gmartins-dev/salesdesk/internal/api"
	"github.com/gmartins-dev/salesdesk/internal/service"
	"github.com/gmartins-dev/salesdesk/internal/storage"
)

// InitializeApp wires all application dependencies and returns the configured
// router, a cleanup function for graceful shutdown, and any setup error.
//
// Wiring order: postgres → repositories → services → handlers → router,
// plus the health probes, which sit outside the authenticated group.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	ordersRepo := storage.NewOrdersRepository(db)
	reportsRepo := storage.NewReportsRepository(db)

	salesSvc := service.NewSalesReportService(ordersRepo)
	reportSvc := service.NewReportService(reportsRepo)

	salesHandler := api.NewSalesReportHandler(salesSvc)
	reportsHandler := api.NewReportsHandler(reportSvc)

	router := api.NewRouter(salesHandler, reportsHandler, cfg)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
