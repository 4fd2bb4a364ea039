package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flexprice/rentalbilling/internal/api"
	v1 "github.com/flexprice/rentalbilling/internal/api/v1"
	"github.com/flexprice/rentalbilling/internal/cache"
	"github.com/flexprice/rentalbilling/internal/config"
	"github.com/flexprice/rentalbilling/internal/idempotency"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/service"
	"github.com/flexprice/rentalbilling/internal/submission"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/flexprice/rentalbilling/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC

	// amounts travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Adapters
			cache.NewInFlightGuard,
			idempotency.NewGenerator,
			submission.NewSubmitter,
		),

		fx.Provide(
			service.NewServiceParams,
			service.NewRatePlanService,
			service.NewChargeService,
			service.NewSettlementService,
			service.NewExtensionService,
			service.NewDropService,
		),

		fx.Provide(
			provideHandlers,
			provideRouter,
		),

		fx.Invoke(
			validator.NewValidator,
			startServer,
		),
	)

	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	settlementService service.SettlementService,
	extensionService service.ExtensionService,
	dropService service.DropService,
) api.Handlers {
	return api.Handlers{
		Health:     v1.NewHealthHandler(),
		Settlement: v1.NewSettlementHandler(settlementService, logger),
		Extension:  v1.NewExtensionHandler(extensionService, logger),
		Drop:       v1.NewDropHandler(dropService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
