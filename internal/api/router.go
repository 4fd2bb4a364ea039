package api

import (
	v1 "github.com/flexprice/rentalbilling/internal/api/v1"
	"github.com/flexprice/rentalbilling/internal/config"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/rest/middleware"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health     *v1.HealthHandler
	Settlement *v1.SettlementHandler
	Extension  *v1.ExtensionHandler
	Drop       *v1.DropHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg != nil && cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
		middleware.ErrorHandler(log),
	)

	router.NoRoute(notFound)
	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func notFound(c *gin.Context) {
	c.Error(ierr.NewErrorf("no route for %s %s", c.Request.Method, c.Request.URL.Path).
		WithHint("The requested endpoint does not exist").
		Mark(ierr.ErrNotFound))
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	settlements := router.Group("/settlements")
	{
		settlements.POST("/preview", handlers.Settlement.Preview)
		settlements.POST("/batch", handlers.Settlement.Batch)
	}

	extensions := router.Group("/extensions")
	{
		extensions.POST("/quote", handlers.Extension.Quote)
		extensions.POST("/approve", handlers.Extension.Approve)
	}

	router.POST("/drops", handlers.Drop.SubmitDrop)
}
