package service

import (
	"context"

	"github.com/flexprice/rentalbilling/internal/cache"
	"github.com/flexprice/rentalbilling/internal/config"
	"github.com/flexprice/rentalbilling/internal/idempotency"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/submission"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Drop submission path
	InFlight      *cache.InFlightGuard
	Idempotency   *idempotency.Generator
	DropSubmitter submission.Submitter
}

// NewServiceParams is the fx constructor for ServiceParams
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	inFlight *cache.InFlightGuard,
	idempotencyGen *idempotency.Generator,
	dropSubmitter submission.Submitter,
) ServiceParams {
	return ServiceParams{
		Logger:        logger,
		Config:        config,
		InFlight:      inFlight,
		Idempotency:   idempotencyGen,
		DropSubmitter: dropSubmitter,
	}
}

func (p ServiceParams) log(ctx context.Context) *logger.Logger {
	if p.Logger == nil {
		return logger.NewNopLogger()
	}
	return p.Logger.WithContext(ctx)
}
