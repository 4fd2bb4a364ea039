package testutil

import (
	"context"
	"time"

	"github.com/flexprice/rentalbilling/internal/cache"
	"github.com/flexprice/rentalbilling/internal/config"
	"github.com/flexprice/rentalbilling/internal/idempotency"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/flexprice/rentalbilling/internal/validator"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	logger    *logger.Logger
	config    *config.Configuration
	inFlight  *cache.InFlightGuard
	keys      *idempotency.Generator
	submitter *InMemorySubmitter
	now       time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	// Initialize logger with test config
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelError

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.inFlight = cache.NewInFlightGuard(s.config)
	s.keys = idempotency.NewGenerator()
	s.submitter = NewInMemorySubmitter()
	s.now = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.submitter.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetInFlightGuard() *cache.InFlightGuard {
	return s.inFlight
}

func (s *BaseServiceTestSuite) GetIdempotencyGenerator() *idempotency.Generator {
	return s.keys
}

func (s *BaseServiceTestSuite) GetSubmitter() *InMemorySubmitter {
	return s.submitter
}

// GetNow returns a fixed reference time for building booking windows
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
