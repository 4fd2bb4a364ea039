package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Billing    BillingConfig    `validate:"required"`
	Cache      CacheConfig
	Submission SubmissionConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required,oneof=debug info warn error"`
}

type BillingConfig struct {
	Currency string `validate:"required,len=3"`
}

type CacheConfig struct {
	Enabled     bool
	InFlightTTL time.Duration `mapstructure:"inflight_ttl"`
}

// SubmissionConfig controls how settled drops are handed to the booking system.
// An empty WebhookURL keeps submissions in-process and only logs them.
type SubmissionConfig struct {
	WebhookURL   string        `mapstructure:"webhook_url" validate:"omitempty,url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RetryMax     int           `mapstructure:"retry_max" validate:"gte=0,lte=10"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
	// RateLimit caps outbound drop posts per second, 0 means unlimited
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional and only feeds the environment viper reads below
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/rentalbilling")

	setDefaults(v)

	v.SetEnvPrefix("RENTALBILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	def := GetDefaultConfig()
	v.SetDefault("deployment.mode", def.Deployment.Mode)
	v.SetDefault("server.address", def.Server.Address)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("billing.currency", def.Billing.Currency)
	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.inflight_ttl", def.Cache.InFlightTTL)
	v.SetDefault("submission.webhook_url", def.Submission.WebhookURL)
	v.SetDefault("submission.timeout", def.Submission.Timeout)
	v.SetDefault("submission.retry_max", def.Submission.RetryMax)
	v.SetDefault("submission.retry_wait_min", def.Submission.RetryWaitMin)
	v.SetDefault("submission.retry_wait_max", def.Submission.RetryWaitMax)
	v.SetDefault("submission.rate_limit", def.Submission.RateLimit)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts, tests or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Billing:    BillingConfig{Currency: types.DEFAULT_CURRENCY},
		Cache: CacheConfig{
			Enabled:     true,
			InFlightTTL: 2 * time.Minute,
		},
		Submission: SubmissionConfig{
			Timeout:      10 * time.Second,
			RetryMax:     3,
			RetryWaitMin: 500 * time.Millisecond,
			RetryWaitMax: 5 * time.Second,
		},
	}
}
