package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"onboarding/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// process fills cfg from the environment, then enforces its validate tags.
func process(cfg any) error {
	if err := envconfig.Process("", cfg); err != nil {
		return err
	}
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadDotEnv copies the given .env files (".env" when none are given) into
// the process environment. Variables already set win, missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *BaseConfig) is(env string) bool {
	return strings.EqualFold(c.Environment, env)
}

func (c *BaseConfig) IsProduction() bool { return c.is(EnvProduction) }
