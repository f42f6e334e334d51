package config

import (
	"fmt"
	"strings"
	"time"
)

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StoragePostgres StorageDriver = "postgres"
)

func (d *StorageDriver) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "memory":
		*d = StorageMemory
	case "postgres":
		*d = StoragePostgres
	default:
		return fmt.Errorf("invalid storage driver: %s", value)
	}
	return nil
}

type ToastPosition string

func (p *ToastPosition) Decode(value string) error {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "top", "middle", "bottom":
		*p = ToastPosition(v)
	default:
		return fmt.Errorf("invalid toast position: %s", value)
	}
	return nil
}

type OnboardingConfig struct {
	BaseConfig
	Validation  ValidationConfig `envconfig:"VALIDATION"`
	I18n        I18nConfig       `envconfig:"I18N"`
	Toast       ToastConfig      `envconfig:"TOAST"`
	Storage     StorageConfig    `envconfig:"STORAGE"`
	SplashDelay time.Duration    `envconfig:"SPLASH_DELAY" default:"3s" validate:"gte=0"`
}

type ValidationConfig struct {
	PhoneDigits       int `envconfig:"PHONE_DIGITS" default:"9" validate:"gte=1,lte=15"`
	PasswordMinLength int `envconfig:"PASSWORD_MIN_LENGTH" default:"8" validate:"gte=1,lte=128"`
}

type I18nConfig struct {
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"es" validate:"required,bcp47_language_tag"`
}

type ToastConfig struct {
	ErrorDuration   time.Duration `envconfig:"ERROR_DURATION" default:"3s" validate:"gt=0"`
	SuccessDuration time.Duration `envconfig:"SUCCESS_DURATION" default:"2s" validate:"gt=0"`
	Position        ToastPosition `envconfig:"POSITION" default:"top"`
}

type StorageConfig struct {
	Driver       StorageDriver `envconfig:"DRIVER" default:"memory"`
	FormCapacity int           `envconfig:"FORM_CAPACITY" default:"10000" validate:"gte=0"`
}

// LoadOnboarding reads the full service configuration. FORM_CAPACITY of zero
// leaves the form store unbounded.
func LoadOnboarding() (*OnboardingConfig, error) {
	var cfg OnboardingConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *OnboardingConfig) UsesPostgres() bool {
	return c.Storage.Driver == StoragePostgres
}
