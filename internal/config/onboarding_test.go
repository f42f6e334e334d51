package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type OnboardingConfigTestSuite struct {
	suite.Suite
}

func (s *OnboardingConfigTestSuite) SetupTest() {
	isolateEnv(s.T(), nil)
}

func (s *OnboardingConfigTestSuite) TestLoadOnboarding_DefaultValues() {
	cfg, err := LoadOnboarding()

	s.Require().NoError(err)
	s.Assert().Equal(9, cfg.Validation.PhoneDigits)
	s.Assert().Equal(8, cfg.Validation.PasswordMinLength)
	s.Assert().Equal("es", cfg.I18n.DefaultLocale)
	s.Assert().Equal(3*time.Second, cfg.Toast.ErrorDuration)
	s.Assert().Equal(2*time.Second, cfg.Toast.SuccessDuration)
	s.Assert().Equal(ToastPosition("top"), cfg.Toast.Position)
	s.Assert().Equal(StorageMemory, cfg.Storage.Driver)
	s.Assert().Equal(10000, cfg.Storage.FormCapacity)
	s.Assert().Equal(3*time.Second, cfg.SplashDelay)
	s.Assert().False(cfg.UsesPostgres())
}

func (s *OnboardingConfigTestSuite) TestLoadOnboarding_WithEnvironmentVariables() {
	isolateEnv(s.T(), map[string]string{
		"VALIDATION_PHONE_DIGITS":        "10",
		"VALIDATION_PASSWORD_MIN_LENGTH": "12",
		"I18N_DEFAULT_LOCALE":            "en",
		"TOAST_ERROR_DURATION":           "5s",
		"TOAST_SUCCESS_DURATION":         "1500ms",
		"TOAST_POSITION":                 "Bottom",
		"STORAGE_DRIVER":                 "POSTGRES",
		"STORAGE_FORM_CAPACITY":          "50",
		"SPLASH_DELAY":                   "0s",
	})

	cfg, err := LoadOnboarding()

	s.Require().NoError(err)
	s.Assert().Equal(10, cfg.Validation.PhoneDigits)
	s.Assert().Equal(12, cfg.Validation.PasswordMinLength)
	s.Assert().Equal("en", cfg.I18n.DefaultLocale)
	s.Assert().Equal(5*time.Second, cfg.Toast.ErrorDuration)
	s.Assert().Equal(1500*time.Millisecond, cfg.Toast.SuccessDuration)
	s.Assert().Equal(ToastPosition("bottom"), cfg.Toast.Position)
	s.Assert().Equal(StoragePostgres, cfg.Storage.Driver)
	s.Assert().Equal(50, cfg.Storage.FormCapacity)
	s.Assert().Equal(time.Duration(0), cfg.SplashDelay)
	s.Assert().True(cfg.UsesPostgres())
}

func (s *OnboardingConfigTestSuite) TestLoadOnboarding_InvalidValues() {
	tests := []struct {
		name    string
		envVars map[string]string
		errText string
	}{
		{"unknown_driver", map[string]string{"STORAGE_DRIVER": "redis"}, "invalid storage driver"},
		{"unknown_position", map[string]string{"TOAST_POSITION": "left"}, "invalid toast position"},
		{"zero_phone_digits", map[string]string{"VALIDATION_PHONE_DIGITS": "0"}, "PhoneDigits"},
		{"huge_password_length", map[string]string{"VALIDATION_PASSWORD_MIN_LENGTH": "500"}, "PasswordMinLength"},
		{"blank_locale", map[string]string{"I18N_DEFAULT_LOCALE": " "}, "DefaultLocale"},
		{"zero_toast_duration", map[string]string{"TOAST_ERROR_DURATION": "0s"}, "ErrorDuration"},
		{"negative_form_capacity", map[string]string{"STORAGE_FORM_CAPACITY": "-1"}, "FormCapacity"},
		{"negative_splash_delay", map[string]string{"SPLASH_DELAY": "-1s"}, "SplashDelay"},
		{"malformed_locale", map[string]string{"I18N_DEFAULT_LOCALE": "not a tag"}, "DefaultLocale"},
		{"malformed_duration", map[string]string{"SPLASH_DELAY": "soon"}, "SPLASH_DELAY"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			isolateEnv(s.T(), tt.envVars)

			cfg, err := LoadOnboarding()

			s.Require().Error(err)
			s.Assert().Nil(cfg)
			s.Assert().Contains(err.Error(), tt.errText)
		})
	}
}

func TestOnboardingConfigTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingConfigTestSuite))
}
