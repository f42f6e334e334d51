package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"onboarding/internal/platform/logger"
)

// envKeys lists every variable the loaders may read, including the
// unprefixed fallbacks envconfig consults for nested fields.
var envKeys = []string{
	"ENV", "LOGGER_LEVEL", "LOGGER_FORMAT", "LEVEL", "FORMAT",
	"HTTP_SERVER_HOST", "HTTP_SERVER_PORT", "HTTP_SERVER_READ_TIMEOUT", "HTTP_SERVER_WRITE_TIMEOUT",
	"HTTP_SERVER_IDLE_TIMEOUT", "HTTP_SERVER_SHUTDOWN_TIMEOUT",
	"HOST", "PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"RATE_LIMIT_GLOBAL_REQUESTS", "RATE_LIMIT_GLOBAL_WINDOW", "RATE_LIMIT_REQUESTS_PER_IP", "RATE_LIMIT_IP_WINDOW",
	"GLOBAL_REQUESTS", "GLOBAL_WINDOW", "REQUESTS_PER_IP", "IP_WINDOW",
	"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS", "CORS_EXPOSED_HEADERS",
	"CORS_ALLOW_CREDENTIALS", "CORS_MAX_AGE",
	"ALLOWED_ORIGINS", "ALLOWED_METHODS", "ALLOWED_HEADERS", "EXPOSED_HEADERS", "ALLOW_CREDENTIALS", "MAX_AGE",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_SSL_MODE",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS", "POSTGRES_CONN_MAX_LIFETIME",
	"POSTGRES_CONN_MAX_IDLE_TIME", "POSTGRES_CONNECT_TIMEOUT",
	"POSTGRES_POSTGRES_HOST", "POSTGRES_POSTGRES_PORT", "POSTGRES_POSTGRES_USER",
	"USER", "PASSWORD", "DB", "SSL_MODE", "MAX_OPEN_CONNS", "MAX_IDLE_CONNS",
	"CONN_MAX_LIFETIME", "CONN_MAX_IDLE_TIME", "CONNECT_TIMEOUT",
	"VALIDATION_PHONE_DIGITS", "VALIDATION_PASSWORD_MIN_LENGTH", "PHONE_DIGITS", "PASSWORD_MIN_LENGTH",
	"I18N_DEFAULT_LOCALE", "DEFAULT_LOCALE",
	"TOAST_ERROR_DURATION", "TOAST_SUCCESS_DURATION", "TOAST_POSITION",
	"ERROR_DURATION", "SUCCESS_DURATION", "POSITION",
	"STORAGE_DRIVER", "STORAGE_FORM_CAPACITY", "DRIVER", "FORM_CAPACITY",
	"SPLASH_DELAY",
}

// isolateEnv unsets every loader variable, then applies vars. t.Setenv
// restores the previous values when the test ends.
func isolateEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

type BaseConfigTestSuite struct {
	suite.Suite
}

func (s *BaseConfigTestSuite) SetupTest() {
	isolateEnv(s.T(), nil)
}

func (s *BaseConfigTestSuite) TestLoadBase_Defaults() {
	cfg, err := LoadBase()

	s.Require().NoError(err)
	s.Assert().Equal(EnvDevelopment, cfg.Environment)
	s.Assert().Equal(logger.LevelInfo, cfg.Logger.Level)
	s.Assert().Equal(logger.FormatJSON, cfg.Logger.Format)
	s.Assert().False(cfg.IsProduction())
}

func (s *BaseConfigTestSuite) TestLoadBase_FromEnvironment() {
	isolateEnv(s.T(), map[string]string{
		"ENV":           EnvProduction,
		"LOGGER_LEVEL":  "warning",
		"LOGGER_FORMAT": "console",
	})

	cfg, err := LoadBase()

	s.Require().NoError(err)
	s.Assert().True(cfg.IsProduction())
	s.Assert().Equal(logger.LevelWarn, cfg.Logger.Level)
	s.Assert().Equal(logger.FormatText, cfg.Logger.Format)
}

func (s *BaseConfigTestSuite) TestLoadBase_Rejects() {
	tests := []struct {
		name    string
		vars    map[string]string
		errText string
	}{
		{"unknown environment", map[string]string{"ENV": "local"}, "invalid configuration"},
		{"unknown level", map[string]string{"LOGGER_LEVEL": "trace"}, "invalid log level"},
		{"unknown format", map[string]string{"LOGGER_FORMAT": "xml"}, "invalid log format"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			isolateEnv(s.T(), tt.vars)

			cfg, err := LoadBase()

			s.Assert().Nil(cfg)
			s.Assert().ErrorContains(err, tt.errText)
		})
	}
}

func (s *BaseConfigTestSuite) TestIsProduction_CaseInsensitive() {
	s.Assert().True((&BaseConfig{Environment: "PRODUCTION"}).IsProduction())
	s.Assert().False((&BaseConfig{Environment: EnvStaging}).IsProduction())
	s.Assert().False((&BaseConfig{}).IsProduction())
}

func (s *BaseConfigTestSuite) TestLoadDotEnv() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("STORAGE_DRIVER=postgres\nTOAST_POSITION=middle\n"), 0o600))
	s.T().Setenv("TOAST_POSITION", "bottom")

	s.Require().NoError(LoadDotEnv(path))

	cfg, err := LoadOnboarding()
	s.Require().NoError(err)
	s.Assert().Equal(StoragePostgres, cfg.Storage.Driver)
	s.Assert().Equal(ToastPosition("bottom"), cfg.Toast.Position, "process environment wins over .env")
}

func (s *BaseConfigTestSuite) TestLoadDotEnv_MissingFile() {
	s.Assert().NoError(LoadDotEnv(filepath.Join(s.T().TempDir(), "absent.env")))
}

func (s *BaseConfigTestSuite) TestLoadDotEnv_Malformed() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("NOT A VALID LINE'\n"), 0o600))

	s.Assert().Error(LoadDotEnv(path))
}

func TestBaseConfigTestSuite(t *testing.T) {
	suite.Run(t, new(BaseConfigTestSuite))
}
