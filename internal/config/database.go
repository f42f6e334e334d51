package config

import (
	"fmt"
	"strings"
	"time"

	"onboarding/internal/platform/database/postgres"
)

type DatabaseConfig struct {
	BaseConfig
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

// PostgresConfig spells out HOST, PORT and USER in full because envconfig
// falls back to the bare tag name, and a shell's $USER or a platform's $PORT
// must not leak into the database settings.
type PostgresConfig struct {
	Host            string        `envconfig:"POSTGRES_HOST" default:"localhost" validate:"required"`
	Port            int           `envconfig:"POSTGRES_PORT" default:"5432" validate:"gte=1,lte=65535"`
	User            string        `envconfig:"POSTGRES_USER" default:"postgres" validate:"required"`
	Password        string        `envconfig:"PASSWORD" default:""`
	Database        string        `envconfig:"DB" default:"onboarding" validate:"required"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"5s" validate:"gt=0"`
}

var _ postgres.Config = (*PostgresConfig)(nil)

// DSN renders a libpq keyword/value string. Values that are empty or hold
// spaces, quotes or backslashes are single-quoted.
func (c *PostgresConfig) DSN() string {
	pairs := []struct{ key, value string }{
		{"host", c.Host},
		{"port", fmt.Sprint(c.Port)},
		{"user", c.User},
		{"password", c.Password},
		{"dbname", c.Database},
		{"sslmode", c.SSLMode},
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.key + "=" + dsnValue(p.value)
	}
	return strings.Join(parts, " ")
}

func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func (c *PostgresConfig) Pool() postgres.Pool {
	return postgres.Pool{
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	}
}

func (c *PostgresConfig) PingTimeout() time.Duration {
	return c.ConnectTimeout
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
