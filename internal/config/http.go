package config

import (
	"net"
	"slices"
	"strconv"
	"time"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080" validate:"gte=0,lte=65535"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"30s" validate:"gte=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s" validate:"gte=0"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"2m" validate:"gte=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

func (c HttpServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type RateLimitConfig struct {
	GlobalRequests int           `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"gt=0"`
	GlobalWindow   time.Duration `envconfig:"GLOBAL_WINDOW" default:"1m" validate:"gt=0"`
	RequestsPerIP  int           `envconfig:"REQUESTS_PER_IP" default:"100" validate:"gt=0"`
	IPWindow       time.Duration `envconfig:"IP_WINDOW" default:"1m" validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Accept-Language,Authorization,Content-Type,X-CSRF-Token"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:"Content-Language"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400" validate:"gte=0"`
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (c CORSConfig) AllowsAnyOrigin() bool {
	return slices.Contains(c.AllowedOrigins, "*")
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
