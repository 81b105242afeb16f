package server

import (
	"fmt"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded import documents.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
	// ReadTimeoutSeconds bounds reading a request, upload included.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"300"`
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 64 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// ReadTimeout returns the request read timeout.
func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// Address returns the listen address.
func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}
