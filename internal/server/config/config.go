// Package config handles configuration for the server component,
// including defaults, environment variables, JSON overlay, and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the VetLig server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - SecretKey: HMAC secret for signing JWTs. Required.
//   - SigningAlgorithm: JWT signing method name (HS256, HS384 or HS512).
//   - AccessTokenValidityDuration: access token lifetime.
//   - BcryptCost: work factor for password hashing; 0 means the library
//     default.
//   - LogLevel: minimum level emitted by the JSON logger.
type Config struct {
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	SecretKey                   string
	SigningAlgorithm            string
	AccessTokenValidityDuration time.Duration
	BcryptCost                  int
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults. DatabaseDSN and
// SecretKey deliberately have none: the process must not start without them.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.SigningAlgorithm = "HS256"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.BcryptCost = 0
	c.LogLevel = "info"
}

var supportedSigningAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// Validate checks the startup invariants: a database DSN, a non-empty
// signing secret, a supported HMAC algorithm and a positive token lifetime.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("config: database DSN is required")
	}
	if c.SecretKey == "" {
		return errors.New("config: token signing secret is required")
	}
	if _, ok := supportedSigningAlgorithms[c.SigningAlgorithm]; !ok {
		return fmt.Errorf("config: unsupported signing algorithm %q", c.SigningAlgorithm)
	}
	if c.AccessTokenValidityDuration <= 0 {
		return errors.New("config: access token validity must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, from an optional JSON file and finally from
// command-line flags. The result is validated; an error here is fatal for
// the caller.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
