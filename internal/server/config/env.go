package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed variables leave the current value untouched.
//
// Recognized variables:
//
//	SERVER_ADDRESS               HTTP bind address
//	DATABASE_URL                 PostgreSQL DSN
//	SECRET_KEY                   JWT HMAC secret
//	ALGORITHM                    JWT signing method (HS256/HS384/HS512)
//	ACCESS_TOKEN_EXPIRE_MINUTES  access token validity, minutes
//	BCRYPT_COST                  bcrypt work factor
//	LOG_LEVEL                    debug/info/warn/error
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ALGORITHM"); ok {
		config.SigningAlgorithm = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = v
	}
}
