package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTIssuer is the issuer claim used when JWT_ISSUER is unset.
const DefaultJWTIssuer = "ats-scorer"

// JWTConfig holds configuration for validating bearer tokens on the
// recompute endpoint, and for minting them in tests and tooling.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// NewJWTConfig reads JWT_SECRET (required), JWT_EXPIRATION_HOURS (default 24)
// and JWT_ISSUER from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	v := viper.New()
	v.SetDefault("expiration_hours", "24")
	v.SetDefault("issuer", DefaultJWTIssuer)
	for key, env := range map[string]string{
		"secret":           "JWT_SECRET",
		"expiration_hours": "JWT_EXPIRATION_HOURS",
		"issuer":           "JWT_ISSUER",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	secret := v.GetString("secret")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	// non-numeric values are rejected, not read as zero
	hours, err := strconv.Atoi(v.GetString("expiration_hours"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{
		Secret:     secret,
		Expiration: time.Duration(hours) * time.Hour,
		Issuer:     v.GetString("issuer"),
	}, nil
}
