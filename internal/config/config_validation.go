// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/project-elevate/models"
	"golang.org/x/crypto/bcrypt"
)

// Default values filled in by [StructuredConfig.applyDefaults].
const (
	DefaultTokenIssuer    = "project-elevate"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultHTTPAddress    = "localhost:5001"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "sqlite://project-elevate.db"
	DefaultAdapterAddress = "http://localhost:5001"
	DefaultVersion        = "1.0.0"
	DefaultLogLevel       = "info"

	DefaultBootstrapEmail    = "jevans@impactnetworking.com"
	DefaultBootstrapPassword = "12345"
	DefaultBootstrapName     = "John Evans"
	DefaultBootstrapRole     = string(models.RoleManager)
)

// applyDefaults fills every zero field that has a sensible default.
//
// An empty TokenSignKey outside production is replaced by
// [DevelopmentTokenSignKey] and recorded, so the caller can warn about it.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.TokenSignKey == "" && !cfg.IsProduction() {
		cfg.App.TokenSignKey = DevelopmentTokenSignKey
		cfg.devSignKey = true
	}

	if cfg.App.Bootstrap.Only {
		cfg.App.Bootstrap.Enabled = true
	}
	if cfg.App.Bootstrap.Email == "" {
		cfg.App.Bootstrap.Email = DefaultBootstrapEmail
	}
	if cfg.App.Bootstrap.Password == "" {
		cfg.App.Bootstrap.Password = DefaultBootstrapPassword
	}
	if cfg.App.Bootstrap.Name == "" {
		cfg.App.Bootstrap.Name = DefaultBootstrapName
	}
	if cfg.App.Bootstrap.Role == "" {
		cfg.App.Bootstrap.Role = DefaultBootstrapRole
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required in production", ErrInvalidAppConfigs)
	}
	if cfg.IsProduction() && cfg.App.TokenSignKey == DevelopmentTokenSignKey {
		return fmt.Errorf("%w: development sign key is not allowed in production", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.App.Bootstrap.Enabled {
		if !models.Role(cfg.App.Bootstrap.Role).IsValid() {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidBootstrapConfigs, cfg.App.Bootstrap.Role)
		}
		if !strings.Contains(cfg.App.Bootstrap.Email, "@") {
			return fmt.Errorf("%w: malformed email", ErrInvalidBootstrapConfigs)
		}
		if cfg.IsProduction() && strings.TrimSpace(cfg.App.Bootstrap.Password) == DefaultBootstrapPassword {
			return fmt.Errorf("%w: default bootstrap password is not allowed in production", ErrInvalidBootstrapConfigs)
		}
	}

	dsn := cfg.Storage.DB.DSN
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") &&
		!strings.HasPrefix(dsn, "sqlite://") {
		return fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
