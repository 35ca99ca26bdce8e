package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing sign key in production or an unknown environment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty or unsupported database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBootstrapConfigs indicates incomplete bootstrap account settings.
	ErrInvalidBootstrapConfigs = errors.New("invalid bootstrap configuration")
)
