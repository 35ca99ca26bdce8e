// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side view of the Project Elevate API.
//
// The primary abstraction is [ServerAdapter], which hides the transport from
// the command-line client. [NewHTTPServerAdapter] is the REST implementation.
//
// Non-2xx responses are mapped to the sentinel values in errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/project-elevate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// ListAssessments fetches the assessments of the logged-in user.
	ListAssessments(ctx context.Context) ([]models.Assessment, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
