// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header carries a token under a scheme other than "Bearer".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header is present
	// but nothing follows the scheme.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInsufficientRole is returned when an authenticated caller lacks the
	// role a route requires.
	ErrInsufficientRole = errors.New("insufficient role")
)
