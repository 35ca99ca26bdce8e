// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Project Elevate server handlers and the command-line client.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgAPIBanner is returned by GET /.
	MsgAPIBanner = "Project Elevate API"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgCredentialsRequired is returned by login when the email or the
	// password is missing or blank.
	MsgCredentialsRequired = "Email and password are required"

	// MsgInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAccessDenied is returned when a protected route is called without an
	// Authorization header.
	MsgAccessDenied = "Access denied"

	// MsgInvalidToken is returned when the bearer token is malformed,
	// expired or signed with another key.
	MsgInvalidToken = "Invalid token"

	// MsgInsufficientRole is returned when the caller's role may not use
	// the route.
	MsgInsufficientRole = "Insufficient permissions"

	// MsgInvalidUserData is returned when a new account fails validation.
	MsgInvalidUserData = "Valid email, password and role are required"

	// MsgEmailAlreadyRegistered is returned when a new account reuses an
	// existing email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgErrorFetchingAssessments is returned when listing assessments fails.
	MsgErrorFetchingAssessments = "Error fetching assessments"

	// MsgServerError is returned for any other server-side failure. Details
	// are logged, never sent.
	MsgServerError = "Server error"
)
