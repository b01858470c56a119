// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-member-auth server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// between the server and the client that matches on it.
package app

const (
	// MsgInvalidLoginPassword is the single body for every rejected login:
	// unknown login, wrong secret and unreadable stored hash alike.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned for failures the caller cannot
	// resolve, such as a hasher misconfiguration or a token signing error.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationUnavailable is returned when the account directory
	// cannot be reached. Retrying later may succeed.
	MsgAuthenticationUnavailable = "authentication temporarily unavailable"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnauthorized is returned when a protected route has no principal.
	MsgUnauthorized = "unauthorized"
)
