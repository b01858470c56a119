// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the member
// authentication server.
//
// [ServerAdapter] hides the protocol from the terminal client. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can branch with [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-member-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the member
// authentication server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a login.
	Token() string

	// Login submits credentials. On success it stores the issued bearer
	// token and returns the principal the server verified.
	Login(ctx context.Context, credentials models.Credentials) (models.Principal, error)

	// Me returns the principal the stored token was issued for.
	Me(ctx context.Context) (models.Principal, error)

	// MainPage fetches the signed-in landing view.
	MainPage(ctx context.Context) (models.MainPage, error)

	// Products lists the catalog.
	Products(ctx context.Context) ([]models.Product, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
