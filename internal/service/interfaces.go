package service

import (
	"context"

	"github.com/MKhiriev/go-member-auth/models"
)

// CredentialVerifier checks a login name / raw secret pair against the
// account directory.
type CredentialVerifier interface {
	// Authenticate returns the verified principal, or [ErrBadCredentials] for
	// an unknown login and a wrong secret alike. Infrastructure faults are
	// reported separately (see [ErrAuthenticationUnavailable]).
	Authenticate(ctx context.Context, loginName, rawSecret string) (models.Principal, error)
}

// AuthService issues and validates bearer tokens for verified principals.
type AuthService interface {
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

// ProductService serves the product catalog.
type ProductService interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	MainPage(ctx context.Context, principal models.Principal) (models.MainPage, error)
}
