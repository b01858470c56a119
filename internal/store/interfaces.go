package store

import (
	"context"

	"github.com/MKhiriev/go-member-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountDirectory looks up member accounts by login name.
type AccountDirectory interface {
	// FindByLoginName returns the account whose login name equals loginName
	// exactly (case-sensitive, no normalization), with its authorities loaded.
	// Returns [ErrAccountNotFound] when there is no such account.
	FindByLoginName(ctx context.Context, loginName string) (models.Account, error)
}

// ProductRepository reads the product catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
