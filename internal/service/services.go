package service

import (
	"fmt"

	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/internal/crypto"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/store"
)

type Services struct {
	CredentialVerifier CredentialVerifier
	AuthService        AuthService
	ProductService     ProductService
}

func NewServices(storages *store.Storages, hashers *crypto.Hashers, cfg config.App, logger *logger.Logger) (*Services, error) {
	verifier, err := NewCredentialVerifier(storages.AccountDirectory, hashers, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating credential verifier: %w", err)
	}

	return &Services{
		CredentialVerifier: verifier,
		AuthService:        NewAuthService(cfg, logger),
		ProductService:     NewProductService(storages.ProductRepository, logger),
	}, nil
}
