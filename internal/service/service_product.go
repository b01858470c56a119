package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/store"
	"github.com/MKhiriev/go-member-auth/models"
)

type productService struct {
	products store.ProductRepository
	logger   *logger.Logger
}

func NewProductService(products store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		products: products,
		logger:   logger,
	}
}

func (p *productService) FindAll(ctx context.Context) ([]models.Product, error) {
	products, err := p.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	return products, nil
}

// MainPage assembles the signed-in landing view: who is logged in and what
// is on sale.
func (p *productService) MainPage(ctx context.Context, principal models.Principal) (models.MainPage, error) {
	products, err := p.FindAll(ctx)
	if err != nil {
		return models.MainPage{}, err
	}

	return models.MainPage{Username: principal.LoginName, Products: products}, nil
}
