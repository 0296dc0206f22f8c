package catalog

import (
	"context"

	"rocketshoes-cart/internal/types/product"
)

// CatalogClient интерфейс для работы с внешним сервисом каталога и склада
//
//go:generate mockgen -source=catalog.go -destination=../mocks/mock_catalog_client.go -package=mocks
type CatalogClient interface {
	// GetProduct получает полные данные товара по его id
	GetProduct(ctx context.Context, productID int) (*product.Product, error)
	// GetStock получает текущий остаток товара на складе
	GetStock(ctx context.Context, productID int) (*product.Stock, error)
	// ListProducts получает весь список товаров каталога
	ListProducts(ctx context.Context) ([]product.Product, error)
}
