package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	myErr "rocketshoes-cart/internal/types/errors"
	"rocketshoes-cart/internal/types/product"
)

// HTTPCatalogClient клиент каталога поверх его HTTP API.
// Никакого кеширования и ретраев: один запрос — один ответ.
type HTTPCatalogClient struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.SugaredLogger
}

func NewHTTPCatalogClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *HTTPCatalogClient {
	return &HTTPCatalogClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// GetProduct получает полные данные товара по его id
func (c *HTTPCatalogClient) GetProduct(ctx context.Context, productID int) (*product.Product, error) {
	var p product.Product
	url := fmt.Sprintf("%s/products/%d", c.BaseURL, productID)
	if err := c.getJSON(ctx, url, &p); err != nil {
		c.Logger.Errorf("Ошибка при получении товара %d: %v", productID, err)
		return nil, err
	}

	return &p, nil
}

// GetStock получает текущий остаток товара на складе
func (c *HTTPCatalogClient) GetStock(ctx context.Context, productID int) (*product.Stock, error) {
	var s product.Stock
	url := fmt.Sprintf("%s/stock/%d", c.BaseURL, productID)
	if err := c.getJSON(ctx, url, &s); err != nil {
		c.Logger.Errorf("Ошибка при получении остатков товара %d: %v", productID, err)
		return nil, err
	}

	return &s, nil
}

// ListProducts получает весь список товаров каталога
func (c *HTTPCatalogClient) ListProducts(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	url := fmt.Sprintf("%s/products", c.BaseURL)
	if err := c.getJSON(ctx, url, &products); err != nil {
		c.Logger.Errorf("Ошибка при получении списка товаров: %v", err)
		return nil, err
	}

	return products, nil
}

func (c *HTTPCatalogClient) getJSON(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d from %s", myErr.ErrCatalogInternal, resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", myErr.ErrCatalogInternal, err)
	}

	return nil
}
