package stock

import (
	"context"

	"go.uber.org/zap"

	"rocketshoes-cart/internal/catalog"
)

// StockService проверяет остатки через сервис каталога
type StockService struct {
	Catalog catalog.CatalogClient
	Logger  *zap.SugaredLogger
}

func NewStockService(catalogClient catalog.CatalogClient, logger *zap.SugaredLogger) *StockService {
	return &StockService{
		Catalog: catalogClient,
		Logger:  logger,
	}
}

// CheckAvailability возвращает true, если на складе есть не меньше amount единиц товара.
// Ошибка обращения к каталогу отдаётся наверх как есть, никакого "считаем что есть".
func (s *StockService) CheckAvailability(ctx context.Context, productID int, amount int) (bool, error) {
	stockInfo, err := s.Catalog.GetStock(ctx, productID)
	if err != nil {
		// Логируется внутри клиента каталога
		return false, err
	}

	return stockInfo.Amount >= amount, nil
}
