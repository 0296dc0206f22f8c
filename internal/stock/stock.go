package stock

import "context"

// StockVerifier интерфейс проверки доступности товара на складе
//
//go:generate mockgen -source=stock.go -destination=../mocks/mock_stock_verifier.go -package=mocks
type StockVerifier interface {
	// CheckAvailability возвращает true, если на складе есть не меньше amount единиц товара
	CheckAvailability(ctx context.Context, productID int, amount int) (bool, error)
}
