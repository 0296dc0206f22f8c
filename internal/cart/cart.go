package cart

import (
	"context"

	"rocketshoes-cart/internal/types/product"
)

// CartItem позиция корзины: товар плюс нужное покупателю количество.
// Инвариант: на один id товара — не больше одной позиции, Amount >= 1.
type CartItem struct {
	product.Product
	Amount int `json:"amount"`
}

// CartRepo интерфейс хранилища корзины: один именованный слот с сериализованной корзиной
//
//go:generate mockgen -source=cart.go -destination=../mocks/mock_cart.go -package=mocks
type CartRepo interface {
	// Load читает сохранённую корзину; пустой или битый слот — это пустая корзина, а не ошибка
	Load(ctx context.Context) ([]CartItem, error)
	// Save перезаписывает слот новым содержимым корзины
	Save(ctx context.Context, items []CartItem) error
}

// CartService фасад корзины, который потребляет слой представления
type CartService interface {
	// Cart отдаёт снимок текущего содержимого корзины
	Cart() []CartItem
	// ItemsAmount отдаёт производную мапу id товара -> количество в корзине
	ItemsAmount() map[int]int
	// AddProduct добавляет товар в корзину (или увеличивает количество на 1)
	AddProduct(ctx context.Context, productID int) error
	// RemoveProduct убирает позицию товара из корзины целиком
	RemoveProduct(ctx context.Context, productID int) error
	// UpdateProductAmount выставляет позиции ровно указанное количество
	UpdateProductAmount(ctx context.Context, productID int, amount int) error
}
