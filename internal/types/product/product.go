package product

// Product товар из внешнего каталога, с точки зрения корзины read-only
type Product struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Stock запись об остатках товара на складе
type Stock struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}
