package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"rocketshoes-cart/internal/catalog"
	"rocketshoes-cart/internal/stock"
	myErr "rocketshoes-cart/internal/types/errors"
)

// Service хранит корзину в памяти и проводит каждую мутацию по схеме
// проверка остатков -> новая последовательность позиций -> запись в хранилище -> коммит.
// Мутации сериализуются мьютексом, два параллельных запроса не перетирают друг друга.
type Service struct {
	mu    sync.Mutex
	items []CartItem

	Repo    CartRepo
	Catalog catalog.CatalogClient
	Stock   stock.StockVerifier
	Logger  *zap.SugaredLogger
}

// NewCartService создаёт сервис и инициализирует корзину из хранилища.
// Если хранилище недоступно, стартуем с пустой корзиной и пишем warn.
func NewCartService(
	ctx context.Context,
	repo CartRepo,
	catalogClient catalog.CatalogClient,
	verifier stock.StockVerifier,
	logger *zap.SugaredLogger,
) *Service {
	items, err := repo.Load(ctx)
	if err != nil {
		logger.Warnf("Не удалось загрузить сохранённую корзину, начинаем с пустой: %v", err)
		items = []CartItem{}
	}

	return &Service{
		items:   items,
		Repo:    repo,
		Catalog: catalogClient,
		Stock:   verifier,
		Logger:  logger,
	}
}

// Cart отдаёт снимок текущего содержимого корзины
func (s *Service) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]CartItem, len(s.items))
	copy(snapshot, s.items)

	return snapshot
}

// ItemsAmount отдаёт производную мапу id товара -> суммарное количество в корзине.
// Пересчитывается по позициям на каждый вызов, отдельно нигде не хранится.
func (s *Service) ItemsAmount() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	amounts := make(map[int]int, len(s.items))
	for _, item := range s.items {
		amounts[item.ID] += item.Amount
	}

	return amounts
}

// AddProduct добавляет товар в корзину.
// Новый товар появляется с количеством 1, уже лежащий — увеличивается на 1,
// и в обоих случаях только после подтверждения остатков складом.
func (s *Service) AddProduct(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newItems []CartItem

	idx := s.indexOf(productID)
	if idx < 0 {
		hasStock, err := s.Stock.CheckAvailability(ctx, productID, 1)
		if err != nil {
			s.Logger.Errorf("Ошибка проверки остатков товара %d: %v", productID, err)
			return myErr.ErrAddProduct
		}
		if !hasStock {
			return myErr.ErrInsufficientStock
		}

		p, err := s.Catalog.GetProduct(ctx, productID)
		if err != nil {
			s.Logger.Errorf("Ошибка получения товара %d из каталога: %v", productID, err)
			return myErr.ErrAddProduct
		}

		newItems = append(s.copyItems(), CartItem{Product: *p, Amount: 1})
	} else {
		hasStock, err := s.Stock.CheckAvailability(ctx, productID, s.items[idx].Amount+1)
		if err != nil {
			s.Logger.Errorf("Ошибка проверки остатков товара %d: %v", productID, err)
			return myErr.ErrAddProduct
		}
		if !hasStock {
			return myErr.ErrInsufficientStock
		}

		newItems = s.copyItems()
		newItems[idx].Amount++
	}

	if err := s.Repo.Save(ctx, newItems); err != nil {
		// Логируется внутри репозитория
		return myErr.ErrAddProduct
	}
	s.items = newItems

	return nil
}

// RemoveProduct убирает позицию товара из корзины целиком.
// Остатки не проверяются: это чисто локальная операция.
func (s *Service) RemoveProduct(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(productID) < 0 {
		return myErr.ErrProductNotInCart
	}

	newItems := make([]CartItem, 0, len(s.items)-1)
	for _, item := range s.items {
		if item.ID != productID {
			newItems = append(newItems, item)
		}
	}

	if err := s.Repo.Save(ctx, newItems); err != nil {
		return myErr.ErrRemoveProduct
	}
	s.items = newItems

	return nil
}

// UpdateProductAmount выставляет позиции ровно amount единиц (не прибавляет).
// amount <= 0 молча игнорируется. Если товара в корзине нет, замена по
// последовательности ничего не меняет, но корзина всё равно перезаписывается —
// поведение сохранено как есть, см. DESIGN.md.
func (s *Service) UpdateProductAmount(ctx context.Context, productID int, amount int) error {
	if amount <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hasStock, err := s.Stock.CheckAvailability(ctx, productID, amount)
	if err != nil {
		s.Logger.Errorf("Ошибка проверки остатков товара %d: %v", productID, err)
		return myErr.ErrUpdateAmount
	}
	if !hasStock {
		return myErr.ErrInsufficientStock
	}

	newItems := s.copyItems()
	for i := range newItems {
		if newItems[i].ID == productID {
			newItems[i].Amount = amount
		}
	}

	if err := s.Repo.Save(ctx, newItems); err != nil {
		return myErr.ErrUpdateAmount
	}
	s.items = newItems

	return nil
}

func (s *Service) indexOf(productID int) int {
	for i, item := range s.items {
		if item.ID == productID {
			return i
		}
	}

	return -1
}

func (s *Service) copyItems() []CartItem {
	items := make([]CartItem, len(s.items))
	copy(items, s.items)

	return items
}
