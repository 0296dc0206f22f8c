package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	myErr "rocketshoes-cart/internal/types/errors"
)

// RedisCartRepository хранит корзину одним JSON-блобом под фиксированным ключом
type RedisCartRepository struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
	StorageKey  string
}

func NewRedisCartRepository(redisClient *redis.Client, logger *zap.SugaredLogger, storageKey string) *RedisCartRepository {
	return &RedisCartRepository{
		RedisClient: redisClient,
		Logger:      logger,
		StorageKey:  storageKey,
	}
}

// Load читает сохранённую корзину.
// Отсутствующий ключ и нечитаемый JSON трактуются как пустая корзина, а не как ошибка.
func (r *RedisCartRepository) Load(ctx context.Context) ([]CartItem, error) {
	data, err := r.RedisClient.Get(ctx, r.StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []CartItem{}, nil
		}

		r.Logger.Errorf("Ошибка при чтении корзины из Redis: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrStorageInternal, err)
	}

	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		r.Logger.Warnf("Слот корзины %q повреждён, начинаем с пустой корзины: %v", r.StorageKey, err)
		return []CartItem{}, nil
	}
	if items == nil {
		items = []CartItem{}
	}

	return items, nil
}

// Save перезаписывает слот новым содержимым корзины. Без TTL: корзина живёт между сессиями.
func (r *RedisCartRepository) Save(ctx context.Context, items []CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		r.Logger.Errorf("Ошибка при сериализации корзины: %v", err)
		return fmt.Errorf("%w: %v", myErr.ErrStorageInternal, err)
	}

	if err := r.RedisClient.Set(ctx, r.StorageKey, data, 0).Err(); err != nil {
		r.Logger.Errorf("Ошибка при сохранении корзины в Redis: %v", err)
		return fmt.Errorf("%w: %v", myErr.ErrStorageInternal, err)
	}

	return nil
}
