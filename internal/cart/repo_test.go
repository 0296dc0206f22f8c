package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	myErr "rocketshoes-cart/internal/types/errors"
	"rocketshoes-cart/internal/types/product"
)

const testStorageKey = "rocketshoes:cart"

func setupTestRepo(t *testing.T) (*RedisCartRepository, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	logger := zaptest.NewLogger(t).Sugar()
	repo := NewRedisCartRepository(rdb, logger, testStorageKey)

	return repo, mr
}

func testItems() []CartItem {
	return []CartItem{
		{
			Product: product.Product{ID: 1, Title: "Tênis de Caminhada Leve", Price: 179.9, Image: "shoe1.jpg"},
			Amount:  2,
		},
		{
			Product: product.Product{ID: 2, Title: "Tênis VR Caminhada", Price: 139.9, Image: "shoe2.jpg"},
			Amount:  1,
		},
	}
}

func TestLoad_EmptySlot(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	// Ключа нет — это пустая корзина, а не ошибка
	items, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoad_MalformedSlot(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	// Битый JSON в слоте тоже трактуется как пустая корзина
	mr.Set(testStorageKey, "{not a json[") // nolint:errcheck

	items, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	ctx := context.Background()
	want := testItems()

	err := repo.Save(ctx, want)
	assert.NoError(t, err)

	// В Redis лежит именно JSON корзины
	raw, err := mr.Get(testStorageKey)
	assert.NoError(t, err)

	var stored []CartItem
	assert.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, want, stored)

	// И повторная загрузка отдаёт то же содержимое в том же порядке
	got, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_RedisDown(t *testing.T) {
	repo, mr := setupTestRepo(t)
	mr.Close()

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, myErr.ErrStorageInternal))
}

func TestSave_RedisDown(t *testing.T) {
	repo, mr := setupTestRepo(t)
	mr.Close()

	err := repo.Save(context.Background(), testItems())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, myErr.ErrStorageInternal))
}
