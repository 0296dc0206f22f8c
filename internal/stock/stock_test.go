package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"rocketshoes-cart/internal/mocks"
	"rocketshoes-cart/internal/stock"
	"rocketshoes-cart/internal/types/product"
)

func TestCheckAvailability(t *testing.T) {
	tests := []struct {
		name        string
		requested   int
		stockAmount int
		stockErr    error
		want        bool
		wantErr     bool
	}{
		{
			name:        "остатка хватает",
			requested:   2,
			stockAmount: 5,
			want:        true,
		},
		{
			name:        "остатка ровно столько, сколько просят",
			requested:   5,
			stockAmount: 5,
			want:        true,
		},
		{
			name:        "остатка не хватает",
			requested:   6,
			stockAmount: 5,
			want:        false,
		},
		{
			name:      "ошибка каталога уходит наверх",
			requested: 1,
			stockErr:  errors.New("connection refused"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalogMock := mocks.NewMockCatalogClient(ctrl)
			if tt.stockErr != nil {
				catalogMock.EXPECT().GetStock(gomock.Any(), 1).Return(nil, tt.stockErr)
			} else {
				catalogMock.EXPECT().GetStock(gomock.Any(), 1).
					Return(&product.Stock{ID: 1, Amount: tt.stockAmount}, nil)
			}

			verifier := stock.NewStockService(catalogMock, zaptest.NewLogger(t).Sugar())

			got, err := verifier.CheckAvailability(context.Background(), 1, tt.requested)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
