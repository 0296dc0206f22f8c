package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"rocketshoes-cart/internal/catalog"
	myErr "rocketshoes-cart/internal/types/errors"
)

// CatalogHandler прокси списка товаров для витрины
type CatalogHandler struct {
	Logger  *zap.SugaredLogger
	Catalog catalog.CatalogClient
}

func NewCatalogHandler(log *zap.SugaredLogger, catalogClient catalog.CatalogClient) *CatalogHandler {
	return &CatalogHandler{
		Logger:  log,
		Catalog: catalogClient,
	}
}

// ListProducts - GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListProducts(r.Context())
	if err != nil {
		myErr.SendErrorTo(w, myErr.ErrCatalogInternal, http.StatusBadGateway, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(products); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
		return
	}
}
