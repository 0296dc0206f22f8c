package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"rocketshoes-cart/internal/cart"
	"rocketshoes-cart/internal/kafka"
	"rocketshoes-cart/internal/middleware"
	myErr "rocketshoes-cart/internal/types/errors"
)

// CartHandler ручки фасада корзины
type CartHandler struct {
	Logger        *zap.SugaredLogger
	Service       cart.CartService
	EventProducer kafka.EventProducer
}

// NewCartHandler конструктор
func NewCartHandler(
	log *zap.SugaredLogger,
	service cart.CartService,
	ep kafka.EventProducer,
) *CartHandler {
	return &CartHandler{
		Logger:        log,
		Service:       service,
		EventProducer: ep,
	}
}

type updateAmountRequest struct {
	Amount int `json:"amount"`
}

// GetCart - GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.Service.Cart()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
		return
	}
}

// GetItemsAmount - GET /cart/amounts
func (h *CartHandler) GetItemsAmount(w http.ResponseWriter, r *http.Request) {
	amounts := h.Service.ItemsAmount()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(amounts); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
		return
	}
}

// AddToCart - POST /cart/item/{productID}
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDFrom(w, r)
	if !ok {
		return
	}

	if err := h.Service.AddProduct(r.Context(), productID); err != nil {
		if errors.Is(err, myErr.ErrInsufficientStock) {
			middleware.ObserveCartOperation("add", "out_of_stock")
			myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
			return
		}

		middleware.ObserveCartOperation("add", "error")
		myErr.SendErrorTo(w, myErr.ErrAddProduct, http.StatusInternalServerError, h.Logger)
		return
	}

	middleware.ObserveCartOperation("add", "success")
	h.sendEvent(r, kafka.EventTypeAddToCart, productID, 0)

	h.writeCart(w, http.StatusCreated)
	h.Logger.Infof("added product %d to shopping cart", productID)
}

// RemoveFromCart - DELETE /cart/item/{productID}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDFrom(w, r)
	if !ok {
		return
	}

	if err := h.Service.RemoveProduct(r.Context(), productID); err != nil {
		if errors.Is(err, myErr.ErrProductNotInCart) {
			middleware.ObserveCartOperation("remove", "not_in_cart")
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}

		middleware.ObserveCartOperation("remove", "error")
		myErr.SendErrorTo(w, myErr.ErrRemoveProduct, http.StatusInternalServerError, h.Logger)
		return
	}

	middleware.ObserveCartOperation("remove", "success")
	h.sendEvent(r, kafka.EventTypeRemoveFromCart, productID, 0)

	h.writeCart(w, http.StatusOK)
	h.Logger.Infof("removed product %d from shopping cart", productID)
}

// UpdateAmount - PUT /cart/item/{productID}
// Принимает в теле запроса JSON вида {"amount": 3}
func (h *CartHandler) UpdateAmount(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDFrom(w, r)
	if !ok {
		return
	}

	var req updateAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.Service.UpdateProductAmount(r.Context(), productID, req.Amount); err != nil {
		if errors.Is(err, myErr.ErrInsufficientStock) {
			middleware.ObserveCartOperation("update", "out_of_stock")
			myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
			return
		}

		middleware.ObserveCartOperation("update", "error")
		myErr.SendErrorTo(w, myErr.ErrUpdateAmount, http.StatusInternalServerError, h.Logger)
		return
	}

	middleware.ObserveCartOperation("update", "success")
	h.sendEvent(r, kafka.EventTypeUpdateAmount, productID, req.Amount)

	h.writeCart(w, http.StatusOK)
	h.Logger.Infof("set product %d amount to %d", productID, req.Amount)
}

func (h *CartHandler) productIDFrom(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)

	productID, err := strconv.Atoi(vars["productID"])
	if err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return 0, false
	}

	return productID, true
}

func (h *CartHandler) writeCart(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(h.Service.Cart()); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// sendEvent отправляет событие мутации в Kafka.
// Ошибка отправки не роняет сам запрос, только логируется.
func (h *CartHandler) sendEvent(r *http.Request, eventType kafka.EventType, productID int, amount int) {
	event := kafka.Event{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      eventType,
		Amount:    amount,
		Timestamp: time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send %s event for product %d: %v", eventType, productID, err)
	}
}
