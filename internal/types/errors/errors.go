package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	// ErrInsufficientStock запрошенное количество превышает остаток на складе
	ErrInsufficientStock = errors.New("requested amount is out of stock")
	// ErrProductNotInCart удаление товара, которого нет в корзине
	ErrProductNotInCart = errors.New("product is not in the cart")
	// ErrAddProduct любая прочая ошибка при добавлении товара
	ErrAddProduct = errors.New("failed to add product")
	// ErrRemoveProduct любая прочая ошибка при удалении товара
	ErrRemoveProduct = errors.New("failed to remove product")
	// ErrUpdateAmount любая прочая ошибка при изменении количества товара
	ErrUpdateAmount = errors.New("failed to update product amount")

	ErrStorageInternal = errors.New("cart storage internal error")
	ErrCatalogInternal = errors.New("catalog service error")

	ErrBadID              = errors.New("bad id")
	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
