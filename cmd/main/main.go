package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rocketshoes-cart/internal/app"
	"rocketshoes-cart/internal/cart"
	"rocketshoes-cart/internal/catalog"
	handlersCart "rocketshoes-cart/internal/handlers/cart"
	handlersCatalog "rocketshoes-cart/internal/handlers/catalog"
	"rocketshoes-cart/internal/kafka"
	"rocketshoes-cart/internal/middleware"
	"rocketshoes-cart/internal/stock"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: "",
		DB:       0, // стандартная БД
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Infof("Failed to get response to ping: %v", err)
	}

	// init catalog client
	catalogClient := catalog.NewHTTPCatalogClient(c.CfgCatalog.BaseURL, c.CfgCatalog.Timeout, logger)

	// init kafka producer
	eventProducer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
	defer func() {
		if err := eventProducer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// init cart: хранилище -> проверка остатков -> сервис
	cartRepository := cart.NewRedisCartRepository(redisClient, logger, c.CartStorageKey)
	stockVerifier := stock.NewStockService(catalogClient, logger)
	cartService := cart.NewCartService(context.Background(), cartRepository, catalogClient, stockVerifier, logger)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// init handlers
	cartHandlers := handlersCart.NewCartHandler(logger, cartService, eventProducer)
	catalogHandlers := handlersCatalog.NewCatalogHandler(logger, catalogClient)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	api.HandleFunc("/cart/amounts", cartHandlers.GetItemsAmount).Methods("GET")
	api.HandleFunc("/cart/item/{productID}", cartHandlers.AddToCart).Methods("POST")
	api.HandleFunc("/cart/item/{productID}", cartHandlers.RemoveFromCart).Methods("DELETE")
	api.HandleFunc("/cart/item/{productID}", cartHandlers.UpdateAmount).Methods("PUT")

	api.HandleFunc("/products", catalogHandlers.ListProducts).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
