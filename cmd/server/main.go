package main

import (
	"context"
	"log"

	"phone-store-backend/catalog"
	"phone-store-backend/config"
	"phone-store-backend/events"
	"phone-store-backend/handlers"
	"phone-store-backend/orders"
	"phone-store-backend/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	log.Printf("Starting Phone Store Backend on port %s", cfg.Port)

	// Set Gin mode based on environment
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the document store. The server still starts when the
	// database is unreachable and serves a degraded status instead.
	var st store.Store = store.Unconfigured{}
	if cfg.DatabaseURL != "" {
		mongoStore, err := store.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Printf("Database unavailable, serving degraded: %v", err)
		} else {
			defer mongoStore.Close(context.Background())
			st = mongoStore
			log.Printf("Connected to database %s", mongoStore.Name())
		}
	} else {
		log.Println("DATABASE_URL not set, serving degraded")
	}

	// Order events are optional: without RabbitMQ the order workflow simply
	// skips publishing.
	var publisher orders.EventPublisher
	if cfg.RabbitMQURL != "" {
		pool, err := events.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
		if err != nil {
			log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer pool.Close()
			publisher = events.NewPublisher(pool, cfg.RabbitMQQueue)
		}
	}

	cat := catalog.New(st)
	orderService := orders.NewService(st, publisher)

	router := handlers.NewRouter(
		handlers.NewSystemHandler(st, cat, cfg.DatabaseURL, cfg.DatabaseName),
		handlers.NewProductHandler(cat),
		handlers.NewOrderHandler(orderService),
	)

	log.Fatal(router.Run(":" + cfg.Port))
}
