package main

import (
	"context"
	"log"
	"net/http"

	"foodexpress-storefront/config"
	httpapi "foodexpress-storefront/internal/api/http"
	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/service"
	"foodexpress-storefront/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	rdb := config.MustInitRedis(cfg.RedisAddr)
	store := storage.NewRedisStore(rdb, cfg.StorePrefix)

	client := backend.NewClient(cfg.BackendURL, &http.Client{}, store)
	catalog := service.NewCatalogService(client)
	sessions := service.NewSessionService(store, client, catalog, service.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	client.OnUnauthorized(func() {
		log.Println("[backend] got 401, forcing logout")
		if err := sessions.Logout(context.Background()); err != nil {
			log.Printf("[backend] forced logout failed: %v", err)
		}
	})

	ctx := context.Background()
	cart := service.NewCartService(ctx, store)

	var publisher service.EventPublisher
	if cfg.KafkaBroker != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBroker, cfg.EventsTopic))
	}
	orders := service.NewOrderService(client, cart, publisher, service.DefaultQRGenerator{
		BaseURL: "http://localhost" + cfg.HTTPAddr,
	})

	// No route is evaluated before the session finishes hydrating.
	sessions.Initialize(ctx)
	if err := catalog.Refresh(ctx); err != nil {
		log.Printf("WARNING: initial catalog load failed: %v", err)
	}
	sessions.StartWatch(ctx)

	handler := httpapi.NewHandler(sessions, cart, catalog, orders, client)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}
