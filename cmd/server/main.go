package main

import (
	"log"

	"cafepos-be/internal/api"
	"cafepos-be/internal/cart"
	"cafepos-be/internal/catalog"
	"cafepos-be/internal/config"
	"cafepos-be/internal/db"
	"cafepos-be/internal/history"
	"cafepos-be/internal/logger"
	"cafepos-be/internal/middleware"
	"cafepos-be/internal/order"
	"cafepos-be/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	defer cleanup()

	orderRepo := order.NewRepository(store)

	srv := api.NewServer(
		catalog.NewService(catalog.NewRepository(store)),
		cart.New(),
		order.NewService(orderRepo),
		history.NewService(orderRepo, cfg.ExportDir),
	)

	limiter := middleware.NewRateLimiter(
		middleware.LimitGeneral, middleware.BurstGeneral,
	)
	router := srv.Router(limiter.Middleware())

	log.Printf("🚀 POS server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}

func buildStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverRedis:
		rs := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		return rs, func() { _ = rs.Close() }, nil
	case config.DriverMemory:
		return storage.NewMemoryStore(), func() {}, nil
	default:
		database, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPostgresStore(database), func() { _ = database.Close() }, nil
	}
}
