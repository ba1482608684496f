package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/linjialin0/reggie-take-out/cache"
	"github.com/linjialin0/reggie-take-out/configs"
	"github.com/linjialin0/reggie-take-out/middlewares"
	"github.com/linjialin0/reggie-take-out/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedCategories(); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// Cache store
	var store cache.Store
	switch cfg.CacheBackend {
	case "memory":
		store = cache.NewMemoryStore()
	default:
		redisStore, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("connect redis failed: %v", err)
		}
		store = redisStore
	}
	aside := cache.NewAside(store, cfg.CacheTTL, logger)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, aside, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
