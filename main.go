package main

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/00AR/blog-app/config"
	"github.com/00AR/blog-app/database"
	"github.com/00AR/blog-app/routes"
	"github.com/00AR/blog-app/services"
	"github.com/00AR/blog-app/store"
	"github.com/00AR/blog-app/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	client, db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.Println("Connected to MongoDB")

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}
	log.Println("Indexes ensured")

	st := store.NewMongo(db)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable, blog cache disabled: %v", err)
		rdb = nil
	}
	cache := services.NewBlogCache(rdb, cfg.CacheTTL)

	services.StartReconcileCron(st, cache, cfg.ReconcileSpec)
	log.Println("Counter reconciler started")

	r := routes.SetupRouter(cfg, st, cache)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
