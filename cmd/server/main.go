package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"supercopa.app/backend/internal/config"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/server"
	"supercopa.app/backend/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	redisClient := connectRedis(cfg.RedisURL)

	srv := server.NewServer(cfg, db, redisClient)
	defer srv.Close()

	if err := srv.Bootstrap(context.Background()); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AdminUser{},
		&model.RankingEntry{},
		&model.Rule{},
		&model.Award{},
		&model.ConfigEntry{},
		&model.Notification{},
	)
}

// connectRedis is best effort: without redis the app still serves, minus
// push delivery, visit dedup and the shell cache.
func connectRedis(url string) *redis.Client {
	if url == "" {
		log.Println("REDIS_URL is not set, running without redis")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without redis: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable, running without redis: %v", err)
		return nil
	}
	return client
}
