package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/MikyMack/Blushley-full-sub000/internal/cache"
	"github.com/MikyMack/Blushley-full-sub000/internal/config"
	dbpkg "github.com/MikyMack/Blushley-full-sub000/internal/db"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/routes"
	"github.com/MikyMack/Blushley-full-sub000/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Redis is optional; without it schedule reads go straight to the DB.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	schedules := cache.NewScheduleCache(rdb)

	publisher := events.NewPublisher(cfg.KafkaBrokerList(), cfg.KafkaTopic)
	defer publisher.Close()

	uploader := storage.NewUploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Schedules: schedules,
		Events:    publisher,
		Uploader:  uploader,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
