package router

import (
	"movie_listings/handler"
	"movie_listings/ingest"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, ing *ingest.Ingestor, opts ingest.Options) {
	api := app.Group("/api")
	api.Get("/health", handler.Health(db))
	api.Post("/ingest", handler.TriggerIngest(ing, opts, rdb))

	reportGroup := api.Group("/report")
	reportGroup.Get("/top-genres", handler.TopGenres(db, rdb))
}
