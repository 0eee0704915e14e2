package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"movie_listings/constants"
	"movie_listings/ingest"
	"movie_listings/report"
	"movie_listings/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const reportCacheTTL = 5 * time.Minute

func topGenresCacheKey(n int) string {
	return "report:top-genres:" + strconv.Itoa(n)
}

// TopGenres serves the ranked genre report. With a redis client configured
// the serialized response is cached for a few minutes; a run through
// TriggerIngest drops the cache.
func TopGenres(db *gorm.DB, rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n := c.QueryInt("n", constants.TOP_GENRES_DEFAULT)
		if n < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("n must not be negative"))
		}

		if rdb != nil {
			cached, err := rdb.Get(c.Context(), topGenresCacheKey(n)).Result()
			if err == nil {
				c.Set("Content-Type", "application/json")
				return c.SendString(cached)
			}
		}

		genres, err := report.TopGenres(db, n)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
		}

		payload := fiber.Map{
			"status": "success",
			"data":   fiber.Map{"genres": genres},
		}
		if rdb != nil {
			if raw, err := json.Marshal(payload); err == nil {
				rdb.Set(c.Context(), topGenresCacheKey(n), raw, reportCacheTTL)
			}
		}
		return c.Status(fiber.StatusOK).JSON(payload)
	}
}

// TriggerIngest runs one ingestion cycle pair on demand. Dates default to
// now inside the run, so repeated calls always cover the current window.
func TriggerIngest(ing *ingest.Ingestor, opts ingest.Options, rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := ing.Run(opts)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.INGEST_FAILED, err)
		}

		if rdb != nil {
			keys, err := rdb.Keys(c.Context(), "report:top-genres:*").Result()
			if err == nil && len(keys) > 0 {
				rdb.Del(c.Context(), keys...)
			}
		}

		return utils.SuccessResponse(c, fiber.StatusOK, summary)
	}
}

func Health(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DB_NOT_AVAILABLE, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"healthy": true})
	}
}
