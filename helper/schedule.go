package helper

import (
	"context"
	"log"
	"time"

	"movie_listings/ingest"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
)

var ingestScheduler gocron.Scheduler

// StartIngestScheduler runs one ingestion cycle pair every day at 05:00
// local time.
func StartIngestScheduler(ing *ingest.Ingestor, opts ingest.Options, rdb *redis.Client) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	ingestScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(5, 0, 0),
			),
		),
		gocron.NewTask(func() {
			log.Println("[CRON] daily ingestion triggered")
			summary, err := ing.Run(opts)
			if err != nil {
				log.Printf("[CRON] ingestion failed: %v", err)
				return
			}
			log.Printf("[CRON] run %s done: %d theatre movies, %d tv movies, %d skipped",
				summary.RunId, summary.TheatreMovies, summary.TvMovies, summary.SkippedRecords)

			if rdb != nil {
				ctx := context.Background()
				keys, err := rdb.Keys(ctx, "report:top-genres:*").Result()
				if err == nil && len(keys) > 0 {
					rdb.Del(ctx, keys...)
				}
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Ingest scheduler started (05:00 local)")
}

func StopIngestScheduler() {
	if ingestScheduler != nil {
		_ = ingestScheduler.Shutdown()
	}
}
