package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"movie_listings/config"
	"movie_listings/constants"
	"movie_listings/database"
	"movie_listings/helper"
	"movie_listings/ingest"
	"movie_listings/report"
	"movie_listings/router"
	"movie_listings/tmsapi"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatal(err)
	}
	database.SeedGenres(db)

	api := tmsapi.NewClient(config.Config("TMS_API_KEY"))
	ing := ingest.NewIngestor(db, api)
	opts := ingest.Options{
		ZipCode:  config.ConfigOr("TMS_ZIP_CODE", "78701"),
		LineupId: config.ConfigOr("TMS_LINEUP_ID", "USA-TX42500-X"),
	}

	command := "ingest"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "ingest":
		summary, err := ing.Run(opts)
		if err != nil {
			log.Fatal("ingestion failed: ", err)
		}
		log.Printf("run %s done: %d theatre movies, %d tv movies, %d skipped",
			summary.RunId, summary.TheatreMovies, summary.TvMovies, summary.SkippedRecords)

	case "report":
		fs := flag.NewFlagSet("report", flag.ExitOnError)
		n := fs.Int("n", constants.TOP_GENRES_DEFAULT, "number of genres to show")
		fs.Parse(os.Args[2:])

		genres, err := report.TopGenres(db, *n)
		if err != nil {
			log.Fatal("report failed: ", err)
		}
		report.Print(os.Stdout, genres)

	case "serve":
		app := fiber.New()
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))

		var rdb *redis.Client
		if addr := config.Config("REDIS_ADDR"); addr != "" {
			rdb = redis.NewClient(&redis.Options{Addr: addr})
		}

		helper.StartIngestScheduler(ing, opts, rdb)
		defer helper.StopIngestScheduler()

		router.SetupRoutes(app, db, rdb, ing, opts)

		port := config.ConfigOr("PORT", "8002")
		log.Fatal(app.Listen(":" + port))

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want ingest, report or serve)\n", command)
		os.Exit(2)
	}
}
