package ingest

import (
	"fmt"
	"log"
	"time"

	"movie_listings/model"
	"movie_listings/tmsapi"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// Options carries the query parameters for one run. Empty date fields fall
// back to the current date/time.
type Options struct {
	StartDate     string // showings window, 2006-01-02
	StartDateTime string // airings window, 2006-01-02T15:04z
	ZipCode       string
	LineupId      string
}

type Ingestor struct {
	db       *gorm.DB
	api      *tmsapi.Client
	resolver *Resolver
	mapper   *Mapper
}

func NewIngestor(db *gorm.DB, api *tmsapi.Client) *Ingestor {
	resolver := NewResolver()
	return &Ingestor{
		db:       db,
		api:      api,
		resolver: resolver,
		mapper:   NewMapper(resolver),
	}
}

// Run executes one full ingestion: the showings cycle, then the airings
// cycle. The cycles commit independently but share the resolver cache, so a
// genre referenced by both sides lands in one row. A fetch or commit
// failure on either side fails the run; a malformed record only costs
// itself.
func (ing *Ingestor) Run(opts Options) (*model.RunSummary, error) {
	now := time.Now()
	if opts.StartDate == "" {
		opts.StartDate = now.Format("2006-01-02")
	}
	if opts.StartDateTime == "" {
		opts.StartDateTime = now.Format("2006-01-02T15:04z")
	}

	summary := &model.RunSummary{RunId: uuid.New().String()}

	if err := ing.ingestShowings(opts, summary); err != nil {
		return nil, fmt.Errorf("showings cycle: %w", err)
	}
	if err := ing.ingestAirings(opts, summary); err != nil {
		return nil, fmt.Errorf("airings cycle: %w", err)
	}

	return summary, nil
}

func (ing *Ingestor) ingestShowings(opts Options, summary *model.RunSummary) error {
	showings, err := ing.api.Showings(opts.StartDate, opts.ZipCode)
	if err != nil {
		return err
	}

	return ing.db.Transaction(func(tx *gorm.DB) error {
		movies := make([]model.TheatreMovie, 0, len(showings))
		for _, showing := range showings {
			movie, err := ing.mapper.ShowingToMovie(tx, showing)
			if err != nil {
				return err
			}
			if err := validate.Struct(movie); err != nil {
				log.Printf("skipping showing %q: %v", showing.Title, err)
				summary.SkippedRecords++
				continue
			}
			movie.RunId = summary.RunId
			movies = append(movies, *movie)
		}

		if len(movies) == 0 {
			return nil
		}
		if err := tx.Create(&movies).Error; err != nil {
			return err
		}
		summary.TheatreMovies = len(movies)
		return nil
	})
}

func (ing *Ingestor) ingestAirings(opts Options, summary *model.RunSummary) error {
	airings, err := ing.api.Airings(opts.StartDateTime, opts.LineupId)
	if err != nil {
		return err
	}

	return ing.db.Transaction(func(tx *gorm.DB) error {
		movies := make([]model.TvMovie, 0, len(airings))
		for _, airing := range airings {
			movie, err := ing.mapper.AiringToMovie(tx, airing)
			if err != nil {
				return err
			}
			if movie == nil {
				summary.SkippedRecords++
				continue
			}
			if err := validate.Struct(movie); err != nil {
				log.Printf("skipping airing %q: %v", airing.Program.Title, err)
				summary.SkippedRecords++
				continue
			}
			movie.RunId = summary.RunId
			movies = append(movies, *movie)
		}

		if len(movies) == 0 {
			return nil
		}
		if err := tx.Create(&movies).Error; err != nil {
			return err
		}
		summary.TvMovies = len(movies)
		return nil
	})
}
