package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	SOURCE_THEATRE = "THEATRE"
	SOURCE_TV      = "TV"
)

// MovieRecord is one row of the outbound report, flat enough for tabular
// rendering.
type MovieRecord struct {
	Title       string `json:"title"`
	ReleaseYear string `json:"releaseYear"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Source      string `json:"source"`
}

type GenreReport struct {
	Genre      string        `json:"genre"`
	MovieCount int           `json:"movieCount"`
	Movies     []MovieRecord `json:"movies"`
}

type RunSummary struct {
	RunId          string `json:"runId"`
	TheatreMovies  int    `json:"theatreMovies"`
	TvMovies       int    `json:"tvMovies"`
	SkippedRecords int    `json:"skippedRecords"`
}
