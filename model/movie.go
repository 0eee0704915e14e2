package model

// Movie is the attribute set shared by both stored variants. It has no
// table of its own; TheatreMovie and TvMovie embed it into theirs.
type Movie struct {
	DTO
	Title       string `gorm:"type:varchar(100);not null;index" validate:"required" json:"title"`
	ReleaseYear string `gorm:"type:varchar(4)" validate:"omitempty,len=4" json:"releaseYear"`
	Description string `gorm:"type:varchar(200)" json:"description"`
	Slug        string `gorm:"index" json:"slug"`
	RunId       string `gorm:"type:varchar(36);index" json:"runId"`
}

// A theatrical listing and a TV listing with the same title stay separate
// rows in separate tables; the pipeline never merges across variants.
type TheatreMovie struct {
	Movie
	Genres   []Genre   `gorm:"many2many:theatre_movie_genres;" json:"genres"`
	Theatres []Theatre `gorm:"many2many:theatre_movie_theatres;" json:"theatres"`
}

type TvMovie struct {
	Movie
	Genres   []Genre   `gorm:"many2many:tv_movie_genres;" json:"genres"`
	Channels []Channel `gorm:"many2many:tv_movie_channels;" json:"channels"`
}

// Reference entities carry a surrogate id plus a unique index on the
// natural key, so the resolver's dedup holds even against a racing writer.
type Genre struct {
	DTO
	Name          string         `gorm:"type:varchar(50);not null;uniqueIndex" validate:"required" json:"name"`
	TheatreMovies []TheatreMovie `gorm:"many2many:theatre_movie_genres;" json:"-"`
	TvMovies      []TvMovie      `gorm:"many2many:tv_movie_genres;" json:"-"`
}

type Theatre struct {
	DTO
	// TheatreId is the listing source's own identifier.
	TheatreId string         `gorm:"type:varchar(32);not null;uniqueIndex" json:"theatreId"`
	Name      string         `gorm:"type:varchar(255)" json:"name"`
	Movies    []TheatreMovie `gorm:"many2many:theatre_movie_theatres;" json:"-"`
}

type Channel struct {
	DTO
	Name   string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Movies []TvMovie `gorm:"many2many:tv_movie_channels;" json:"-"`
}
