package ingest

import (
	"movie_listings/model"
	"movie_listings/tmsapi"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Mapper turns one raw listings record into a linked movie row. It never
// writes movies itself; reference rows may be created through the resolver
// on the passed transaction.
type Mapper struct {
	resolver *Resolver
}

func NewMapper(resolver *Resolver) *Mapper {
	return &Mapper{resolver: resolver}
}

func (m *Mapper) ShowingToMovie(tx *gorm.DB, showing tmsapi.Showing) (*model.TheatreMovie, error) {
	movie := &model.TheatreMovie{}
	movie.Title = showing.Title
	movie.ReleaseYear = showing.ReleaseYear
	movie.Description = showing.ShortDescription
	movie.Slug = slug.Make(showing.Title)

	for _, name := range showing.Genres {
		genre, err := m.resolver.Genre(tx, name)
		if err != nil {
			return nil, err
		}
		movie.Genres = append(movie.Genres, *genre)
	}

	// One showing lists a showtime per screening, so the same theatre shows
	// up many times; link it once. Showtimes without a theatre are skipped.
	linked := make(map[string]bool)
	for _, showtime := range showing.Showtimes {
		if showtime.Theatre == nil || linked[showtime.Theatre.Id] {
			continue
		}
		theatre, err := m.resolver.Theatre(tx, showtime.Theatre.Id, showtime.Theatre.Name)
		if err != nil {
			return nil, err
		}
		movie.Theatres = append(movie.Theatres, *theatre)
		linked[showtime.Theatre.Id] = true
	}

	return movie, nil
}

// AiringToMovie returns nil for an airing without a program sub-object;
// such a record carries no movie data and is not an error.
func (m *Mapper) AiringToMovie(tx *gorm.DB, airing tmsapi.Airing) (*model.TvMovie, error) {
	if airing.Program == nil {
		return nil, nil
	}

	movie := &model.TvMovie{}
	movie.Title = airing.Program.Title
	movie.ReleaseYear = airing.Program.ReleaseYear
	movie.Description = airing.Program.ShortDescription
	movie.Slug = slug.Make(airing.Program.Title)

	for _, name := range airing.Program.Genres {
		genre, err := m.resolver.Genre(tx, name)
		if err != nil {
			return nil, err
		}
		movie.Genres = append(movie.Genres, *genre)
	}

	linked := make(map[string]bool)
	for _, name := range airing.Channels {
		if linked[name] {
			continue
		}
		channel, err := m.resolver.Channel(tx, name)
		if err != nil {
			return nil, err
		}
		movie.Channels = append(movie.Channels, *channel)
		linked[name] = true
	}

	return movie, nil
}
