package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"movie_listings/database"
	"movie_listings/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createGenre(t *testing.T, db *gorm.DB, name string) model.Genre {
	t.Helper()
	genre := model.Genre{Name: name}
	require.NoError(t, db.Create(&genre).Error)
	return genre
}

func createTheatreMovie(t *testing.T, db *gorm.DB, title string, genres ...model.Genre) {
	t.Helper()
	movie := model.TheatreMovie{Genres: genres}
	movie.Title = title
	require.NoError(t, db.Create(&movie).Error)
}

func createTvMovie(t *testing.T, db *gorm.DB, title string, genres ...model.Genre) {
	t.Helper()
	movie := model.TvMovie{Genres: genres}
	movie.Title = title
	require.NoError(t, db.Create(&movie).Error)
}

func TestTopGenresRanksByCombinedCount(t *testing.T) {
	db := openTestDB(t)
	drama := createGenre(t, db, "Drama")
	comedy := createGenre(t, db, "Comedy")
	horror := createGenre(t, db, "Horror")

	createTheatreMovie(t, db, "D1", drama)
	createTheatreMovie(t, db, "D2", drama)
	createTvMovie(t, db, "D3", drama)
	createTheatreMovie(t, db, "C1", comedy)
	createTvMovie(t, db, "C2", comedy)
	createTvMovie(t, db, "H1", horror)

	reports, err := TopGenres(db, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "Drama", reports[0].Genre)
	assert.Equal(t, 3, reports[0].MovieCount)
	assert.Equal(t, "Comedy", reports[1].Genre)
	assert.Equal(t, 2, reports[1].MovieCount)
}

func TestTopGenresCombinesBothVariants(t *testing.T) {
	db := openTestDB(t)
	comedy := createGenre(t, db, "Comedy")
	createTheatreMovie(t, db, "Movie A", comedy)
	createTvMovie(t, db, "Movie B", comedy)

	reports, err := TopGenres(db, 1)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].MovieCount)

	sources := []string{reports[0].Movies[0].Source, reports[0].Movies[1].Source}
	assert.ElementsMatch(t, []string{model.SOURCE_THEATRE, model.SOURCE_TV}, sources)
	for _, movie := range reports[0].Movies {
		assert.Equal(t, "Comedy", movie.Genre)
	}
}

func TestTopGenresTieBreaksByName(t *testing.T) {
	db := openTestDB(t)
	western := createGenre(t, db, "Western")
	action := createGenre(t, db, "Action")
	createTheatreMovie(t, db, "W1", western)
	createTheatreMovie(t, db, "A1", action)

	reports, err := TopGenres(db, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Action", reports[0].Genre)
	assert.Equal(t, "Western", reports[1].Genre)
}

func TestTopGenresWithNLargerThanGenreCount(t *testing.T) {
	db := openTestDB(t)
	comedy := createGenre(t, db, "Comedy")
	createTheatreMovie(t, db, "C1", comedy)

	reports, err := TopGenres(db, 100)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestTopGenresOnEmptyStore(t *testing.T) {
	db := openTestDB(t)

	reports, err := TopGenres(db, 5)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestTopGenresIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	drama := createGenre(t, db, "Drama")
	comedy := createGenre(t, db, "Comedy")
	createTheatreMovie(t, db, "D1", drama)
	createTvMovie(t, db, "C1", comedy)

	first, err := TopGenres(db, 10)
	require.NoError(t, err)
	second, err := TopGenres(db, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPrintRendersMoviesUnderGenres(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, []model.GenreReport{
		{
			Genre:      "Comedy",
			MovieCount: 2,
			Movies: []model.MovieRecord{
				{Title: "Movie A", ReleaseYear: "2020", Source: model.SOURCE_THEATRE},
				{Title: "Movie B", Source: model.SOURCE_TV},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "GENRE")
	assert.Contains(t, out, "Comedy")
	assert.Contains(t, out, "Movie A (2020)")
	assert.Contains(t, out, "Movie B (----)")
}
