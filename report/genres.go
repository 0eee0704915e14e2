package report

import (
	"sort"

	"movie_listings/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// TopGenres ranks genres by how many movies (theatrical plus TV) link to
// them and returns the best n with the movies underneath. Ties break
// lexicographically by genre name, ascending, so equal-count genres come
// back in a stable order. Asking for more genres than exist returns them
// all. Read-only.
func TopGenres(db *gorm.DB, n int) ([]model.GenreReport, error) {
	var genres []model.Genre
	if err := db.Preload("TheatreMovies").Preload("TvMovies").Find(&genres).Error; err != nil {
		return nil, err
	}

	reports := make([]model.GenreReport, 0, len(genres))
	for _, genre := range genres {
		entry := model.GenreReport{Genre: genre.Name}

		for _, movie := range genre.TheatreMovies {
			record := model.MovieRecord{Genre: genre.Name, Source: model.SOURCE_THEATRE}
			copier.Copy(&record, &movie)
			entry.Movies = append(entry.Movies, record)
		}
		for _, movie := range genre.TvMovies {
			record := model.MovieRecord{Genre: genre.Name, Source: model.SOURCE_TV}
			copier.Copy(&record, &movie)
			entry.Movies = append(entry.Movies, record)
		}

		entry.MovieCount = len(entry.Movies)
		reports = append(reports, entry)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].MovieCount != reports[j].MovieCount {
			return reports[i].MovieCount > reports[j].MovieCount
		}
		return reports[i].Genre < reports[j].Genre
	})

	if n >= 0 && n < len(reports) {
		reports = reports[:n]
	}
	return reports, nil
}
