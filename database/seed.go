package database

import (
	"log"

	"movie_listings/model"

	"gorm.io/gorm"
)

// SeedGenres pre-creates the usual listing genres so ids stay stable across
// fresh databases. The resolver creates anything not listed here on first
// reference; seeding is a convenience, not a requirement.
func SeedGenres(db *gorm.DB) {
	genres := []model.Genre{
		{Name: "Action"},
		{Name: "Adventure"},
		{Name: "Comedy"},
		{Name: "Documentary"},
		{Name: "Drama"},
		{Name: "Horror"},
		{Name: "Musical"},
		{Name: "Romance"},
		{Name: "Science fiction"},
		{Name: "Thriller"},
	}

	for i := range genres {
		if err := db.Where(model.Genre{Name: genres[i].Name}).FirstOrCreate(&genres[i]).Error; err != nil {
			log.Println("failed to seed genre:", genres[i].Name, "error:", err)
		}
	}
}
