package database

import (
	"fmt"
	"strconv"

	"movie_listings/config"
	"movie_listings/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the configured Postgres database, migrates the schema and
// hands the caller the handle. Nothing holds a package-level connection.
func Connect() (*gorm.DB, error) {
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	fmt.Println("Connection Opened to Database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	fmt.Println("Database Migrated")

	return db, nil
}

// Migrate creates the movie tables, the reference tables and the four
// many2many join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Genre{},
		&model.Theatre{},
		&model.Channel{},
		&model.TheatreMovie{},
		&model.TvMovie{},
	)
}
