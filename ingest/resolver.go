package ingest

import (
	"movie_listings/model"

	"gorm.io/gorm"
)

// Resolver hands out the one stored row for each reference natural key.
// A lookup hits the per-run cache first, then the store; an unseen key is
// created through FirstOrCreate on the caller's transaction, so a new row
// stays pending until the cycle commits. Two resolutions of the same key in
// one run return the same instance. Keys are exact matches: no trimming,
// no case folding.
type Resolver struct {
	genres   map[string]*model.Genre
	theatres map[string]*model.Theatre
	channels map[string]*model.Channel
}

func NewResolver() *Resolver {
	return &Resolver{
		genres:   make(map[string]*model.Genre),
		theatres: make(map[string]*model.Theatre),
		channels: make(map[string]*model.Channel),
	}
}

func (r *Resolver) Genre(tx *gorm.DB, name string) (*model.Genre, error) {
	if genre, ok := r.genres[name]; ok {
		return genre, nil
	}

	genre := &model.Genre{}
	if err := tx.Where(model.Genre{Name: name}).FirstOrCreate(genre).Error; err != nil {
		return nil, err
	}
	r.genres[name] = genre
	return genre, nil
}

// Theatre resolves by the source's own theatre id. The name only applies on
// create; an already stored theatre keeps whatever name it was stored with.
func (r *Resolver) Theatre(tx *gorm.DB, theatreId string, name string) (*model.Theatre, error) {
	if theatre, ok := r.theatres[theatreId]; ok {
		return theatre, nil
	}

	theatre := &model.Theatre{}
	if err := tx.Where(model.Theatre{TheatreId: theatreId}).Attrs(model.Theatre{Name: name}).FirstOrCreate(theatre).Error; err != nil {
		return nil, err
	}
	r.theatres[theatreId] = theatre
	return theatre, nil
}

func (r *Resolver) Channel(tx *gorm.DB, name string) (*model.Channel, error) {
	if channel, ok := r.channels[name]; ok {
		return channel, nil
	}

	channel := &model.Channel{}
	if err := tx.Where(model.Channel{Name: name}).FirstOrCreate(channel).Error; err != nil {
		return nil, err
	}
	r.channels[name] = channel
	return channel, nil
}
