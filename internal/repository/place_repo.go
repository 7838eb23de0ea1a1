package repository

import (
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// PlaceRepository handles database operations for Place
type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// Create inserts a new place
func (r *PlaceRepository) Create(place *model.Place) error {
	return r.db.Create(place).Error
}

// All returns every place
func (r *PlaceRepository) All() ([]model.Place, error) {
	var places []model.Place
	err := r.db.Find(&places).Error
	return places, err
}

// Save persists in-place modifications of a place
func (r *PlaceRepository) Save(place *model.Place) error {
	return r.db.Save(place).Error
}
