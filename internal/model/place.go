package model

import "github.com/google/uuid"

// Place is a free-text location. Latitude and longitude are stored as text;
// precision and validation are the caller's responsibility.
type Place struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Location  string    `json:"location" gorm:"size:180;default:''"`
	Latitude  string    `json:"latitude" gorm:"size:50;default:''"`
	Longitude string    `json:"longitude" gorm:"size:50;default:''"`
}

// PlaceResponse mirrors the wire shape of a place
type PlaceResponse struct {
	Location  string `json:"location"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// ToResponse converts Place to PlaceResponse
func (p *Place) ToResponse() PlaceResponse {
	return PlaceResponse{
		Location:  p.Location,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}
