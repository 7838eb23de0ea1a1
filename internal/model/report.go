package model

import (
	"time"

	"github.com/google/uuid"
)

// NoName is the sentinel pet name marking a stray/abandoned animal report.
// Reports with any other pet name describe a lost pet.
const NoName = "Sin nombre"

const dateTimeLayout = "2006-01-02 15:04:05"

// AnimalReport is a report of a stray or lost animal at a place.
type AnimalReport struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonID    uuid.UUID `json:"person_id" gorm:"type:uuid;not null;index"`
	PlaceID     uuid.UUID `json:"place_id" gorm:"type:uuid;uniqueIndex;not null"`
	PetName     string    `json:"pet_name" gorm:"size:50;default:'Sin nombre'"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`

	// Relations
	Person Person `json:"-" gorm:"foreignKey:PersonID"`
	Place  Place  `json:"-" gorm:"foreignKey:PlaceID"`
}

// IsAbandoned reports whether this is a stray/abandoned animal report
func (r *AnimalReport) IsAbandoned() bool {
	return r.PetName == NoName
}

// ReportResponse is the wire shape of an animal report
type ReportResponse struct {
	ID          uuid.UUID       `json:"id"`
	Person      *PersonResponse `json:"person,omitempty"`
	PetName     *string         `json:"pet_name,omitempty"`
	Place       *PlaceResponse  `json:"place,omitempty"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	ReportImage string          `json:"report_image"`
}

// ReportRenderOptions controls field visibility of a report representation.
type ReportRenderOptions struct {
	// HidePerson drops the person when the caller already filtered by person.
	HidePerson bool
	// HidePetName drops the sentinel pet name on abandoned-pet listings.
	HidePetName bool
	// CompactPerson renders the nested person as id only (feed listings).
	CompactPerson bool
	// ImageURL is the latest report image URL, or NoImage.
	ImageURL string
	// PersonImageURL feeds the nested person representation.
	PersonImageURL string
}

// ToResponse converts AnimalReport to ReportResponse under the given options
func (r *AnimalReport) ToResponse(opts ReportRenderOptions) ReportResponse {
	resp := ReportResponse{
		ID:          r.ID,
		Description: r.Description,
		Date:        r.Date.Format(dateTimeLayout),
		ReportImage: opts.ImageURL,
	}
	if resp.ReportImage == "" {
		resp.ReportImage = NoImage
	}
	if !opts.HidePerson {
		person := r.Person.ToResponse(PersonRenderOptions{
			Compact:  opts.CompactPerson,
			ImageURL: opts.PersonImageURL,
		})
		resp.Person = &person
	}
	if !opts.HidePetName {
		name := r.PetName
		resp.PetName = &name
	}
	place := r.Place.ToResponse()
	resp.Place = &place
	return resp
}
