package model

import (
	"time"

	"github.com/google/uuid"
)

// NoImage is the sentinel returned when a record has no uploaded image.
const NoImage = "Sin imagen"

// Person carries the profile attached one-to-one to an Account.
type Person struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID   uuid.UUID  `json:"account_id" gorm:"type:uuid;uniqueIndex;not null"`
	AddressID   *uuid.UUID `json:"address_id" gorm:"type:uuid;uniqueIndex"`
	BornDate    time.Time  `json:"born_date" gorm:"type:date;not null"`
	PhoneNumber string     `json:"phone_number" gorm:"size:18"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Account Account `json:"-" gorm:"foreignKey:AccountID"`
	Address *Place  `json:"-" gorm:"foreignKey:AddressID"`
}

// PersonResponse is the wire shape of a person. Nested fields are omitted
// depending on the request (see PersonRenderOptions).
type PersonResponse struct {
	ID          uuid.UUID        `json:"id"`
	User        *AccountResponse `json:"user,omitempty"`
	BornDate    string           `json:"born_date,omitempty"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	Address     *PlaceResponse   `json:"address,omitempty"`
	PersonImage string           `json:"person_image,omitempty"`
}

// PersonRenderOptions controls which fields of a person are serialized.
type PersonRenderOptions struct {
	// Compact collapses the representation to the id only, as list reads
	// embedded in report feeds do.
	Compact bool
	// ImageURL is the latest profile image URL, or NoImage.
	ImageURL string
}

// ToResponse converts Person to PersonResponse under the given options
func (p *Person) ToResponse(opts PersonRenderOptions) PersonResponse {
	resp := PersonResponse{ID: p.ID}
	if opts.Compact {
		return resp
	}
	user := p.Account.ToResponse()
	resp.User = &user
	resp.BornDate = p.BornDate.Format("2006-01-02")
	resp.PhoneNumber = p.PhoneNumber
	if p.Address != nil {
		addr := p.Address.ToResponse()
		resp.Address = &addr
	}
	resp.PersonImage = opts.ImageURL
	if resp.PersonImage == "" {
		resp.PersonImage = NoImage
	}
	return resp
}
