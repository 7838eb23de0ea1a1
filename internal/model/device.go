package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonDevice registers a mobile device as a push notification target.
type PersonDevice struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonID  uuid.UUID `json:"person_id" gorm:"type:uuid;not null;index"`
	DeviceID  string    `json:"id_device" gorm:"size:40;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`

	Person Person `json:"-" gorm:"foreignKey:PersonID"`
}

// DeviceResponse is the wire shape of a registered device
type DeviceResponse struct {
	ID       uuid.UUID  `json:"id"`
	Person   *uuid.UUID `json:"person,omitempty"`
	DeviceID string     `json:"id_device"`
	IsActive bool       `json:"is_active"`
}

// ToResponse converts PersonDevice to DeviceResponse. The owning person is
// omitted when hidePerson is set (POST responses and person-filtered reads).
func (d *PersonDevice) ToResponse(hidePerson bool) DeviceResponse {
	resp := DeviceResponse{
		ID:       d.ID,
		DeviceID: d.DeviceID,
		IsActive: d.IsActive,
	}
	if !hidePerson {
		personID := d.PersonID
		resp.Person = &personID
	}
	return resp
}
