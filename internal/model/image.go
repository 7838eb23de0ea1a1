package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonImage is a profile photo. The latest upload is the current one.
type PersonImage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonID   uuid.UUID `json:"person_id" gorm:"type:uuid;not null;index"`
	ObjectKey  string    `json:"-" gorm:"size:500;not null"`
	URL        string    `json:"url" gorm:"size:1000;not null"`
	UploadDate time.Time `json:"upload_date"`

	Person Person `json:"-" gorm:"foreignKey:PersonID"`
}

// ReportImage is a photo attached to an animal report.
type ReportImage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportID   uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index"`
	ObjectKey  string    `json:"-" gorm:"size:500;not null"`
	URL        string    `json:"url" gorm:"size:1000;not null"`
	UploadDate time.Time `json:"upload_date"`

	Report AnimalReport `json:"-" gorm:"foreignKey:ReportID"`
}

// AdoptionImage is a photo attached to an adoption proposal.
type AdoptionImage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProposalID uuid.UUID `json:"proposal_id" gorm:"type:uuid;not null;index"`
	ObjectKey  string    `json:"-" gorm:"size:500;not null"`
	URL        string    `json:"url" gorm:"size:1000;not null"`
	UploadDate time.Time `json:"upload_date"`

	Proposal AdoptionProposal `json:"-" gorm:"foreignKey:ProposalID"`
}

// ImageResponse is the wire shape of an uploaded image
type ImageResponse struct {
	ID         uuid.UUID `json:"id,omitempty"`
	URLImage   string    `json:"url_image"`
	UploadDate string    `json:"upload_date,omitempty"`
}
