package model

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionStatus is the tri-state lifecycle of proposals and requests.
type AdoptionStatus int

const (
	StatusCancelled AdoptionStatus = 0
	StatusAccepted  AdoptionStatus = 1
	StatusPending   AdoptionStatus = 2
)

// AdoptionProposal is a pet offered for adoption by its owner.
type AdoptionProposal struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID     uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	PetName     string         `json:"pet_name" gorm:"size:50;default:'Sin nombre'"`
	Description string         `json:"description"`
	Status      AdoptionStatus `json:"status" gorm:"default:2"`
	WasDeleted  bool           `json:"was_deleted" gorm:"default:false"`
	Date        time.Time      `json:"date"`

	// Relations
	Owner Person `json:"-" gorm:"foreignKey:OwnerID"`
}

// AdoptionRequest is a third party's request to adopt a proposed pet.
// At most one live request exists per proposal at creation time.
type AdoptionRequest struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProposalID  uuid.UUID      `json:"proposal_id" gorm:"type:uuid;not null;index"`
	RequesterID uuid.UUID      `json:"requester_id" gorm:"type:uuid;not null;index"`
	Description string         `json:"description" gorm:"default:''"`
	Status      AdoptionStatus `json:"status" gorm:"default:2"`
	WasDeleted  bool           `json:"was_deleted" gorm:"default:false"`
	Date        time.Time      `json:"date"`

	// Relations
	Proposal  AdoptionProposal `json:"-" gorm:"foreignKey:ProposalID"`
	Requester Person           `json:"-" gorm:"foreignKey:RequesterID"`
}

// ProposalResponse is the wire shape of an adoption proposal
type ProposalResponse struct {
	ID            uuid.UUID       `json:"id"`
	Owner         *PersonResponse `json:"owner,omitempty"`
	PetName       string          `json:"pet_name,omitempty"`
	Description   string          `json:"description"`
	Status        *AdoptionStatus `json:"status,omitempty"`
	Date          string          `json:"date"`
	AdoptionImage string          `json:"adoption_image"`
}

// ProposalRenderOptions controls field visibility of a proposal representation.
type ProposalRenderOptions struct {
	// HideOwner drops the owner when the caller already filtered by owner.
	HideOwner bool
	// WithStatus includes the tri-state status (detail reads).
	WithStatus bool
	// ImageURL is the latest adoption image URL, or NoImage.
	ImageURL string
	// OwnerImageURL feeds the nested owner representation.
	OwnerImageURL string
}

// ToResponse converts AdoptionProposal to ProposalResponse under the given options
func (p *AdoptionProposal) ToResponse(opts ProposalRenderOptions) ProposalResponse {
	resp := ProposalResponse{
		ID:            p.ID,
		PetName:       p.PetName,
		Description:   p.Description,
		Date:          p.Date.Format(dateTimeLayout),
		AdoptionImage: opts.ImageURL,
	}
	if resp.AdoptionImage == "" {
		resp.AdoptionImage = NoImage
	}
	if !opts.HideOwner {
		owner := p.Owner.ToResponse(PersonRenderOptions{ImageURL: opts.OwnerImageURL})
		resp.Owner = &owner
	}
	if opts.WithStatus {
		status := p.Status
		resp.Status = &status
	}
	return resp
}

// RequestResponse is the wire shape of an adoption request
type RequestResponse struct {
	ID          uuid.UUID         `json:"id"`
	Proposal    *ProposalResponse `json:"adoption_proposal,omitempty"`
	Requester   *PersonResponse   `json:"requester,omitempty"`
	Description string            `json:"description"`
	Status      AdoptionStatus    `json:"status"`
	Date        string            `json:"date"`
}

// RequestRenderOptions controls field visibility of a request representation.
type RequestRenderOptions struct {
	// HideProposal drops the proposal when filtering by proposal.
	HideProposal bool
	// HideRequester drops the requester when filtering by requester.
	HideRequester bool
	// ProposalImageURL feeds the nested proposal representation.
	ProposalImageURL string
	// RequesterImageURL feeds the nested requester representation.
	RequesterImageURL string
}

// ToResponse converts AdoptionRequest to RequestResponse under the given options
func (r *AdoptionRequest) ToResponse(opts RequestRenderOptions) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Status:      r.Status,
		Date:        r.Date.Format(dateTimeLayout),
	}
	if !opts.HideProposal {
		proposal := r.Proposal.ToResponse(ProposalRenderOptions{
			HideOwner: true,
			ImageURL:  opts.ProposalImageURL,
		})
		resp.Proposal = &proposal
	}
	if !opts.HideRequester {
		requester := r.Requester.ToResponse(PersonRenderOptions{ImageURL: opts.RequesterImageURL})
		resp.Requester = &requester
	}
	return resp
}
