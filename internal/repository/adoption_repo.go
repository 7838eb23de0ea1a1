package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// ProposalRepository handles database operations for AdoptionProposal
type ProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create inserts a new proposal
func (r *ProposalRepository) Create(proposal *model.AdoptionProposal) error {
	return r.db.Create(proposal).Error
}

// FindByID finds a proposal with owner preloaded
func (r *ProposalRepository) FindByID(id uuid.UUID) (*model.AdoptionProposal, error) {
	var proposal model.AdoptionProposal
	err := r.db.
		Preload("Owner.Account").
		Preload("Owner.Address").
		Where("id = ?", id).
		First(&proposal).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ByOwner returns an owner's proposals, excluding soft-deleted rows
func (r *ProposalRepository) ByOwner(ownerID uuid.UUID) ([]model.AdoptionProposal, error) {
	var proposals []model.AdoptionProposal
	err := r.db.
		Preload("Owner.Account").
		Preload("Owner.Address").
		Where("owner_id = ? AND was_deleted = false", ownerID).
		Order("date DESC").
		Find(&proposals).Error
	return proposals, err
}

// Recent returns live proposals newer than the cutoff. The public feed uses
// a fifteen-day window.
func (r *ProposalRepository) Recent(since time.Time) ([]model.AdoptionProposal, error) {
	var proposals []model.AdoptionProposal
	err := r.db.
		Preload("Owner.Account").
		Preload("Owner.Address").
		Where("date > ? AND was_deleted = false", since).
		Order("date DESC").
		Find(&proposals).Error
	return proposals, err
}

// Save persists in-place modifications of a proposal
func (r *ProposalRepository) Save(proposal *model.AdoptionProposal) error {
	return r.db.Save(proposal).Error
}

// SoftDelete marks a proposal logically removed without deleting the row
func (r *ProposalRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&model.AdoptionProposal{}).
		Where("id = ?", id).
		Update("was_deleted", true).Error
}

// RequestRepository handles database operations for AdoptionRequest
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a new request
func (r *RequestRepository) Create(request *model.AdoptionRequest) error {
	return r.db.Create(request).Error
}

// FindByID finds a request with proposal and requester preloaded
func (r *RequestRepository) FindByID(id uuid.UUID) (*model.AdoptionRequest, error) {
	var request model.AdoptionRequest
	err := r.db.
		Preload("Proposal").
		Preload("Requester.Account").
		Preload("Requester.Address").
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// LiveByProposal returns the existing live request for a proposal, if any
func (r *RequestRepository) LiveByProposal(proposalID uuid.UUID) (*model.AdoptionRequest, error) {
	var request model.AdoptionRequest
	err := r.db.
		Where("proposal_id = ? AND was_deleted = false", proposalID).
		Order("date ASC").
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ByProposal returns every live request against a proposal
func (r *RequestRepository) ByProposal(proposalID uuid.UUID) ([]model.AdoptionRequest, error) {
	var requests []model.AdoptionRequest
	err := r.db.
		Preload("Proposal").
		Preload("Requester.Account").
		Preload("Requester.Address").
		Where("proposal_id = ? AND was_deleted = false", proposalID).
		Order("date DESC").
		Find(&requests).Error
	return requests, err
}

// ByRequester returns every live request made by a person
func (r *RequestRepository) ByRequester(requesterID uuid.UUID) ([]model.AdoptionRequest, error) {
	var requests []model.AdoptionRequest
	err := r.db.
		Preload("Proposal").
		Preload("Requester.Account").
		Preload("Requester.Address").
		Where("requester_id = ? AND was_deleted = false", requesterID).
		Order("date DESC").
		Find(&requests).Error
	return requests, err
}

// Save persists in-place modifications of a request
func (r *RequestRepository) Save(request *model.AdoptionRequest) error {
	return r.db.Save(request).Error
}

// SoftDelete marks a request logically removed without deleting the row
func (r *RequestRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&model.AdoptionRequest{}).
		Where("id = ?", id).
		Update("was_deleted", true).Error
}
