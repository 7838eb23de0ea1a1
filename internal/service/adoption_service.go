package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// recentProposalWindow bounds the public adoption feed
const recentProposalWindow = 15 * 24 * time.Hour

// ProposalStore is the proposal surface the adoption service needs
type ProposalStore interface {
	Create(proposal *model.AdoptionProposal) error
	FindByID(id uuid.UUID) (*model.AdoptionProposal, error)
	ByOwner(ownerID uuid.UUID) ([]model.AdoptionProposal, error)
	Recent(since time.Time) ([]model.AdoptionProposal, error)
	Save(proposal *model.AdoptionProposal) error
	SoftDelete(id uuid.UUID) error
}

// RequestStore is the request surface the adoption service needs
type RequestStore interface {
	Create(request *model.AdoptionRequest) error
	FindByID(id uuid.UUID) (*model.AdoptionRequest, error)
	LiveByProposal(proposalID uuid.UUID) (*model.AdoptionRequest, error)
	ByProposal(proposalID uuid.UUID) ([]model.AdoptionRequest, error)
	ByRequester(requesterID uuid.UUID) ([]model.AdoptionRequest, error)
	Save(request *model.AdoptionRequest) error
	SoftDelete(id uuid.UUID) error
}

// AdoptionImageStore resolves latest images for proposals and persons
type AdoptionImageStore interface {
	LatestAdoptionImage(proposalID uuid.UUID) (*model.AdoptionImage, error)
	LatestPersonImage(personID uuid.UUID) (*model.PersonImage, error)
}

// DeviceTargets resolves the push targets of a person
type DeviceTargets interface {
	ActiveDeviceIDs(personID uuid.UUID) ([]string, error)
}

// Dispatcher posts a push notification; failures stay a boolean
type Dispatcher interface {
	Send(ctx context.Context, deviceIDs []string, title, message string, data map[string]string, imageURL string) bool
}

// ProposalFilter mirrors the query-string switches of the proposal listing
type ProposalFilter struct {
	OwnerID      *uuid.UUID
	AllAdoptions bool // public feed, fifteen-day window
}

// AdoptionService handles adoption proposals and requests
type AdoptionService struct {
	proposals  ProposalStore
	requests   RequestStore
	images     AdoptionImageStore
	devices    DeviceTargets
	dispatcher Dispatcher
}

func NewAdoptionService(
	proposals ProposalStore,
	requests RequestStore,
	images AdoptionImageStore,
	devices DeviceTargets,
	dispatcher Dispatcher,
) *AdoptionService {
	return &AdoptionService{
		proposals:  proposals,
		requests:   requests,
		images:     images,
		devices:    devices,
		dispatcher: dispatcher,
	}
}

// ==================== Proposals ====================

// ListProposals returns proposals for the filter combination; an unfiltered
// call yields an empty list. Soft-deleted rows never appear.
func (s *AdoptionService) ListProposals(filter ProposalFilter) ([]model.ProposalResponse, error) {
	var proposals []model.AdoptionProposal
	var err error

	switch {
	case filter.OwnerID != nil:
		proposals, err = s.proposals.ByOwner(*filter.OwnerID)
	case filter.AllAdoptions:
		proposals, err = s.proposals.Recent(time.Now().Add(-recentProposalWindow))
	default:
		return []model.ProposalResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		responses = append(responses, proposals[i].ToResponse(model.ProposalRenderOptions{
			HideOwner:     filter.OwnerID != nil,
			ImageURL:      s.adoptionImageURL(proposals[i].ID),
			OwnerImageURL: s.personImageURL(proposals[i].OwnerID),
		}))
	}
	return responses, nil
}

// GetProposal returns one proposal with nested owner and latest image
func (s *AdoptionService) GetProposal(id uuid.UUID) (*model.ProposalResponse, error) {
	proposal, err := s.proposals.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := proposal.ToResponse(model.ProposalRenderOptions{
		WithStatus:    true,
		ImageURL:      s.adoptionImageURL(proposal.ID),
		OwnerImageURL: s.personImageURL(proposal.OwnerID),
	})
	return &resp, nil
}

// CreateProposal persists a new pending proposal
func (s *AdoptionService) CreateProposal(req model.CreateProposalRequest) (*model.IDResponse, error) {
	petName := model.NoName
	if req.PetName != nil && *req.PetName != "" {
		petName = *req.PetName
	}

	proposal := &model.AdoptionProposal{
		OwnerID:     req.OwnerID,
		PetName:     petName,
		Description: req.Description,
		Status:      model.StatusPending,
		Date:        time.Now(),
	}
	if err := s.proposals.Create(proposal); err != nil {
		return nil, err
	}
	return &model.IDResponse{ID: proposal.ID}, nil
}

// UpdateProposal applies only the fields present in the payload
func (s *AdoptionService) UpdateProposal(id uuid.UUID, req model.UpdateProposalRequest) (*model.ProposalResponse, error) {
	proposal, err := s.proposals.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.PetName != nil {
		proposal.PetName = *req.PetName
	}
	if req.Description != nil {
		proposal.Description = *req.Description
	}
	if req.Status != nil {
		proposal.Status = *req.Status
	}

	if err := s.proposals.Save(proposal); err != nil {
		return nil, err
	}

	resp := proposal.ToResponse(model.ProposalRenderOptions{
		WithStatus:    true,
		ImageURL:      s.adoptionImageURL(proposal.ID),
		OwnerImageURL: s.personImageURL(proposal.OwnerID),
	})
	return &resp, nil
}

// DeleteProposal soft-deletes a proposal
func (s *AdoptionService) DeleteProposal(id uuid.UUID) error {
	if _, err := s.proposals.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.proposals.SoftDelete(id)
}

// ==================== Requests ====================

// RequestFilter mirrors the query-string switches of the request listing
type RequestFilter struct {
	ProposalID  *uuid.UUID
	RequesterID *uuid.UUID
}

// ListRequests returns live requests for the filter combination
func (s *AdoptionService) ListRequests(filter RequestFilter) ([]model.RequestResponse, error) {
	var requests []model.AdoptionRequest
	var err error

	switch {
	case filter.ProposalID != nil:
		requests, err = s.requests.ByProposal(*filter.ProposalID)
	case filter.RequesterID != nil:
		requests, err = s.requests.ByRequester(*filter.RequesterID)
	default:
		return []model.RequestResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse(model.RequestRenderOptions{
			HideProposal:      filter.ProposalID != nil,
			HideRequester:     filter.RequesterID != nil,
			ProposalImageURL:  s.adoptionImageURL(requests[i].ProposalID),
			RequesterImageURL: s.personImageURL(requests[i].RequesterID),
		}))
	}
	return responses, nil
}

// GetRequest returns one request with nested proposal and requester
func (s *AdoptionService) GetRequest(id uuid.UUID) (*model.RequestResponse, error) {
	request, err := s.requests.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := request.ToResponse(model.RequestRenderOptions{
		ProposalImageURL:  s.adoptionImageURL(request.ProposalID),
		RequesterImageURL: s.personImageURL(request.RequesterID),
	})
	return &resp, nil
}

// CreateRequest creates a pending request against a proposal. A proposal
// already holding a live request yields the existing request's id instead of
// a new row; the check-then-create sequence is best-effort under concurrency.
// The proposal owner's active devices are notified of a genuinely new request.
func (s *AdoptionService) CreateRequest(ctx context.Context, req model.CreateAdoptionRequestRequest) (*model.IDResponse, error) {
	proposal, err := s.proposals.FindByID(req.ProposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if existing, err := s.requests.LiveByProposal(req.ProposalID); err == nil {
		return &model.IDResponse{ID: existing.ID}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := &model.AdoptionRequest{
		ProposalID:  req.ProposalID,
		RequesterID: req.RequesterID,
		Description: req.Description,
		Status:      model.StatusPending,
		Date:        time.Now(),
	}
	if err := s.requests.Create(request); err != nil {
		return nil, err
	}

	s.notify(ctx, proposal.OwnerID,
		"Nueva solicitud de adopción",
		"Alguien quiere adoptar a "+proposal.PetName,
		map[string]string{
			"type":        "adoption_request",
			"proposal_id": proposal.ID.String(),
			"request_id":  request.ID.String(),
		},
		s.adoptionImageURL(proposal.ID),
	)

	return &model.IDResponse{ID: request.ID}, nil
}

// UpdateRequest applies only the fields present in the payload. Accepting a
// request notifies the requester's devices.
func (s *AdoptionService) UpdateRequest(ctx context.Context, id uuid.UUID, req model.UpdateAdoptionRequestRequest) (*model.RequestResponse, error) {
	request, err := s.requests.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	accepted := false
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Status != nil {
		accepted = *req.Status == model.StatusAccepted && request.Status != model.StatusAccepted
		request.Status = *req.Status
	}

	if err := s.requests.Save(request); err != nil {
		return nil, err
	}

	if accepted {
		s.notify(ctx, request.RequesterID,
			"Solicitud de adopción aceptada",
			"Tu solicitud para adoptar a "+request.Proposal.PetName+" fue aceptada",
			map[string]string{
				"type":       "adoption_accepted",
				"request_id": request.ID.String(),
			},
			s.adoptionImageURL(request.ProposalID),
		)
	}

	resp := request.ToResponse(model.RequestRenderOptions{
		ProposalImageURL:  s.adoptionImageURL(request.ProposalID),
		RequesterImageURL: s.personImageURL(request.RequesterID),
	})
	return &resp, nil
}

// DeleteRequest soft-deletes a request
func (s *AdoptionService) DeleteRequest(id uuid.UUID) error {
	if _, err := s.requests.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.requests.SoftDelete(id)
}

// notify dispatches a push to a person's active devices. The outcome never
// reaches the caller.
func (s *AdoptionService) notify(ctx context.Context, personID uuid.UUID, title, message string, data map[string]string, imageURL string) {
	deviceIDs, err := s.devices.ActiveDeviceIDs(personID)
	if err != nil {
		return
	}
	s.dispatcher.Send(ctx, deviceIDs, title, message, data, imageURL)
}

func (s *AdoptionService) adoptionImageURL(proposalID uuid.UUID) string {
	img, err := s.images.LatestAdoptionImage(proposalID)
	if err != nil {
		return ""
	}
	return img.URL
}

func (s *AdoptionService) personImageURL(personID uuid.UUID) string {
	img, err := s.images.LatestPersonImage(personID)
	if err != nil {
		return ""
	}
	return img.URL
}
