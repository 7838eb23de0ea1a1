package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/service"
)

// AdoptionHandler handles adoption proposal and request endpoints
type AdoptionHandler struct {
	adoptionService *service.AdoptionService
}

func NewAdoptionHandler(adoptionService *service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

// ==================== Proposals ====================

// ListProposals godoc
// @Summary List proposals by owner or the recent public feed
// @Description owner_id lists one owner's live proposals; all_adoptions lists the public feed of the last fifteen days.
// @Tags Adoption
// @Produce json
// @Security BearerAuth
// @Param owner_id query string false "Owning person id"
// @Param all_adoptions query string false "Public feed switch"
// @Success 200 {array} model.ProposalResponse
// @Router /adoption-proposal-api [get]
func (h *AdoptionHandler) ListProposals(c *gin.Context) {
	filter := service.ProposalFilter{
		AllAdoptions: hasQuery(c, "all_adoptions"),
	}
	if raw := c.Query("owner_id"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid owner_id"})
			return
		}
		filter.OwnerID = &ownerID
	}

	proposals, err := h.adoptionService.ListProposals(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list proposals"})
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// GetProposal godoc
// @Summary Get one proposal with nested owner and latest image
// @Tags Adoption
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal id"
// @Success 200 {object} model.ProposalResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-proposal-api/{id} [get]
func (h *AdoptionHandler) GetProposal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	proposal, err := h.adoptionService.GetProposal(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load proposal"})
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// CreateProposal godoc
// @Summary Create a pending adoption proposal
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateProposalRequest true "Proposal to create"
// @Success 201 {object} model.IDResponse
// @Router /adoption-proposal-api [post]
func (h *AdoptionHandler) CreateProposal(c *gin.Context) {
	var req model.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.adoptionService.CreateProposal(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to create proposal", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateProposal godoc
// @Summary Partially update a proposal; only fields present in the payload change
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal id"
// @Param body body model.UpdateProposalRequest true "Fields to update"
// @Success 200 {object} model.ProposalResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-proposal-api/{id} [patch]
func (h *AdoptionHandler) UpdateProposal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	var req model.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	proposal, err := h.adoptionService.UpdateProposal(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Proposal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update proposal", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// DeleteProposal godoc
// @Summary Soft-delete a proposal
// @Tags Adoption
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal id"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-proposal-api/{id} [delete]
func (h *AdoptionHandler) DeleteProposal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	if err := h.adoptionService.DeleteProposal(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete proposal"})
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: true})
}

// ==================== Requests ====================

// ListRequests godoc
// @Summary List live adoption requests by proposal or requester
// @Tags Adoption
// @Produce json
// @Security BearerAuth
// @Param proposal_id query string false "Proposal id"
// @Param requester_id query string false "Requesting person id"
// @Success 200 {array} model.RequestResponse
// @Router /adoption-request-api [get]
func (h *AdoptionHandler) ListRequests(c *gin.Context) {
	var filter service.RequestFilter
	if raw := c.Query("proposal_id"); raw != "" {
		proposalID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid proposal_id"})
			return
		}
		filter.ProposalID = &proposalID
	}
	if raw := c.Query("requester_id"); raw != "" {
		requesterID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid requester_id"})
			return
		}
		filter.RequesterID = &requesterID
	}

	requests, err := h.adoptionService.ListRequests(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetRequest godoc
// @Summary Get one request with nested proposal and requester
// @Tags Adoption
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} model.RequestResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-request-api/{id} [get]
func (h *AdoptionHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request id"})
		return
	}

	request, err := h.adoptionService.GetRequest(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load request"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// CreateRequest godoc
// @Summary Create an adoption request; duplicates return the existing id
// @Description A proposal holds at most one live request. Creating a second one returns the original request's id with HTTP 200.
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateAdoptionRequestRequest true "Request to create"
// @Success 200 {object} model.IDResponse
// @Router /adoption-request-api [post]
func (h *AdoptionHandler) CreateRequest(c *gin.Context) {
	var req model.CreateAdoptionRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.adoptionService.CreateRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Proposal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to create request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRequest godoc
// @Summary Partially update a request; accepting it notifies the requester
// @Tags Adoption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Param body body model.UpdateAdoptionRequestRequest true "Fields to update"
// @Success 200 {object} model.RequestResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-request-api/{id} [patch]
func (h *AdoptionHandler) UpdateRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request id"})
		return
	}

	var req model.UpdateAdoptionRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	request, err := h.adoptionService.UpdateRequest(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Request not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, request)
}

// DeleteRequest godoc
// @Summary Soft-delete a request
// @Tags Adoption
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-request-api/{id} [delete]
func (h *AdoptionHandler) DeleteRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request id"})
		return
	}

	if err := h.adoptionService.DeleteRequest(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete request"})
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: true})
}
