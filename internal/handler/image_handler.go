package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/service"
)

// ImageHandler handles the base64 image upload endpoints
type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// CreatePersonImage godoc
// @Summary Upload a person's profile photo as a base64 payload
// @Tags Image
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreatePersonImageRequest true "Base64 image payload"
// @Success 201 {object} model.ImageResponse
// @Router /person-image-api [post]
func (h *ImageHandler) CreatePersonImage(c *gin.Context) {
	var req model.CreatePersonImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.imageService.CreatePersonImage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to upload image", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPersonImage godoc
// @Summary Get a person's current profile photo
// @Tags Image
// @Produce json
// @Security BearerAuth
// @Param person_id path string true "Person id"
// @Success 200 {object} model.ImageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /person-image-api/{person_id} [get]
func (h *ImageHandler) GetPersonImage(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("person_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid person id"})
		return
	}

	resp, err := h.imageService.GetPersonImage(personID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load image"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePersonImage godoc
// @Summary Replace a person's profile photo
// @Tags Image
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param person_id path string true "Person id"
// @Param body body model.UpdateImageRequest true "Base64 image payload"
// @Success 200 {object} model.ImageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /person-image-api/{person_id} [patch]
func (h *ImageHandler) UpdatePersonImage(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("person_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid person id"})
		return
	}

	var req model.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.imageService.UpdatePersonImage(c.Request.Context(), personID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Image not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to replace image", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateReportImage godoc
// @Summary Upload a report photo as a base64 payload
// @Tags Image
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateReportImageRequest true "Base64 image payload"
// @Success 201 {object} model.ImageResponse
// @Router /report-image-api [post]
func (h *ImageHandler) CreateReportImage(c *gin.Context) {
	var req model.CreateReportImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.imageService.CreateReportImage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to upload image", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetReportImage godoc
// @Summary Get a report's current photo
// @Tags Image
// @Produce json
// @Security BearerAuth
// @Param report_id path string true "Report id"
// @Success 200 {object} model.ImageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /report-image-api/{report_id} [get]
func (h *ImageHandler) GetReportImage(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("report_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid report id"})
		return
	}

	resp, err := h.imageService.GetReportImage(reportID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load image"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateReportImage godoc
// @Summary Replace a report's photo
// @Tags Image
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report_id path string true "Report id"
// @Param body body model.UpdateImageRequest true "Base64 image payload"
// @Success 200 {object} model.ImageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /report-image-api/{report_id} [patch]
func (h *ImageHandler) UpdateReportImage(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("report_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid report id"})
		return
	}

	var req model.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.imageService.UpdateReportImage(c.Request.Context(), reportID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Image not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to replace image", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAdoptionImage godoc
// @Summary Upload an adoption photo as a base64 payload
// @Tags Image
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateAdoptionImageRequest true "Base64 image payload"
// @Success 201 {object} model.ImageResponse
// @Router /adoption-image-api [post]
func (h *ImageHandler) CreateAdoptionImage(c *gin.Context) {
	var req model.CreateAdoptionImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.imageService.CreateAdoptionImage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to upload image", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAdoptionImage godoc
// @Summary Get a proposal's current photo
// @Tags Image
// @Produce json
// @Security BearerAuth
// @Param adoption_id path string true "Proposal id"
// @Success 200 {object} model.ImageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-image-api/{adoption_id} [get]
func (h *ImageHandler) GetAdoptionImage(c *gin.Context) {
	proposalID, err := uuid.Parse(c.Param("adoption_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	resp, err := h.imageService.GetAdoptionImage(proposalID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load image"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAdoptionImage godoc
// @Summary Replace a proposal's photo
// @Tags Image
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adoption_id path string true "Proposal id"
// @Param body body model.UpdateImageRequest true "Base64 image payload"
// @Success 200 {object} model.ImageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /adoption-image-api/{adoption_id} [patch]
func (h *ImageHandler) UpdateAdoptionImage(c *gin.Context) {
	proposalID, err := uuid.Parse(c.Param("adoption_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	var req model.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.imageService.UpdateAdoptionImage(c.Request.Context(), proposalID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Image not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to replace image", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
