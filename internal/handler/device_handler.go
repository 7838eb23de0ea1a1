package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/service"
)

// DeviceHandler handles the push-notification device registry endpoints
type DeviceHandler struct {
	deviceService *service.DeviceService
}

func NewDeviceHandler(deviceService *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// ListDevices godoc
// @Summary List a person's active devices, or every device
// @Tags Device
// @Produce json
// @Security BearerAuth
// @Param person_id query string false "Owning person id"
// @Success 200 {array} model.DeviceResponse
// @Router /person-device-api [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	var personID *uuid.UUID
	if raw := c.Query("person_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid person_id"})
			return
		}
		personID = &id
	}

	devices, err := h.deviceService.List(personID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list devices"})
		return
	}
	c.JSON(http.StatusOK, devices)
}

// GetDevice godoc
// @Summary Get one registered device
// @Tags Device
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device record id"
// @Success 200 {object} model.DeviceResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /person-device-api/{id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid device id"})
		return
	}

	device, err := h.deviceService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load device"})
		return
	}
	c.JSON(http.StatusOK, device)
}

// CreateDevice godoc
// @Summary Register a device as an active push target
// @Tags Device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateDeviceRequest true "Device to register"
// @Success 201 {object} model.DeviceResponse
// @Router /person-device-api [post]
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req model.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	device, err := h.deviceService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to register device", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, device)
}

// UpdateDevice godoc
// @Summary Partially update a device; only fields present in the payload change
// @Tags Device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device record id"
// @Param body body model.UpdateDeviceRequest true "Fields to update"
// @Success 200 {object} model.DeviceResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /person-device-api/{id} [patch]
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid device id"})
		return
	}

	var req model.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	device, err := h.deviceService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Device not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update device", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, device)
}
