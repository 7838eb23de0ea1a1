package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/service"
)

// ReportHandler handles animal report endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListReports godoc
// @Summary List reports by person or the recent public feed
// @Description Combine person_id or all_reports with abandoned_pet / missing_pet. The public feed covers the last hour.
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param person_id query string false "Reporting person id"
// @Param all_reports query string false "Public feed switch"
// @Param abandoned_pet query string false "Only stray/abandoned reports"
// @Param missing_pet query string false "Only lost-pet reports"
// @Success 200 {array} model.ReportResponse
// @Router /animal-report-api [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	filter := service.ReportFilter{
		Abandoned:  hasQuery(c, "abandoned_pet"),
		Missing:    hasQuery(c, "missing_pet"),
		AllReports: hasQuery(c, "all_reports"),
	}
	if raw := c.Query("person_id"); raw != "" {
		personID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid person_id"})
			return
		}
		filter.PersonID = &personID
	}

	reports, err := h.reportService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport godoc
// @Summary Get one report with nested person, place and latest image
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report id"
// @Success 200 {object} model.ReportResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /animal-report-api/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid report id"})
		return
	}

	report, err := h.reportService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateReport godoc
// @Summary Create a report with its nested place
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateReportRequest true "Report to create"
// @Success 201 {object} model.IDResponse
// @Router /animal-report-api [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.reportService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to create report", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateReport godoc
// @Summary Partially update a report; only fields present in the payload change
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report id"
// @Param body body model.UpdateReportRequest true "Fields to update"
// @Success 200 {object} model.ReportResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /animal-report-api/{id} [patch]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid report id"})
		return
	}

	var req model.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	report, err := h.reportService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Report not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update report", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport godoc
// @Summary Delete a report
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report id"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /animal-report-api/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid report id"})
		return
	}

	if err := h.reportService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete report"})
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: true})
}

// hasQuery reports whether a switch-style query parameter is present
func hasQuery(c *gin.Context, key string) bool {
	_, ok := c.GetQuery(key)
	return ok
}
