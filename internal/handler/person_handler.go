package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/repository"
	"github.com/sosfido/sosfido-api/internal/service"
)

// PersonHandler handles person profile and place endpoints
type PersonHandler struct {
	personService *service.PersonService
	places        *repository.PlaceRepository
}

func NewPersonHandler(personService *service.PersonService, places *repository.PlaceRepository) *PersonHandler {
	return &PersonHandler{
		personService: personService,
		places:        places,
	}
}

// ListPersons godoc
// @Summary List persons, optionally filtered by email
// @Tags Person
// @Produce json
// @Security BearerAuth
// @Param email query string false "Account email filter"
// @Success 200 {array} model.PersonResponse
// @Router /person-api [get]
func (h *PersonHandler) ListPersons(c *gin.Context) {
	persons, err := h.personService.List(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list persons"})
		return
	}
	c.JSON(http.StatusOK, persons)
}

// GetPerson godoc
// @Summary Get one person with nested account, address and profile image
// @Tags Person
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person id"
// @Success 200 {object} model.PersonResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /person-api/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid person id"})
		return
	}

	person, err := h.personService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load person"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// UpdatePerson godoc
// @Summary Partially update a person; only fields present in the payload change
// @Tags Person
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person id"
// @Param body body model.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} model.PersonResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /person-api/{id} [patch]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid person id"})
		return
	}

	var req model.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	person, err := h.personService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Person not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update person", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, person)
}

// ListPlaces godoc
// @Summary List every place
// @Tags Place
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PlaceResponse
// @Router /location-api [get]
func (h *PersonHandler) ListPlaces(c *gin.Context) {
	places, err := h.places.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list places"})
		return
	}

	responses := make([]model.PlaceResponse, 0, len(places))
	for i := range places {
		responses = append(responses, places[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}
