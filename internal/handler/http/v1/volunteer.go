package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
)

// @Summary Register a volunteer
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param volunteer body CreateVolunteerRequest true "Volunteer registration request"
// @Success 201 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /volunteers [post]
func (h *Handler) createVolunteer(c *gin.Context) {
	var input CreateVolunteerRequest
	log := h.logger.WithField("method", "createVolunteer")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToVolunteerModel(input)
	if err := h.volunteerService.CreateVolunteer(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "volunteer not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToVolunteerResponse(model))
}

// @Summary List volunteers
// @Tags Volunteers
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search by name or role"
// @Param location query string false "Location"
// @Param skill query string false "Skill"
// @Param status query string false "Status" Enums(All, Available, Assigned, Resting)
// @Success 200 {array} VolunteerResponse
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	log := h.logger.WithField("method", "listVolunteers")

	var query ListVolunteersQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	volunteers := h.volunteerService.ListVolunteers(c.Request.Context(), view.VolunteerFilter{
		Query:    query.Query,
		Location: query.Location,
		Skill:    query.Skill,
		Status:   models.VolunteerStatus(query.Status),
	})
	c.JSON(http.StatusOK, ModelsToVolunteerResponses(volunteers))
}

// @Summary Volunteers grouped by location
// @Description Per location totals, available and assigned counts and a role histogram
// @Tags Volunteers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} view.LocationGroup
// @Router /volunteers/locations [get]
func (h *Handler) volunteerLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.volunteerService.Locations(c.Request.Context()))
}

// @Summary Unique volunteer skills
// @Tags Volunteers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SkillsResponse
// @Router /volunteers/skills [get]
func (h *Handler) volunteerSkills(c *gin.Context) {
	c.JSON(http.StatusOK, SkillsResponse{Skills: h.volunteerService.Skills(c.Request.Context())})
}

// @Summary Get volunteer by ID
// @Tags Volunteers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Success 200 {object} VolunteerResponse
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Router /volunteers/{id} [get]
func (h *Handler) getVolunteer(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getVolunteer").WithField("id", id)

	volunteer, err := h.volunteerService.GetVolunteer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "volunteer not found")
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Update a volunteer
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Param volunteer body UpdateVolunteerRequest true "Volunteer update request"
// @Success 200 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Router /volunteers/{id} [put]
func (h *Handler) updateVolunteer(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateVolunteer").WithField("id", id)

	var input UpdateVolunteerRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToVolunteerModel(input)
	model.ID = id
	if err := h.volunteerService.UpdateVolunteer(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "volunteer not found")
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(model))
}

// @Summary Delete a volunteer
// @Description Removal needs explicit confirmation via confirm=true
// @Tags Volunteers
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Param confirm query bool true "Operator confirmed the removal"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Router /volunteers/{id} [delete]
func (h *Handler) deleteVolunteer(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteVolunteer").WithField("id", id)

	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))
	if err := h.volunteerService.DeleteVolunteer(c.Request.Context(), id, confirmed); err != nil {
		h.respondError(c, log, err, "volunteer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
