package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/view"
)

// @Summary Aggregate report
// @Description Completion rate, resources, active volunteers, task type distribution and weekly trend
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param incident_id query string false "Incident ID or all" default(all)
// @Success 200 {object} view.Report
// @Router /reports [get]
func (h *Handler) getReport(c *gin.Context) {
	incidentID := c.DefaultQuery("incident_id", view.AllIncidents)
	c.JSON(http.StatusOK, h.reportService.Report(c.Request.Context(), incidentID))
}

// @Summary Get operator profile
// @Tags Profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ProfileResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")

	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "profile not found")
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Update operator profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input ProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToProfileModel(input)
	if err := h.profileService.UpdateProfile(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "profile not found")
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(model))
}

// writeMap отвечает состоянием карты; без источника тайлов карта просто не рисуется
func (h *Handler) writeMap(c *gin.Context, log *logrus.Entry, state *service.MapState, err error) {
	if errors.Is(err, models.ErrMapUnavailable) {
		log.Debug("Map is disabled")
		c.JSON(http.StatusOK, MapResponse{Available: false})
		return
	}
	if err != nil {
		h.respondError(c, log, err, "marker not found")
		return
	}
	c.JSON(http.StatusOK, MapResponse{Available: true, MapState: state})
}

// @Summary Current map layer
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MapResponse
// @Router /map [get]
func (h *Handler) getMap(c *gin.Context) {
	log := h.logger.WithField("method", "getMap")
	state, err := h.mapService.State(c.Request.Context())
	h.writeMap(c, log, state, err)
}

// @Summary Redraw map markers
// @Description Clears the layer and draws incidents and the filtered tasks again
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param incident_id query string false "Incident ID"
// @Param priority query string false "Priority" Enums(All, High, Medium, Low)
// @Success 200 {object} MapResponse
// @Router /map/refresh [post]
func (h *Handler) refreshMap(c *gin.Context) {
	log := h.logger.WithField("method", "refreshMap")

	var query RefreshMapQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	state, err := h.mapService.Refresh(c.Request.Context(), service.MapFilter{
		IncidentID: query.IncidentID,
		Priority:   models.Priority(query.Priority),
	})
	h.writeMap(c, log, state, err)
}

// @Summary Click a map marker
// @Description Selects the marker and centers on it; incident markers become the active incident
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Marker ID, e.g. incident:1"
// @Success 200 {object} MapResponse
// @Failure 404 {object} map[string]string "Marker not found"
// @Router /map/markers/{id}/click [post]
func (h *Handler) clickMarker(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "clickMarker").WithField("id", id)
	state, err := h.mapService.Click(c.Request.Context(), id)
	h.writeMap(c, log, state, err)
}

// @Summary Pan the map
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param pan body PanRequest true "New center"
// @Success 200 {object} MapResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /map/pan [post]
func (h *Handler) panMap(c *gin.Context) {
	var input PanRequest
	log := h.logger.WithField("method", "panMap")

	if !h.bindAndValidate(c, log, &input) {
		return
	}
	state, err := h.mapService.PanTo(c.Request.Context(), pointToCoordinates(input.Latitude, input.Longitude), input.Zoom)
	h.writeMap(c, log, state, err)
}
