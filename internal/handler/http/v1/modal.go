package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/modal"
)

// modalKind разбирает :kind; при ошибке ответ уже записан
func modalKind(c *gin.Context, log *logrus.Entry) (modal.Kind, bool) {
	kind, ok := modal.ParseKind(c.Param("kind"))
	if !ok {
		log.Warn("Unknown modal kind")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown modal kind"})
	}
	return kind, ok
}

// @Summary Modal state
// @Tags Modals
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Modal kind" Enums(incident, task, volunteer)
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Unknown modal kind"
// @Router /modals/{kind} [get]
func (h *Handler) getModal(c *gin.Context) {
	log := h.logger.WithField("method", "getModal")
	kind, ok := modalKind(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.modalService.State(c.Request.Context(), kind))
}

// @Summary Open a modal
// @Description Without id opens the create form, with id copies the entity into the edit form
// @Tags Modals
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Modal kind" Enums(incident, task, volunteer)
// @Param id query string false "Entity ID to edit"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Entity not found"
// @Router /modals/{kind}/open [post]
func (h *Handler) openModal(c *gin.Context) {
	log := h.logger.WithField("method", "openModal")
	kind, ok := modalKind(c, log)
	if !ok {
		return
	}

	state, err := h.modalService.Open(c.Request.Context(), kind, c.Query("id"))
	if err != nil {
		h.respondError(c, log, err, string(kind)+" not found")
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Close a modal
// @Description Clears the open flag now and the edited entity after a short delay
// @Tags Modals
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Modal kind" Enums(incident, task, volunteer)
// @Success 200 {object} map[string]any
// @Router /modals/{kind}/close [post]
func (h *Handler) closeModal(c *gin.Context) {
	log := h.logger.WithField("method", "closeModal")
	kind, ok := modalKind(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.modalService.Close(c.Request.Context(), kind))
}

// @Summary Move the location picker
// @Description Drag end of the form map marker
// @Tags Modals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Modal kind" Enums(incident, task)
// @Param location body LocationRequest true "New position"
// @Success 200 {object} map[string]any
// @Failure 409 {object} map[string]string "Form has no location picker"
// @Router /modals/{kind}/location [put]
func (h *Handler) setModalLocation(c *gin.Context) {
	log := h.logger.WithField("method", "setModalLocation")
	kind, ok := modalKind(c, log)
	if !ok {
		return
	}

	var input LocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	state, err := h.modalService.SetLocation(c.Request.Context(), kind, pointToCoordinates(input.Latitude, input.Longitude))
	if err != nil {
		h.respondError(c, log, err, "form not found")
		return
	}
	c.JSON(http.StatusOK, state)
}
