package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/view"
)

// Services набор сервисов, которые обслуживает API
type Services struct {
	Incidents  service.IncidentService
	Tasks      service.TaskService
	Volunteers service.VolunteerService
	Profile    service.ProfileService
	Reports    service.ReportService
	Map        service.MapService
	Modals     service.ModalService
}

type Handler struct {
	incidentService  service.IncidentService
	taskService      service.TaskService
	volunteerService service.VolunteerService
	profileService   service.ProfileService
	reportService    service.ReportService
	mapService       service.MapService
	modalService     service.ModalService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  services.Incidents,
		taskService:      services.Tasks,
		volunteerService: services.Volunteers,
		profileService:   services.Profile,
		reportService:    services.Reports,
		mapService:       services.Map,
		modalService:     services.Modals,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bindAndValidate читает JSON тела и проверяет его валидатором; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindQuery то же для параметров строки запроса
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindQuery(input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Query validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFound string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, models.ErrConfirmationRequired):
		log.WithError(err).Warn("Confirmation required")
		c.JSON(http.StatusConflict, gin.H{"error": "confirmation required, repeat with confirm=true"})
	case errors.Is(err, models.ErrNoLocationPicker):
		log.WithError(err).Warn("Form has no location picker")
		c.JSON(http.StatusConflict, gin.H{"error": "form has no location picker"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Navigation links
// @Description Six application views, each link carrying the shared search query. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search query"
// @Success 200 {array} view.Link
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /navigation [get]
func (h *Handler) navigation(c *gin.Context) {
	c.JSON(http.StatusOK, view.Navigation(c.Query("q")))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
