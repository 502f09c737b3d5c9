package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

// IncidentQuery параметры списка инцидентов
type IncidentQuery struct {
	Filter   view.IncidentFilter
	Sort     view.SortKey
	Page     int
	PageSize int
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	DeleteIncident(ctx context.Context, id string) error
	ListIncidents(ctx context.Context, q IncidentQuery) (view.Page[models.Incident], error)
	AllIncidents(ctx context.Context) []models.Incident
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
	pageSize  int
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.Publisher, pageSize int) IncidentService {
	if pageSize < 1 {
		pageSize = view.IncidentsPageSize
	}
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		pageSize:  pageSize,
		now:       time.Now,
	}
}

// CreateIncident создает инцидент с новым id; пустой статус становится Active, пустая дата сегодняшней
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"name":    incident.Name,
	})
	log.Info("Attempting to create a new incident")

	incident.ID = uuid.NewString()
	if incident.Status == "" {
		incident.Status = models.IncidentActive
	}
	if incident.DateReported.IsZero() {
		y, m, d := s.now().Date()
		incident.DateReported = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	s.repo.Add(*incident)

	publish(ctx, log, s.publisher, webhook.NewEvent("incident", webhook.ActionCreated, incident.ID, incident))
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	incident, ok := s.repo.Get(id)
	if !ok {
		log.Warn("Incident not found")
		return nil, fmt.Errorf("service: could not get incident %s: %w", id, models.ErrNotFound)
	}
	return &incident, nil
}

// UpdateIncident заменяет инцидент целиком
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	if !s.repo.Update(*incident) {
		log.Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for update: %w", incident.ID, models.ErrNotFound)
	}

	publish(ctx, log, s.publisher, webhook.NewEvent("incident", webhook.ActionUpdated, incident.ID, incident))
	log.Info("Incident updated successfully")
	return nil
}

// DeleteIncident удаляет инцидент; повторное удаление не ошибка
func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if !s.repo.Delete(id) {
		log.Info("Incident already absent")
		return nil
	}

	publish(ctx, log, s.publisher, webhook.NewEvent("incident", webhook.ActionDeleted, id, nil))
	log.Info("Incident deleted successfully")
	return nil
}

// ListIncidents фильтр, затем сортировка, затем страница
func (s *incidentService) ListIncidents(ctx context.Context, q IncidentQuery) (view.Page[models.Incident], error) {
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = s.pageSize
	}
	if q.Sort == "" {
		q.Sort = view.DefaultSort
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      q.Page,
		"page_size": q.PageSize,
		"sort":      q.Sort,
	})

	filtered := view.FilterIncidents(s.repo.List(), q.Filter)
	page := view.Paginate(view.SortIncidents(filtered, q.Sort), q.Page, q.PageSize)

	log.WithField("count", len(page.Items)).Debug("Incidents listed successfully")
	return page, nil
}

func (s *incidentService) AllIncidents(ctx context.Context) []models.Incident {
	return s.repo.List()
}
