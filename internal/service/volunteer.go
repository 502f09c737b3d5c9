package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
)

type VolunteerService interface {
	CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	GetVolunteer(ctx context.Context, id string) (*models.Volunteer, error)
	UpdateVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	DeleteVolunteer(ctx context.Context, id string, confirmed bool) error
	ListVolunteers(ctx context.Context, filter view.VolunteerFilter) []models.Volunteer
	Locations(ctx context.Context) []view.LocationGroup
	Skills(ctx context.Context) []string
}

type volunteerService struct {
	repo      VolunteerRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewVolunteerService(repo VolunteerRepository, logger *logrus.Logger, publisher webhook.Publisher) VolunteerService {
	return &volunteerService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// normalizeSkills обрезает пробелы, выкидывает пустые и повторные навыки
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (s *volunteerService) CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "CreateVolunteer",
		"name":    volunteer.Name,
	})
	log.Info("Attempting to create a new volunteer")

	volunteer.ID = uuid.NewString()
	volunteer.Skills = normalizeSkills(volunteer.Skills)
	if volunteer.Status == "" {
		volunteer.Status = models.VolunteerAvailable
	}
	s.repo.Add(*volunteer)

	publish(ctx, log, s.publisher, webhook.NewEvent("volunteer", webhook.ActionCreated, volunteer.ID, volunteer))
	log.WithField("volunteer_id", volunteer.ID).Info("Volunteer created successfully")
	return nil
}

func (s *volunteerService) GetVolunteer(ctx context.Context, id string) (*models.Volunteer, error) {
	volunteer, ok := s.repo.Get(id)
	if !ok {
		s.logger.WithFields(logrus.Fields{"service": "volunteer", "method": "GetVolunteer", "volunteer_id": id}).Warn("Volunteer not found")
		return nil, fmt.Errorf("service: could not get volunteer %s: %w", id, models.ErrNotFound)
	}
	return &volunteer, nil
}

func (s *volunteerService) UpdateVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "UpdateVolunteer",
		"volunteer_id": volunteer.ID,
	})
	log.Info("Attempting to update volunteer")

	volunteer.Skills = normalizeSkills(volunteer.Skills)
	if !s.repo.Update(*volunteer) {
		log.Warn("Attempted to update a non-existent volunteer")
		return fmt.Errorf("service: volunteer with id %s not found for update: %w", volunteer.ID, models.ErrNotFound)
	}

	publish(ctx, log, s.publisher, webhook.NewEvent("volunteer", webhook.ActionUpdated, volunteer.ID, volunteer))
	log.Info("Volunteer updated successfully")
	return nil
}

// DeleteVolunteer требует явного подтверждения оператора
func (s *volunteerService) DeleteVolunteer(ctx context.Context, id string, confirmed bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "DeleteVolunteer",
		"volunteer_id": id,
	})

	if !confirmed {
		log.Warn("Volunteer delete was not confirmed")
		return fmt.Errorf("service: delete volunteer %s: %w", id, models.ErrConfirmationRequired)
	}
	if !s.repo.Delete(id) {
		log.Info("Volunteer already absent")
		return nil
	}

	publish(ctx, log, s.publisher, webhook.NewEvent("volunteer", webhook.ActionDeleted, id, nil))
	log.Info("Volunteer deleted successfully")
	return nil
}

func (s *volunteerService) ListVolunteers(ctx context.Context, filter view.VolunteerFilter) []models.Volunteer {
	return view.FilterVolunteers(s.repo.List(), filter)
}

func (s *volunteerService) Locations(ctx context.Context) []view.LocationGroup {
	return view.GroupByLocation(s.repo.List())
}

func (s *volunteerService) Skills(ctx context.Context) []string {
	return view.Skills(s.repo.List())
}
