package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/mapview"
	"github.com/shenikar/disaster_dashboard/internal/modal"
	"github.com/shenikar/disaster_dashboard/internal/models"
)

// ModalService открывает формы создания и редактирования, подставляя копии записей из хранилищ
type ModalService interface {
	Open(ctx context.Context, kind modal.Kind, id string) (any, error)
	Close(ctx context.Context, kind modal.Kind) any
	SetLocation(ctx context.Context, kind modal.Kind, at models.Coordinates) (any, error)
	State(ctx context.Context, kind modal.Kind) any
	Stop()
}

type modalService struct {
	coordinator *modal.Coordinator
	incidents   IncidentRepository
	tasks       TaskRepository
	volunteers  VolunteerRepository
	logger      *logrus.Logger
}

func NewModalService(coordinator *modal.Coordinator, incidents IncidentRepository, tasks TaskRepository, volunteers VolunteerRepository, logger *logrus.Logger) ModalService {
	return &modalService{
		coordinator: coordinator,
		incidents:   incidents,
		tasks:       tasks,
		volunteers:  volunteers,
		logger:      logger,
	}
}

// defaultLocation стартовая точка маркера: первый инцидент или центр по умолчанию
func (s *modalService) defaultLocation() *models.Coordinates {
	c := mapview.DefaultCenter
	if all := s.incidents.List(); len(all) > 0 {
		c = all[0].Coordinates
	}
	return &c
}

// Open с пустым id открывает форму создания, иначе форму редактирования записи id
func (s *modalService) Open(ctx context.Context, kind modal.Kind, id string) (any, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "modal",
		"method":  "Open",
		"kind":    kind,
		"id":      id,
	})

	switch kind {
	case modal.KindIncident:
		if id == "" {
			s.coordinator.Incident.OpenCreate(s.defaultLocation())
			break
		}
		incident, ok := s.incidents.Get(id)
		if !ok {
			log.Warn("Incident to edit not found")
			return nil, fmt.Errorf("service: open incident form %s: %w", id, models.ErrNotFound)
		}
		c := incident.Coordinates
		s.coordinator.Incident.OpenEdit(incident, &c)

	case modal.KindTask:
		if id == "" {
			s.coordinator.Task.OpenCreate(s.defaultLocation())
			break
		}
		task, ok := s.tasks.Get(id)
		if !ok {
			log.Warn("Task to edit not found")
			return nil, fmt.Errorf("service: open task form %s: %w", id, models.ErrNotFound)
		}
		at := task.Coordinates
		if at == nil {
			at = s.defaultLocation()
		}
		s.coordinator.Task.OpenEdit(task, at)

	case modal.KindVolunteer:
		if id == "" {
			s.coordinator.Volunteer.OpenCreate(nil)
			break
		}
		volunteer, ok := s.volunteers.Get(id)
		if !ok {
			log.Warn("Volunteer to edit not found")
			return nil, fmt.Errorf("service: open volunteer form %s: %w", id, models.ErrNotFound)
		}
		s.coordinator.Volunteer.OpenEdit(volunteer, nil)
	}

	log.Debug("Form opened")
	return s.State(ctx, kind), nil
}

func (s *modalService) Close(ctx context.Context, kind modal.Kind) any {
	s.coordinator.Close(kind)
	return s.State(ctx, kind)
}

// SetLocation конец перетаскивания маркера выбора места
func (s *modalService) SetLocation(ctx context.Context, kind modal.Kind, at models.Coordinates) (any, error) {
	if !s.coordinator.SetLocation(kind, at) {
		return nil, fmt.Errorf("service: %s form: %w", kind, models.ErrNoLocationPicker)
	}
	return s.State(ctx, kind), nil
}

func (s *modalService) State(ctx context.Context, kind modal.Kind) any {
	switch kind {
	case modal.KindIncident:
		return s.coordinator.Incident.Snapshot()
	case modal.KindTask:
		return s.coordinator.Task.Snapshot()
	case modal.KindVolunteer:
		return s.coordinator.Volunteer.Snapshot()
	}
	return nil
}

func (s *modalService) Stop() {
	s.coordinator.Stop()
}
