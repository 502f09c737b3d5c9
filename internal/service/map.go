package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/mapview"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
)

// MapFilter какие задачи рисовать рядом с инцидентами
type MapFilter struct {
	IncidentID string
	Priority   models.Priority
}

// MapState слой карты и инцидент, выбранный кликом по маркеру
type MapState struct {
	mapview.View
	ActiveIncident string `json:"active_incident,omitempty"`
}

type MapService interface {
	Refresh(ctx context.Context, filter MapFilter) (*MapState, error)
	State(ctx context.Context) (*MapState, error)
	Click(ctx context.Context, markerID string) (*MapState, error)
	PanTo(ctx context.Context, at models.Coordinates, zoom int) (*MapState, error)
}

type mapService struct {
	layer     *mapview.Layer
	incidents IncidentRepository
	tasks     TaskRepository
	logger    *logrus.Logger

	mu             sync.RWMutex
	filter         MapFilter
	activeIncident string
}

// NewMapService без источника тайлов карта отключена и методы возвращают models.ErrMapUnavailable
func NewMapService(tiles mapview.TileLayer, incidents IncidentRepository, tasks TaskRepository, logger *logrus.Logger) MapService {
	s := &mapService{
		incidents: incidents,
		tasks:     tasks,
		logger:    logger,
	}

	center := mapview.DefaultCenter
	if all := incidents.List(); len(all) > 0 {
		center = all[0].Coordinates
	}
	s.layer = mapview.NewLayer(tiles, center, s.onSelect)
	if s.layer == nil {
		logger.WithField("service", "map").Warn("Map tile source is not configured, map disabled")
		return s
	}
	s.redraw()
	return s
}

func (s *mapService) onSelect(m mapview.Marker) {
	if m.Kind != mapview.KindIncident {
		return
	}
	s.mu.Lock()
	s.activeIncident = m.EntityID
	s.mu.Unlock()
}

// redraw полностью заменяет набор маркеров по текущему снимку хранилищ и последнему фильтру.
// Активный инцидент сбрасывается, если его уже нет.
func (s *mapService) redraw() {
	s.mu.RLock()
	filter := s.filter
	s.mu.RUnlock()

	incidents := s.incidents.List()
	tasks := view.FilterTasks(s.tasks.List(), view.TaskFilter{
		IncidentID: filter.IncidentID,
		Priority:   filter.Priority,
	})
	markers := mapview.IncidentMarkers(incidents)
	markers = append(markers, mapview.TaskMarkers(tasks)...)
	s.layer.Replace(markers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeIncident == "" {
		return
	}
	for _, inc := range incidents {
		if inc.ID == s.activeIncident {
			return
		}
	}
	s.activeIncident = ""
}

// Refresh запоминает фильтр задач; он действует на все последующие перерисовки
func (s *mapService) Refresh(ctx context.Context, filter MapFilter) (*MapState, error) {
	if s.layer == nil {
		return nil, models.ErrMapUnavailable
	}
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service":     "map",
		"method":      "Refresh",
		"incident_id": filter.IncidentID,
		"priority":    filter.Priority,
	}).Debug("Map filter changed")
	return s.State(ctx)
}

// State перерисовывает слой перед чтением, так изменения хранилищ сразу видны на карте
func (s *mapService) State(ctx context.Context) (*MapState, error) {
	if s.layer == nil {
		return nil, models.ErrMapUnavailable
	}
	s.redraw()
	return s.snapshot()
}

func (s *mapService) snapshot() (*MapState, error) {
	v, ok := s.layer.View()
	if !ok {
		return nil, models.ErrMapUnavailable
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &MapState{View: v, ActiveIncident: s.activeIncident}, nil
}

// Click выбирает маркер; клик по инциденту делает его активным.
// Маркеры удаленных записей к моменту клика уже сняты.
func (s *mapService) Click(ctx context.Context, markerID string) (*MapState, error) {
	if s.layer == nil {
		return nil, models.ErrMapUnavailable
	}
	s.redraw()
	if _, ok := s.layer.Click(markerID); !ok {
		return nil, fmt.Errorf("service: marker %s: %w", markerID, models.ErrNotFound)
	}
	return s.snapshot()
}

func (s *mapService) PanTo(ctx context.Context, at models.Coordinates, zoom int) (*MapState, error) {
	if s.layer == nil {
		return nil, models.ErrMapUnavailable
	}
	s.layer.PanTo(at, zoom)
	return s.State(ctx)
}
