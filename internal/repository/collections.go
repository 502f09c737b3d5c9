package repository

import (
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/store"
)

// NewIncidentRepository in-memory реестр инцидентов с начальными записями
func NewIncidentRepository(seed []models.Incident) service.IncidentRepository {
	return store.NewCollection(seed)
}

func NewTaskRepository(seed []models.Task) service.TaskRepository {
	return store.NewCollection(seed)
}

func NewVolunteerRepository(seed []models.Volunteer) service.VolunteerRepository {
	return store.NewCollection(seed)
}
