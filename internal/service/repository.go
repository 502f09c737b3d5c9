package service

import (
	"context"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// IncidentRepository определяет контракт реестра инцидентов.
// Update и Delete молча игнорируют отсутствующий id и сообщают, было ли изменение.
type IncidentRepository interface {
	Add(incident models.Incident)
	Update(incident models.Incident) bool
	Delete(id string) bool
	Get(id string) (models.Incident, bool)
	List() []models.Incident
}

type TaskRepository interface {
	Add(task models.Task)
	Update(task models.Task) bool
	Delete(id string) bool
	Get(id string) (models.Task, bool)
	List() []models.Task
}

type VolunteerRepository interface {
	Add(volunteer models.Volunteer)
	Update(volunteer models.Volunteer) bool
	Delete(id string) bool
	Get(id string) (models.Volunteer, bool)
	List() []models.Volunteer
}

// ProfileRepository хранилище профиля оператора. Get возвращает профиль по умолчанию, пока ничего не сохранено.
type ProfileRepository interface {
	Get(ctx context.Context) (models.UserProfile, error)
	Save(ctx context.Context, profile models.UserProfile) error
}
