package repository

import (
	"context"
	"sync"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service"
)

// MemoryProfileRepository профиль живет только в памяти процесса
type MemoryProfileRepository struct {
	mu      sync.RWMutex
	profile *models.UserProfile
}

func NewMemoryProfileRepository() service.ProfileRepository {
	return &MemoryProfileRepository{}
}

func (r *MemoryProfileRepository) Get(_ context.Context) (models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return models.DefaultProfile(), nil
	}
	return *r.profile, nil
}

func (r *MemoryProfileRepository) Save(_ context.Context, profile models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = &profile
	return nil
}
