package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "profile", "method": "GetProfile"}).
			WithError(err).Error("Failed to load profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile сохраняет профиль при каждом изменении
func (s *profileService) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "UpdateProfile",
	})
	log.Info("Saving operator profile")

	if err := s.repo.Save(ctx, *profile); err != nil {
		log.WithError(err).Error("Failed to save profile")
		return fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile saved successfully")
	return nil
}
