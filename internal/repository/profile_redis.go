package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service"
)

// RedisProfileRepository хранит профиль одной JSON-строкой под ключом models.ProfileKey
type RedisProfileRepository struct {
	redisClient *redis.Client
}

func NewRedisProfileRepository(redisClient *redis.Client) service.ProfileRepository {
	return &RedisProfileRepository{redisClient: redisClient}
}

// Get возвращает сохраненный профиль или профиль по умолчанию, если ключа нет
func (r *RedisProfileRepository) Get(ctx context.Context) (models.UserProfile, error) {
	val, err := r.redisClient.Get(ctx, models.ProfileKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultProfile(), nil
		}
		return models.UserProfile{}, fmt.Errorf("failed to get profile from redis: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(val, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profile, nil
}

// Save перезаписывает профиль, срок жизни ключа не ограничен
func (r *RedisProfileRepository) Save(ctx context.Context, profile models.UserProfile) error {
	val, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := r.redisClient.Set(ctx, models.ProfileKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile to redis: %w", err)
	}
	return nil
}
