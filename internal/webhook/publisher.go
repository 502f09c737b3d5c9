package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "dashboard_events"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event - изменение одной записи дашборда
type Event struct {
	Entity    string    `json:"entity"`
	Action    Action    `json:"action"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"` // Запись после изменения, пусто для удаления
}

// NewEvent событие с текущим временем
func NewEvent(entity string, action Action, id string, payload any) Event {
	return Event{
		Entity:    entity,
		Action:    action,
		EntityID:  id,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, когда доставка вебхуков не настроена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
