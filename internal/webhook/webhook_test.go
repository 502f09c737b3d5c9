package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/disaster_dashboard/internal/config"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

type capture struct {
	mu        sync.Mutex
	bodies    []string
	signature string
	failFirst int
	calls     int
}

func (c *capture) handler(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.calls <= c.failFirst {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	body, _ := io.ReadAll(r.Body)
	c.bodies = append(c.bodies, string(body))
	c.signature = r.Header.Get("X-Webhook-Signature")
	w.WriteHeader(http.StatusNoContent)
}

func (c *capture) delivered() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bodies)
}

func TestRedisPublisher_PushesToQueue(t *testing.T) {
	mr, client := newTestRedis(t)
	p := NewRedisPublisher(client)

	err := p.Publish(context.Background(), NewEvent("incident", ActionCreated, "1", map[string]string{"name": "Banjir"}))

	require.NoError(t, err)
	items, err := mr.List(eventQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)
	var event Event
	require.NoError(t, json.Unmarshal([]byte(items[0]), &event))
	assert.Equal(t, "incident", event.Entity)
	assert.Equal(t, ActionCreated, event.Action)
	assert.Equal(t, "1", event.EntityID)
}

func TestWorker_DeliverSignsAndRetries(t *testing.T) {
	c := &capture{failFirst: 1}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()
	_, client := newTestRedis(t)
	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	w := NewWorker(client, newTestLogger(), cfg)
	payload := `{"entity":"task","action":"deleted","entity_id":"7"}`

	ok := w.deliver(context.Background(), Event{Entity: "task", Action: ActionDeleted, EntityID: "7"}, payload)

	require.True(t, ok)
	assert.Equal(t, 2, c.calls)
	assert.Equal(t, []string{payload}, c.bodies)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), c.signature)
}

func TestWorker_DeliverGivesUp(t *testing.T) {
	c := &capture{failFirst: 10}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()
	_, client := newTestRedis(t)
	cfg := &config.Config{WebhookURL: srv.URL, WebhookTimeout: time.Second, WebhookMaxRetries: 2, WebhookBaseDelay: time.Millisecond}

	ok := NewWorker(client, newTestLogger(), cfg).deliver(context.Background(), Event{}, "{}")

	assert.False(t, ok)
	assert.Equal(t, 2, c.calls)
}

func TestWorker_StartConsumesQueue(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()
	_, client := newTestRedis(t)
	cfg := &config.Config{WebhookURL: srv.URL, WebhookTimeout: time.Second, WebhookMaxRetries: 1, WebhookBaseDelay: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker(client, newTestLogger(), cfg)
	w.Start(ctx)

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, NewEvent("volunteer", ActionUpdated, "3", nil)))

	require.Eventually(t, func() bool { return c.delivered() == 1 }, 3*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-w.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}
