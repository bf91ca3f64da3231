package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"

	EventIncidentSynced   = "incident.synced"
	EventIncidentRelinked = "incident.relinked"
)

// Event notifies subscribers that an incident was synced (or relinked to a
// new id) from the upstream.
type Event struct {
	Type       string    `json:"type"`
	IncidentID int       `json:"incident_id"`
	Address    string    `json:"address"`
	IsOpen     bool      `json:"is_open"`
	Timestamp  time.Time `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Publisher queues webhook events for delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher is a Publisher backed by a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes an event onto the delivery queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
