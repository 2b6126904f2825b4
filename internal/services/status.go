package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"arxiv-monitor-backend/internal/models"
)

// StatusChannel is the pub/sub channel carrying dashboard status updates.
const StatusChannel = "dashboard_updates"

// RedisStatusPublisher fans digest flow updates out to WebSocket clients via
// Redis pub/sub.
type RedisStatusPublisher struct {
	client *redis.Client
}

func NewRedisStatusPublisher(client *redis.Client) *RedisStatusPublisher {
	return &RedisStatusPublisher{client: client}
}

func (p *RedisStatusPublisher) PublishDigestStatus(ctx context.Context, update models.DigestStatusUpdate) {
	data, err := json.Marshal(models.WSMessage{Type: "digest_status", Payload: update})
	if err != nil {
		return
	}
	if err := p.client.Publish(ctx, StatusChannel, string(data)).Err(); err != nil {
		log.Printf("status: failed to publish digest update: %v", err)
	}
}
