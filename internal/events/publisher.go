// Package events fans task changes out to connected clients over Redis
// pub/sub, one channel per user.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ai-task-manager/internal/model"
	"ai-task-manager/pkg/log"
)

// Publisher broadcasts task events.
type Publisher interface {
	PublishTaskEvent(ctx context.Context, event model.TaskEvent) error
}

// ChannelFor returns the pub/sub channel carrying a user's task events.
func ChannelFor(userID string) string {
	return "task_events:" + userID
}

type redisPublisher struct {
	rdb *redis.Client
	l   log.Logger
}

// NewRedisPublisher creates a Redis-backed Publisher.
func NewRedisPublisher(rdb *redis.Client, l log.Logger) Publisher {
	return &redisPublisher{rdb: rdb, l: l}
}

func (p *redisPublisher) PublishTaskEvent(ctx context.Context, event model.TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	if err := p.rdb.Publish(ctx, ChannelFor(event.UserID), payload).Err(); err != nil {
		p.l.Errorf(ctx, "events.PublishTaskEvent: %v", err)
		return fmt.Errorf("failed to publish task event: %w", err)
	}
	return nil
}

// NopPublisher discards all events. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishTaskEvent(context.Context, model.TaskEvent) error { return nil }
