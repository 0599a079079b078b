package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher announces stored video objects on the processing stream. The
// transcode/thumbnail pipeline consumes them from another service.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, object string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{"body": object},
	}).Err()
}
