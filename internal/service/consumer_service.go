package service

import (
	"context"
	"encoding/json"
	"log"

	"pawrescue-be/internal/dto"
	"pawrescue-be/pkg/cache"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains cache invalidation messages off the request path.
// Mutations publish a prefix and return; this worker does the actual
// (potentially slow) Redis scan-and-delete.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	queryCache *cache.QueryCache
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	queryCache *cache.QueryCache,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		queryCache: queryCache,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.CacheInvalidationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal invalidation message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Prefix == "" {
		msg.Ack()
		return
	}

	if err := cs.queryCache.InvalidatePrefix(ctx, payload.Prefix); err != nil {
		// Stale cache entries expire on their own TTL, so log and move on.
		log.Printf("[WARN] Cache invalidation failed for prefix %s: %v", payload.Prefix, err)
	}

	msg.Ack()
}
