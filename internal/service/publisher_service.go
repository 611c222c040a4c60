package service

import (
	"context"
	"encoding/json"
	"time"

	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/pkg/events"
	pktNats "bail-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService fans document change events out to the in-process bus
// and, when configured, mirrors them onto NATS for other instances.
type IPublisherService interface {
	PublishDocumentUpdated(sessionID, operation string)
}

type publisherService struct {
	topicName      string
	pubSub         *gochannel.GoChannel
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPublisherService(
	topicName string,
	pubSub *gochannel.GoChannel,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPublisherService {
	return &publisherService{
		topicName:      topicName,
		pubSub:         pubSub,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// PublishDocumentUpdated runs after the session has been saved, so failures
// here are logged but never surfaced to the caller: the write already won.
func (p *publisherService) PublishDocumentUpdated(sessionID, operation string) {
	event := events.NewDocumentUpdated(sessionID, operation)

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		p.logger.Error("PublisherService", "Failed to marshal event payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Error("PublisherService", "Failed to publish to local bus", map[string]interface{}{
			"error": err.Error(),
			"topic": p.topicName,
		})
	}

	if p.eventPublisher != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.eventPublisher.Publish(ctx, event); err != nil {
			p.logger.Error("PublisherService", "Failed to mirror event to NATS", map[string]interface{}{
				"error": err.Error(),
				"type":  event.EventType(),
			})
		}
	}
}
