package service

import (
	"context"
	"encoding/json"

	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ProgressDelivery pushes fresh progress snapshots to connected clients.
// Implemented by the WebSocket hub.
type ProgressDelivery interface {
	Send(sessionID string, progress *dto.ProgressResponse)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to document change events: it recomputes the
// session's progress, pushes it to listening clients and bumps the
// operation counters.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	documents  IDocumentService
	delivery   ProgressDelivery
	monitoring IMonitoringService
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	documents IDocumentService,
	delivery ProgressDelivery,
	monitoring IMonitoringService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		documents:  documents,
		delivery:   delivery,
		monitoring: monitoring,
		logger:     log,
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
	var payload dto.DocumentUpdatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages must not retry forever
		return
	}

	cs.monitoring.RecordOperation(ctx, payload.SessionID, payload.Operation)

	progress, err := cs.documents.GetProgress(ctx, payload.SessionID)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to recompute progress", map[string]interface{}{
			"error":      err.Error(),
			"session_id": payload.SessionID,
		})
		msg.Nack()
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.SessionID, progress)
	}

	cs.logger.Info("ConsumerService", "Progress pushed", map[string]interface{}{
		"session_id": payload.SessionID,
		"operation":  payload.Operation,
		"overall":    progress.Overall.Percentage,
	})
	msg.Ack()
}
