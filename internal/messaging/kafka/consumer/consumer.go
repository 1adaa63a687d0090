package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader used by consumers.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type LeaveReviewedNotifier interface {
	NotifyLeaveReviewed(ctx context.Context, eventID string, event events.LeaveReviewedEvent) error
}

// ConsumeLeaveReviewed turns leave_reviewed events into inbox notifications.
// Undecodable messages are committed and skipped; a failed notification is left
// uncommitted so it is redelivered after a rebalance or restart.
func ConsumeLeaveReviewed(
	ctx context.Context,
	reader MessageReader,
	notifier LeaveReviewedNotifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_reviewed")
	log.Info("leave reviewed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave reviewed consumer stopped")
				return
			}
			log.Error("fetch leave reviewed message failed", zap.Error(err))
			continue
		}

		handleLeaveReviewed(ctx, reader, notifier, log, msg)
	}
}

func handleLeaveReviewed(
	ctx context.Context,
	reader MessageReader,
	notifier LeaveReviewedNotifier,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.LeaveReviewedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave_reviewed event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	eventID := eventIDOf(msg)
	if err := notifier.NotifyLeaveReviewed(ctx, eventID, event); err != nil {
		log.Error("store leave reviewed notification failed",
			zap.String("event_id", eventID),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit leave reviewed message failed", zap.Error(err))
		return
	}

	log.Info("leave reviewed notification stored",
		zap.String("event_id", eventID),
		zap.String("leave_id", event.LeaveID),
		zap.String("user_id", event.UserID),
	)
}

// eventIDOf prefers the outbox id; messages produced elsewhere fall back to their log position.
func eventIDOf(msg kafkago.Message) string {
	if id := kafka.Header(msg, kafka.HeaderEventID); id != "" {
		return id
	}
	return fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
}
