package producer

import (
	"context"
	"time"

	"go-hrms/internal/messaging/kafka"

	"go.uber.org/zap"
)

const batchSize = 50

// ProcessOutboxEvents relays pending outbox rows to Kafka until ctx is done.
// Delivery is at-least-once: a row that was written but not marked sent is
// published again on a later pass. Each pass keeps fetching full batches
// until the backlog is drained.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.relay")
	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if err := drain(ctx, repo, writer, log, batchSize); err != nil {
			log.Error("relay outbox events failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger, limit int) error {
	for ctx.Err() == nil {
		n, err := relayBatch(ctx, repo, writer, log, limit)
		if err != nil {
			return err
		}
		if n < limit {
			return nil
		}
	}
	return nil
}

// relayBatch publishes one batch and reports how many rows it picked up.
// Failed rows are scheduled for retry by the repository and do not stop the batch.
func relayBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	log *zap.Logger,
	limit int,
) (int, error) {
	pending, err := repo.ListPending(ctx, limit)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var sent, failed int
	for _, event := range pending {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.Int("retry_count", event.RetryCount),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			failed++
			log.Warn("publish outbox event failed", append(fields, zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("record outbox failure failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// published but still pending, so it goes out again next pass
			log.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
		log.Debug("outbox event sent", fields...)
	}

	log.Info("outbox batch relayed",
		zap.Int("picked", len(pending)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return len(pending), nil
}
