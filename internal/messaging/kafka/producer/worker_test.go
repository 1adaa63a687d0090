package producer

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failOn  map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.failOn[string(m.Key)]; err != nil {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func pendingEvent(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "req-" + id,
		AggregateType: "leave",
		AggregateID:   aggregateID,
		EventType:     "leave_reviewed",
		Topic:         "hr.leave.reviewed.v1",
		Payload:       []byte(`{"leave_id":"` + aggregateID + `"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestRelayBatch(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{pendingEvent("e1", "l1")}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)

		n, err := relayBatch(ctx, repo, writer, logger, batchSize)

		assert.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "hr.leave.reviewed.v1", msg.Topic)
		assert.Equal(t, []byte("l1"), msg.Key)
		assert.Equal(t, "e1", kafka.Header(msg, kafka.HeaderEventID))
		assert.Equal(t, "leave_reviewed", kafka.Header(msg, kafka.HeaderEventType))
		assert.Equal(t, "req-e1", kafka.Header(msg, kafka.HeaderRequestID))
	})

	t.Run("write failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failOn: map[string]error{"l1": errors.New("leader not available")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			pendingEvent("e1", "l1"),
			pendingEvent("e2", "l2"),
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "e1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		n, err := relayBatch(ctx, repo, writer, logger, batchSize)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, writer.written, 1)
		assert.Equal(t, []byte("l2"), writer.written[0].Key)
	})

	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, nil)

		n, err := relayBatch(ctx, repo, &fakeWriter{}, logger, batchSize)
		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := relayBatch(ctx, repo, &fakeWriter{}, logger, batchSize)
		assert.EqualError(t, err, "db down")
	})
}

func TestDrain(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}

	gomock.InOrder(
		repo.EXPECT().ListPending(ctx, 2).Return([]kafka.OutboxEvent{pendingEvent("e1", "l1"), pendingEvent("e2", "l2")}, nil),
		repo.EXPECT().ListPending(ctx, 2).Return([]kafka.OutboxEvent{pendingEvent("e3", "l3")}, nil),
	)
	repo.EXPECT().MarkSent(ctx, gomock.Any()).Return(nil).Times(3)

	assert.NoError(t, drain(ctx, repo, writer, zap.NewNop(), 2))
	assert.Len(t, writer.written, 3)
}
