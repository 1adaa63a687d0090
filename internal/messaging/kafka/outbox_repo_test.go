package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "8d7f6b7e-8f7e-4a8a-9c0e-3a3b1f2c4d5e",
		RequestID:     "req-1",
		AggregateType: "leave",
		AggregateID:   "3a3b1f2c-4d5e-4a8a-9c0e-8d7f6b7e8f7e",
		EventType:     "leave_reviewed",
		Topic:         "hr.leave.reviewed.v1",
		Payload:       []byte(`{"leave_id":"x"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inside transaction", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		repo := kafka.NewOutboxRepository(db)
		e := validEvent()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO outbox_events \(id,request_id,aggregate_type,aggregate_id,event_type,topic,payload,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\)`).
			WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(ctx, nil)
		assert.NoError(t, err)
		assert.NoError(t, repo.WithTx(tx).Create(ctx, e))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid event is not written", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		e := validEvent()
		e.Payload = nil

		err := kafka.NewOutboxRepository(db).Create(ctx, e)

		assert.EqualError(t, err, "outbox payload is required")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := kafka.NewOutboxRepository(db)
	due := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("e1", "r1", "leave", "a1", "leave_submitted", "hr.leave.submitted.v1", []byte(`{}`), "pending", 0, due).
		AddRow("e2", "", "leave", "a2", "leave_reviewed", "hr.leave.reviewed.v1", []byte(`{}`), "failed", 2, due)

	mock.ExpectQuery(`SELECT .* FROM outbox_events WHERE status IN \(\$1,\$2\) AND \(next_retry_at IS NULL OR next_retry_at <= NOW\(\)\) ORDER BY created_at ASC LIMIT 50`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "r1", events[0].RequestID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Mark(t *testing.T) {
	ctx := context.Background()

	t.Run("sent", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectExec(`UPDATE outbox_events SET status = \$1, processed_at = NOW\(\), error_message = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(kafka.OutboxStatusSent, nil, "e1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, kafka.NewOutboxRepository(db).MarkSent(ctx, "e1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectExec(`UPDATE outbox_events SET status = \$1, retry_count = retry_count \+ 1, error_message = LEFT\(\$2, 500\)`).
			WithArgs(kafka.OutboxStatusFailed, "broker down", "e1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(ctx, "e1", "broker down"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestValidateOutboxEvent(t *testing.T) {
	e := validEvent()
	assert.NoError(t, kafka.ValidateOutboxEvent(e))

	e.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(e), "invalid outbox status: queued")

	e = validEvent()
	e.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(e))
}
