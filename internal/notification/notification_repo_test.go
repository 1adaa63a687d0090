package notification_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/notification"
	"go-hrms/internal/shared/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setupRepoTest(t *testing.T) (notification.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return notification.NewRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	n := &notification.Notification{
		ID:        uuid.New(),
		EventID:   "evt-1",
		UserID:    uuid.New(),
		Kind:      notification.KindLeaveReviewed,
		Title:     "Leave request Approved",
		Body:      "body",
		LeaveID:   &leaveID,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("inserted", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(`INSERT INTO notifications \(id,event_id,user_id,kind,title,body,leave_id,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) ON CONFLICT \(event_id, user_id\) DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := repo.Create(ctx, n)

		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate event", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(`INSERT INTO notifications`).WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.Create(ctx, n)

		assert.NoError(t, err)
		assert.False(t, inserted)
	})
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := setupRepoTest(t)
	userID := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE \(user_id = \$1 AND read_at IS NULL\)`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`SELECT id, event_id, user_id, kind, title, body, leave_id, read_at, created_at FROM notifications WHERE \(user_id = \$1 AND read_at IS NULL\) ORDER BY created_at DESC LIMIT 5 OFFSET 10`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "kind", "title", "body", "leave_id", "read_at", "created_at"}).
			AddRow(uuid.NewString(), "evt-1", userID.String(), "leave_reviewed", "t", "b", nil, nil, created))

	items, total, err := repo.ListByUser(context.Background(), userID, true, scope.ListQuery{Page: 3, PageSize: 5})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, items, 1)
	assert.Equal(t, userID, items[0].UserID)
	assert.Nil(t, items[0].LeaveID)
	assert.Nil(t, items[0].ReadAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()
	at := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("own notification", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(`UPDATE notifications SET read_at = COALESCE\(read_at, \$1\) WHERE id = \$2 AND user_id = \$3`).
			WithArgs(at, id, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.MarkRead(ctx, userID, id, at)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("someone else's notification", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(`UPDATE notifications`).WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.MarkRead(ctx, userID, id, at)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := setupRepoTest(t)
	userID := uuid.New()
	at := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE notifications SET read_at = \$1 WHERE \(user_id = \$2 AND read_at IS NULL\)`).
		WithArgs(at, userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkAllRead(context.Background(), userID, at)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
