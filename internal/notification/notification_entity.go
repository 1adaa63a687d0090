package notification

import (
	"time"

	"github.com/google/uuid"
)

const KindLeaveReviewed = "leave_reviewed"

type Notification struct {
	ID        uuid.UUID  `db:"id"`
	EventID   string     `db:"event_id"`
	UserID    uuid.UUID  `db:"user_id"`
	Kind      string     `db:"kind"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	LeaveID   *uuid.UUID `db:"leave_id"`
	ReadAt    *time.Time `db:"read_at"`
	CreatedAt time.Time  `db:"created_at"`
}
