package events

import "time"

const LeaveReviewedTopic = "hr.leave.reviewed.v1"

// LeaveReviewedEvent is emitted when a request moves to APPROVED or REJECTED.
type LeaveReviewedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	UserID     string    `json:"user_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Status     string    `json:"status"`
	ReviewedBy string    `json:"reviewed_by"`
	ReviewedAt time.Time `json:"reviewed_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
