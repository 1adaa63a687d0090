package events

import "time"

const LeaveSubmittedTopic = "hr.leave.submitted.v1"

type LeaveSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	UserID     string    `json:"user_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	DaysCount  int       `json:"days_count"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
