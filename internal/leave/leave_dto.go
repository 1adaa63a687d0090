package leave

import "go-hrms/internal/shared/scope"

// LeaveFields are the attributes shared by every write of a leave request.
type LeaveFields struct {
	LeaveType string `json:"leave_type" binding:"required,leave_type"`
	StartDate string `json:"start_date" binding:"required,ymd"`
	EndDate   string `json:"end_date" binding:"required,ymd"`
	DaysCount int    `json:"days_count" binding:"required,min=1"`
	Reason    string `json:"reason" binding:"required,max=1000"`
}

// SubmitLeaveRequest is used by staff for their own requests. Status may be
// omitted; anything other than PENDING is refused.
type SubmitLeaveRequest struct {
	LeaveFields
	Status string `json:"status,omitempty"`
}

// CreateLeaveRequest is an administrative create on behalf of user_id. A
// reviewed status is always attributed to the acting user.
type CreateLeaveRequest struct {
	LeaveFields
	UserID string `json:"user_id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,leave_status"`
}

// UpdateLeaveRequest is the administrative edit. The owner cannot be changed.
type UpdateLeaveRequest struct {
	LeaveFields
	Status string `json:"status" binding:"required,leave_status"`
}

type ListQuery = scope.ListQuery

type LeaveResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name,omitempty"`
	LeaveType      string  `json:"leave_type"`
	LeaveTypeLabel string  `json:"leave_type_label"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DaysCount      int     `json:"days_count"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	ReviewedBy     *string `json:"reviewed_by"`
	ReviewerName   *string `json:"reviewer_name,omitempty"`
	ReviewedAt     *string `json:"reviewed_at"`
	CreatedAt      string  `json:"created_at,omitempty"`
}
