package dashboard

import "time"

type UnitShare struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type OnLeave struct {
	LeaveID   string `json:"leave_id"`
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	LeaveType string `json:"leave_type"`
	TypeLabel string `json:"leave_type_label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type RecentStaff struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Birthday struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	// NextOn is the next occurrence on or after the summary day.
	NextOn string `json:"next_on"`
}

type SummaryResponse struct {
	Date              string        `json:"date"`
	TotalStaff        int64         `json:"total_staff"`
	TotalUnits        int64         `json:"total_units"`
	UnitDistribution  []UnitShare   `json:"unit_distribution"`
	OnLeaveToday      []OnLeave     `json:"on_leave_today"`
	PendingLeaves     int64         `json:"pending_leaves"`
	RecentlyHired     []RecentStaff `json:"recently_hired"`
	UpcomingBirthdays []Birthday    `json:"upcoming_birthdays"`
}
