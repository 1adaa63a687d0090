package leave

import (
	"go-hrms/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Reviewed reports whether a reviewer must be recorded for this status.
func (s Status) Reviewed() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

type Type string

const (
	TypeAnnual         Type = "ANNUAL"
	TypeSick           Type = "SICK"
	TypeMaternity      Type = "MATERNITY"
	TypePaternity      Type = "PATERNITY"
	TypeMarriage       Type = "MARRIAGE"
	TypeBereavement    Type = "BEREAVEMENT"
	TypeUnpaid         Type = "UNPAID"
	TypeAdministrative Type = "ADMINISTRATIVE"
	TypeEducation      Type = "EDUCATION"
	TypeVolunteer      Type = "VOLUNTEER"
)

var typeLabels = map[Type]string{
	TypeAnnual:         "Annual Leave",
	TypeSick:           "Sick Leave",
	TypeMaternity:      "Maternity Leave",
	TypePaternity:      "Paternity Leave",
	TypeMarriage:       "Marriage Leave",
	TypeBereavement:    "Bereavement Leave",
	TypeUnpaid:         "Unpaid Leave",
	TypeAdministrative: "Administrative Leave",
	TypeEducation:      "Education Leave",
	TypeVolunteer:      "Volunteer Leave",
}

func (t Type) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

func (t Type) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// ValidationRules are the binding tags used by the leave DTOs.
// Pass them to apperror.Init at startup.
func ValidationRules() []apperror.Rule {
	return []apperror.Rule{
		{Tag: "leave_type", Fn: func(fl validator.FieldLevel) bool {
			return Type(fl.Field().String()).Valid()
		}},
		{Tag: "leave_status", Fn: func(fl validator.FieldLevel) bool {
			return Status(fl.Field().String()).Valid()
		}},
	}
}
