package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.NewField(
		apperror.CodeNotFound,
		"user_id",
		"user not found",
		http.StatusNotFound,
	)
	ErrReviewerNotFound = apperror.NewField(
		apperror.CodeNotFound,
		"reviewed_by",
		"reviewer not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.NewField(
		apperror.CodeInvalidInput,
		"user_id",
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.NewField(
		apperror.CodeInvalidInput,
		"leave_type",
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.NewField(
		apperror.CodeInvalidInput,
		"status",
		"invalid leave status",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"start_date",
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"end_date",
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.NewField(
		apperror.CodeInvalidInput,
		"end_date",
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrInvalidDaysCount = apperror.NewField(
		apperror.CodeInvalidInput,
		"days_count",
		"days_count must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidReason = apperror.NewField(
		apperror.CodeInvalidInput,
		"reason",
		"reason must be between 1 and 1000 characters",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.NewField(
		apperror.CodeConflict,
		"start_date",
		"a conflicting leave request already exists for these dates",
		http.StatusConflict,
	)
	ErrNotPending = apperror.NewField(
		apperror.CodeForbiddenTransition,
		"status",
		"only pending leave requests can be changed",
		http.StatusForbidden,
	)
	ErrAlreadyReviewed = apperror.NewField(
		apperror.CodeForbiddenTransition,
		"status",
		"leave request has already been reviewed",
		http.StatusForbidden,
	)
	ErrStatusNotAllowed = apperror.NewField(
		apperror.CodeForbiddenTransition,
		"status",
		"status cannot be set on your own leave request",
		http.StatusForbidden,
	)
)
