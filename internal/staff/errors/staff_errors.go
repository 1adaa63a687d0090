package stafferrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff member not found",
		http.StatusNotFound,
	)
	ErrUnitNotFound = apperror.NewField(
		apperror.CodeNotFound,
		"unit_id",
		"unit not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.NewField(
		apperror.CodeConflict,
		"email",
		"this email address is already in use",
		http.StatusConflict,
	)
	ErrIdentityNumberTaken = apperror.NewField(
		apperror.CodeConflict,
		"identity_number",
		"this identity number is already registered",
		http.StatusConflict,
	)
	ErrStaffNumberTaken = apperror.NewField(
		apperror.CodeConflict,
		"staff_number",
		"staff number already issued",
		http.StatusConflict,
	)
	ErrRoleNotAllowed = apperror.NewField(
		apperror.CodeForbidden,
		"role",
		"you are not allowed to assign this role",
		http.StatusForbidden,
	)
	ErrTargetProtected = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to modify this staff member",
		http.StatusForbidden,
	)
	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeForbidden,
		"you cannot delete your own account",
		http.StatusForbidden,
	)
	ErrHasReviewedLeaves = apperror.New(
		apperror.CodeConflict,
		"staff member has reviewed leave requests and cannot be deleted",
		http.StatusConflict,
	)
	ErrWrongPassword = apperror.NewField(
		apperror.CodeInvalidInput,
		"current_password",
		"current password is incorrect",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.NewField(
		apperror.CodeInvalidInput,
		"role",
		"role must be one of admin, manager or staff",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"birth_date",
		"birth_date must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidUnitID = apperror.NewField(
		apperror.CodeInvalidInput,
		"unit_id",
		"invalid unit id",
		http.StatusBadRequest,
	)
)
