package salaryerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.NewField(
		apperror.CodeNotFound,
		"user_id",
		"user not found",
		http.StatusNotFound,
	)
	ErrSalaryExists = apperror.NewField(
		apperror.CodeConflict,
		"pay_date",
		"a salary record already exists for this user on this pay date",
		http.StatusConflict,
	)
	ErrInvalidNetSalary = apperror.NewField(
		apperror.CodeInvalidInput,
		"net_salary",
		"net_salary must be zero or more with at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidGrossSalary = apperror.NewField(
		apperror.CodeInvalidInput,
		"gross_salary",
		"gross_salary must be zero or more with at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidPayDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"pay_date",
		"pay_date must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.NewField(
		apperror.CodeInvalidInput,
		"user_id",
		"invalid user id",
		http.StatusBadRequest,
	)
)
