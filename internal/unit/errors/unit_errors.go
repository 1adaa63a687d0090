package uniterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"unit not found",
		http.StatusNotFound,
	)
	ErrUnitNameTaken = apperror.NewField(
		apperror.CodeConflict,
		"name",
		"a unit with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidName = apperror.NewField(
		apperror.CodeInvalidInput,
		"name",
		"name must be between 1 and 100 characters",
		http.StatusBadRequest,
	)
)
