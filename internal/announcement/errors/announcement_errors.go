package announcementerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrAnnouncementNotFound = apperror.New(
		apperror.CodeNotFound,
		"announcement not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"date",
		"date must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
