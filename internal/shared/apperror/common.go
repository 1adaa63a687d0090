package apperror

import "net/http"

// Cross-module errors. Module specific ones live in internal/<module>/errors.
var (
	ErrInvalidInput    = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)
	ErrUnauthorized    = New(CodeUnauthorized, "Authentication is required", http.StatusUnauthorized)
	ErrInvalidToken    = New(CodeInvalidToken, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired    = New(CodeInvalidToken, "Token has expired", http.StatusUnauthorized)
	ErrForbidden       = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrNotFound        = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrTooManyRequests = New(CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
	ErrInternal        = New(CodeInternalError, "Internal server error", http.StatusInternalServerError)
)
