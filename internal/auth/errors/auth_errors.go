package autherrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeUnauthorized,
		"User account is deactivated",
		http.StatusUnauthorized,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailExists = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Administrator role required",
		http.StatusForbidden,
	)
)
