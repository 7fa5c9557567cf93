package clienterrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)

	ErrPANExists = apperror.New(
		apperror.CodeConflict,
		"PAN already exists",
		http.StatusConflict,
	)
)
