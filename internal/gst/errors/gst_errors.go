package gsterrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var (
	ErrRegistrationNotFound = apperror.New(
		apperror.CodeNotFound,
		"GST registration not found",
		http.StatusNotFound,
	)

	ErrGSTINExists = apperror.New(
		apperror.CodeConflict,
		"GSTIN already exists",
		http.StatusConflict,
	)

	ErrSignatoryClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Signatory client not found",
		http.StatusNotFound,
	)

	ErrSignatoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Signatory not found",
		http.StatusNotFound,
	)

	ErrSignatoryExists = apperror.New(
		apperror.CodeConflict,
		"Signatory already added to this GSTIN",
		http.StatusConflict,
	)
)
