package otherregerrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var ErrRegistrationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Registration not found",
	http.StatusNotFound,
)
