package epfesierrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var ErrRegistrationNotFound = apperror.New(
	apperror.CodeNotFound,
	"EPF/ESI registration not found",
	http.StatusNotFound,
)
