package partnererrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var ErrPartnerNotFound = apperror.New(
	apperror.CodeNotFound,
	"Partner record not found",
	http.StatusNotFound,
)
