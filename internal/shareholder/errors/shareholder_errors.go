package shareholdererrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var ErrShareholderNotFound = apperror.New(
	apperror.CodeNotFound,
	"Shareholder record not found",
	http.StatusNotFound,
)
