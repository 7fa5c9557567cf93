package bankaccounterrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var ErrBankAccountNotFound = apperror.New(
	apperror.CodeNotFound,
	"Bank account not found",
	http.StatusNotFound,
)
