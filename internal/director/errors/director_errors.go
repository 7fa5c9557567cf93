package directorerrors

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
)

var (
	ErrDirectorNotFound = apperror.New(apperror.CodeNotFound, "Director record not found", http.StatusNotFound)
	ErrDirectorExists   = apperror.New(apperror.CodeConflict, "This director-company relationship already exists", http.StatusConflict)
)
