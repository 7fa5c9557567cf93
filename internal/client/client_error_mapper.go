package client

import (
	"errors"
	"strings"

	clienterrors "github.com/Triyambak-CA/client-dashboard/internal/client/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Uniqueness is pre-checked in the service; this maps the database-level
// constraint as a backstop so a race never leaks a raw driver error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "clients_pan_key" {
			return clienterrors.ErrPANExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "clients_pan_key") {
		return clienterrors.ErrPANExists
	}

	return err
}
