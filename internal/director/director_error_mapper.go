package director

import (
	"errors"
	"strings"

	directorerrors "github.com/Triyambak-CA/client-dashboard/internal/director/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// The pair is pre-checked in the service; the composite primary key is the
// backstop against a concurrent insert of the same relationship.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "directors_pkey" {
			return directorerrors.ErrDirectorExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "directors_pkey") {
		return directorerrors.ErrDirectorExists
	}

	return err
}
