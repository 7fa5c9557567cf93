package client

import (
	"errors"
	"testing"

	clienterrors "github.com/Triyambak-CA/client-dashboard/internal/client/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapRepositoryError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil))
	})

	t.Run("unique violation on pan maps to conflict", func(t *testing.T) {
		err := mapRepositoryError(&pgconn.PgError{Code: "23505", ConstraintName: "clients_pan_key"})
		assert.ErrorIs(t, err, clienterrors.ErrPANExists)
	})

	t.Run("wrapped driver error is still detected", func(t *testing.T) {
		wrapped := errors.Join(errors.New("create client"), &pgconn.PgError{Code: "23505", ConstraintName: "clients_pan_key"})
		err := mapRepositoryError(wrapped)
		assert.ErrorIs(t, err, clienterrors.ErrPANExists)
	})

	t.Run("message fallback without typed error", func(t *testing.T) {
		err := mapRepositoryError(errors.New(`ERROR: duplicate key value violates unique constraint "clients_pan_key" (SQLSTATE 23505)`))
		assert.ErrorIs(t, err, clienterrors.ErrPANExists)
	})

	t.Run("unrelated errors pass through unchanged", func(t *testing.T) {
		base := errors.New("connection reset")
		assert.Equal(t, base, mapRepositoryError(base))

		other := &pgconn.PgError{Code: "23503", ConstraintName: "gst_registrations_client_id_fkey"}
		assert.Equal(t, error(other), mapRepositoryError(other))
	})
}
