package gst

import (
	"errors"
	"strings"

	gsterrors "github.com/Triyambak-CA/client-dashboard/internal/gst/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "gst_registrations_gstin_key":
			return gsterrors.ErrGSTINExists
		case "uq_gst_signatory":
			return gsterrors.ErrSignatoryExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "gst_registrations_gstin_key") {
			return gsterrors.ErrGSTINExists
		}
		if strings.Contains(errMsg, "uq_gst_signatory") {
			return gsterrors.ErrSignatoryExists
		}
	}

	return err
}
