package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ServiceError struct {
	Status  int
	Code    string
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func newServiceError(status int, code, message string, cause error) *ServiceError {
	return &ServiceError{Status: status, Code: code, Message: message, Cause: cause}
}

// mapPgError converts store failures into HTTP-shaped service errors. Unique
// violations should never reach here for catalog writes because the
// repositories recover them, so one is reported as a plain conflict.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return newServiceError(http.StatusNotFound, "CATALOG_NOT_FOUND", "not found", err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		return newServiceError(http.StatusConflict, "CATALOG_CONFLICT", "already exists", err)
	case "23503": // foreign_key_violation
		return newServiceError(http.StatusUnprocessableEntity, "CATALOG_PARENT_NOT_FOUND", "referenced record does not exist", err)
	default:
		return newServiceError(http.StatusInternalServerError, "CATALOG_INTERNAL", fmt.Sprintf("database error (%s)", pgErr.Code), err)
	}
}
