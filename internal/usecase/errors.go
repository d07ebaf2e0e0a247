package usecase

import (
	"errors"
	"fmt"

	"heavenstay/pkg/utils"
)

// Sentinel errors. Services wrap them with context, handlers map them to
// HTTP status codes with errors.Is.
var (
	ErrValidation                = errors.New("validation failed")
	ErrInvalidDateRange          = errors.New("invalid date range")
	ErrNotFound                  = errors.New("not found")
	ErrConflict                  = errors.New("conflict")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrForbidden                 = errors.New("forbidden")
	ErrCancellationWindowExpired = errors.New("cancellation window expired")
	ErrIllegalStatusTransition   = errors.New("illegal status transition")
)

func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
}

func notFound(what string, id any) error {
	return fmt.Errorf("%s %v: %w", what, id, ErrNotFound)
}
