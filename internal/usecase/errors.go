package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
	ErrDuplicateReference = errors.New("transaction reference already used")
	ErrPaymentRejected    = errors.New("payment rejected")
	ErrLedgerUnavailable  = errors.New("ledger unavailable")
	ErrUnsupportedFile    = errors.New("unsupported file type")
)

// ValidationError lists the request fields that were missing or empty.
// errors.Is(err, ErrInvalidInput) holds for it.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Missing) == 0 {
		return ErrInvalidInput.Error()
	}
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
