package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the presentation layer.
type ErrorKind string

const (
	KindInvalidAmount ErrorKind = "InvalidAmount"
	KindInvalidID     ErrorKind = "InvalidId"
	KindInvalidBudget ErrorKind = "InvalidBudget"
	KindInvalidDate   ErrorKind = "InvalidDate"
	KindNotFound      ErrorKind = "NotFound"
	KindStorage       ErrorKind = "StorageError"
	KindNoData        ErrorKind = "NoData"
	KindInternal      ErrorKind = "Internal"
)

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrStorage) match any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// KindOf maps an error returned by the domain layers to its kind.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	case errors.Is(err, ErrInvalidBudget):
		return KindInvalidBudget
	case errors.Is(err, ErrInvalidDate):
		return KindInvalidDate
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrNoData):
		return KindNoData
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindInternal
	}
}
