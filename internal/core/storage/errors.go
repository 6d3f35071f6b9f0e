package storage

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrPersistence marks every failure reported by the underlying store.
var ErrPersistence = errors.New("persistence failure")

// PersistenceError is a store rejection together with the operation and the
// parameters it was called with, so the caller can log it before propagating.
type PersistenceError struct {
	Op     string
	Params map[string]any
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrPersistence and the store error to errors.Is/As.
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// LogValue renders the error as structured attributes.
func (e *PersistenceError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Params)+2)
	attrs = append(attrs, slog.String("op", e.Op), slog.String("error", e.Err.Error()))
	for k, v := range e.Params {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// Persistence wraps err as a PersistenceError. A nil err stays nil.
func Persistence(op string, params map[string]any, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Params: params, Err: err}
}

// IsPersistence reports whether err is a store failure.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
