// file: internals/features/school/results/service/errors.go
package service

import (
	"errors"
	"fmt"
)

// Error kinds of the result engine. Controllers map kinds to HTTP codes;
// the engine itself never speaks HTTP.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthorization
	KindNotFound
	KindConflict
	KindLocked
	KindTransient
)

type AppError struct {
	Kind ErrorKind
	// Field carries the offending field for validation errors, empty otherwise.
	Field string
	Msg   string
	// Retryable is set for stale-version and unique-collision conflicts,
	// never for illegal transitions.
	Retryable bool
	cause     error
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error { return e.cause }

func Validation(field, msg string) *AppError {
	return &AppError{Kind: KindValidation, Field: field, Msg: msg}
}

// Authorization errors are deliberately opaque: the missing privilege is not
// leaked to the caller.
func Unauthorized() *AppError {
	return &AppError{Kind: KindAuthorization, Msg: "you are not allowed to perform this action"}
}

func NotFound(what string) *AppError {
	return &AppError{Kind: KindNotFound, Msg: what + " not found"}
}

func Conflict(msg string, retryable bool) *AppError {
	return &AppError{Kind: KindConflict, Msg: msg, Retryable: retryable}
}

func Locked() *AppError {
	return &AppError{Kind: KindLocked, Msg: "record is locked for this period"}
}

func Transient(op string, cause error) *AppError {
	return &AppError{Kind: KindTransient, Msg: op + " failed, please retry", cause: cause}
}

// KindOf extracts the engine kind; unknown errors are treated as transient.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindTransient
}

// IsDuplicateKey matches the Postgres unique_violation SQLSTATE through the
// driver error chain.
func IsDuplicateKey(err error) bool {
	type sqlStater interface{ SQLState() string }
	var st sqlStater
	if errors.As(err, &st) {
		return st.SQLState() == "23505"
	}
	return false
}
