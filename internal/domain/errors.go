package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so transport adapters can map them to
// status codes without inspecting message text.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidArgument
	KindNotFound
	KindUnavailable
	KindConflict
)

// Error is the failure type returned by services and repositories.
// NotFound errors carry the entity that was missing ("branch", "dish",
// "reservation", "menu_entry") so callers can surface it to the user.
type Error struct {
	Kind   ErrorKind
	Entity string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindNotFound && e.Entity != "":
		return fmt.Sprintf("%s not found", e.Entity)
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Msg: msg}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity}
}

func Unavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf extracts the kind from any error in the chain; unclassified
// errors are treated as internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// NotFoundEntity reports which entity a NotFound error refers to.
func NotFoundEntity(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Kind == KindNotFound {
		return de.Entity
	}
	return ""
}
