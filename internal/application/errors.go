package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/fyp-portal/internal/repository"
	"gorm.io/gorm"
)

// Error kinds. Handlers map each kind to one HTTP status.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage error")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// Refinements carried alongside a kind.
var (
	// ErrDuplicate marks a uniqueness violation (email, tag name).
	ErrDuplicate        = errors.New("already exists")
	ErrDuplicateRequest = errors.New("you have already requested access to this project")
	ErrReconciliation   = errors.New("uploaded artifacts require manual cleanup")
)

type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return nil
}

func validationErr(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func forbiddenErr(msg string) error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

func notFoundErr(what string) error {
	return &Error{Kind: ErrNotFound, Message: what + " not found"}
}

func conflictErr(msg string, err error) error {
	return &Error{Kind: ErrConflict, Message: msg, Err: err}
}

func duplicateErr(msg string, err error) error {
	if err == nil {
		return &Error{Kind: ErrConflict, Message: msg, Err: ErrDuplicate}
	}
	return &Error{Kind: ErrConflict, Message: msg, Err: fmt.Errorf("%w: %w", ErrDuplicate, err)}
}

func duplicateRequestErr(err error) error {
	if err == nil {
		return &Error{Kind: ErrConflict, Message: ErrDuplicateRequest.Error(), Err: ErrDuplicateRequest}
	}
	return &Error{Kind: ErrConflict, Message: ErrDuplicateRequest.Error(), Err: fmt.Errorf("%w: %w", ErrDuplicateRequest, err)}
}

func storageErr(msg string, err error) error {
	return &Error{Kind: ErrStorage, Message: msg, Err: err}
}

// translate maps repository failures onto error kinds. Errors that
// already carry a kind pass through untouched.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFoundErr(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicateErr(what+" already exists", err)
	case errors.Is(err, repository.ErrStateChanged):
		return conflictErr(what+" was modified concurrently, reload and try again", err)
	default:
		return storageErr("failed to access "+what, err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
