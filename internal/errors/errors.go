// Package errors is the storefront's error import. Sentinels and matching use the standard
// library; wrapping records a stack trace through pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error. Sentinels carry no stack.
func New(text string) error { return stderrors.New(text) }

// Is matches target anywhere in err's chain.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As assigns the first error in err's chain that fits target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Wrap adds message and the caller's stack to err. A nil err stays nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error { return pkgerrors.WithStack(err) }
