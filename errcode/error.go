package errcode

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error carries a catalogue code, optionally on top of the error that
// caused it.
type Error struct {
	Code  Code
	cause error
}

func New(code Code) error {
	return &Error{Code: code}
}

// Wrap attaches code to err. It returns nil when err is nil.
func Wrap(err error, code Code) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, cause: err}
}

func (e *Error) Error() string {
	msg, ok := Lookup(int(e.Code))
	if !ok {
		msg = fmt.Sprintf("unknown error code %d", int(e.Code))
	}

	if e.cause == nil {
		return msg
	}
	return msg + ": " + e.cause.Error()
}

func (e *Error) Cause() error  { return e.cause }
func (e *Error) Unwrap() error { return e.cause }

// CodeOf returns the outermost code attached to err, looking through
// pkg/errors wrappers and Unwrap chains.
func CodeOf(err error) (Code, bool) {
	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Code, true
	}
	return 0, false
}
