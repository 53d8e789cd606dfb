package apperrors

import (
	"errors"
	"strings"
)

type appError struct {
	msg         string
	base        error   // parent kind, for errors.Is
	causes      []error // attached via Msg, MsgErr or Err
	exitCode    int
	expandError bool
}

func (e *appError) Error() string {
	return e.msg
}

// ErrorAll returns the message followed by every attached cause when
// expansion is enabled, otherwise the same as Error.
func (e *appError) ErrorAll() string {
	if !e.expandError || len(e.causes) == 0 {
		return e.Error()
	}
	var b strings.Builder
	b.WriteString(e.msg)
	for _, err := range e.causes {
		if err == e.base {
			continue
		}
		b.WriteString("; ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *appError) Unwrap() error {
	return e.base
}

func (e *appError) UnwrapAll() []error {
	return e.causes
}

func (e *appError) New(msg string) Error {
	return &appError{
		msg:         msg,
		base:        e,
		exitCode:    e.exitCode,
		expandError: e.expandError,
	}
}

func (e *appError) Msg(msg string) Error {
	return e.MsgErr(msg)
}

func (e *appError) MsgErr(msg string, errs ...error) Error {
	return &appError{
		msg:         msg,
		base:        e,
		causes:      append([]error{e}, errs...),
		exitCode:    e.exitCode,
		expandError: e.expandError,
	}
}

func (e *appError) Err(errs ...error) Error {
	return e.MsgErr(e.msg, errs...)
}

// SetExpandError returns a copy with the expansion flag updated.
func (e *appError) SetExpandError(flag bool) Error {
	cp := *e
	cp.expandError = flag
	return &cp
}

// SetExitCode returns a copy carrying the given exit code.
func (e *appError) SetExitCode(code int) Error {
	cp := *e
	cp.exitCode = code
	return &cp
}

func (e *appError) ExitCode() int {
	return e.exitCode
}

// Is reports whether target is this error, its parent chain, or any attached
// cause.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if e.base != nil && errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.causes {
		if err == e.base {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// New creates a root error kind.
func New(msg string) Error {
	return &appError{
		msg:      msg,
		exitCode: 1,
	}
}

// ExitCode returns the exit code carried by err, or 1 when err is not an
// apperrors.Error.
func ExitCode(err error) int {
	var ae Error
	if errors.As(err, &ae) && ae.ExitCode() != 0 {
		return ae.ExitCode()
	}
	return 1
}
