// Package apperrors provides sentinel error families for semverpack. An error
// created from another with New, Msg or Err keeps its parent reachable through
// errors.Is, so callers can match either a specific kind or the whole family.
package apperrors

// Error extends the standard error interface with helpers for deriving
// related errors and for carrying a process exit code to the CLI.
type Error interface {
	error
	Unwrap() error

	New(msg string) Error                  // child error with its own message
	Msg(msg string) Error                  // same kind, different message
	MsgErr(msg string, err ...error) Error // same kind, different message, extra causes
	Err(err ...error) Error                // same kind and message, extra causes
	SetExpandError(bool) Error             // ErrorAll includes causes when set
	SetExitCode(int) Error
	ExitCode() int
	ErrorAll() string
	UnwrapAll() []error
}
