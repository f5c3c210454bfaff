package cmd

import (
	"fmt"

	"github.com/pmlog/logctl/internal/pmlog"
)

// Process exit codes. Parameter and runtime errors share an exit code
// and differ only in printed diagnostics; help gets its own code so
// scripts can tell "usage shown" from success and failure.
const (
	exitFailure = 1
	exitHelp    = 2
)

// ExitCodeError carries a process exit code out of Execute.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates an ExitCodeError with the given code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// paramError is a malformed, missing, extra, or semantically invalid
// argument, detected before any subsystem call where possible. Execute
// prints the message followed by the help hint.
type paramError struct {
	msg string
}

func paramErrorf(format string, args ...any) error {
	return &paramError{msg: fmt.Sprintf(format, args...)}
}

func (e *paramError) Error() string {
	return e.msg
}

// runError is a failure reported by the logging subsystem or kernel
// interface after the arguments were otherwise valid. Execute prints
// the message as-is.
type runError struct {
	msg string
}

func runErrorf(format string, args ...any) error {
	return &runError{msg: fmt.Sprintf(format, args...)}
}

// libError renders a subsystem failure with its error code and debug
// string, in the form "Error <op>: 0x%08X (<dbg>)".
func libError(op string, err error) error {
	code := pmlog.Code(err)
	return runErrorf("Error %s: 0x%08X (%s)", op, uint32(code), code.DbgString())
}

func (e *runError) Error() string {
	return e.msg
}
