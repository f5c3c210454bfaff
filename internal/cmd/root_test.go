package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pmlog/logctl/internal/term"
)

// execute runs the CLI with the given argument vector and returns the
// exit code Execute produced (0 for success) plus captured stdout.
func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()

	var buf bytes.Buffer
	term.SetOutput(&buf)
	t.Cleanup(term.Reset)

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := Execute()
	if err == nil {
		return 0, buf.String()
	}
	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Execute() error = %v, want *ExitCodeError", err)
	}
	return exitErr.Code, buf.String()
}

func TestExecuteNoCommand(t *testing.T) {
	useFakeLib(t, newFakeLib())

	code, out := execute(t)
	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	want := "No command specified.\nUse 'logctl help' for usage information.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteInvalidCommand(t *testing.T) {
	useFakeLib(t, newFakeLib())

	code, out := execute(t, "frobnicate")
	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(out, "Invalid command 'frobnicate'") {
		t.Errorf("output = %q, want invalid-command diagnostic", out)
	}
	if !strings.Contains(out, "Use 'logctl help'") {
		t.Errorf("output = %q, want help hint", out)
	}
}

func TestExecuteHelp(t *testing.T) {
	for _, spelling := range []string{"help", "-help", "--help"} {
		t.Run(spelling, func(t *testing.T) {
			code, out := execute(t, spelling)
			if code != exitHelp {
				t.Errorf("exit code = %d, want %d", code, exitHelp)
			}
			if !strings.Contains(out, "logctl COMMAND [PARAM...]") {
				t.Errorf("output = %q, want usage header", out)
			}
			// The level reference covers the codec's full range.
			for _, level := range []string{"none", "emerg", "debug"} {
				if !strings.Contains(out, level) {
					t.Errorf("output missing level %q", level)
				}
			}
		})
	}
}

func TestExecuteDispatchesSubcommand(t *testing.T) {
	lib := newFakeLib("MyApp")
	useFakeLib(t, lib)

	code, out := execute(t, "show", "MyApp")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (output %q)", code, out)
	}
	want := "Context 'MyApp' = info\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteParameterErrorExitCode(t *testing.T) {
	useFakeLib(t, newFakeLib())

	code, out := execute(t, "show", "a", "b")
	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	want := "Invalid parameter 'b'.\nUse 'logctl help' for usage information.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteRuntimeErrorExitCode(t *testing.T) {
	useFakeLib(t, newFakeLib())

	code, out := execute(t, "show", "nope*")
	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	want := "No contexts matched 'nope*'.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteVersion(t *testing.T) {
	code, out := execute(t, "version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(out, "logctl ") {
		t.Errorf("output = %q, want version line", out)
	}
}
