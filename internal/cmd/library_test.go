package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/pmlog/logctl/internal/pattern"
	"github.com/pmlog/logctl/internal/pmlog"
	"github.com/pmlog/logctl/internal/term"
)

// fakeLib is an in-memory pmlog.Library recording the mutations the
// command handlers request.
type fakeLib struct {
	contexts []*fakeContext
	failSet  map[string]error // context name -> SetContextLevel failure
	printErr error
	sets     []setCall
	prints   []printCall
}

type fakeContext struct {
	name  string
	level pmlog.Level
}

type setCall struct {
	name  string
	level pmlog.Level
}

type printCall struct {
	name  string
	level pmlog.Level
	msg   string
}

// newFakeLib returns a library holding the global context plus the
// given names, all at info level.
func newFakeLib(names ...string) *fakeLib {
	lib := &fakeLib{}
	for _, name := range append([]string{pattern.GlobalContextName}, names...) {
		lib.contexts = append(lib.contexts, &fakeContext{name: name, level: pmlog.LevelInfo})
	}
	return lib
}

func (l *fakeLib) NumContexts() (int, error) {
	return len(l.contexts), nil
}

func (l *fakeLib) ContextByIndex(i int) (pmlog.Context, error) {
	if i < 0 || i >= len(l.contexts) {
		return nil, pmlog.ErrInvalidContextIndex
	}
	return l.contexts[i], nil
}

func (l *fakeLib) ContextName(ctx pmlog.Context) (string, error) {
	return ctx.(*fakeContext).name, nil
}

func (l *fakeLib) FindContext(name string) (pmlog.Context, error) {
	for _, c := range l.contexts {
		if c.name == name {
			return c, nil
		}
	}
	return nil, pmlog.ErrContextNotFound
}

func (l *fakeLib) GetContext(name string) (pmlog.Context, error) {
	if ctx, err := l.FindContext(name); err == nil {
		return ctx, nil
	}
	if len(l.contexts) >= pmlog.MaxContexts {
		return nil, pmlog.ErrTooManyContexts
	}
	c := &fakeContext{name: name, level: pmlog.DefaultContextLevel}
	l.contexts = append(l.contexts, c)
	return c, nil
}

func (l *fakeLib) ContextLevel(ctx pmlog.Context) (pmlog.Level, error) {
	return ctx.(*fakeContext).level, nil
}

func (l *fakeLib) SetContextLevel(ctx pmlog.Context, level pmlog.Level) error {
	c := ctx.(*fakeContext)
	if err := l.failSet[c.name]; err != nil {
		return err
	}
	c.level = level
	l.sets = append(l.sets, setCall{name: c.name, level: level})
	return nil
}

func (l *fakeLib) Print(ctx pmlog.Context, level pmlog.Level, format string, args ...any) error {
	if l.printErr != nil {
		return l.printErr
	}
	c := ctx.(*fakeContext)
	l.prints = append(l.prints, printCall{
		name:  c.name,
		level: level,
		msg:   fmt.Sprintf(format, args...),
	})
	return nil
}

// useFakeLib installs lib as the library opened by command handlers
// for the duration of the test.
func useFakeLib(t *testing.T, lib *fakeLib) {
	t.Helper()
	orig := openLibrary
	openLibrary = func() (pmlog.Library, error) { return lib, nil }
	t.Cleanup(func() { openLibrary = orig })
}

// captureOutput redirects term stdout into a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	term.SetOutput(&buf)
	t.Cleanup(term.Reset)
	return &buf
}

// wantParamError asserts err is a parameter error with the given message.
func wantParamError(t *testing.T, err error, msg string) {
	t.Helper()
	var pErr *paramError
	if !errors.As(err, &pErr) {
		t.Fatalf("error = %v, want parameter error %q", err, msg)
	}
	if pErr.msg != msg {
		t.Errorf("parameter error = %q, want %q", pErr.msg, msg)
	}
}

// wantRunError asserts err is a runtime error with the given message.
func wantRunError(t *testing.T, err error, msg string) {
	t.Helper()
	var rErr *runError
	if !errors.As(err, &rErr) {
		t.Fatalf("error = %v, want runtime error %q", err, msg)
	}
	if rErr.msg != msg {
		t.Errorf("runtime error = %q, want %q", rErr.msg, msg)
	}
}
