// Package pmlog is the client boundary to the system-wide pmlog logging
// subsystem.
//
// The subsystem owns a process-wide table of named logging contexts, each
// with an independently configurable severity threshold. This package
// defines the Library interface through which logctl talks to that table
// (enumerate, find, create, set-level, print), the severity and facility
// codecs, the subsystem error codes, and a file-backed Registry that
// implements Library over the subsystem's on-disk context registry.
package pmlog

// Subsystem limits. The registry refuses to grow past MaxContexts, and
// context names are bounded at MaxContextNameLen bytes.
const (
	MaxContexts       = 63
	MaxContextNameLen = 31
)

// DefaultContextLevel is the level assigned to a newly defined context
// when the caller does not specify one.
const DefaultContextLevel = LevelInfo

// Context is an opaque handle to a logging context. Handles are issued
// by a Library and are only meaningful to the Library that issued them.
type Context any

// Library is the operation surface logctl requires from the logging
// subsystem. The shipped binary uses the file-backed Registry; tests use
// in-memory fakes.
//
// Methods return errors carrying a LogErr code; use Code to extract it
// for diagnostics.
type Library interface {
	// NumContexts returns the total number of registered contexts.
	NumContexts() (int, error)

	// ContextByIndex returns the handle of the i'th context, with i in
	// [0, NumContexts).
	ContextByIndex(i int) (Context, error)

	// ContextName returns the name of the context behind the handle.
	ContextName(ctx Context) (string, error)

	// FindContext looks up a context by exact name.
	FindContext(name string) (Context, error)

	// GetContext returns the context with the given name, creating and
	// registering it at DefaultContextLevel if it does not exist.
	GetContext(name string) (Context, error)

	// ContextLevel returns the context's currently enabled level.
	ContextLevel(ctx Context) (Level, error)

	// SetContextLevel changes the context's enabled level.
	SetContextLevel(ctx Context, level Level) error

	// Print emits a formatted message through the context at the given
	// level. Messages below the context's enabled level are dropped
	// silently; that is not an error.
	Print(ctx Context, level Level, format string, args ...any) error
}
