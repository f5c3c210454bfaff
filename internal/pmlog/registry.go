package pmlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pmlog/logctl/internal/pattern"
)

// Default locations of the subsystem's context registry and log output.
const (
	DefaultRegistryPath = "/etc/pmlog/contexts.yaml"
	DefaultLogPath      = "/var/log/pmlog.log"
)

// Registry is the file-backed Library implementation used by the
// shipped binary. The subsystem's context table is a YAML document
// mapping context names to level names; log output is appended to a
// plain-text log file.
//
// A Registry loads the table once at Open and writes it back after
// every mutation. It is not safe for concurrent use; the tool is a
// single synchronous invocation and the subsystem provides whatever
// cross-process atomicity exists.
type Registry struct {
	path    string
	logPath string
	entries []*regContext
}

// regContext is one row of the context table. Registry handles are
// pointers to these rows.
type regContext struct {
	name  string
	level Level
}

// OpenDefault opens the registry at the subsystem's default locations.
func OpenDefault() (*Registry, error) {
	return Open(DefaultRegistryPath, DefaultLogPath)
}

// Open loads the context registry from path. A missing file yields a
// table holding only the global context; a present but unreadable or
// malformed file is an error. The global context is always present
// after a successful Open.
func Open(path, logPath string) (*Registry, error) {
	r := &Registry{path: path, logPath: logPath}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fileErr("read context registry", err)
		}
		data = nil
	}

	levels, err := parseRegistry(data)
	if err != nil {
		return nil, err
	}

	for name, level := range levels {
		r.entries = append(r.entries, &regContext{name: name, level: level})
	}
	if _, err := r.FindContext(pattern.GlobalContextName); err != nil {
		r.entries = append(r.entries, &regContext{
			name:  pattern.GlobalContextName,
			level: DefaultContextLevel,
		})
	}
	r.sortEntries()

	return r, nil
}

// NumContexts implements Library.
func (r *Registry) NumContexts() (int, error) {
	return len(r.entries), nil
}

// ContextByIndex implements Library.
func (r *Registry) ContextByIndex(i int) (Context, error) {
	if i < 0 || i >= len(r.entries) {
		return nil, fmt.Errorf("context index %d: %w", i, ErrInvalidContextIndex)
	}
	return r.entries[i], nil
}

// ContextName implements Library.
func (r *Registry) ContextName(ctx Context) (string, error) {
	e, err := r.resolve(ctx)
	if err != nil {
		return "", err
	}
	return e.name, nil
}

// FindContext implements Library.
func (r *Registry) FindContext(name string) (Context, error) {
	for _, e := range r.entries {
		if e.name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("context %q: %w", name, ErrContextNotFound)
}

// GetContext implements Library. An existing context is returned as-is;
// otherwise a new one is registered at DefaultContextLevel and the
// registry is written back.
func (r *Registry) GetContext(name string) (Context, error) {
	if ctx, err := r.FindContext(name); err == nil {
		return ctx, nil
	}
	if err := validateContextName(name); err != nil {
		return nil, err
	}
	if len(r.entries) >= MaxContexts {
		return nil, fmt.Errorf("context %q: %w", name, ErrTooManyContexts)
	}

	e := &regContext{name: name, level: DefaultContextLevel}
	r.entries = append(r.entries, e)
	r.sortEntries()
	if err := r.save(); err != nil {
		return nil, err
	}
	return e, nil
}

// ContextLevel implements Library.
func (r *Registry) ContextLevel(ctx Context) (Level, error) {
	e, err := r.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return e.level, nil
}

// SetContextLevel implements Library.
func (r *Registry) SetContextLevel(ctx Context, level Level) error {
	e, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	if !level.Valid() {
		return fmt.Errorf("level %d: %w", level, ErrLevelOutOfRange)
	}
	e.level = level
	return r.save()
}

// Print implements Library. Messages at a level the context has not
// enabled are dropped without error; emitted messages are appended as
// single lines to the subsystem log.
func (r *Registry) Print(ctx Context, level Level, format string, args ...any) error {
	e, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	if level < LevelEmerg || level > MaxLevel {
		return fmt.Errorf("level %d: %w", level, ErrLevelOutOfRange)
	}
	if e.level == LevelNone || level > e.level {
		return nil
	}

	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("%s [%s] %s: %s\n",
		time.Now().UTC().Format(time.RFC3339), e.name,
		strings.ToUpper(level.String()), msg)

	if err := os.MkdirAll(filepath.Dir(r.logPath), 0o750); err != nil {
		return fileErr("create log directory", err)
	}
	f, err := os.OpenFile(r.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return fileErr("open subsystem log", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(line); err != nil {
		return fileErr("write subsystem log", err)
	}
	return nil
}

// resolve checks that a handle was issued by this registry.
func (r *Registry) resolve(ctx Context) (*regContext, error) {
	e, ok := ctx.(*regContext)
	if !ok {
		return nil, ErrInvalidContext
	}
	return e, nil
}

// sortEntries keeps enumeration order deterministic across runs.
func (r *Registry) sortEntries() {
	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].name < r.entries[j].name
	})
}

// validateContextName enforces the subsystem's naming rules: 1 to
// MaxContextNameLen bytes, no wildcard marker, no whitespace.
func validateContextName(name string) error {
	if name == "" || len(name) > MaxContextNameLen {
		return fmt.Errorf("context name %q: %w", name, ErrInvalidParameter)
	}
	if strings.ContainsAny(name, "* \t\n") {
		return fmt.Errorf("context name %q: %w", name, ErrInvalidParameter)
	}
	return nil
}
