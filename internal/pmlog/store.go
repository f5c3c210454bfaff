package pmlog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk shape of the context registry.
type registryFile struct {
	Contexts map[string]string `yaml:"contexts"`
}

// parseRegistry decodes a registry document into a name-to-level table.
// Unknown fields and unrecognized level names are rejected so a
// mangled registry is caught early instead of silently misread.
// Empty input yields an empty table.
func parseRegistry(data []byte) (map[string]Level, error) {
	var file registryFile
	if err := strictUnmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse context registry: %v: %w", err, ErrInvalidFile)
	}

	levels := make(map[string]Level, len(file.Contexts))
	for name, levelName := range file.Contexts {
		if err := validateContextName(name); err != nil {
			return nil, err
		}
		level, ok := ParseLevel(levelName)
		if !ok {
			return nil, fmt.Errorf("context %q: level %q: %w",
				name, levelName, ErrLevelOutOfRange)
		}
		levels[name] = level
	}
	return levels, nil
}

// strictUnmarshal unmarshals YAML data into v, rejecting unknown
// fields. Empty input is valid and leaves v at its zero value.
func strictUnmarshal(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// save writes the context table back to the registry file, creating
// the parent directory if needed.
func (r *Registry) save() error {
	file := registryFile{Contexts: make(map[string]string, len(r.entries))}
	for _, e := range r.entries {
		file.Contexts[e.name] = e.level.String()
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fileErr("encode context registry", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return fileErr("create registry directory", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fileErr("write context registry", err)
	}
	return nil
}
