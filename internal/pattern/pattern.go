// Package pattern implements context-name matching for logctl.
//
// A name filter is either an exact name or a literal prefix followed by a
// single trailing wildcard marker. Only the first '*' in a filter is
// significant: everything before it is the required prefix, compared
// byte-exact and case-sensitive. The package also resolves the "."
// convenience alias for the global context.
package pattern

import "strings"

// Wildcard is the match-any marker recognized at the end of a filter.
const Wildcard = "*"

// GlobalContextName is the canonical name of the always-present global
// context. On the command line it may be abbreviated as ".".
const GlobalContextName = "<global>"

// ResolveAlias maps the "." alias to the global context name.
// Any other input is returned unchanged. It is applied once, at the
// point a name is first accepted as user input.
func ResolveAlias(name string) string {
	if name == "." {
		return GlobalContextName
	}
	return name
}

// IsWildcard reports whether s contains the wildcard marker anywhere.
func IsWildcard(s string) bool {
	return strings.Contains(s, Wildcard)
}

// Pattern is a context-name filter. The zero value matches nothing;
// use All or Name to construct one.
type Pattern struct {
	spec string
	all  bool
}

// All returns a pattern that matches every context name.
// It is distinct from Name(""), which only matches the empty name.
func All() Pattern {
	return Pattern{all: true}
}

// Name returns a pattern for the given filter spec, which may be an
// exact name or a prefix ending in the wildcard marker.
func Name(spec string) Pattern {
	return Pattern{spec: spec}
}

// IsAll reports whether the pattern matches every name.
func (p Pattern) IsAll() bool {
	return p.all
}

// IsWildcard reports whether the pattern's spec contains the wildcard
// marker.
func (p Pattern) IsWildcard() bool {
	return !p.all && IsWildcard(p.spec)
}

// String returns the filter spec as entered by the user, or the bare
// wildcard marker for a match-all pattern.
func (p Pattern) String() string {
	if p.all {
		return Wildcard
	}
	return p.spec
}

// Matches reports whether the given context name satisfies the pattern.
// Without a wildcard marker the name must equal the spec exactly. With a
// marker, the name must begin with the prefix before the first marker;
// an empty prefix matches everything.
func (p Pattern) Matches(name string) bool {
	if p.all {
		return true
	}

	marker := strings.Index(p.spec, Wildcard)
	if marker < 0 {
		return name == p.spec
	}

	prefix := p.spec[:marker]
	if prefix == "" {
		return true
	}
	return strings.HasPrefix(name, prefix)
}
