package pmlog

import (
	"sort"

	"github.com/pmlog/logctl/internal/pattern"
)

// Record is a snapshot of one context captured during enumeration.
// Records are transient: they are valid for the duration of a single
// command and are never mutated after creation.
type Record struct {
	Context Context
	Name    string
}

// List enumerates the contexts known to lib, keeps those matching pat,
// and returns them sorted by name using a case-insensitive,
// locale-independent byte comparison. The sort is stable with respect
// to enumeration order.
//
// The whole operation fails on the first library error: a failing or
// non-positive count (a healthy subsystem always has at least the
// global context), a failing per-index fetch, or more surviving records
// than MaxContexts. A misbehaving library reporting an inconsistent
// count is surfaced as ErrTooManyContexts rather than truncated.
func List(lib Library, pat pattern.Pattern) ([]Record, error) {
	n, err := lib.NumContexts()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrUnknown
	}

	records := make([]Record, 0, MaxContexts+1)
	for i := 0; i < n; i++ {
		ctx, err := lib.ContextByIndex(i)
		if err != nil {
			return nil, err
		}
		name, err := lib.ContextName(ctx)
		if err != nil {
			return nil, err
		}
		if !pat.Matches(name) {
			continue
		}
		records = append(records, Record{Context: ctx, Name: name})
		if len(records) > MaxContexts {
			return nil, ErrTooManyContexts
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return lessFold(records[i].Name, records[j].Name)
	})
	return records, nil
}

// FindExact resolves a single non-wildcard name through a direct
// library lookup, avoiding the cost and ambiguity of enumeration.
// Callers resolve the "." alias and reject wildcards before calling.
func FindExact(lib Library, name string) (Context, error) {
	return lib.FindContext(name)
}

// lessFold compares two names byte-wise, folding ASCII letters to lower
// case. Deliberately locale-independent.
func lessFold(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := foldByte(a[i]), foldByte(b[i])
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
