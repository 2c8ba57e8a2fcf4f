package svcconfig

import (
	"sort"
	"strings"
)

// Table is an immutable mapping from call path to method-config value,
// built in one shot by Compile. A fully built table is never mutated and is
// safe for unlimited concurrent Lookup calls.
type Table[T any] struct {
	entries map[string]T
	destroy func(T)
}

func newTable[T any](staged []stagedEntry[T], behavior Behavior[T]) *Table[T] {
	entries := make(map[string]T, len(staged))
	for _, e := range staged {
		// Duplicate paths across entries are a caller error with undefined
		// winner; release the loser so nothing leaks either way.
		if prev, ok := entries[e.path]; ok {
			behavior.destroyValue(prev)
		}
		entries[e.path] = e.value
	}
	return &Table[T]{entries: entries, destroy: behavior.Destroy}
}

// Lookup resolves a call path of the form "/service/method". An exact match
// wins; otherwise the service-level wildcard "/service/*" is tried. There
// is no further fallback: "/*" is never consulted.
func (t *Table[T]) Lookup(path string) (T, bool) {
	if v, ok := t.entries[path]; ok {
		return v, true
	}
	var zero T
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return zero, false
	}
	if v, ok := t.entries[path[:i+1]+"*"]; ok {
		return v, true
	}
	return zero, false
}

// Len reports the number of call paths in the table.
func (t *Table[T]) Len() int { return len(t.entries) }

// Paths returns the table's call paths in sorted order.
func (t *Table[T]) Paths() []string {
	out := make([]string, 0, len(t.entries))
	for p := range t.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Close releases every value in the table through the behavior's Destroy
// hook and empties it. Needed only when the behavior owns resources;
// lookups must not race with or follow Close.
func (t *Table[T]) Close() {
	if t.destroy != nil {
		for _, v := range t.entries {
			t.destroy(v)
		}
	}
	t.entries = nil
}
