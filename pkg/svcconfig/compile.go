package svcconfig

import (
	"fmt"

	"github.com/routekit/svcconfig/pkg/tree"
)

// Factory builds the opaque per-entry value for one method-config entry.
// It receives the full entry object, including fields the compiler itself
// consumes ("name"); factories should ignore fields they do not recognize.
// A factory error rejects the whole document.
type Factory[T any] func(entry *tree.Node) (T, error)

// Behavior describes how the compiler clones and releases values produced
// by a Factory. Either hook may be nil: a nil Copy shares values by plain
// assignment, a nil Destroy makes release a no-op. Values that hold owned
// resources must supply both, so that every table slot ends up with an
// independently owned copy.
type Behavior[T any] struct {
	Copy    func(T) T
	Destroy func(T)
}

func (b Behavior[T]) copyValue(v T) T {
	if b.Copy == nil {
		return v
	}
	return b.Copy(v)
}

func (b Behavior[T]) destroyValue(v T) {
	if b.Destroy != nil {
		b.Destroy(v)
	}
}

type stagedEntry[T any] struct {
	path  string
	value T
}

// Compile walks the document's "methodConfig" array and builds the method
// table. Each entry's value is constructed once by factory and replicated
// across every call path the entry names, using behavior's Copy for each
// replica.
//
// Compilation is transactional: any rejection anywhere in the array
// releases all values staged so far and returns no table. A document with
// no "methodConfig" field compiles to an empty table.
func Compile[T any](cfg *Config, factory Factory[T], behavior Behavior[T]) (*Table[T], error) {
	root := cfg.root
	if root.Kind != tree.Object || root.HasKey {
		return nil, ErrInvalidRoot
	}
	var methodConfig *tree.Node
	for _, field := range root.Children {
		if !field.HasKey {
			return nil, fmt.Errorf("top-level field: %w", ErrMissingKey)
		}
		if field.Key != fieldMethodConfig {
			continue
		}
		if methodConfig != nil {
			return nil, fmt.Errorf("%s: %w", fieldMethodConfig, ErrDuplicateField)
		}
		if field.Kind != tree.Array {
			return nil, fmt.Errorf("%s: want array, got %s: %w",
				fieldMethodConfig, field.Kind, ErrWrongType)
		}
		methodConfig = field
	}
	if methodConfig == nil {
		return newTable[T](nil, behavior), nil
	}

	// Pre-pass: count name objects so the staging buffer is sized once.
	slots := 0
	for _, entry := range methodConfig.Children {
		slots += countNames(entry)
	}

	staged := make([]stagedEntry[T], 0, slots)
	for i, entry := range methodConfig.Children {
		var err error
		staged, err = compileEntry(entry, factory, behavior, staged)
		if err != nil {
			for _, e := range staged {
				behavior.destroyValue(e.value)
			}
			return nil, fmt.Errorf("%s[%d]: %w", fieldMethodConfig, i, err)
		}
	}
	return newTable(staged, behavior), nil
}

// countNames returns the number of name objects across all of an entry's
// "name" fields. Shape errors are left for the compilation pass.
func countNames(entry *tree.Node) int {
	n := 0
	for _, field := range entry.Children {
		if field.HasKey && field.Key == fieldName && field.Kind == tree.Array {
			n += len(field.Children)
		}
	}
	return n
}

// compileEntry validates one method-config entry and appends one staged
// copy of its factory value per named call path. The factory's original is
// always released before returning, whether or not the entry validates;
// copies staged for the entry are only appended once the entry has fully
// validated, so a rejection never leaves this entry's copies behind.
func compileEntry[T any](entry *tree.Node, factory Factory[T], behavior Behavior[T], staged []stagedEntry[T]) ([]stagedEntry[T], error) {
	value, err := factory(entry)
	if err != nil {
		return staged, fmt.Errorf("%w: %v", ErrFactoryRejected, err)
	}
	defer behavior.destroyValue(value)

	var paths []string
	for _, field := range entry.Children {
		// Nameless fields inside an entry are skipped, not rejected.
		if !field.HasKey || field.Key != fieldName {
			continue
		}
		if field.Kind != tree.Array {
			return staged, fmt.Errorf("%s: want array, got %s: %w",
				fieldName, field.Kind, ErrWrongType)
		}
		expanded, err := expandNames(field)
		if err != nil {
			return staged, err
		}
		paths = append(paths, expanded...)
	}
	if len(paths) == 0 {
		return staged, fmt.Errorf("entry names no methods: %w", ErrMissingRequiredField)
	}
	for _, p := range paths {
		staged = append(staged, stagedEntry[T]{path: p, value: behavior.copyValue(value)})
	}
	return staged, nil
}
