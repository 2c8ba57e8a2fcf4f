// Package methodopts provides a ready-made svcconfig factory for the
// standard per-method call options:
//
//	{
//	  "waitForReady": bool,
//	  "timeout": "1.5s",                     // decimal seconds, "s" suffix
//	  "maxRequestMessageBytes": 4194304,     // int or decimal string
//	  "maxResponseMessageBytes": "4194304"
//	}
//
// All fields are optional and singletons; unknown fields are ignored for
// forward compatibility. The svcconfig compiler stays agnostic to this
// payload — callers with different per-method settings supply their own
// factory instead.
package methodopts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/routekit/svcconfig/pkg/svcconfig"
	"github.com/routekit/svcconfig/pkg/tree"
)

// Options carries the call options for one method-config entry.
// Zero Timeout and negative byte limits mean "not set".
type Options struct {
	WaitForReady     *bool
	Timeout          time.Duration
	MaxRequestBytes  int64
	MaxResponseBytes int64
}

// Factory parses one method-config entry into Options. It satisfies
// svcconfig.Factory[*Options].
func Factory(entry *tree.Node) (*Options, error) {
	if entry.Kind != tree.Object {
		return nil, fmt.Errorf("want object, got %s: %w", entry.Kind, svcconfig.ErrWrongType)
	}
	opts := &Options{MaxRequestBytes: -1, MaxResponseBytes: -1}
	seen := map[string]bool{}
	for _, field := range entry.Children {
		if !field.HasKey {
			continue
		}
		switch field.Key {
		case "waitForReady", "timeout", "maxRequestMessageBytes", "maxResponseMessageBytes":
			if seen[field.Key] {
				return nil, fmt.Errorf("%s: %w", field.Key, svcconfig.ErrDuplicateField)
			}
			seen[field.Key] = true
		default:
			continue
		}
		var err error
		switch field.Key {
		case "waitForReady":
			if field.Kind != tree.Bool {
				err = fmt.Errorf("want bool, got %s: %w", field.Kind, svcconfig.ErrWrongType)
				break
			}
			w := field.Value == "true"
			opts.WaitForReady = &w
		case "timeout":
			if field.Kind != tree.String {
				err = fmt.Errorf("want string, got %s: %w", field.Kind, svcconfig.ErrWrongType)
				break
			}
			opts.Timeout, err = parseDuration(field.Value)
		case "maxRequestMessageBytes":
			opts.MaxRequestBytes, err = parseByteLimit(field)
		case "maxResponseMessageBytes":
			opts.MaxResponseBytes, err = parseByteLimit(field)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.Key, err)
		}
	}
	return opts, nil
}

// Behavior returns the copy/destroy descriptor for Options values. Options
// hold no owned resources, so there is no Destroy hook; Copy deep-copies
// the pointer fields so table slots never alias.
func Behavior() svcconfig.Behavior[*Options] {
	return svcconfig.Behavior[*Options]{Copy: (*Options).clone}
}

func (o *Options) clone() *Options {
	if o == nil {
		return nil
	}
	out := *o
	if o.WaitForReady != nil {
		w := *o.WaitForReady
		out.WaitForReady = &w
	}
	return &out
}

// parseDuration parses the wire duration format: non-negative decimal
// seconds with a mandatory "s" suffix, e.g. "30s" or "1.5s".
func parseDuration(s string) (time.Duration, error) {
	raw, found := strings.CutSuffix(s, "s")
	if !found || raw == "" {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	sec, err := strconv.ParseFloat(raw, 64)
	if err != nil || sec < 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

// parseByteLimit accepts a non-negative integer, as a number node or the
// wire's int64-as-string form.
func parseByteLimit(field *tree.Node) (int64, error) {
	if field.Kind != tree.Number && field.Kind != tree.String {
		return 0, fmt.Errorf("want number or string, got %s: %w",
			field.Kind, svcconfig.ErrWrongType)
	}
	n, err := strconv.ParseInt(field.Value, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid byte limit %q", field.Value)
	}
	return n, nil
}
