package svcconfig

import (
	"fmt"

	"github.com/routekit/svcconfig/pkg/tree"
)

const (
	fieldLoadBalancingPolicy = "loadBalancingPolicy"
	fieldMethodConfig        = "methodConfig"
	fieldName                = "name"
	fieldService             = "service"
	fieldMethod              = "method"
)

// Config holds a service-config document: the raw text and the parsed tree,
// owned together.
type Config struct {
	raw  []byte
	root *tree.Node
}

// Parse copies text into owned storage and parses it. A document that fails
// to parse is rejected with ErrMalformedDocument and nothing is retained.
func Parse(text []byte) (*Config, error) {
	raw := make([]byte, len(text))
	copy(raw, text)
	root, err := tree.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &Config{raw: raw, root: root}, nil
}

// Raw returns a copy of the document text the config was parsed from.
func (c *Config) Raw() []byte {
	out := make([]byte, len(c.raw))
	copy(out, c.raw)
	return out
}

// LoadBalancingPolicy extracts the top-level "loadBalancingPolicy" field.
// ok reports whether the field was present; a valid document without it
// returns ("", false, nil). The whole top level is scanned even after the
// field is found, because a malformed sibling invalidates the document.
func (c *Config) LoadBalancingPolicy() (policy string, ok bool, err error) {
	root := c.root
	if root.Kind != tree.Object || root.HasKey {
		return "", false, ErrInvalidRoot
	}
	for _, field := range root.Children {
		if !field.HasKey {
			return "", false, fmt.Errorf("top-level field: %w", ErrMissingKey)
		}
		if field.Key != fieldLoadBalancingPolicy {
			continue
		}
		if ok {
			return "", false, fmt.Errorf("%s: %w", fieldLoadBalancingPolicy, ErrDuplicateField)
		}
		if field.Kind != tree.String {
			return "", false, fmt.Errorf("%s: want string, got %s: %w",
				fieldLoadBalancingPolicy, field.Kind, ErrWrongType)
		}
		policy, ok = field.Value, true
	}
	if !ok {
		return "", false, nil
	}
	return policy, true, nil
}
