// Package tree parses structured configuration documents into a typed node
// tree with ordered children and optional string keys.
//
// The parser is built on gopkg.in/yaml.v3 node decoding, which keeps field
// order and duplicate keys intact where map-based decoding would silently
// collapse them. JSON documents parse natively (JSON is valid YAML); YAML
// input is accepted as a consequence. Consumers that need strict duplicate
// or required-field checks walk the tree themselves.
package tree

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	Object Kind = iota
	Array
	String
	Number
	Bool
	Null
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Null:
		return "null"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Node is one node of a parsed document.
type Node struct {
	Kind Kind

	// Key is the field name when the node is a member of an object. HasKey
	// distinguishes a named field from an array element or the root; a
	// member whose key is not a plain string is kept with HasKey false.
	Key    string
	HasKey bool

	// Value holds the scalar text for String, Number and Bool nodes.
	Value string

	// Children holds object members or array elements in document order.
	// Object members with equal keys are all present.
	Children []*Node
}

// Parse parses text into a document tree. The returned root references only
// its own storage, never text.
func Parse(text []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("parse document: empty input")
	}
	return convert(doc.Content[0], "", false)
}

func convert(n *yaml.Node, key string, hasKey bool) (*Node, error) {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	out := &Node{Key: key, HasKey: hasKey}
	switch n.Kind {
	case yaml.MappingNode:
		out.Kind = Object
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			var (
				child *Node
				err   error
			)
			if k.Kind == yaml.ScalarNode && k.Tag == "!!str" {
				child, err = convert(v, k.Value, true)
			} else {
				// Non-string key: keep the member, but nameless.
				child, err = convert(v, "", false)
			}
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		}
	case yaml.SequenceNode:
		out.Kind = Array
		for _, c := range n.Content {
			child, err := convert(c, "", false)
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		}
	case yaml.ScalarNode:
		out.Value = n.Value
		switch n.Tag {
		case "!!str":
			out.Kind = String
		case "!!int", "!!float":
			out.Kind = Number
		case "!!bool":
			out.Kind = Bool
		case "!!null":
			out.Kind = Null
		default:
			// Exotic scalar tags (timestamps, binary) degrade to strings.
			out.Kind = String
		}
	default:
		return nil, fmt.Errorf("parse document: unsupported node kind %d", n.Kind)
	}
	return out, nil
}
