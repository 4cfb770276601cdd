package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// mapping is a decoded YAML mapping node with its field path.
type mapping struct {
	path   string
	node   *yaml.Node
	keys   []*yaml.Node
	values map[string]*yaml.Node
}

func newMapping(node *yaml.Node, path string) (*mapping, error) {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return nil, typeError(path, node, "a mapping")
	}

	m := &mapping{
		path:   path,
		node:   node,
		values: make(map[string]*yaml.Node, len(node.Content)/2),
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := resolve(node.Content[i]), node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, newError(path, k, "mapping keys must be scalars", nil)
		}
		if _, dup := m.values[k.Value]; dup {
			return nil, newError(joinPath(path, k.Value), k, "duplicate key", nil)
		}
		m.keys = append(m.keys, k)
		m.values[k.Value] = resolve(v)
	}
	return m, nil
}

// lookup returns the value for key. Explicit nulls count as absent.
func (m *mapping) lookup(key string) (*yaml.Node, bool) {
	v, ok := m.values[key]
	if !ok || isNull(v) {
		return nil, false
	}
	return v, true
}

// rejectUnknown fails on the first key, in document order, not in allowed.
func (m *mapping) rejectUnknown(allowed ...string) error {
	for _, k := range m.keys {
		known := false
		for _, a := range allowed {
			if k.Value == a {
				known = true
				break
			}
		}
		if !known {
			return newError(joinPath(m.path, k.Value), k, "unknown field", nil)
		}
	}
	return nil
}

func (m *mapping) child(key string) (*mapping, error) {
	v, ok := m.lookup(key)
	if !ok {
		return nil, nil
	}
	return newMapping(v, joinPath(m.path, key))
}

func (m *mapping) str(key string) (string, error) {
	v, ok := m.lookup(key)
	if !ok {
		return "", nil
	}
	return scalarString(v, joinPath(m.path, key))
}

func (m *mapping) requiredStr(key string) (string, error) {
	s, err := m.str(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", newError(joinPath(m.path, key), m.node, "field is required", nil)
	}
	return s, nil
}

func (m *mapping) int32(key string) (*int32, error) {
	v, ok := m.lookup(key)
	if !ok {
		return nil, nil
	}
	path := joinPath(m.path, key)
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!int" {
		return nil, typeError(path, v, "an integer")
	}
	var n int32
	if err := v.Decode(&n); err != nil {
		return nil, newError(path, v, "integer out of range", err)
	}
	return &n, nil
}

func (m *mapping) boolean(key string) (*bool, error) {
	v, ok := m.lookup(key)
	if !ok {
		return nil, nil
	}
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!bool" {
		return nil, typeError(joinPath(m.path, key), v, "a boolean")
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		return nil, newError(joinPath(m.path, key), v, "invalid boolean", err)
	}
	return &b, nil
}

// stringMap decodes a mapping of string scalars. Keys are returned in
// document order alongside the map.
func (m *mapping) stringMap(key string) (map[string]string, []string, error) {
	child, err := m.child(key)
	if err != nil || child == nil {
		return nil, nil, err
	}

	out := make(map[string]string, len(child.keys))
	order := make([]string, 0, len(child.keys))
	for _, k := range child.keys {
		s, err := child.str(k.Value)
		if err != nil {
			return nil, nil, err
		}
		out[k.Value] = s
		order = append(order, k.Value)
	}
	return out, order, nil
}

// port accepts an integer or string scalar and returns its string form.
func (m *mapping) port(key string) (string, error) {
	v, ok := m.lookup(key)
	if !ok {
		return "", nil
	}
	path := joinPath(m.path, key)
	if v.Kind != yaml.ScalarNode {
		return "", typeError(path, v, "an integer or string")
	}

	var p intstr.IntOrString
	switch v.ShortTag() {
	case "!!int":
		var n int32
		if err := v.Decode(&n); err != nil {
			return "", newError(path, v, "port out of range", err)
		}
		p = intstr.FromInt32(n)
	case "!!str":
		p = intstr.FromString(v.Value)
	default:
		return "", typeError(path, v, "an integer or string")
	}
	return p.String(), nil
}

// scalarString accepts only string scalars. Numbers and booleans must be
// quoted; port is the one integer-or-string field.
func scalarString(v *yaml.Node, path string) (string, error) {
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" {
		return "", typeError(path, v, "a string")
	}
	return v.Value, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func newError(path string, n *yaml.Node, msg string, err error) *DeserializationError {
	e := &DeserializationError{Path: path, Message: msg, Err: err}
	if n != nil {
		e.Line, e.Column = n.Line, n.Column
	}
	return e
}

func typeError(path string, n *yaml.Node, want string) *DeserializationError {
	return newError(path, n, fmt.Sprintf("expected %s, got %s", want, describe(n)), nil)
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return fmt.Sprintf("%s %q", strings.TrimPrefix(n.ShortTag(), "!!"), n.Value)
	default:
		return "an unsupported node"
	}
}
