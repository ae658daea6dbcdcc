package types

// Node is a schema-less view over a parsed document object. The format
// adapters never deserialize into concrete structs; every shape question is
// an optional-field lookup on a Node.
type Node map[string]any

// Has reports whether the key is present, regardless of its value.
func (n Node) Has(key string) bool {
	_, ok := n[key]
	return ok
}

// GetString returns the string value for key, or "" if the key is absent or
// not a string.
func (n Node) GetString(key string) string {
	if v, ok := n[key].(string); ok {
		return v
	}
	return ""
}

// GetNode returns the nested object for key, or nil if the key is absent or
// not an object.
func (n Node) GetNode(key string) Node {
	switch v := n[key].(type) {
	case Node:
		return v
	case map[string]any:
		return Node(v)
	}
	return nil
}

// GetSlice returns the array value for key, or nil if the key is absent or
// not an array.
func (n Node) GetSlice(key string) []any {
	if v, ok := n[key].([]any); ok {
		return v
	}
	return nil
}

// AsNode converts an arbitrary decoded value to a Node if it is an object.
func AsNode(v any) (Node, bool) {
	switch t := v.(type) {
	case Node:
		return t, true
	case map[string]any:
		return Node(t), true
	}
	return nil, false
}

// IsScalar reports whether v is a leaf value (string, bool, number or nil)
// as opposed to an object or array.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, float64, int, int64:
		return true
	}
	return false
}
