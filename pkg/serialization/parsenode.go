// Package serialization implements the JSON wire contract shared by every
// qyl model: field-table decoding into typed fields with an additional data
// bag for unknown keys, ordered encoding, composed and discriminated value
// resolution, and enum codecs.
package serialization

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// ParseNode is a read-only view of one JSON value. Typed accessors use the
// comma-ok form; a false result means the value has a different JSON type.
type ParseNode struct {
	r gjson.Result
}

// NewParseNode parses content into a root node. Empty, whitespace-only,
// literal null and malformed input are rejected with a ContractViolation.
func NewParseNode(content []byte) (*ParseNode, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, Violationf("parse", "content is empty")
	}
	if !gjson.ValidBytes(trimmed) {
		return nil, Violationf("parse", "content is not valid JSON")
	}
	r := gjson.ParseBytes(trimmed)
	if r.Type == gjson.Null {
		return nil, Violationf("parse", "content is null")
	}
	return &ParseNode{r: r}, nil
}

// IsNull reports whether the node is a JSON null.
func (n *ParseNode) IsNull() bool { return n == nil || n.r.Type == gjson.Null }

// IsObject reports whether the node is a JSON object.
func (n *ParseNode) IsObject() bool { return n != nil && n.r.IsObject() }

// IsArray reports whether the node is a JSON array.
func (n *ParseNode) IsArray() bool { return n != nil && n.r.IsArray() }

// Raw returns the node's JSON text unchanged.
func (n *ParseNode) Raw() json.RawMessage {
	if n == nil {
		return nil
	}
	return json.RawMessage(n.r.Raw)
}

// Text returns the node as text: strings unquoted, numbers as their literal,
// objects and arrays as raw JSON.
func (n *ParseNode) Text() string {
	if n == nil {
		return ""
	}
	return n.r.String()
}

// BoolValue reports the value of a JSON boolean. The second result is false
// for any other type.
func (n *ParseNode) BoolValue() (bool, bool) {
	switch n.r.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	}
	return false, false
}

// StringValue returns the unquoted value of a JSON string.
func (n *ParseNode) StringValue() (string, bool) {
	if n.r.Type != gjson.String {
		return "", false
	}
	return n.r.Str, true
}

// Float64Value accepts any JSON number.
func (n *ParseNode) Float64Value() (float64, bool) {
	if n.r.Type != gjson.Number {
		return 0, false
	}
	return n.r.Num, true
}

// Int64Value succeeds only when the literal is an integer that fits int64.
func (n *ParseNode) Int64Value() (int64, bool) {
	if n.r.Type != gjson.Number {
		return 0, false
	}
	v, err := strconv.ParseInt(n.r.Raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int32Value succeeds only when the literal is an integer that fits int32.
func (n *ParseNode) Int32Value() (int32, bool) {
	if n.r.Type != gjson.Number {
		return 0, false
	}
	v, err := strconv.ParseInt(n.r.Raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// TimeValue parses an RFC 3339 string.
func (n *ParseNode) TimeValue() (time.Time, bool) {
	s, ok := n.StringValue()
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isInteger reports whether the node is a number written as an integer
// literal. Composed resolution uses it to separate integers from doubles.
func (n *ParseNode) isInteger() bool {
	_, ok := n.Int64Value()
	return ok
}

func (n *ParseNode) isNumber() bool { return n.r.Type == gjson.Number }

// ChildNode returns the value stored under key, or nil when the node is not
// an object or has no such key.
func (n *ParseNode) ChildNode(key string) *ParseNode {
	if !n.IsObject() {
		return nil
	}
	var child *ParseNode
	n.r.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			child = &ParseNode{r: v}
			return false
		}
		return true
	})
	return child
}

// Properties calls fn for each key of an object node in document order.
// Iteration stops when fn returns false.
func (n *ParseNode) Properties(fn func(key string, value *ParseNode) bool) {
	if !n.IsObject() {
		return
	}
	n.r.ForEach(func(k, v gjson.Result) bool {
		return fn(k.Str, &ParseNode{r: v})
	})
}

// Elements returns the elements of an array node.
func (n *ParseNode) Elements() ([]*ParseNode, bool) {
	if !n.IsArray() {
		return nil, false
	}
	arr := n.r.Array()
	out := make([]*ParseNode, len(arr))
	for i := range arr {
		out[i] = &ParseNode{r: arr[i]}
	}
	return out, true
}

// CollectionOf decodes every element of an array node with elem. It fails
// when the node is not an array or any element does not decode.
func CollectionOf[T any](n *ParseNode, elem func(*ParseNode) (T, bool)) ([]T, bool) {
	nodes, ok := n.Elements()
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(nodes))
	for _, node := range nodes {
		v, ok := elem(node)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
