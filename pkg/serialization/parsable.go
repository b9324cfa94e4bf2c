package serialization

import (
	"encoding/json"
	"maps"
)

// Parsable is implemented by every model that crosses the wire.
type Parsable interface {
	Serialize(w *Writer) error
	Deserialize(n *ParseNode) error
}

// AdditionalData holds keys a model does not declare, or declared keys whose
// value had an unexpected JSON type. Values are kept as json.RawMessage so
// they are re-emitted byte for byte.
type AdditionalData map[string]any

// AdditionalDataHolder is implemented by models that keep unknown keys.
type AdditionalDataHolder interface {
	GetAdditionalData() AdditionalData
	SetAdditionalData(AdditionalData)
}

// Clone returns a shallow copy of the bag.
func (d AdditionalData) Clone() AdditionalData {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Factory builds a model from a node. Factories are total over objects:
// they never fail on missing or extra keys.
type Factory[T any] func(n *ParseNode) (T, error)

// Marshal encodes v.
func Marshal(v Parsable) (json.RawMessage, error) {
	w := NewWriter()
	if err := v.Serialize(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal parses content and builds a model with factory.
func Unmarshal[T any](content []byte, factory Factory[T]) (T, error) {
	n, err := NewParseNode(content)
	if err != nil {
		var zero T
		return zero, err
	}
	return factory(n)
}

// ObjectFactory adapts a constructor into a Factory that deserializes into a
// fresh value.
func ObjectFactory[T Parsable](newT func() T) Factory[T] {
	return func(n *ParseNode) (T, error) {
		v := newT()
		if err := v.Deserialize(n); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// Upcast widens a typed factory into one returning Parsable.
func Upcast[T Parsable](f Factory[T]) Factory[Parsable] {
	return func(n *ParseNode) (Parsable, error) {
		v, err := f(n)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
