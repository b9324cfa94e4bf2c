// Package models holds the request, response and error types of the qyl
// REST API together with their wire tables.
package models

import (
	"encoding/json"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// decode builds a fresh *T from n.
func decode[T any, PT interface {
	*T
	serialization.Parsable
}](n *serialization.ParseNode) (*T, error) {
	m := PT(new(T))
	if err := m.Deserialize(n); err != nil {
		return nil, err
	}
	return m, nil
}

// AttributeValue is an OpenTelemetry attribute value. Exactly one variant is
// populated; the wire form carries no tag.
type AttributeValue struct {
	Bool       *bool
	Double     *float64
	Int        *int64
	String     *string
	BoolList   []bool
	DoubleList []float64
	IntList    []int64
	StringList []string
}

func NewAttributeValue(n *serialization.ParseNode) (*AttributeValue, error) {
	return decode[AttributeValue](n)
}

// Deserialize tries each variant in order: boolean, double, integer,
// string, then the lists in the same order. Integral literals such as 5 are
// integers; 5.0 and 1e3 are doubles. An empty array is an empty bool list.
func (v *AttributeValue) Deserialize(n *serialization.ParseNode) error {
	if n == nil {
		return serialization.Violationf("attribute value", "node is absent")
	}
	*v = AttributeValue{}
	if b, ok := n.BoolValue(); ok {
		v.Bool = &b
		return nil
	}
	if d, ok := serialization.DoubleValue(n); ok {
		v.Double = &d
		return nil
	}
	if i, ok := n.Int64Value(); ok {
		v.Int = &i
		return nil
	}
	if s, ok := n.StringValue(); ok {
		v.String = &s
		return nil
	}
	if l, ok := serialization.BoolList(n); ok {
		v.BoolList = l
		return nil
	}
	if l, ok := serialization.Float64List(n); ok {
		v.DoubleList = l
		return nil
	}
	if l, ok := serialization.Int64List(n); ok {
		v.IntList = l
		return nil
	}
	if l, ok := serialization.StringListValue(n); ok {
		v.StringList = l
		return nil
	}
	return serialization.Violationf("attribute value", "unsupported shape %s", n.Raw())
}

// Serialize writes the first populated variant, or null when none is.
func (v *AttributeValue) Serialize(w *serialization.Writer) error {
	raw, err := v.encode()
	if err != nil {
		return err
	}
	return w.WriteValue(raw)
}

func (v *AttributeValue) encode() (json.RawMessage, error) {
	switch {
	case v.Bool != nil:
		return serialization.EncodeBool(*v.Bool)
	case v.Double != nil:
		return serialization.EncodeFloat64(*v.Double)
	case v.Int != nil:
		return serialization.EncodeInt64(*v.Int)
	case v.String != nil:
		return serialization.EncodeString(*v.String)
	case v.BoolList != nil:
		return serialization.EncodeList(v.BoolList, serialization.EncodeBool)
	case v.DoubleList != nil:
		return serialization.EncodeList(v.DoubleList, serialization.EncodeFloat64)
	case v.IntList != nil:
		return serialization.EncodeList(v.IntList, serialization.EncodeInt64)
	case v.StringList != nil:
		return serialization.EncodeList(v.StringList, serialization.EncodeString)
	}
	return json.RawMessage("null"), nil
}

// Attribute is one key/value pair.
type Attribute struct {
	Key            *string
	Value          *AttributeValue
	AdditionalData serialization.AdditionalData
}

var attributeFields = serialization.NewFields(
	serialization.String("key", func(m *Attribute) **string { return &m.Key }),
	serialization.Object("value", func(m *Attribute) **AttributeValue { return &m.Value }, NewAttributeValue),
)

func NewAttribute(n *serialization.ParseNode) (*Attribute, error) { return decode[Attribute](n) }

func (m *Attribute) Serialize(w *serialization.Writer) error {
	return attributeFields.Encode(w, m, m.AdditionalData)
}

func (m *Attribute) Deserialize(n *serialization.ParseNode) error {
	return attributeFields.Decode(n, m, &m.AdditionalData)
}

func (m *Attribute) GetAdditionalData() serialization.AdditionalData  { return m.AdditionalData }
func (m *Attribute) SetAdditionalData(d serialization.AdditionalData) { m.AdditionalData = d }

// InstrumentationScope names the library that produced telemetry.
type InstrumentationScope struct {
	Name                   *string
	Version                *string
	Attributes             []*Attribute
	DroppedAttributesCount *int64
	AdditionalData         serialization.AdditionalData
}

var instrumentationScopeFields = serialization.NewFields(
	serialization.String("name", func(m *InstrumentationScope) **string { return &m.Name }),
	serialization.String("version", func(m *InstrumentationScope) **string { return &m.Version }),
	serialization.ObjectList("attributes", func(m *InstrumentationScope) *[]*Attribute { return &m.Attributes }, NewAttribute),
	serialization.Int64("dropped_attributes_count", func(m *InstrumentationScope) **int64 { return &m.DroppedAttributesCount }),
)

func NewInstrumentationScope(n *serialization.ParseNode) (*InstrumentationScope, error) {
	return decode[InstrumentationScope](n)
}

func (m *InstrumentationScope) Serialize(w *serialization.Writer) error {
	return instrumentationScopeFields.Encode(w, m, m.AdditionalData)
}

func (m *InstrumentationScope) Deserialize(n *serialization.ParseNode) error {
	return instrumentationScopeFields.Decode(n, m, &m.AdditionalData)
}

func (m *InstrumentationScope) GetAdditionalData() serialization.AdditionalData {
	return m.AdditionalData
}

func (m *InstrumentationScope) SetAdditionalData(d serialization.AdditionalData) {
	m.AdditionalData = d
}
