package serialization

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Field binds one wire key to a typed field of M.
type Field[M any] struct {
	Name   string
	decode func(m *M, n *ParseNode) bool
	encode func(w *Writer, m *M) error
}

// Fields is the static decode/encode table of a model type. Tables are
// built once as package variables; nothing is discovered at runtime.
type Fields[M any] struct {
	list  []Field[M]
	index map[string]int
}

// NewFields builds a table. Encoding follows the order given here.
func NewFields[M any](fields ...Field[M]) *Fields[M] {
	fs := &Fields[M]{list: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := fs.index[f.Name]; dup {
			panic("serialization: duplicate field " + f.Name)
		}
		fs.index[f.Name] = i
	}
	return fs
}

// Names lists the declared wire keys in encoding order.
func (fs *Fields[M]) Names() []string {
	out := make([]string, len(fs.list))
	for i, f := range fs.list {
		out[i] = f.Name
	}
	return out
}

// Decode populates m from an object node. Unknown keys and declared keys
// with a mismatched JSON type land in extra. A null on a declared key
// leaves the field absent.
func (fs *Fields[M]) Decode(n *ParseNode, m *M, extra *AdditionalData) error {
	if n == nil {
		return Violationf("deserialize", "node is absent")
	}
	if !n.IsObject() {
		return Violationf("deserialize", "expected a JSON object, got %s", abbreviate(n.Text()))
	}
	var bag AdditionalData
	n.Properties(func(key string, v *ParseNode) bool {
		if i, ok := fs.index[key]; ok {
			if v.IsNull() || fs.list[i].decode(m, v) {
				return true
			}
		}
		if bag == nil {
			bag = make(AdditionalData)
		}
		bag[key] = v.Raw()
		return true
	})
	*extra = bag
	return nil
}

// Encode writes every present field in table order followed by the
// additional data entries not shadowed by a declared field.
func (fs *Fields[M]) Encode(w *Writer, m *M, extra AdditionalData) error {
	for _, f := range fs.list {
		if err := f.encode(w, m); err != nil {
			return err
		}
	}
	return w.WriteAdditionalData(extra)
}

// NewField binds name with custom decode and encode functions. decode
// returns false when the node has an unexpected shape.
func NewField[M any](name string, decode func(m *M, n *ParseNode) bool, encode func(w *Writer, m *M) error) Field[M] {
	return Field[M]{Name: name, decode: decode, encode: encode}
}

func abbreviate(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}

func scalar[M, T any](name string, field func(*M) **T, get func(*ParseNode) (T, bool), put func(*Writer, string, T) error) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			v, ok := get(n)
			if !ok {
				return false
			}
			*field(m) = &v
			return true
		},
		encode: func(w *Writer, m *M) error {
			p := *field(m)
			if p == nil {
				return nil
			}
			return put(w, name, *p)
		},
	}
}

func String[M any](name string, field func(*M) **string) Field[M] {
	return scalar(name, field, (*ParseNode).StringValue, (*Writer).WriteString)
}

func Bool[M any](name string, field func(*M) **bool) Field[M] {
	return scalar(name, field, (*ParseNode).BoolValue, (*Writer).WriteBool)
}

func Int32[M any](name string, field func(*M) **int32) Field[M] {
	return scalar(name, field, (*ParseNode).Int32Value, (*Writer).WriteInt32)
}

func Int64[M any](name string, field func(*M) **int64) Field[M] {
	return scalar(name, field, (*ParseNode).Int64Value, (*Writer).WriteInt64)
}

func Float64[M any](name string, field func(*M) **float64) Field[M] {
	return scalar(name, field, (*ParseNode).Float64Value, (*Writer).WriteFloat64)
}

func Time[M any](name string, field func(*M) **time.Time) Field[M] {
	return scalar(name, field, (*ParseNode).TimeValue, (*Writer).WriteTime)
}

// Enum decodes any string into E. Values outside the known set are kept
// as-is and re-emitted unchanged.
func Enum[M any, E ~string](name string, field func(*M) **E) Field[M] {
	return scalar(name, field,
		func(n *ParseNode) (E, bool) {
			s, ok := n.StringValue()
			return E(s), ok
		},
		func(w *Writer, key string, v E) error { return w.WriteString(key, string(v)) })
}

// IntEnum is Enum for integer-coded enumerations.
func IntEnum[M any, E ~int32](name string, field func(*M) **E) Field[M] {
	return scalar(name, field,
		func(n *ParseNode) (E, bool) {
			v, ok := n.Int32Value()
			return E(v), ok
		},
		func(w *Writer, key string, v E) error { return w.WriteInt32(key, int32(v)) })
}

// Object binds a nested model. PT is inferred from T.
func Object[M, T any, PT interface {
	*T
	Parsable
}](name string, field func(*M) **T, factory Factory[*T]) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			v, err := factory(n)
			if err != nil {
				return false
			}
			*field(m) = v
			return true
		},
		encode: func(w *Writer, m *M) error {
			p := *field(m)
			if p == nil {
				return nil
			}
			return w.WriteObject(name, PT(p))
		},
	}
}

// ObjectList binds a list of nested models.
func ObjectList[M, T any, PT interface {
	*T
	Parsable
}](name string, field func(*M) *[]*T, factory Factory[*T]) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			items, ok := CollectionOf(n, func(e *ParseNode) (*T, bool) {
				v, err := factory(e)
				return v, err == nil
			})
			if !ok {
				return false
			}
			*field(m) = items
			return true
		},
		encode: func(w *Writer, m *M) error {
			return WriteList(w, name, *field(m), func(item *T) (json.RawMessage, error) {
				return Marshal(PT(item))
			})
		},
	}
}

// Items binds a list of values built by factory, for element types that are
// themselves Parsable (including interfaces).
func Items[M any, T Parsable](name string, field func(*M) *[]T, factory Factory[T]) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			items, ok := CollectionOf(n, func(e *ParseNode) (T, bool) {
				v, err := factory(e)
				return v, err == nil
			})
			if !ok {
				return false
			}
			*field(m) = items
			return true
		},
		encode: func(w *Writer, m *M) error {
			return WriteObjects(w, name, *field(m))
		},
	}
}

func list[M, T any](name string, field func(*M) *[]T, get func(*ParseNode) (T, bool), put func(T) (json.RawMessage, error)) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			items, ok := CollectionOf(n, get)
			if !ok {
				return false
			}
			*field(m) = items
			return true
		},
		encode: func(w *Writer, m *M) error {
			return WriteList(w, name, *field(m), put)
		},
	}
}

func StringList[M any](name string, field func(*M) *[]string) Field[M] {
	return list(name, field, (*ParseNode).StringValue, EncodeString)
}

func mapOf[M, V any](name string, field func(*M) *map[string]V, get func(*ParseNode) (V, bool), put func(V) (json.RawMessage, error)) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			if !n.IsObject() {
				return false
			}
			out := make(map[string]V)
			ok := true
			n.Properties(func(key string, v *ParseNode) bool {
				val, good := get(v)
				if !good {
					ok = false
					return false
				}
				out[key] = val
				return true
			})
			if !ok {
				return false
			}
			*field(m) = out
			return true
		},
		encode: func(w *Writer, m *M) error {
			values := *field(m)
			if values == nil {
				return nil
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			var b strings.Builder
			b.WriteByte('{')
			for i, k := range keys {
				kraw, err := EncodeString(k)
				if err != nil {
					return err
				}
				vraw, err := put(values[k])
				if err != nil {
					return err
				}
				if i > 0 {
					b.WriteByte(',')
				}
				b.Write(kraw)
				b.WriteByte(':')
				b.Write(vraw)
			}
			b.WriteByte('}')
			return w.WriteRaw(name, json.RawMessage(b.String()))
		},
	}
}

func StringMap[M any](name string, field func(*M) *map[string]string) Field[M] {
	return mapOf(name, field, (*ParseNode).StringValue, EncodeString)
}

func Int64Map[M any](name string, field func(*M) *map[string]int64) Field[M] {
	return mapOf(name, field, (*ParseNode).Int64Value, EncodeInt64)
}

// RawJSON keeps a free-form value verbatim.
func RawJSON[M any](name string, field func(*M) *json.RawMessage) Field[M] {
	return Field[M]{
		Name: name,
		decode: func(m *M, n *ParseNode) bool {
			*field(m) = n.Raw()
			return true
		},
		encode: func(w *Writer, m *M) error {
			raw := *field(m)
			if raw == nil {
				return nil
			}
			return w.WriteRaw(name, raw)
		},
	}
}
