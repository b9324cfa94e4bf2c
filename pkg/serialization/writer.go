package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/sjson"
)

// Writer builds one JSON value. Keyed writes add members to an object in
// call order. WriteValue replaces the whole value, which is how composed
// values emit their single populated variant.
type Writer struct {
	doc     []byte
	root    json.RawMessage
	written map[string]struct{}
}

// NewWriter returns a writer holding an empty object.
func NewWriter() *Writer {
	return &Writer{doc: []byte("{}"), written: make(map[string]struct{})}
}

// Bytes returns the encoded value.
func (w *Writer) Bytes() []byte {
	if w.root != nil {
		return w.root
	}
	return w.doc
}

// Written reports whether key was already written.
func (w *Writer) Written(key string) bool {
	_, ok := w.written[key]
	return ok
}

// WriteValue replaces the whole encoded value with raw. Keyed writes made
// before or after it are discarded.
func (w *Writer) WriteValue(raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("writing value: invalid JSON %q", raw)
	}
	w.root = raw
	return nil
}

// WriteRaw stores pre-encoded JSON under key. The empty key is an ordinary
// member name.
func (w *Writer) WriteRaw(key string, raw json.RawMessage) error {
	if key == "" {
		return w.writeEmptyKey(raw)
	}
	doc, err := sjson.SetRawBytes(w.doc, escapePath(key), raw)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	w.doc = doc
	w.written[key] = struct{}{}
	return nil
}

// writeEmptyKey appends a member named "" by hand; sjson paths cannot
// address it.
func (w *Writer) writeEmptyKey(raw json.RawMessage) error {
	if w.Written("") {
		return errors.New(`writing "": member already written`)
	}
	if !json.Valid(raw) {
		return fmt.Errorf(`writing "": invalid JSON %q`, raw)
	}
	body := bytes.TrimSpace(w.doc)
	body = body[:len(body)-1]
	doc := make([]byte, 0, len(body)+len(raw)+6)
	doc = append(doc, body...)
	if len(bytes.TrimSpace(body)) > 1 {
		doc = append(doc, ',')
	}
	doc = append(doc, `"":`...)
	doc = append(doc, raw...)
	doc = append(doc, '}')
	w.doc = doc
	w.written[""] = struct{}{}
	return nil
}

// WriteString stores v as a JSON string under key.
func (w *Writer) WriteString(key, v string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteRaw(key, raw)
}

// WriteBool stores v under key.
func (w *Writer) WriteBool(key string, v bool) error {
	return w.WriteRaw(key, []byte(strconv.FormatBool(v)))
}

// WriteInt64 stores v as an integer literal under key.
func (w *Writer) WriteInt64(key string, v int64) error {
	return w.WriteRaw(key, []byte(strconv.FormatInt(v, 10)))
}

// WriteInt32 stores v as an integer literal under key.
func (w *Writer) WriteInt32(key string, v int32) error {
	return w.WriteInt64(key, int64(v))
}

// WriteFloat64 always emits a literal that reads back as a double, so 5.0 is
// written as "5.0" rather than "5".
func (w *Writer) WriteFloat64(key string, v float64) error {
	raw, err := EncodeFloat64(v)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return w.WriteRaw(key, raw)
}

// WriteTime stores v under key in RFC 3339 form with nanoseconds.
func (w *Writer) WriteTime(key string, v time.Time) error {
	return w.WriteString(key, v.Format(time.RFC3339Nano))
}

// WriteObject encodes v with a child writer and stores the result under key.
func (w *Writer) WriteObject(key string, v Parsable) error {
	child := NewWriter()
	if err := v.Serialize(child); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return w.WriteRaw(key, child.Bytes())
}

// WriteUntyped encodes an arbitrary value; json.RawMessage passes through
// verbatim.
func (w *Writer) WriteUntyped(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return w.WriteRaw(key, raw)
}

// WriteAdditionalData writes bag entries whose keys were not already
// written, in sorted key order. Declared fields win on collision.
func (w *Writer) WriteAdditionalData(data AdditionalData) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		if !w.Written(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteUntyped(k, data[k]); err != nil {
			return err
		}
	}
	return nil
}

// WriteList encodes items with elem and stores the array under key. A nil
// slice writes nothing; an empty slice writes [].
func WriteList[T any](w *Writer, key string, items []T, elem func(T) (json.RawMessage, error)) error {
	if items == nil {
		return nil
	}
	raw, err := EncodeList(items, elem)
	if err != nil {
		return fmt.Errorf("writing %q%w", key, err)
	}
	return w.WriteRaw(key, raw)
}

// EncodeList encodes items with elem as a JSON array.
func EncodeList[T any](items []T, elem func(T) (json.RawMessage, error)) (json.RawMessage, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		raw, err := elem(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(raw)
	}
	b.WriteByte(']')
	return json.RawMessage(b.String()), nil
}

// WriteObjects stores a list of models under key.
func WriteObjects[T Parsable](w *Writer, key string, items []T) error {
	return WriteList(w, key, items, func(item T) (json.RawMessage, error) {
		return Marshal(item)
	})
}

// EncodeString encodes v as a JSON string. The Encode helpers produce the
// literals the keyed writers store and can feed WriteValue directly.
func EncodeString(v string) (json.RawMessage, error) { return json.Marshal(v) }

// EncodeBool encodes true or false.
func EncodeBool(v bool) (json.RawMessage, error) {
	return json.RawMessage(strconv.FormatBool(v)), nil
}

// EncodeInt64 encodes v as an integer literal.
func EncodeInt64(v int64) (json.RawMessage, error) {
	return json.RawMessage(strconv.FormatInt(v, 10)), nil
}

// EncodeFloat64 rejects NaN and infinities.
func EncodeFloat64(v float64) (json.RawMessage, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%v has no JSON representation", v)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.RawMessage(s), nil
}

// escapePath turns a literal key into an sjson path. Wire keys such as
// "deployment.id" contain dots and must not be read as nesting.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WriteStringList stores v as an array of strings under key.
func (w *Writer) WriteStringList(key string, v []string) error {
	return WriteList(w, key, v, EncodeString)
}

// WriteBoolList stores v as an array of booleans under key.
func (w *Writer) WriteBoolList(key string, v []bool) error {
	return WriteList(w, key, v, EncodeBool)
}

// WriteInt64List stores v as an array of integer literals under key.
func (w *Writer) WriteInt64List(key string, v []int64) error {
	return WriteList(w, key, v, EncodeInt64)
}

// WriteFloat64List stores v under key using the WriteFloat64 literal form.
func (w *Writer) WriteFloat64List(key string, v []float64) error {
	return WriteList(w, key, v, EncodeFloat64)
}
