package serialization

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type sampleStatus string

type sample struct {
	ID        *string
	Count     *int64
	Ratio     *float64
	Active    *bool
	Seen      *time.Time
	Status    *sampleStatus
	Tags      []string
	Child     *sample
	extraData AdditionalData
}

var sampleFields *Fields[sample]

func init() {
	sampleFields = NewFields(
		String("sample.id", func(m *sample) **string { return &m.ID }),
		Int64("count", func(m *sample) **int64 { return &m.Count }),
		Float64("ratio", func(m *sample) **float64 { return &m.Ratio }),
		Bool("active", func(m *sample) **bool { return &m.Active }),
		Time("seen", func(m *sample) **time.Time { return &m.Seen }),
		Enum("status", func(m *sample) **sampleStatus { return &m.Status }),
		StringList("tags", func(m *sample) *[]string { return &m.Tags }),
		Object("child", func(m *sample) **sample { return &m.Child }, newSample),
	)
}

func newSample(n *ParseNode) (*sample, error) {
	p := &sample{}
	return p, p.Deserialize(n)
}

func (p *sample) Serialize(w *Writer) error      { return sampleFields.Encode(w, p, p.extraData) }
func (p *sample) Deserialize(n *ParseNode) error { return sampleFields.Decode(n, p, &p.extraData) }

func ptr[T any](v T) *T { return &v }

func TestNewParseNodeRejectsAbsentInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t", "null", "{", `{"a":}`} {
		_, err := NewParseNode([]byte(in))
		if err == nil {
			t.Errorf("NewParseNode(%q) succeeded, want error", in)
			continue
		}
		if !IsContractViolation(err) {
			t.Errorf("NewParseNode(%q) error = %v, want ContractViolation", in, err)
		}
	}
}

func TestDecodeKnownAndUnknownKeys(t *testing.T) {
	in := `{"sample.id":"p1","count":3,"ratio":0.5,"active":true,"seen":"2026-01-02T03:04:05Z",` +
		`"status":"brand_new","tags":["a","b"],"child":{"sample.id":"c1"},"x_future":{"nested":[1,2]},"count_extra":null}`

	got, err := Unmarshal([]byte(in), newSample)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if *got.ID != "p1" || *got.Count != 3 || *got.Ratio != 0.5 || !*got.Active {
		t.Errorf("scalars = %v %v %v %v", *got.ID, *got.Count, *got.Ratio, *got.Active)
	}
	if want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC); !got.Seen.Equal(want) {
		t.Errorf("Seen = %v, want %v", got.Seen, want)
	}
	if *got.Status != "brand_new" {
		t.Errorf("Status = %q, want unknown value kept", *got.Status)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
	if got.Child == nil || *got.Child.ID != "c1" {
		t.Errorf("Child = %+v", got.Child)
	}
	if string(got.extraData["x_future"].(json.RawMessage)) != `{"nested":[1,2]}` {
		t.Errorf("x_future = %s", got.extraData["x_future"])
	}
	if string(got.extraData["count_extra"].(json.RawMessage)) != "null" {
		t.Errorf("count_extra = %s", got.extraData["count_extra"])
	}
}

func TestDecodeNullLeavesFieldAbsent(t *testing.T) {
	got, err := Unmarshal([]byte(`{"sample.id":null,"count":7}`), newSample)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.ID != nil {
		t.Errorf("ID = %q, want absent", *got.ID)
	}
	if len(got.extraData) != 0 {
		t.Errorf("extraData = %v, want empty", got.extraData)
	}
}

func TestDecodeTypeMismatchIsPreserved(t *testing.T) {
	in := `{"count":"many","tags":[1,2]}`
	got, err := Unmarshal([]byte(in), newSample)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Count != nil || got.Tags != nil {
		t.Errorf("mismatched fields populated: count=%v tags=%v", got.Count, got.Tags)
	}
	out, err := Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"count":"many","tags":[1,2]}` {
		t.Errorf("re-encoded = %s", out)
	}
}

func TestDecodeRejectsNonObjectRoot(t *testing.T) {
	_, err := Unmarshal([]byte(`[1,2,3]`), newSample)
	if !IsContractViolation(err) {
		t.Errorf("err = %v, want ContractViolation", err)
	}
}

func TestEncodeOrderAndDottedKeys(t *testing.T) {
	p := &sample{
		Tags:      []string{},
		Ratio:     ptr(5.0),
		ID:        ptr("p1"),
		extraData: AdditionalData{"zz": json.RawMessage(`true`), "aa": "text"},
	}
	out, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"sample.id":"p1","ratio":5.0,"tags":[],"aa":"text","zz":true}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}
}

func TestEncodeDeclaredFieldWinsOverExtra(t *testing.T) {
	p := &sample{ID: ptr("field"), extraData: AdditionalData{"sample.id": "bag"}}
	out, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"sample.id":"field"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestRoundTrip(t *testing.T) {
	in := `{"sample.id":"p1","count":-4,"ratio":1e+21,"active":false,"status":"ok","child":{"count":1},"extra":{"k":"v"}}`
	first, err := Unmarshal([]byte(in), newSample)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	encoded, err := Marshal(first)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Unmarshal(encoded, newSample)
	if err != nil {
		t.Fatalf("Unmarshal again: %v", err)
	}
	opts := cmp.AllowUnexported(sample{})
	if diff := cmp.Diff(first, second, opts); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestEmptyKeyIsAnOrdinaryMember(t *testing.T) {
	in := `{"sample.id":"d1","":1}`
	first, err := Unmarshal([]byte(in), newSample)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	encoded, err := Marshal(first)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != in {
		t.Errorf("Marshal = %s, want %s", encoded, in)
	}
	second, err := Unmarshal(encoded, newSample)
	if err != nil {
		t.Fatalf("Unmarshal again: %v", err)
	}
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}

	only := &sample{extraData: AdditionalData{"": "x"}}
	out, err := Marshal(only)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"":"x"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestEmptyKeyKeepsLaterMembers(t *testing.T) {
	w := NewWriter()
	if err := w.WriteInt64("", 1); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteString("after.key", "v"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt64("", 2); err == nil {
		t.Error("second write of the empty key succeeded")
	}
	if got := string(w.Bytes()); got != `{"":1,"after.key":"v"}` {
		t.Errorf("Bytes = %s", got)
	}
}

func TestWriteValueReplacesWholeValue(t *testing.T) {
	w := NewWriter()
	if err := w.WriteValue(json.RawMessage(`[1,2]`)); err != nil {
		t.Fatal(err)
	}
	if got := string(w.Bytes()); got != `[1,2]` {
		t.Errorf("Bytes = %s", got)
	}
	if err := NewWriter().WriteValue(json.RawMessage(`{`)); err == nil {
		t.Error("WriteValue accepted invalid JSON")
	}
}

func TestWriteFloat64RejectsNaN(t *testing.T) {
	w := NewWriter()
	var zero float64
	if err := w.WriteFloat64("x", zero/zero); err == nil {
		t.Error("WriteFloat64(NaN) succeeded, want error")
	}
}

func TestComposedHelpers(t *testing.T) {
	node := func(s string) *ParseNode {
		t.Helper()
		n, err := NewParseNode([]byte(s))
		if err != nil {
			t.Fatalf("NewParseNode(%q): %v", s, err)
		}
		return n
	}

	if _, ok := DoubleValue(node("5")); ok {
		t.Error("DoubleValue(5) accepted an integer literal")
	}
	if v, ok := DoubleValue(node("5.0")); !ok || v != 5 {
		t.Errorf("DoubleValue(5.0) = %v, %v", v, ok)
	}
	if _, ok := Float64List(node("[1,2,3]")); ok {
		t.Error("Float64List accepted an all-integer array")
	}
	if v, ok := Float64List(node("[1,2.5]")); !ok || len(v) != 2 {
		t.Errorf("Float64List([1,2.5]) = %v, %v", v, ok)
	}
	if v, ok := Int64List(node("[1,2,3]")); !ok || len(v) != 3 {
		t.Errorf("Int64List([1,2,3]) = %v, %v", v, ok)
	}
	if _, ok := StringListValue(node(`["a",1]`)); ok {
		t.Error("StringListValue accepted a mixed array")
	}
	if v, ok := BoolList(node("[]")); !ok || len(v) != 0 {
		t.Errorf("BoolList([]) = %v, %v", v, ok)
	}
}

func TestEnumCodec(t *testing.T) {
	codec := NewEnum("sampleStatus", sampleStatus("ok"), sampleStatus("failed"))

	if v, ok := codec.Parse("failed"); !ok || v != "failed" {
		t.Errorf("Parse(failed) = %q, %v", v, ok)
	}
	if _, ok := codec.Parse("FAILED"); ok {
		t.Error("Parse is case-insensitive, want exact match")
	}
	if err := codec.Strict("nope"); !IsContractViolation(err) {
		t.Errorf("Strict(nope) = %v, want ContractViolation", err)
	}
	if err := codec.Strict("ok"); err != nil {
		t.Errorf("Strict(ok) = %v", err)
	}
	values := codec.Values()
	values[0] = "mutated"
	if codec.Values()[0] != "ok" {
		t.Error("Values exposes internal slice")
	}
}

func TestDiscriminatedResolve(t *testing.T) {
	type shape struct{ kind string }
	resolver := NewDiscriminated("status", func(*ParseNode) (shape, error) { return shape{"fallback"}, nil }).
		Register("404", func(*ParseNode) (shape, error) { return shape{"not-found"}, nil }).
		Register("open", func(*ParseNode) (shape, error) { return shape{"open"}, nil })

	tests := []struct {
		in   string
		want string
	}{
		{`{"status":404}`, "not-found"},
		{`{"status":"open"}`, "open"},
		{`{"status":500}`, "fallback"},
		{`{}`, "fallback"},
		{`{"status":null}`, "fallback"},
	}
	for _, tt := range tests {
		got, err := Unmarshal([]byte(tt.in), resolver.Factory())
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.in, err)
		}
		if got.kind != tt.want {
			t.Errorf("Resolve(%s) = %q, want %q", tt.in, got.kind, tt.want)
		}
	}
	if _, err := resolver.Resolve(nil); !IsContractViolation(err) {
		t.Errorf("Resolve(nil) = %v, want ContractViolation", err)
	}
}
