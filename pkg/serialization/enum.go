package serialization

import "strings"

// EnumCodec is the codec for a closed set of string wire values. The zero value
// is not usable; build one with NewEnum.
type EnumCodec[E ~string] struct {
	name   string
	values []E
	index  map[string]E
}

// NewEnum builds a codec named after the enum type, used in error reports.
func NewEnum[E ~string](name string, values ...E) *EnumCodec[E] {
	c := &EnumCodec[E]{name: name, values: values, index: make(map[string]E, len(values))}
	for _, v := range values {
		c.index[string(v)] = v
	}
	return c
}

// Parse maps a wire string to its member.
func (c *EnumCodec[E]) Parse(s string) (E, bool) {
	v, ok := c.index[s]
	return v, ok
}

// Contains reports whether v is a known member.
func (c *EnumCodec[E]) Contains(v E) bool {
	_, ok := c.index[string(v)]
	return ok
}

// Values returns the members in declaration order.
func (c *EnumCodec[E]) Values() []E {
	out := make([]E, len(c.values))
	copy(out, c.values)
	return out
}

// Strict rejects values outside the known set.
func (c *EnumCodec[E]) Strict(v E) error {
	if c.Contains(v) {
		return nil
	}
	names := make([]string, len(c.values))
	for i, m := range c.values {
		names[i] = string(m)
	}
	return Violationf("enum", "%q is not a %s (want one of %s)", string(v), c.name, strings.Join(names, ", "))
}
