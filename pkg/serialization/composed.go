package serialization

// Composed decoding tries variants in a fixed order and keeps the first that
// accepts the node. The helpers below are the per-shape tests used by
// composed types; each succeeds only when every element matches.

// BoolList accepts an array of booleans.
func BoolList(n *ParseNode) ([]bool, bool) {
	return CollectionOf(n, (*ParseNode).BoolValue)
}

// StringListValue accepts an array of strings.
func StringListValue(n *ParseNode) ([]string, bool) {
	return CollectionOf(n, (*ParseNode).StringValue)
}

// Int64List accepts an array whose elements are all integer literals.
func Int64List(n *ParseNode) ([]int64, bool) {
	return CollectionOf(n, (*ParseNode).Int64Value)
}

// Float64List accepts an array of numbers holding at least one non-integer
// literal. An all-integer array belongs to Int64List.
func Float64List(n *ParseNode) ([]float64, bool) {
	nodes, ok := n.Elements()
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(nodes))
	sawDouble := false
	for _, e := range nodes {
		if !e.isNumber() {
			return nil, false
		}
		if !e.isInteger() {
			sawDouble = true
		}
		v, _ := e.Float64Value()
		out = append(out, v)
	}
	if !sawDouble {
		return nil, false
	}
	return out, true
}

// DoubleValue accepts a number written with a fraction or exponent, or an
// integer literal too large for int64.
func DoubleValue(n *ParseNode) (float64, bool) {
	if !n.isNumber() || n.isInteger() {
		return 0, false
	}
	return n.Float64Value()
}
