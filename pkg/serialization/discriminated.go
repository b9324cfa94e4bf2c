package serialization

// Discriminated selects a factory from the text of one property of an
// object. Unregistered or missing discriminator values fall back to the
// default factory, so resolution is total over objects.
type Discriminated[T any] struct {
	property string
	variants map[string]Factory[T]
	fallback Factory[T]
}

// NewDiscriminated builds a resolver keyed on property.
func NewDiscriminated[T any](property string, fallback Factory[T]) *Discriminated[T] {
	return &Discriminated[T]{
		property: property,
		variants: make(map[string]Factory[T]),
		fallback: fallback,
	}
}

// Register adds a variant. Numbers match on their literal, so a status of
// 404 is registered as "404".
func (d *Discriminated[T]) Register(value string, f Factory[T]) *Discriminated[T] {
	d.variants[value] = f
	return d
}

// Property returns the discriminating key.
func (d *Discriminated[T]) Property() string { return d.property }

// Resolve builds the variant selected by the node's discriminator.
func (d *Discriminated[T]) Resolve(n *ParseNode) (T, error) {
	if n == nil {
		var zero T
		return zero, Violationf("discriminate", "node is absent")
	}
	if child := n.ChildNode(d.property); child != nil && !child.IsNull() {
		if f, ok := d.variants[child.Text()]; ok {
			return f(n)
		}
	}
	return d.fallback(n)
}

// Factory exposes Resolve as a Factory.
func (d *Discriminated[T]) Factory() Factory[T] { return d.Resolve }
