package models

import "github.com/ANcpLua/qyl/pkg/serialization"

// Page is one page of a cursor-paginated listing. Cursors are opaque and
// must be passed back unmodified. NextCursor is nil whenever HasMore is
// false.
type Page[T serialization.Parsable] struct {
	Items          []T
	HasMore        bool
	NextCursor     *string
	PrevCursor     *string
	AdditionalData serialization.AdditionalData

	fields *serialization.Fields[Page[T]]
}

func pageFields[T serialization.Parsable](item serialization.Factory[T]) *serialization.Fields[Page[T]] {
	return serialization.NewFields(
		serialization.Items("items", func(m *Page[T]) *[]T { return &m.Items }, item),
		serialization.NewField("has_more",
			func(m *Page[T], n *serialization.ParseNode) bool {
				v, ok := n.BoolValue()
				m.HasMore = v
				return ok
			},
			func(w *serialization.Writer, m *Page[T]) error { return w.WriteBool("has_more", m.HasMore) }),
		serialization.NewField("next_cursor",
			func(m *Page[T], n *serialization.ParseNode) bool {
				v, ok := n.StringValue()
				if ok {
					m.NextCursor = &v
				}
				return ok
			},
			func(w *serialization.Writer, m *Page[T]) error {
				if !m.HasMore || m.NextCursor == nil {
					return nil
				}
				return w.WriteString("next_cursor", *m.NextCursor)
			}),
		serialization.String("prev_cursor", func(m *Page[T]) **string { return &m.PrevCursor }),
	)
}

// PageOf returns a factory for pages whose items are built by item.
func PageOf[T serialization.Parsable](item serialization.Factory[T]) serialization.Factory[*Page[T]] {
	fields := pageFields(item)
	return func(n *serialization.ParseNode) (*Page[T], error) {
		p := &Page[T]{fields: fields}
		if err := p.Deserialize(n); err != nil {
			return nil, err
		}
		return p, nil
	}
}

// NewPage builds a page holding items, for servers and tests that encode
// listings.
func NewPage[T serialization.Parsable](item serialization.Factory[T], items []T) *Page[T] {
	return &Page[T]{Items: items, fields: pageFields(item)}
}

// Serialize never emits next_cursor on a final page.
func (p *Page[T]) Serialize(w *serialization.Writer) error {
	fields := p.fields
	if fields == nil {
		fields = pageFields[T](nil)
	}
	return fields.Encode(w, p, p.AdditionalData)
}

func (p *Page[T]) Deserialize(n *serialization.ParseNode) error {
	if p.fields == nil {
		return serialization.Violationf("page", "no item factory; build pages with PageOf")
	}
	if err := p.fields.Decode(n, p, &p.AdditionalData); err != nil {
		return err
	}
	if !p.HasMore {
		p.NextCursor = nil
	}
	return nil
}

func (p *Page[T]) GetAdditionalData() serialization.AdditionalData  { return p.AdditionalData }
func (p *Page[T]) SetAdditionalData(d serialization.AdditionalData) { p.AdditionalData = d }

// Next returns the cursor for the following page, or "" when this is the
// last page.
func (p *Page[T]) Next() string {
	if !p.HasMore || p.NextCursor == nil {
		return ""
	}
	return *p.NextCursor
}

type (
	DeploymentPage  = Page[*DeploymentEntity]
	ErrorPage       = Page[*ErrorEntity]
	ExceptionPage   = Page[*EnrichedException]
	MetricPage      = Page[*MetricMetadata]
	ServicePage     = Page[*ServiceInfo]
	OperationPage   = Page[*OperationInfo]
	SessionPage     = Page[*SessionEntity]
	TracePage       = Page[*Trace]
	SpanPage        = Page[*Span]
	PipelineRunPage = Page[*PipelineRunEvent]
)
