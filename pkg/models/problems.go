package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// ProblemDetails is the problem+json error envelope returned by every failing
// qyl endpoint. The status-specific errors below embed it.
type ProblemDetails struct {
	Type           *string
	Title          *string
	Status         *int32
	Detail         *string
	Instance       *string
	ErrorCode      *string
	Timestamp      *time.Time
	AdditionalData serialization.AdditionalData
}

// problemFields builds a table holding the envelope fields followed by extra.
func problemFields[M any](p func(*M) *ProblemDetails, extra ...serialization.Field[M]) *serialization.Fields[M] {
	fields := []serialization.Field[M]{
		serialization.String("type", func(m *M) **string { return &p(m).Type }),
		serialization.String("title", func(m *M) **string { return &p(m).Title }),
		serialization.Int32("status", func(m *M) **int32 { return &p(m).Status }),
		serialization.String("detail", func(m *M) **string { return &p(m).Detail }),
		serialization.String("instance", func(m *M) **string { return &p(m).Instance }),
		serialization.String("error_code", func(m *M) **string { return &p(m).ErrorCode }),
		serialization.Time("timestamp", func(m *M) **time.Time { return &p(m).Timestamp }),
	}
	return serialization.NewFields(append(fields, extra...)...)
}

var problemDetailsFields = problemFields(func(m *ProblemDetails) *ProblemDetails { return m })

func NewProblemDetails(n *serialization.ParseNode) (*ProblemDetails, error) {
	return decode[ProblemDetails](n)
}

func (p *ProblemDetails) Serialize(w *serialization.Writer) error {
	return problemDetailsFields.Encode(w, p, p.AdditionalData)
}

func (p *ProblemDetails) Deserialize(n *serialization.ParseNode) error {
	return problemDetailsFields.Decode(n, p, &p.AdditionalData)
}

func (p *ProblemDetails) GetAdditionalData() serialization.AdditionalData  { return p.AdditionalData }
func (p *ProblemDetails) SetAdditionalData(d serialization.AdditionalData) { p.AdditionalData = d }

// ProblemCode returns the machine-readable code: error_code when present,
// otherwise the problem type URI.
func (p *ProblemDetails) ProblemCode() string {
	if p.ErrorCode != nil {
		return *p.ErrorCode
	}
	if p.Type != nil {
		return *p.Type
	}
	return ""
}

// ProblemMessage returns detail, falling back to title.
func (p *ProblemDetails) ProblemMessage() string {
	if p.Detail != nil && *p.Detail != "" {
		return *p.Detail
	}
	if p.Title != nil {
		return *p.Title
	}
	return ""
}

func (p *ProblemDetails) Error() string {
	msg := p.ProblemMessage()
	if msg == "" {
		msg = "problem"
	}
	if p.Status != nil {
		return fmt.Sprintf("%d %s", *p.Status, msg)
	}
	return msg
}

// ValidationErrorDetail rejects one field of a request.
type ValidationErrorDetail struct {
	Field          *string
	Message        *string
	Code           *string
	RejectedValue  json.RawMessage
	AdditionalData serialization.AdditionalData
}

var validationErrorDetailFields = serialization.NewFields(
	serialization.String("field", func(m *ValidationErrorDetail) **string { return &m.Field }),
	serialization.String("message", func(m *ValidationErrorDetail) **string { return &m.Message }),
	serialization.String("code", func(m *ValidationErrorDetail) **string { return &m.Code }),
	serialization.RawJSON("rejected_value", func(m *ValidationErrorDetail) *json.RawMessage { return &m.RejectedValue }),
)

func NewValidationErrorDetail(n *serialization.ParseNode) (*ValidationErrorDetail, error) {
	return decode[ValidationErrorDetail](n)
}

func (m *ValidationErrorDetail) Serialize(w *serialization.Writer) error {
	return validationErrorDetailFields.Encode(w, m, m.AdditionalData)
}

func (m *ValidationErrorDetail) Deserialize(n *serialization.ParseNode) error {
	return validationErrorDetailFields.Decode(n, m, &m.AdditionalData)
}

func (m *ValidationErrorDetail) GetAdditionalData() serialization.AdditionalData {
	return m.AdditionalData
}

func (m *ValidationErrorDetail) SetAdditionalData(d serialization.AdditionalData) {
	m.AdditionalData = d
}

// ValidationError is returned with status 400.
type ValidationError struct {
	ProblemDetails
	Errors []*ValidationErrorDetail
}

var validationErrorFields = problemFields(
	func(m *ValidationError) *ProblemDetails { return &m.ProblemDetails },
	serialization.ObjectList("errors", func(m *ValidationError) *[]*ValidationErrorDetail { return &m.Errors }, NewValidationErrorDetail),
)

func NewValidationError(n *serialization.ParseNode) (*ValidationError, error) {
	return decode[ValidationError](n)
}

func (e *ValidationError) Serialize(w *serialization.Writer) error {
	return validationErrorFields.Encode(w, e, e.AdditionalData)
}

func (e *ValidationError) Deserialize(n *serialization.ParseNode) error {
	return validationErrorFields.Decode(n, e, &e.AdditionalData)
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.ProblemDetails.Error()
	}
	fields := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		if d.Field != nil {
			fields = append(fields, *d.Field)
		}
	}
	return fmt.Sprintf("%s (fields: %s)", e.ProblemDetails.Error(), strings.Join(fields, ", "))
}

// NotFoundError is returned with status 404.
type NotFoundError struct {
	ProblemDetails
	ResourceType *string
	ResourceID   *string
}

var notFoundErrorFields = problemFields(
	func(m *NotFoundError) *ProblemDetails { return &m.ProblemDetails },
	serialization.String("resource_type", func(m *NotFoundError) **string { return &m.ResourceType }),
	serialization.String("resource_id", func(m *NotFoundError) **string { return &m.ResourceID }),
)

func NewNotFoundError(n *serialization.ParseNode) (*NotFoundError, error) {
	return decode[NotFoundError](n)
}

func (e *NotFoundError) Serialize(w *serialization.Writer) error {
	return notFoundErrorFields.Encode(w, e, e.AdditionalData)
}

func (e *NotFoundError) Deserialize(n *serialization.ParseNode) error {
	return notFoundErrorFields.Decode(n, e, &e.AdditionalData)
}

// InternalServerError is returned with status 500. ErrorCode carries the
// support reference.
type InternalServerError struct {
	ProblemDetails
}

var internalServerErrorFields = problemFields(
	func(m *InternalServerError) *ProblemDetails { return &m.ProblemDetails },
)

func NewInternalServerError(n *serialization.ParseNode) (*InternalServerError, error) {
	return decode[InternalServerError](n)
}

func (e *InternalServerError) Serialize(w *serialization.Writer) error {
	return internalServerErrorFields.Encode(w, e, e.AdditionalData)
}

func (e *InternalServerError) Deserialize(n *serialization.ParseNode) error {
	return internalServerErrorFields.Decode(n, e, &e.AdditionalData)
}

var problemResolver = serialization.NewDiscriminated("status", serialization.Upcast(NewProblemDetails)).
	Register("400", serialization.Upcast(NewValidationError)).
	Register("404", serialization.Upcast(NewNotFoundError)).
	Register("500", serialization.Upcast(NewInternalServerError))

// NewProblem decodes a problem+json body into the error type registered for
// its status member, or a plain ProblemDetails.
func NewProblem(n *serialization.ParseNode) (serialization.Parsable, error) {
	return problemResolver.Resolve(n)
}
