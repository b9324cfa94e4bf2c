package request

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// QueryParameters is implemented by every per-operation query struct.
// Fields carry `query:"snake_name,omitempty"` tags and pointer types, so an
// absent filter is nil and never reaches the URL.
type QueryParameters interface {
	// QueryParameterName maps a snake_case field name to its wire name.
	QueryParameterName(field string) string
}

// NameTable maps snake_case names to camelCase wire names.
type NameTable map[string]string

// Translate returns the wire name for field, or field itself when the
// table has no entry.
func (t NameTable) Translate(field string) string {
	if wire, ok := t[field]; ok {
		return wire
	}
	return field
}

// DefaultQueryParameters is used by operations without query filters.
type DefaultQueryParameters struct{}

func (DefaultQueryParameters) QueryParameterName(field string) string { return field }

var (
	encoder  = newQueryEncoder()
	validate = newValidator()
)

func newQueryEncoder() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("query")
	enc.RegisterEncoder(&time.Time{}, func(v reflect.Value) string {
		if v.IsNil() {
			return ""
		}
		return v.Interface().(*time.Time).UTC().Format(time.RFC3339Nano)
	})
	enc.RegisterEncoder(new(float64), func(v reflect.Value) string {
		if v.IsNil() {
			return ""
		}
		return strconv.FormatFloat(v.Elem().Float(), 'g', -1, 64)
	})
	return enc
}

// knownEnum is satisfied by every generated enumeration.
type knownEnum interface{ IsKnown() bool }

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// known rejects enum values outside the declared set.
	_ = v.RegisterValidation("known", func(fl validator.FieldLevel) bool {
		if k, ok := fl.Field().Interface().(knownEnum); ok {
			return k.IsKnown()
		}
		return true
	})
	return v
}

// EncodeQuery validates q and returns its present parameters keyed by wire
// name. Values are strings, or []string for list parameters.
func EncodeQuery(q QueryParameters) (map[string]any, error) {
	if q == nil {
		return map[string]any{}, nil
	}
	if err := ValidateStruct(q); err != nil {
		return nil, err
	}
	raw := make(map[string][]string)
	if err := encoder.Encode(q, raw); err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}
	out := make(map[string]any, len(raw))
	for field, values := range raw {
		name := q.QueryParameterName(field)
		if len(values) == 1 {
			out[name] = values[0]
		} else {
			out[name] = values
		}
	}
	return out, nil
}

// ValidateStruct runs the `validate` tags of v and reports failures as a
// ContractViolation.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serialization.Violationf("validate", "%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s", fe.Field(), fe.Value(), describe(fe)))
	}
	return serialization.Violationf("validate", "%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

// RequireArgument rejects an empty builder argument such as a resource id.
func RequireArgument(name, value string) error {
	if err := validate.Var(value, "required"); err != nil {
		return serialization.Violationf("argument", "%s is required", name)
	}
	return nil
}
