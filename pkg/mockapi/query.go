package mockapi

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	decoder  = newQueryDecoder()
	validate = newValidator()
)

func newQueryDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.SetAliasTag("query")
	dec.IgnoreUnknownKeys(true)
	dec.RegisterConverter(time.Time{}, func(s string) reflect.Value {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return dec
}

type knownEnum interface{ IsKnown() bool }

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("known", func(fl validator.FieldLevel) bool {
		if k, ok := fl.Field().Interface().(knownEnum); ok {
			return k.IsKnown()
		}
		return true
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("query"), ",")
		return name
	})
	return v
}

// pageQuery carries the cursor parameters shared by every listing.
type pageQuery struct {
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit" validate:"omitempty,gte=1,lte=1000"`
}

// decodeQuery fills dst from values and runs its validate tags. Failures
// come back as InvalidInput naming the wire parameter.
func decodeQuery(dst any, values url.Values) error {
	if err := decoder.Decode(dst, values); err != nil {
		var multi schema.MultiError
		if !errors.As(err, &multi) {
			return InvalidInput{{Field: "query", Code: "format", Message: err.Error()}}
		}
		invalid := make(InvalidInput, 0, len(multi))
		for key, e := range multi {
			invalid = append(invalid, FieldError{Field: key, Code: "format", Message: e.Error(), Value: values.Get(key)})
		}
		return invalid
	}
	return validateQuery(dst)
}

func validateQuery(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	invalid := make(InvalidInput, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		invalid = append(invalid, FieldError{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: fmt.Sprintf("%s fails %s", fe.Field(), rule),
			Value:   fmt.Sprint(fe.Value()),
		})
	}
	return invalid
}

// splitList expands comma-joined list parameters such as types=spans,logs.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
