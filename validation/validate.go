package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so clients see the fields they actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(nullableIDValue, NullableID{})
	return v
}

// FieldError names one violated field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Error is returned whenever input does not match its contract.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Struct validates an already decoded value.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fieldPath(fe.Namespace()), Rule: fe.Tag()})
	}
	return out
}

// fieldPath strips the leading struct name from a validator namespace,
// "MaterialInsert.categoryIds[0]" becomes "categoryIds[0]".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// DecodeBody parses a JSON request body into dst and validates it. Unknown
// fields and trailing data are rejected.
func DecodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &Error{Fields: []FieldError{{Field: "body", Rule: "required"}}}
		}
		return &Error{Fields: []FieldError{{Field: "body", Rule: "json"}}}
	}
	if decoder.More() {
		return &Error{Fields: []FieldError{{Field: "body", Rule: "json"}}}
	}

	return Struct(dst)
}

// PathID reads and validates a uuid path parameter.
func PathID(r *http.Request, name string) (string, error) {
	params := IDParams{ID: r.PathValue(name)}
	if err := Struct(params); err != nil {
		var verr *Error
		if errors.As(err, &verr) {
			for i := range verr.Fields {
				verr.Fields[i].Field = name
			}
		}
		return "", err
	}
	return params.ID, nil
}
