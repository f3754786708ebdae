package validate

import (
	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag-based validation and returns one entry per failed field.
func Struct(data any) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payload", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Details converts field errors into the error-detail map shape used by the
// HTTP error responses.
func Details(errs []FieldError) map[string]any {
	if len(errs) == 0 {
		return nil
	}
	fields := make([]map[string]string, 0, len(errs))
	for _, fe := range errs {
		entry := map[string]string{"field": fe.Field, "rule": fe.Tag}
		if fe.Param != "" {
			entry["param"] = fe.Param
		}
		fields = append(fields, entry)
	}
	return map[string]any{"fields": fields}
}
