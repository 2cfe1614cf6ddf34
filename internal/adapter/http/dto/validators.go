package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"

	"walletguard/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// References end up in ledger metadata and correlation tokens, which use
// ':' as a separator, so it is allowed here.
var referenceRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.:]+$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("safe_id", func(fl validator.FieldLevel) bool {
		return referenceRe.MatchString(fl.Field().String())
	})
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// BindError turns a gin binding failure into a VAL_001 error whose details
// map each offending JSON field to a short reason.
func BindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = describe(fe)
		}
		return apperror.Validation("request validation failed").WithDetails(map[string]any{"fields": fields})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.Validation(fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type))
	}
	return apperror.Validation("request body must be valid JSON")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "ne":
		return "must not be " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a UUID"
	case "safe_id":
		return "may only contain letters, digits and _-.:"
	}
	return "failed " + fe.Tag() + " check"
}

// SanitizeStruct trims and HTML-escapes the free-text string fields of a
// request struct (string and *string) before they reach the ledger or
// audit log. Non-pointer arguments are ignored.
func SanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	s := rv.Elem()
	for i := range s.NumField() {
		f := s.Field(i)
		if !f.CanSet() {
			continue
		}
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			f = f.Elem()
		}
		if f.Kind() == reflect.String {
			f.SetString(html.EscapeString(strings.TrimSpace(f.String())))
		}
	}
}
