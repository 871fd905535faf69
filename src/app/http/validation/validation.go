// Package validation registers the request rules used in binding tags and
// turns binding failures into field-level messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugPattern accepts URL-safe slugs: letters and digits separated by single
// hyphens or underscores.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-_][A-Za-z0-9]+)*$`)

var registerOnce sync.Once

// Register installs the custom rules on gin's validator engine.
// It is safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(fieldName)
		err = v.RegisterValidation("slug", isSlug)
	})
	return err
}

// IsSlug reports whether s is a well formed slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func isSlug(fl validator.FieldLevel) bool {
	return IsSlug(fl.Field().String())
}

// fieldName reports fields by their wire name instead of the Go name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FieldError describes the first rule a request broke.
type FieldError struct {
	Field   string
	Message string
}

// Describe converts a binding error into a FieldError. ok is false when err
// is not a validation failure (malformed JSON, wrong types).
// requiredMessage replaces the message of a missing required field.
func Describe(err error, requiredMessage string) (fe FieldError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return FieldError{}, false
	}

	first := verrs[0]
	fe.Field = first.Field()
	switch first.Tag() {
	case "required":
		fe.Message = requiredMessage
		if fe.Message == "" {
			fe.Message = fmt.Sprintf("%s é obrigatório", fe.Field)
		}
	case "slug":
		fe.Message = "Slug deve conter apenas letras, números, hífens ou sublinhados"
	case "email":
		fe.Message = "Email inválido"
	case "min":
		fe.Message = fmt.Sprintf("%s deve ser no mínimo %s", fe.Field, first.Param())
	case "max":
		fe.Message = fmt.Sprintf("%s deve ser no máximo %s", fe.Field, first.Param())
	default:
		fe.Message = fmt.Sprintf("%s inválido", fe.Field)
	}
	return fe, true
}
