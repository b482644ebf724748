package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Slugs are lowercase alphanumeric segments separated by single hyphens, with
// no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsSlug reports whether s is a valid URL-safe slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Register installs the custom rules on gin's binding engine and makes
// validation errors report json field names. Call once at startup, before any
// request is bound.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Describe flattens a binding error into per-field messages for 422
// responses. Errors that are not field-level (malformed JSON, bad timestamp
// literals) are reported under "body".
func Describe(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Param() != "" {
				fields[fe.Field()] = fmt.Sprintf("failed on the %q rule (%s)", fe.Tag(), fe.Param())
			} else {
				fields[fe.Field()] = fmt.Sprintf("failed on the %q rule", fe.Tag())
			}
		}
		return fields
	}

	fields["body"] = err.Error()
	return fields
}
