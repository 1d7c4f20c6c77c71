package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Warning flags a field whose value looks malformed. Warnings never block generation.
type Warning struct {
	Field   Field  `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Warnings checks the advisory format rules on d.
func (d Data) Warnings() []Warning {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Warning{{Rule: "invalid", Message: err.Error()}}
	}

	warnings := make([]Warning, 0, len(verrs))
	for _, fe := range verrs {
		warnings = append(warnings, Warning{
			Field:   Field(fe.Field()),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return warnings
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "url":
		return "does not look like a URL"
	case "email":
		return "does not look like an email address"
	case "datetime":
		return fmt.Sprintf("expected date in %s format", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
