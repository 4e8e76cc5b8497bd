package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/ginger"
)

// A validator checks decoded parameters against "validate" struct tags.
type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator naming fields after the parameter they are decoded from.
func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("enum", validateEnumerable)
	v.RegisterTagNameFunc(paramName)

	return validator{v}
}

// paramName names field after its "schema" tag, or else its "json" tag.
// A field tagged "-" has no name.
func paramName(field reflect.StructField) string {
	for _, tag := range []string{"schema", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return ""
}

// validate checks the fields on structPtr match their rules,
// returning every field that does not as ValidationErrors sorted by field.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	validateErrs := make(ValidationErrors, 0, len(errs))
	for _, fe := range errs {
		validateErrs = append(validateErrs, toValidationError(fe))
	}

	sortValidationErrors(validateErrs)

	return validateErrs
}

// toValidationError describes fe by the path of the parameter it failed on, less the struct's own name,
// and its rule, "gt=10; int64".
func toValidationError(fe v10.FieldError) ValidationError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return ValidationError{
		Field: field,
		Got:   fe.Value(),
		Rule:  rule + "; " + fe.Type().String(),
	}
}

// validateEnumerable validates whether field is a valid Enumerable or slice of valid Enumerable.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return checkEnums(field)
	}

	items := make([]reflect.Value, field.Len())
	for i := range items {
		items[i] = field.Index(i)
	}

	return checkEnums(items...)
}

// checkEnums asserts each [reflect.Value] is an Enumerable and valid.
func checkEnums(items ...reflect.Value) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		if !item.CanInterface() {
			return false
		}

		enum, ok := item.Interface().(ginger.Enumerable)
		if !ok || enum.Valid() != nil {
			return false
		}
	}

	return true
}
