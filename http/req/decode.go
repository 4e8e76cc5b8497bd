package req

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/ginger"
)

// A paramDecoder decodes url.Values into structs using "schema" struct tags.
type paramDecoder struct {
	dec *schema.Decoder
}

func newParamDecoder() paramDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return paramDecoder{dec}
}

// decode fills structPtr from vals, translating failures into standardized errors.
func (pd paramDecoder) decode(structPtr any, vals url.Values) error {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: decode called with %T, not a pointer to a struct", ginger.ErrBadAny, structPtr)
	}

	if err := pd.dec.Decode(structPtr, vals); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's parameters and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE: schema wraps the errors it finds decoding values in a MultiError.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", ginger.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// NOTE: for non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, ginger.ErrNotImplemented)

		case schema.UnknownKeyError:
			// NOTE: unknown keys are accepted by newParamDecoder,
			// but a Decoder configured otherwise reports them here.
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// NOTE: a field without a registered schema.Converter
			// raises no error until vals sets its key.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", ginger.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", ginger.ErrUnexpected, err)
		}
	}

	if len(validErrs) == 0 {
		return nil
	}

	sortValidationErrors(validErrs)

	return validErrs
}
