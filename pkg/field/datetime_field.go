package field

import "time"

// Layouts accepted for string date values, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

type dateTimeField struct{}

// DateTimeField accepts a Unix timestamp in milliseconds or a date string.
func DateTimeField() Validator { return dateTimeField{} }

func (dateTimeField) Type() Type { return TypeDateTime }

func (dateTimeField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	return apply(field, extra, typeRule(ReasonDateTimeTypeError, func() bool {
		if _, ok := asNumber(value); ok {
			return true
		}
		s, ok := asString(value)
		return ok && isDate(s)
	}))
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
