package field

import "math"

// Validator checks a candidate value against the rules of one field type.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Type returns the field type the validator handles.
	Type() Type
	// Validate returns nil when value may be written to field, or an *Error.
	Validate(value any, field Descriptor, extra Extra) error
}

// rule pairs a check with the failure it reports.
type rule struct {
	check  func() bool
	kind   error
	reason Reason
}

func typeRule(reason Reason, check func() bool) rule {
	return rule{check: check, kind: ErrTypeMismatch, reason: reason}
}

func valueRule(reason Reason, check func() bool) rule {
	return rule{check: check, kind: ErrInvalidValue, reason: reason}
}

// apply evaluates rules in order and returns the first failure.
// Validation aborts on the first broken rule, later rules may assume earlier ones held.
func apply(field Descriptor, extra Extra, rules ...rule) error {
	for _, r := range rules {
		if !r.check() {
			return newError(r.kind, field, r.reason, extra)
		}
	}
	return nil
}

// skipNull reports whether value is absent. Absent values bypass type checks
// in every family except the uneditable one.
// Only an untyped nil is absent: typed nil slices, maps and pointers are
// values of the wrong shape and go through the type checks.
func skipNull(value any) bool {
	return value == nil
}

// asNumber converts any Go integer or float kind to float64.
// Booleans, numeric strings, NaN and infinities are rejected.
func asNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// asStrings accepts []string or a []any holding only strings.
func asStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
