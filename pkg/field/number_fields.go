package field

import "math"

// numberField accepts nil or any finite real number.
type numberField struct {
	typ    Type
	reason Reason
}

func (f numberField) Type() Type { return f.typ }

func (f numberField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	return apply(field, extra, typeRule(f.reason, func() bool {
		_, ok := asNumber(value)
		return ok
	}))
}

func NumberField() Validator {
	return numberField{typ: TypeNumber, reason: ReasonNumberTypeError}
}

// CurrencyField accepts finite numbers. Precision and symbol are display
// concerns and are not enforced on write.
func CurrencyField() Validator {
	return numberField{typ: TypeCurrency, reason: ReasonCurrencyTypeError}
}

func PercentField() Validator {
	return numberField{typ: TypePercent, reason: ReasonPercentTypeError}
}

type ratingField struct{}

// RatingField accepts whole numbers between 0 and Property.Max inclusive.
func RatingField() Validator { return ratingField{} }

func (ratingField) Type() Type { return TypeRating }

func (ratingField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	maxRating := field.Property.Max
	if maxRating <= 0 {
		maxRating = DefaultRatingMax
	}
	n, ok := asNumber(value)
	return apply(field, extra,
		typeRule(ReasonRatingTypeError, func() bool { return ok && n == math.Trunc(n) }),
		valueRule(ReasonRatingOutOfRange, func() bool { return n >= 0 && n <= float64(maxRating) }),
	)
}
