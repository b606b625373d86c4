package field

import "fmt"

// Defaults returns one validator per built-in field type, in registration order.
func Defaults() []Validator {
	return []Validator{
		TextField(),
		SingleTextField(),
		EmailField(),
		URLField(),
		PhoneField(),
		NumberField(),
		CurrencyField(),
		PercentField(),
		RatingField(),
		CheckboxField(),
		DateTimeField(),
		SingleSelectField(),
		MultiSelectField(),
		AutoNumberField(),
		FormulaField(),
		LookUpField(),
		CreatedTimeField(),
		LastModifiedTimeField(),
		CreatedByField(),
		LastModifiedByField(),
	}
}

// NewDefaultRegistry registers every built-in validator, then the ones added
// with WithValidators, and seals the registry.
func NewDefaultRegistry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	for _, v := range append(Defaults(), r.extra...) {
		if err := r.Register(v.Type(), v); err != nil {
			return nil, err
		}
	}
	r.extra = nil
	r.Seal()
	return r, nil
}

// MustNewDefaultRegistry works like NewDefaultRegistry but panics on failure.
// A registry that cannot be built should prevent the process from starting.
func MustNewDefaultRegistry(opts ...Option) *Registry {
	r, err := NewDefaultRegistry(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build field registry: %v", err))
	}
	return r
}
