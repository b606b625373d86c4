package field

type checkboxField struct{}

// CheckboxField accepts booleans.
func CheckboxField() Validator { return checkboxField{} }

func (checkboxField) Type() Type { return TypeCheckbox }

func (checkboxField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	return apply(field, extra, typeRule(ReasonCheckboxTypeError, func() bool {
		_, ok := value.(bool)
		return ok
	}))
}

type singleSelectField struct{}

// SingleSelectField accepts a string naming one option by name or ID.
func SingleSelectField() Validator { return singleSelectField{} }

func (singleSelectField) Type() Type { return TypeSingleSelect }

func (singleSelectField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	s, ok := asString(value)
	return apply(field, extra,
		typeRule(ReasonSelectTypeError, func() bool { return ok }),
		valueRule(ReasonSelectOptionNotExists, func() bool { return hasOption(field.Property.Options, s) }),
	)
}

type multiSelectField struct{}

// MultiSelectField accepts a list of strings, each naming an option.
// An empty list clears the cell.
func MultiSelectField() Validator { return multiSelectField{} }

func (multiSelectField) Type() Type { return TypeMultiSelect }

func (multiSelectField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	items, ok := asStrings(value)
	return apply(field, extra,
		typeRule(ReasonMultiSelectTypeError, func() bool { return ok }),
		valueRule(ReasonSelectOptionNotExists, func() bool {
			for _, item := range items {
				if !hasOption(field.Property.Options, item) {
					return false
				}
			}
			return true
		}),
	)
}

func hasOption(options []SelectOption, v string) bool {
	for _, opt := range options {
		if opt.Name == v || (opt.ID != "" && opt.ID == v) {
			return true
		}
	}
	return false
}
