package field

// unEditableField rejects every write, including nil, because its value is
// computed by the system.
type unEditableField struct {
	typ    Type
	reason Reason
}

func (f unEditableField) Type() Type { return f.typ }

func (f unEditableField) Validate(_ any, field Descriptor, extra Extra) error {
	return newError(ErrFieldNotWritable, field, f.reason, extra)
}

// AutoNumberField guards auto-incrementing counters.
func AutoNumberField() Validator {
	return unEditableField{typ: TypeAutoNumber, reason: ReasonAutoNumberNotWritable}
}

func FormulaField() Validator {
	return unEditableField{typ: TypeFormula, reason: ReasonFormulaNotWritable}
}

func LookUpField() Validator {
	return unEditableField{typ: TypeLookUp, reason: ReasonLookUpNotWritable}
}

func CreatedTimeField() Validator {
	return unEditableField{typ: TypeCreatedTime, reason: ReasonCreatedTimeNotWritable}
}

func LastModifiedTimeField() Validator {
	return unEditableField{typ: TypeLastModifiedTime, reason: ReasonLastModifiedTimeNotWritable}
}

func CreatedByField() Validator {
	return unEditableField{typ: TypeCreatedBy, reason: ReasonCreatedByNotWritable}
}

func LastModifiedByField() Validator {
	return unEditableField{typ: TypeLastModifiedBy, reason: ReasonLastModifiedByNotWritable}
}
