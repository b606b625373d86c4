package field

import (
	"errors"
	"fmt"
	"maps"
)

// Failure categories. *Error unwraps to exactly one of the first three.
var (
	// ErrFieldNotWritable is returned when a value is written to a system-computed field.
	ErrFieldNotWritable = errors.New("field is not writable")

	// ErrTypeMismatch is returned when the value's shape disagrees with the declared field type.
	ErrTypeMismatch = errors.New("field value type mismatch")

	// ErrInvalidValue is returned when the value has the right shape but violates a field constraint.
	ErrInvalidValue = errors.New("invalid field value")
)

// Registry and configuration errors. These indicate startup defects, not bad input.
var (
	ErrUnknownFieldType   = errors.New("unknown field type")
	ErrEmptyFieldType     = errors.New("empty field type")
	ErrNilValidator       = errors.New("nil validator")
	ErrDuplicateFieldType = errors.New("field type already registered")
	ErrRegistrySealed     = errors.New("registry is sealed")
	ErrRegistryNotSealed  = errors.New("registry is not sealed yet")
)

// Record-level input errors.
var (
	// ErrFieldNotFound is reported for a value keyed to no known field.
	ErrFieldNotFound = errors.New("field not found")

	// ErrDuplicateFieldKey is reported when one record addresses the same field
	// twice, by name and by ID.
	ErrDuplicateFieldKey = errors.New("field addressed more than once")
)

// Reason is a stable, machine-readable failure code consumed by message formatting.
type Reason string

const (
	ReasonAutoNumberNotWritable       Reason = "api_params_automumber_can_not_operate"
	ReasonFormulaNotWritable          Reason = "api_params_formula_can_not_operate"
	ReasonLookUpNotWritable           Reason = "api_params_lookup_can_not_operate"
	ReasonCreatedTimeNotWritable      Reason = "api_params_created_time_can_not_operate"
	ReasonLastModifiedTimeNotWritable Reason = "api_params_updated_time_can_not_operate"
	ReasonCreatedByNotWritable        Reason = "api_params_created_by_can_not_operate"
	ReasonLastModifiedByNotWritable   Reason = "api_params_updated_by_can_not_operate"

	ReasonTextTypeError         Reason = "api_param_text_field_type_error"
	ReasonSingleTextTypeError   Reason = "api_param_single_text_field_type_error"
	ReasonSingleTextLineBreak   Reason = "api_param_single_text_field_line_break_error"
	ReasonEmailTypeError        Reason = "api_param_email_field_type_error"
	ReasonEmailFormatError      Reason = "api_param_email_field_format_error"
	ReasonURLTypeError          Reason = "api_param_url_field_type_error"
	ReasonURLFormatError        Reason = "api_param_url_field_format_error"
	ReasonPhoneTypeError        Reason = "api_param_phone_field_type_error"
	ReasonPhoneFormatError      Reason = "api_param_phone_field_format_error"
	ReasonNumberTypeError       Reason = "api_param_number_field_type_error"
	ReasonCurrencyTypeError     Reason = "api_param_currency_field_type_error"
	ReasonPercentTypeError      Reason = "api_param_percent_field_type_error"
	ReasonRatingTypeError       Reason = "api_param_rating_field_type_error"
	ReasonRatingOutOfRange      Reason = "api_params_rating_field_max_error"
	ReasonCheckboxTypeError     Reason = "api_param_checkbox_field_type_error"
	ReasonDateTimeTypeError     Reason = "api_param_datetime_field_type_error"
	ReasonSelectTypeError       Reason = "api_param_select_field_value_type_error"
	ReasonMultiSelectTypeError  Reason = "api_param_multiselect_field_value_type_error"
	ReasonSelectOptionNotExists Reason = "api_param_select_option_not_exists"

	ReasonFieldNotExists  Reason = "api_param_field_not_exists"
	ReasonFieldDuplicated Reason = "api_param_field_duplicated"
)

// Error is the structured signal returned when a value fails validation.
// It is constructed once and never mutated.
type Error struct {
	Reason Reason
	Field  Descriptor
	Extra  Extra
	kind   error
}

func newError(kind error, field Descriptor, reason Reason, extra Extra) *Error {
	return &Error{
		Reason: reason,
		Field:  field,
		Extra:  maps.Clone(extra),
		kind:   kind,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("field %q (%s): %s", e.Field.Key(), e.Field.Type, e.Reason)
}

// Unwrap returns the failure category.
func (e *Error) Unwrap() error {
	return e.kind
}

// AsError extracts a field *Error from err.
func AsError(err error) (*Error, bool) {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr, true
	}
	return nil, false
}

// IsUserError reports whether err is a routine input failure that should be
// surfaced to the end user, as opposed to a configuration defect.
func IsUserError(err error) bool {
	return errors.Is(err, ErrFieldNotWritable) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, ErrFieldNotFound) ||
		errors.Is(err, ErrDuplicateFieldKey)
}
