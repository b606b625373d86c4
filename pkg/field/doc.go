// Package field validates candidate cell values against the declared type of a
// table column before a record write is persisted.
//
// Every supported field type has exactly one Validator. Validators are grouped
// into families that share behaviour through small helper functions rather
// than embedding: uneditable fields reject every write, text fields accept
// strings, number fields accept finite numbers, and so on. A nil value means
// "absent" and passes every family except the uneditable one.
//
// # Architecture
//
// Each source file groups the validators of one family
// (`uneditable_fields.go`, `number_fields.go`, `text_fields.go`, etc.).
// Validators are stateless values; the Registry maps a field type to its
// validator and is the only dispatch point.
//
// The Registry has two phases. During startup it is open and accepts Register
// calls; a duplicate registration is a configuration error. Seal freezes it,
// after which Resolve and Validate are lock-free and safe for concurrent use.
// Resolving before Seal fails with ErrRegistryNotSealed instead of observing a
// partially populated registry.
//
// # Usage
//
//	registry := field.MustNewDefaultRegistry(field.WithLogger(log))
//	if err := registry.CheckFields(fields); err != nil {
//	    // a field type has no validator: a configuration defect
//	}
//
//	err := registry.Validate(field.Descriptor{Name: "Price", Type: field.TypeCurrency}, 19.99, nil)
//	if err != nil {
//	    var ferr *field.Error
//	    if errors.As(err, &ferr) {
//	        // ferr.Reason is a stable code such as "api_param_currency_field_type_error"
//	    }
//	}
//
// # Error Handling
//
// User-facing failures are *Error values carrying a Reason code, the field
// descriptor and the caller's Extra map. They unwrap to one of
// ErrFieldNotWritable, ErrTypeMismatch or ErrInvalidValue, so callers can
// branch with errors.Is. A missing registration surfaces as ErrUnknownFieldType,
// which signals a startup defect rather than bad input.
//
// Reason codes are a versioned contract: renaming one breaks every caller that
// matches on it.
package field
