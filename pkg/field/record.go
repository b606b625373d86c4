package field

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Errors collects the field failures of one record.
type Errors []*Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "record validation failed"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field.Key(), e.Reason))
	}
	return "record validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the field addressed by key failed.
func (es Errors) Has(key string) bool {
	return slices.ContainsFunc(es, func(e *Error) bool { return e.Field.Key() == key })
}

// Get returns the failure of the field addressed by key, or nil.
func (es Errors) Get(key string) *Error {
	for _, e := range es {
		if e.Field.Key() == key {
			return e
		}
	}
	return nil
}

// Fields returns the keys of failed fields in order of appearance.
func (es Errors) Fields() []string {
	keys := make([]string, 0, len(es))
	for _, e := range es {
		keys = append(keys, e.Field.Key())
	}
	return keys
}

// Reasons returns the failure reasons keyed by field.
func (es Errors) Reasons() map[string]Reason {
	out := make(map[string]Reason, len(es))
	for _, e := range es {
		out[e.Field.Key()] = e.Reason
	}
	return out
}

// ExtractErrors returns the record failures wrapped in err, if any.
func ExtractErrors(err error) Errors {
	var es Errors
	if errors.As(err, &es) {
		return es
	}
	return nil
}

// ValidateRecord validates the cells of a single record write.
//
// The field set is checked first with CheckFields, so an unregistered field
// type fails the call even when no value targets that field.
// Only keys present in values are checked, matched against fields by name and
// then by ID, in sorted key order. Keys that match no field are reported with
// ErrFieldNotFound; a second key resolving to an already addressed field is
// reported with ErrDuplicateFieldKey and its value is not validated.
// Input failures are collected into Errors; any other failure aborts
// immediately and is returned as is.
func (r *Registry) ValidateRecord(fields []Descriptor, values map[string]any, extra Extra) error {
	if err := r.CheckFields(fields); err != nil {
		return err
	}

	byName := make(map[string]int, len(fields))
	byID := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name != "" {
			byName[f.Name] = i
		}
		if f.ID != "" {
			byID[f.ID] = i
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs Errors
	seen := make(map[int]struct{}, len(keys))
	for _, key := range keys {
		idx, ok := byName[key]
		if !ok {
			idx, ok = byID[key]
		}
		if !ok {
			errs = append(errs, newError(ErrFieldNotFound, Descriptor{Name: key}, ReasonFieldNotExists, extra))
			continue
		}
		if _, dup := seen[idx]; dup {
			errs = append(errs, newError(ErrDuplicateFieldKey, Descriptor{Name: key, Type: fields[idx].Type}, ReasonFieldDuplicated, extra))
			continue
		}
		seen[idx] = struct{}{}

		err := r.Validate(fields[idx], values[key], extra)
		if err == nil {
			continue
		}
		ferr, ok := AsError(err)
		if !ok {
			return err
		}
		errs = append(errs, ferr)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
