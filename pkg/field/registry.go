package field

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// Registry maps a field type to the validator handling it.
//
// It is populated during startup and then sealed. Register takes a lock and
// fails once the registry is sealed; Resolve never locks and fails until the
// registry is sealed, so readers never observe a partial registry.
type Registry struct {
	mu         sync.Mutex
	validators map[Type]Validator
	sealed     atomic.Bool
	logger     *slog.Logger

	// registered after the built-ins by NewDefaultRegistry
	extra []Validator
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and dispatch events.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithValidators adds validators that NewDefaultRegistry registers after the
// built-in ones. NewRegistry ignores them; use Register instead.
func WithValidators(vs ...Validator) Option {
	return func(r *Registry) {
		r.extra = append(r.extra, vs...)
	}
}

// NewRegistry creates an empty, open registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		validators: make(map[Type]Validator),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds typ to v. A type may be registered only once.
func (r *Registry) Register(typ Type, v Validator) error {
	if typ == "" {
		return ErrEmptyFieldType
	}
	if v == nil {
		return fmt.Errorf("%w: %q", ErrNilValidator, typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, typ)
	}
	if _, exists := r.validators[typ]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFieldType, typ)
	}
	r.validators[typ] = v
	r.logger.Debug("field validator registered", logger.FieldType(string(typ)))
	return nil
}

// Seal freezes the registry. Calling it more than once is a no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed.Swap(true) {
		return
	}
	r.logger.Info("field registry sealed", slog.Int("types", len(r.validators)))
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Resolve returns the validator registered for typ.
func (r *Registry) Resolve(typ Type) (Validator, error) {
	if !r.sealed.Load() {
		return nil, fmt.Errorf("%w: resolve %q", ErrRegistryNotSealed, typ)
	}
	v, ok := r.validators[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, typ)
	}
	return v, nil
}

// Types returns the registered field types in sorted order.
func (r *Registry) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]Type, 0, len(r.validators))
	for typ := range r.validators {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}

// Validate dispatches value to the validator registered for field.Type.
// A missing validator is logged at error level since it points at a startup defect.
func (r *Registry) Validate(field Descriptor, value any, extra Extra) error {
	v, err := r.Resolve(field.Type)
	if err != nil {
		r.logger.Error("field validation dispatch failed",
			logger.FieldName(field.Key()),
			logger.FieldType(string(field.Type)),
			logger.Error(err),
		)
		return err
	}
	if err := v.Validate(value, field, extra); err != nil {
		r.logger.Debug("field value rejected",
			logger.FieldName(field.Key()),
			logger.FieldType(string(field.Type)),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// CheckFields resolves the type of every descriptor and reports all the
// types without a validator. It lets callers reject a broken field set before
// any value is validated, whether or not a value ever targets those fields.
func (r *Registry) CheckFields(fields []Descriptor) error {
	var errs []error
	for _, f := range fields {
		if _, err := r.Resolve(f.Type); err != nil {
			r.logger.Error("field type cannot be resolved",
				logger.FieldName(f.Key()),
				logger.FieldType(string(f.Type)),
				logger.Error(err),
			)
			errs = append(errs, fmt.Errorf("field %q: %w", f.Key(), err))
		}
	}
	return errors.Join(errs...)
}
