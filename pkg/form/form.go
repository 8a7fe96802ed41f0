package form

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/fieldstate"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form holds the fields and values of one form and drives their validation
// through a shared rule table.
type Form struct {
	id             string
	table          *validator.Table
	tracker        *fieldstate.Tracker
	renderer       Renderer
	logger         *slog.Logger
	debounce       time.Duration
	strengthFields map[string]bool

	// applyMu orders state updates against field removal.
	applyMu sync.Mutex

	mu     sync.Mutex
	fields []Descriptor
	values map[string]string
	timers map[string]*time.Timer
}

// Option configures a Form.
type Option func(*Form)

func WithRenderer(r Renderer) Option {
	return func(f *Form) {
		if r != nil {
			f.renderer = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithDebounce sets the input debounce. Non-positive values validate input
// synchronously.
func WithDebounce(d time.Duration) Option {
	return func(f *Form) {
		f.debounce = d
	}
}

// WithStrengthFields replaces the set of fields that get a strength meter.
func WithStrengthFields(names ...string) Option {
	return func(f *Form) {
		f.strengthFields = make(map[string]bool, len(names))
		for _, n := range names {
			f.strengthFields[n] = true
		}
	}
}

// WithFields declares the initial fields. Their rules, when set, are
// registered in the table.
func WithFields(cfgs ...FieldConfig) Option {
	return func(f *Form) {
		for _, cfg := range cfgs {
			f.addField(cfg)
		}
	}
}

// New creates a form identified by id that validates against table.
func New(id string, table *validator.Table, opts ...Option) *Form {
	if table == nil {
		table = validator.NewTable()
	}
	f := &Form{
		id:             id,
		table:          table,
		renderer:       NopRenderer{},
		logger:         slog.Default(),
		debounce:       DefaultDebounce,
		strengthFields: map[string]bool{"password": true, "newPassword": true},
		values:         make(map[string]string),
		timers:         make(map[string]*time.Timer),
	}
	f.tracker = fieldstate.New(fieldstate.WithListener(f.render))
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("form"), logger.Form(id))
	return f
}

// NewFromConfig creates a form using cfg.Debounce.
func NewFromConfig(id string, table *validator.Table, cfg Config, opts ...Option) *Form {
	return New(id, table, append([]Option{WithDebounce(cfg.Debounce)}, opts...)...)
}

func (f *Form) ID() string {
	return f.id
}

// Table returns the rule table the form validates against.
func (f *Form) Table() *validator.Table {
	return f.table
}

// render maps field state transitions onto renderer callbacks.
func (f *Form) render(ctx context.Context, tr fieldstate.Transition) {
	switch tr.To {
	case fieldstate.Invalid:
		f.renderer.ShowError(ctx, tr.Field, tr.Message)
	case fieldstate.Valid:
		f.renderer.ShowSuccess(ctx, tr.Field)
	default:
		f.renderer.Clear(ctx, tr.Field)
	}
	if tr.Changed() {
		f.logger.LogAttrs(ctx, slog.LevelDebug, "field state changed",
			logger.Field(tr.Field),
			logger.State(tr.To.Name()),
			slog.String("from", tr.From.Name()),
		)
	}
}

// AddField adds a field and registers its rule. Adding a field whose name is
// already present replaces it in place.
func (f *Form) AddField(ctx context.Context, cfg FieldConfig) (Descriptor, error) {
	if cfg.ID == "" && cfg.Name == "" {
		return Descriptor{}, ErrFieldNameRequired
	}
	d := f.addField(cfg)
	f.renderer.Attach(ctx, d)
	f.logger.LogAttrs(ctx, slog.LevelDebug, "field added", logger.Field(d.Name))
	return d, nil
}

func (f *Form) addField(cfg FieldConfig) Descriptor {
	d := cfg.descriptor()
	if cfg.Rule != nil {
		f.table.Register(d.Name, *cfg.Rule)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.indexOf(d.Name); i >= 0 {
		f.fields[i] = d
	} else {
		f.fields = append(f.fields, d)
	}
	return d
}

// RemoveField removes a field, its rule, value and state.
// It reports whether the field existed.
func (f *Form) RemoveField(ctx context.Context, name string) bool {
	f.applyMu.Lock()
	defer f.applyMu.Unlock()

	f.mu.Lock()
	i := f.indexOf(name)
	if i < 0 {
		f.mu.Unlock()
		return false
	}
	f.fields = slices.Delete(f.fields, i, i+1)
	delete(f.values, name)
	f.stopTimer(name)
	f.mu.Unlock()

	f.table.Unregister(name)
	f.tracker.Forget(name)
	f.renderer.Detach(ctx, name)
	f.logger.LogAttrs(ctx, slog.LevelDebug, "field removed", logger.Field(name))
	return true
}

// UpdateField changes the label, type or required flag of a field. A changed
// required flag is carried into the field's rule when it has one.
func (f *Form) UpdateField(ctx context.Context, name string, u FieldUpdate) (Descriptor, error) {
	f.mu.Lock()
	i := f.indexOf(name)
	if i < 0 {
		f.mu.Unlock()
		return Descriptor{}, ErrUnknownField
	}
	d := u.apply(f.fields[i])
	f.fields[i] = d
	f.mu.Unlock()

	if u.Required != nil {
		if rule, ok := f.table.Lookup(name); ok && rule.Required != *u.Required {
			rule.Required = *u.Required
			f.table.Register(name, rule)
		}
	}
	f.renderer.Update(ctx, d)
	return d, nil
}

// Field returns the descriptor of a field.
func (f *Form) Field(name string) (Descriptor, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.indexOf(name); i >= 0 {
		return f.fields[i], true
	}
	return Descriptor{}, false
}

// Fields returns the field descriptors in display order.
func (f *Form) Fields() []Descriptor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.fields)
}

// SetValue stores a value without validating it.
func (f *Form) SetValue(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexOf(name) < 0 {
		return ErrUnknownField
	}
	f.values[name] = value
	return nil
}

// Value returns the current raw value of a field.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Values returns a copy of every stored value.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// State returns the validation state of a field.
func (f *Form) State(name string) fieldstate.State {
	return f.tracker.State(name)
}

// Blur validates a field immediately, as when it loses focus.
func (f *Form) Blur(ctx context.Context, name string) (validator.Outcome, error) {
	f.mu.Lock()
	if f.indexOf(name) < 0 {
		f.mu.Unlock()
		return validator.Outcome{}, ErrUnknownField
	}
	f.stopTimer(name)
	f.mu.Unlock()

	out, ok := f.evaluate(ctx, name)
	if !ok {
		return validator.Outcome{}, ErrUnknownField
	}
	return out, nil
}

// Input stores a typed value. Strength meters update at once; validation
// runs after the debounce: a non-blank value is evaluated, a blank one clears
// the field back to untouched.
func (f *Form) Input(ctx context.Context, name, value string) error {
	f.mu.Lock()
	if f.indexOf(name) < 0 {
		f.mu.Unlock()
		return ErrUnknownField
	}
	f.values[name] = value
	f.stopTimer(name)
	if f.debounce > 0 {
		detached := context.WithoutCancel(ctx)
		var t *time.Timer
		t = time.AfterFunc(f.debounce, func() {
			f.mu.Lock()
			if f.timers[name] == t {
				delete(f.timers, name)
			}
			f.mu.Unlock()
			f.settle(detached, name)
		})
		f.timers[name] = t
	}
	f.mu.Unlock()

	if f.strengthFields[name] {
		f.renderer.ShowStrength(ctx, name, validator.PasswordStrength(value), value != "")
	}

	if f.debounce <= 0 {
		f.settle(ctx, name)
	}
	return nil
}

// PasswordStrength rates the current value of a field.
func (f *Form) PasswordStrength(name string) validator.Strength {
	return validator.PasswordStrength(f.Value(name))
}

// settle is a no-op for fields removed while their timer was firing.
func (f *Form) settle(ctx context.Context, name string) {
	f.applyMu.Lock()
	defer f.applyMu.Unlock()

	f.mu.Lock()
	present := f.indexOf(name) >= 0
	value := f.values[name]
	f.mu.Unlock()
	if !present {
		return
	}
	if strings.TrimSpace(value) == "" {
		f.tracker.Clear(ctx, name)
		return
	}
	f.apply(ctx, name)
}

// evaluate reports false when the field is no longer part of the form.
func (f *Form) evaluate(ctx context.Context, name string) (validator.Outcome, bool) {
	f.applyMu.Lock()
	defer f.applyMu.Unlock()

	f.mu.Lock()
	present := f.indexOf(name) >= 0
	f.mu.Unlock()
	if !present {
		return validator.Outcome{}, false
	}
	return f.apply(ctx, name), true
}

// apply requires f.applyMu.
func (f *Form) apply(ctx context.Context, name string) validator.Outcome {
	values := validator.ValueMap(f.Values())
	out := f.table.Evaluate(name, values[name], values)
	f.tracker.Apply(ctx, out)
	return out
}

// Validate evaluates every field in display order and returns the failures
// as validator.ValidationErrors, or nil when the form is valid.
func (f *Form) Validate(ctx context.Context) error {
	f.mu.Lock()
	names := make([]string, len(f.fields))
	for i, d := range f.fields {
		names[i] = d.Name
		f.stopTimer(d.Name)
	}
	values := validator.ValueMap(maps.Clone(f.values))
	f.mu.Unlock()

	var errs validator.ValidationErrors
	for _, name := range names {
		out := f.table.Evaluate(name, values[name], values)
		f.tracker.Apply(ctx, out)
		if !out.Valid {
			errs.Add(validator.ValidationError{Field: out.Field, Message: out.Message})
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	f.logger.LogAttrs(ctx, slog.LevelDebug, "form invalid", slog.Any("fields", errs.Fields()))
	return errs
}

// Reset clears every value and returns every field to untouched.
func (f *Form) Reset(ctx context.Context) {
	f.mu.Lock()
	for name := range f.timers {
		f.stopTimer(name)
	}
	clear(f.values)
	f.mu.Unlock()

	for name := range f.tracker.Reset() {
		f.renderer.Clear(ctx, name)
	}
	for name := range f.strengthFields {
		if _, ok := f.Field(name); ok {
			f.renderer.ShowStrength(ctx, name, validator.PasswordStrength(""), false)
		}
	}
}

// Close stops pending debounce timers.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name := range f.timers {
		f.stopTimer(name)
	}
}

// indexOf requires f.mu.
func (f *Form) indexOf(name string) int {
	return slices.IndexFunc(f.fields, func(d Descriptor) bool { return d.Name == name })
}

// stopTimer requires f.mu.
func (f *Form) stopTimer(name string) {
	if t, ok := f.timers[name]; ok {
		t.Stop()
		delete(f.timers, name)
	}
}
