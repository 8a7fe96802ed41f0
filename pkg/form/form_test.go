package form_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldstate"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type event struct {
	kind    string
	field   string
	message string
}

type recordingRenderer struct {
	mu       sync.Mutex
	events   []event
	strength map[string]validator.Strength
	visible  map[string]bool
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		strength: make(map[string]validator.Strength),
		visible:  make(map[string]bool),
	}
}

func (r *recordingRenderer) record(e event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingRenderer) ShowError(_ context.Context, field, message string) {
	r.record(event{"error", field, message})
}

func (r *recordingRenderer) ShowSuccess(_ context.Context, field string) {
	r.record(event{"success", field, ""})
}

func (r *recordingRenderer) Clear(_ context.Context, field string) {
	r.record(event{"clear", field, ""})
}

func (r *recordingRenderer) Attach(_ context.Context, d form.Descriptor) {
	r.record(event{"attach", d.Name, d.Label})
}

func (r *recordingRenderer) Update(_ context.Context, d form.Descriptor) {
	r.record(event{"update", d.Name, d.Label})
}

func (r *recordingRenderer) Detach(_ context.Context, field string) {
	r.record(event{"detach", field, ""})
}

func (r *recordingRenderer) ShowStrength(_ context.Context, field string, s validator.Strength, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strength[field] = s
	r.visible[field] = visible
}

func (r *recordingRenderer) last() event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return event{}
	}
	return r.events[len(r.events)-1]
}

func (r *recordingRenderer) count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) meter(field string) (validator.Strength, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.strength[field], r.visible[field]
}

var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func registrationFields() []form.FieldConfig {
	return []form.FieldConfig{
		{Name: "firstName", Label: "First Name"},
		{Name: "email", Label: "Email", Type: form.TypeEmail},
		{Name: "password", Label: "Password", Type: form.TypePassword},
		{Name: "confirmPassword", Label: "Confirm Password", Type: form.TypePassword},
	}
}

func newTestForm(t *testing.T, opts ...form.Option) (*form.Form, *recordingRenderer) {
	t.Helper()
	r := newRecordingRenderer()
	table := validator.NewDefaultTable(validator.WithClock(func() time.Time { return fixedNow }))
	base := []form.Option{
		form.WithRenderer(r),
		form.WithLogger(logger.Discard()),
		form.WithFields(registrationFields()...),
		form.WithDebounce(0),
	}
	f := form.New("registrationForm", table, append(base, opts...)...)
	t.Cleanup(f.Close)
	return f, r
}

func TestForm_Blur(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t)

	assert.Equal(t, fieldstate.Untouched, f.State("firstName"))

	require.NoError(t, f.SetValue("firstName", "A"))
	out, err := f.Blur(ctx, "firstName")
	require.NoError(t, err)
	assert.False(t, out.Valid)
	assert.Equal(t, fieldstate.Invalid, f.State("firstName"))
	assert.Equal(t, event{"error", "firstName", "First name must be 2-50 characters and contain only letters"}, r.last())

	require.NoError(t, f.SetValue("firstName", "John"))
	out, err = f.Blur(ctx, "firstName")
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, fieldstate.Valid, f.State("firstName"))
	assert.Equal(t, event{"success", "firstName", ""}, r.last())

	_, err = f.Blur(ctx, "nickname")
	assert.ErrorIs(t, err, form.ErrUnknownField)
	assert.ErrorIs(t, f.SetValue("nickname", "x"), form.ErrUnknownField)
}

func TestForm_BlurComparesConfirmation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t)

	require.NoError(t, f.SetValue("password", "Abc12345"))
	require.NoError(t, f.SetValue("confirmPassword", "Abc12345x"))
	out, err := f.Blur(ctx, "confirmPassword")
	require.NoError(t, err)
	assert.Equal(t, "Passwords do not match", out.Message)
	assert.Equal(t, "Passwords do not match", r.last().message)

	require.NoError(t, f.SetValue("confirmPassword", "Abc12345"))
	out, err = f.Blur(ctx, "confirmPassword")
	require.NoError(t, err)
	assert.True(t, out.Valid)
}

func TestForm_InputSynchronous(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t)

	require.NoError(t, f.Input(ctx, "email", "invalid-email"))
	assert.Equal(t, fieldstate.Invalid, f.State("email"))

	require.NoError(t, f.Input(ctx, "email", "   "))
	assert.Equal(t, fieldstate.Untouched, f.State("email"), "blank input clears instead of failing required")
	assert.Equal(t, event{"clear", "email", ""}, r.last())
}

func TestForm_InputDebounced(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t, form.WithDebounce(20*time.Millisecond))

	for _, v := range []string{"j", "jo", "joh", "john@example.com"} {
		require.NoError(t, f.Input(ctx, "email", v))
	}
	assert.Equal(t, fieldstate.Untouched, f.State("email"), "nothing is validated while typing")

	require.Eventually(t, func() bool {
		return f.State("email") == fieldstate.Valid
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, r.count("success"), "only the settled value is validated")
	assert.Zero(t, r.count("error"))
}

func TestForm_InputUnknownField(t *testing.T) {
	t.Parallel()

	f, _ := newTestForm(t)
	assert.ErrorIs(t, f.Input(context.Background(), "nickname", "x"), form.ErrUnknownField)
}

func TestForm_PasswordStrengthMeter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t, form.WithDebounce(time.Hour))

	require.NoError(t, f.Input(ctx, "password", "MyStr0ng!Pass"))
	s, visible := r.meter("password")
	assert.True(t, visible)
	assert.Equal(t, validator.Strong, s.Level)
	assert.Equal(t, validator.Strong, f.PasswordStrength("password").Level)

	require.NoError(t, f.Input(ctx, "password", ""))
	_, visible = r.meter("password")
	assert.False(t, visible, "meter hides for an empty value")

	require.NoError(t, f.Input(ctx, "email", "a@b.co"))
	_, visible = r.meter("email")
	assert.False(t, visible, "non-password fields have no meter")
}

func TestForm_CustomStrengthFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t, form.WithStrengthFields("confirmPassword"))

	require.NoError(t, f.Input(ctx, "password", "abc"))
	_, visible := r.meter("password")
	assert.False(t, visible)

	require.NoError(t, f.Input(ctx, "confirmPassword", "abc"))
	_, visible = r.meter("confirmPassword")
	assert.True(t, visible)
}

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, _ := newTestForm(t)

	err := f.Validate(ctx)
	require.Error(t, err)
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"firstName", "email", "password", "confirmPassword"}, errs.Fields())
	assert.Equal(t, "Please enter a valid email address", errs.Get("email"))
	for _, d := range f.Fields() {
		assert.Equal(t, fieldstate.Invalid, f.State(d.Name), d.Name)
	}

	require.NoError(t, f.SetValue("firstName", "John"))
	require.NoError(t, f.SetValue("email", "john@example.com"))
	require.NoError(t, f.SetValue("password", "Abc12345"))
	require.NoError(t, f.SetValue("confirmPassword", "Abc12345"))
	assert.NoError(t, f.Validate(ctx))
	assert.Equal(t, fieldstate.Valid, f.State("confirmPassword"))
}

func TestForm_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t)

	require.NoError(t, f.Input(ctx, "firstName", "A"))
	require.NoError(t, f.Input(ctx, "password", "Abc12345"))
	require.Equal(t, fieldstate.Invalid, f.State("firstName"))

	f.Reset(ctx)
	assert.Empty(t, f.Values())
	assert.Equal(t, fieldstate.Untouched, f.State("firstName"))
	assert.Equal(t, fieldstate.Untouched, f.State("password"))
	assert.Equal(t, 2, r.count("clear"))
	_, visible := r.meter("password")
	assert.False(t, visible)
	assert.Len(t, f.Fields(), 4, "fields survive a reset")
}

func TestForm_DynamicFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t)
	table := f.Table()

	d, err := f.AddField(ctx, form.FieldConfig{
		ID:       "demoField",
		Label:    "Demo Field",
		Required: true,
		Rule: &validator.FieldRule{
			MinLength: 3,
			Message:   "Demo field must be at least 3 characters",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "demoField", d.Name)
	assert.Equal(t, form.TypeText, d.Type)
	assert.Equal(t, event{"attach", "demoField", "Demo Field"}, r.last())

	_, ok := table.Lookup("demoField")
	assert.True(t, ok)

	require.NoError(t, f.SetValue("demoField", "Hi"))
	out, err := f.Blur(ctx, "demoField")
	require.NoError(t, err)
	assert.Equal(t, "Demo field must be at least 3 characters", out.Message)

	t.Run("update relabels and carries required into rule", func(t *testing.T) {
		label := "Updated Demo Field"
		required := true
		d, err := f.UpdateField(ctx, "demoField", form.FieldUpdate{Label: &label, Required: &required})
		require.NoError(t, err)
		assert.Equal(t, "Updated Demo Field", d.Label)
		assert.Equal(t, event{"update", "demoField", "Updated Demo Field"}, r.last())

		rule, ok := table.Lookup("demoField")
		require.True(t, ok)
		assert.True(t, rule.Required)

		_, err = f.UpdateField(ctx, "missing", form.FieldUpdate{Label: &label})
		assert.ErrorIs(t, err, form.ErrUnknownField)
	})

	t.Run("remove drops rule value and state", func(t *testing.T) {
		assert.True(t, f.RemoveField(ctx, "demoField"))
		assert.Equal(t, event{"detach", "demoField", ""}, r.last())
		assert.False(t, f.RemoveField(ctx, "demoField"))

		_, ok := table.Lookup("demoField")
		assert.False(t, ok)
		_, ok = f.Field("demoField")
		assert.False(t, ok)
		assert.Empty(t, f.Value("demoField"))
		assert.Equal(t, fieldstate.Untouched, f.State("demoField"))
	})

	_, err = f.AddField(ctx, form.FieldConfig{})
	assert.ErrorIs(t, err, form.ErrFieldNameRequired)
}

func TestForm_AddFieldReplacesInPlace(t *testing.T) {
	t.Parallel()

	f, _ := newTestForm(t)
	_, err := f.AddField(context.Background(), form.FieldConfig{Name: "email", Label: "Work Email"})
	require.NoError(t, err)

	fields := f.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, "email", fields[1].Name)
	assert.Equal(t, "Work Email", fields[1].Label)
}

func TestForm_RemoveStopsPendingValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t, form.WithDebounce(20*time.Millisecond))

	require.NoError(t, f.Input(ctx, "email", "bad"))
	require.True(t, f.RemoveField(ctx, "email"))

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, r.count("error"))
}

func TestForm_RemoveWhileDebounceFires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, r := newTestForm(t, form.WithDebounce(time.Microsecond))

	names := make([]string, 0, 100)
	for i := range 100 {
		name := fmt.Sprintf("extra%d", i)
		names = append(names, name)
		_, err := f.AddField(ctx, form.FieldConfig{
			Name: name,
			Rule: &validator.FieldRule{MinLength: 3, Message: "too short"},
		})
		require.NoError(t, err)
		require.NoError(t, f.Input(ctx, name, "ab"))
		time.Sleep(time.Duration(i%3) * time.Microsecond)
		require.True(t, f.RemoveField(ctx, name))
	}
	time.Sleep(20 * time.Millisecond)

	for _, name := range names {
		assert.Equal(t, fieldstate.Untouched, f.State(name), name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	detached := make(map[string]bool)
	for _, e := range r.events {
		switch e.kind {
		case "detach":
			detached[e.field] = true
		case "error", "success":
			assert.False(t, detached[e.field], "%s rendered after removal", e.field)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	f := form.NewFromConfig("settingsForm", nil, form.Config{Debounce: 0},
		form.WithFields(form.FieldConfig{Name: "nickname"}),
	)
	t.Cleanup(f.Close)

	assert.Equal(t, "settingsForm", f.ID())
	require.NoError(t, f.Input(context.Background(), "nickname", "anything"))
	assert.Equal(t, fieldstate.Valid, f.State("nickname"), "fields without a rule are always valid")
}
