package formkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/fieldstate"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/notifications"
	"github.com/dmitrymomot/formkit/pkg/router"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Check is the result of one observation made by the demo or the self-test.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// StepReport groups the checks of one demo step.
type StepReport struct {
	Name   string
	Checks []Check
}

func (s StepReport) Passed() bool {
	for _, c := range s.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// DemoReport is the outcome of RunDemo.
type DemoReport struct {
	Steps []StepReport
}

func (r DemoReport) Passed() bool {
	for _, s := range r.Steps {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// Failures returns every failed check, prefixed with its step name.
func (r DemoReport) Failures() []Check {
	var failed []Check
	for _, s := range r.Steps {
		for _, c := range s.Checks {
			if !c.Passed {
				c.Name = s.Name + ": " + c.Name
				failed = append(failed, c)
			}
		}
	}
	return failed
}

// SelfTestReport is the outcome of SelfTest: one check per feature.
type SelfTestReport struct {
	Results []Check
}

func (r SelfTestReport) Passed() int {
	n := 0
	for _, c := range r.Results {
		if c.Passed {
			n++
		}
	}
	return n
}

func (r SelfTestReport) Total() int {
	return len(r.Results)
}

func (r SelfTestReport) OK() bool {
	return r.Passed() == r.Total()
}

func (r SelfTestReport) String() string {
	return fmt.Sprintf("Tests completed: %d/%d passed", r.Passed(), r.Total())
}

const demoFieldName = "demoField"

// RunDemo walks through navigation, password strength, form validation,
// dynamic fields and notifications, recording what it observes. The
// registration form is reset afterwards.
func (a *App) RunDemo(ctx context.Context) DemoReport {
	steps := []struct {
		name string
		run  func(context.Context) []Check
	}{
		{"Navigation Testing", a.demoNavigation},
		{"Password Strength Demo", a.demoPasswordStrength},
		{"Form Validation Demo", a.demoFormValidation},
		{"Dynamic Field Demo", a.demoDynamicField},
		{"Notifications Demo", a.demoNotifications},
	}

	var report DemoReport
	for i, step := range steps {
		a.logger.LogAttrs(ctx, slog.LevelInfo, "demo step", slog.Int("step", i+1), slog.String("name", step.name))
		sr := StepReport{Name: step.name, Checks: step.run(ctx)}
		for _, c := range sr.Checks {
			a.logCheck(ctx, c)
		}
		report.Steps = append(report.Steps, sr)
	}
	a.registration.Reset(ctx)

	a.logger.LogAttrs(ctx, slog.LevelInfo, "demo completed", slog.Bool("passed", report.Passed()))
	return report
}

func (a *App) logCheck(ctx context.Context, c Check) {
	level := slog.LevelInfo
	if !c.Passed {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(ctx, level, c.Name, slog.Bool("passed", c.Passed), slog.String("detail", c.Detail))
}

func (a *App) demoNavigation(ctx context.Context) []Check {
	var checks []Check
	for _, route := range a.router.Routes() {
		_, err := a.router.Navigate(ctx, route)
		active := a.router.Active()
		checks = append(checks, Check{
			Name:   "navigate to " + route.String(),
			Passed: err == nil && active == route,
			Detail: "active page " + active.String(),
		})
	}
	return checks
}

func (a *App) demoPasswordStrength(ctx context.Context) []Check {
	if _, err := a.router.Navigate(ctx, router.Registration); err != nil {
		return []Check{{Name: "open registration", Detail: err.Error()}}
	}

	cases := []struct {
		value string
		want  validator.StrengthLevel
	}{
		{"123", validator.Weak},
		{"password", validator.Weak},
		{"Password123", validator.Good},
		{"MyStr0ng!Pass", validator.Strong},
	}

	checks := make([]Check, 0, len(cases))
	for _, tc := range cases {
		if err := a.registration.Input(ctx, "password", tc.value); err != nil {
			checks = append(checks, Check{Name: fmt.Sprintf("password %q", tc.value), Detail: err.Error()})
			continue
		}
		got := a.registration.PasswordStrength("password").Level
		checks = append(checks, Check{
			Name:   fmt.Sprintf("password %q", tc.value),
			Passed: got == tc.want,
			Detail: "strength " + got.Label(),
		})
	}
	return checks
}

func (a *App) demoFormValidation(ctx context.Context) []Check {
	cases := []struct {
		field, value, description string
		shouldFail                bool
	}{
		{"firstName", "A", "Too short first name", true},
		{"firstName", "John", "Valid first name", false},
		{"email", "invalid-email", "Invalid email format", true},
		{"email", "john@example.com", "Valid email", false},
	}

	checks := make([]Check, 0, len(cases))
	for _, tc := range cases {
		out, err := a.blur(ctx, a.registration, tc.field, tc.value)
		if err != nil {
			checks = append(checks, Check{Name: tc.description, Detail: err.Error()})
			continue
		}
		detail := "valid"
		if !out.Valid {
			detail = out.Message
		}
		checks = append(checks, Check{
			Name:   tc.description,
			Passed: out.Valid != tc.shouldFail,
			Detail: detail,
		})
	}
	return checks
}

func (a *App) demoDynamicField(ctx context.Context) []Check {
	_, err := a.registration.AddField(ctx, form.FieldConfig{
		ID:    demoFieldName,
		Label: "Demo Field",
		Type:  form.TypeText,
		Rule: &validator.FieldRule{
			MinLength: 3,
			Message:   "Demo field must be at least 3 characters",
		},
	})
	_, added := a.registration.Field(demoFieldName)
	checks := []Check{{Name: "add dynamic field", Passed: err == nil && added}}
	if !added {
		return checks
	}

	out, err := a.blur(ctx, a.registration, demoFieldName, "Hi")
	checks = append(checks, Check{
		Name:   "dynamic field validation",
		Passed: err == nil && !out.Valid && a.registration.State(demoFieldName) == fieldstate.Invalid,
		Detail: out.Message,
	})

	removed := a.registration.RemoveField(ctx, demoFieldName)
	_, stillThere := a.registration.Field(demoFieldName)
	_, ruleLeft := a.table.Lookup(demoFieldName)
	checks = append(checks, Check{
		Name:   "remove dynamic field",
		Passed: removed && !stillThere && !ruleLeft,
	})
	return checks
}

func (a *App) demoNotifications(ctx context.Context) []Check {
	samples := []struct {
		typ     notifications.Type
		message string
	}{
		{notifications.TypeSuccess, "Success notification"},
		{notifications.TypeError, "Error notification"},
		{notifications.TypeWarning, "Warning notification"},
		{notifications.TypeInfo, "Info notification"},
	}

	checks := make([]Check, 0, len(samples))
	for _, sample := range samples {
		n, err := a.notifier.Show(ctx, sample.message, sample.typ)
		checks = append(checks, Check{
			Name:   "show " + string(sample.typ) + " notification",
			Passed: err == nil && a.isActive(ctx, n.ID),
			Detail: n.Type.Icon(),
		})
	}
	return checks
}

func (a *App) isActive(ctx context.Context, id string) bool {
	active, err := a.notifier.Active(ctx)
	if err != nil {
		a.logger.LogAttrs(ctx, slog.LevelWarn, "failed to list notifications", logger.Error(err))
		return false
	}
	for _, n := range active {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (a *App) blur(ctx context.Context, f *form.Form, field, value string) (validator.Outcome, error) {
	if err := f.SetValue(field, value); err != nil {
		return validator.Outcome{}, err
	}
	return f.Blur(ctx, field)
}

// SelfTest checks that each feature works once and reports the tally as a
// notification: success when everything passed, warning otherwise.
func (a *App) SelfTest(ctx context.Context) SelfTestReport {
	report := SelfTestReport{Results: []Check{
		a.testNavigation(ctx),
		a.testPasswordStrength(ctx),
		a.testFormValidation(ctx),
		a.testDynamicField(ctx),
		a.testNotifications(ctx),
	}}
	a.registration.Reset(ctx)

	for _, c := range report.Results {
		a.logCheck(ctx, c)
	}
	typ := notifications.TypeSuccess
	if !report.OK() {
		typ = notifications.TypeWarning
	}
	a.notify(ctx, report.String(), typ)
	return report
}

func (a *App) testNavigation(ctx context.Context) Check {
	routes := a.router.Routes()
	c := Check{Name: "navigation", Detail: fmt.Sprintf("%d pages", len(routes))}
	if len(routes) == 0 {
		return c
	}
	start := a.router.Active()
	for _, route := range routes {
		if _, err := a.router.Navigate(ctx, route); err != nil || a.router.Active() != route {
			return c
		}
	}
	_, err := a.router.Navigate(ctx, start)
	c.Passed = err == nil
	return c
}

func (a *App) testPasswordStrength(ctx context.Context) Check {
	c := Check{Name: "passwordStrength"}
	if err := a.registration.Input(ctx, "password", "TestPassword123!"); err != nil {
		c.Detail = err.Error()
		return c
	}
	s := a.registration.PasswordStrength("password")
	c.Detail = s.Level.Label()
	c.Passed = s.Level == validator.Strong
	return c
}

func (a *App) testFormValidation(ctx context.Context) Check {
	c := Check{Name: "formValidation"}
	out, err := a.blur(ctx, a.registration, "firstName", "A")
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.Detail = out.Message
	c.Passed = !out.Valid && a.registration.State("firstName") == fieldstate.Invalid
	return c
}

func (a *App) testDynamicField(ctx context.Context) Check {
	const name = "testDynamicField"
	c := Check{Name: "dynamicField"}
	if _, err := a.registration.AddField(ctx, form.FieldConfig{ID: name, Label: "Test Dynamic Field"}); err != nil {
		c.Detail = err.Error()
		return c
	}
	_, added := a.registration.Field(name)
	c.Passed = added && a.registration.RemoveField(ctx, name)
	return c
}

func (a *App) testNotifications(ctx context.Context) Check {
	c := Check{Name: "notifications"}
	n, err := a.notifier.Success(ctx, "Test notification")
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.Detail = n.ID
	c.Passed = true
	return c
}
