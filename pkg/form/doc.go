// Package form models a form as an ordered set of fields whose values are
// validated against a shared validator.Table.
//
// Fields can be added, updated and removed at runtime; adding a field with a
// rule registers the rule, removing it unregisters the rule. Each field has a
// fieldstate lifecycle (untouched, valid, invalid) and every transition is
// rendered through a Renderer.
//
// Input mirrors typing: the value is stored at once, password strength meters
// update at once, and validation runs once typing pauses for the debounce
// period. Blur validates immediately. Validate checks every field and returns
// validator.ValidationErrors.
//
//	table := validator.NewDefaultTable()
//	f := form.New("registrationForm", table,
//	    form.WithFields(form.FieldConfig{Name: "email", Label: "Email", Type: form.TypeEmail}),
//	)
//	_ = f.Input(ctx, "email", "john@example.com")
//	if err := f.Validate(ctx); err != nil {
//	    errs := validator.ExtractValidationErrors(err)
//	    ...
//	}
package form
