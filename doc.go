// Package formkit wires the validation engine to the pieces of a small
// single-page application: a registration form, a settings form, hash
// routing between pages, transient notifications and a user data store.
//
// The core lives in pkg/validator (rule table, evaluator, password scorer)
// and pkg/fieldstate (per-field lifecycle). pkg/form drives them from user
// input; App composes everything and implements the submit flows.
//
// Basic usage:
//
//	app := formkit.New(
//		formkit.WithStore(userdata.NewMemoryStore()),
//		formkit.WithSubmitter(formkit.NewSimulatedSubmitter(time.Second, 0.1)),
//	)
//	defer app.Close()
//
//	reg := app.Registration()
//	_ = reg.Input(ctx, "email", "john@example.com")
//	...
//	if err := app.SubmitRegistration(ctx); err != nil {
//		errs := validator.ExtractValidationErrors(err)
//		...
//	}
//
// RunDemo and SelfTest exercise every feature headlessly and report what
// they observed; cmd/formdemo runs both from the command line.
package formkit
