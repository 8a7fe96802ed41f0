package formkit

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/notifications"
	"github.com/dmitrymomot/formkit/pkg/router"
	"github.com/dmitrymomot/formkit/pkg/userdata"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Notification messages shown by the submit flows.
const (
	MsgFixErrors          = "Please fix the errors in the form"
	MsgRegistrationOK     = "Registration successful! Welcome!"
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgSettingsOK         = "Settings updated successfully!"
	MsgSettingsFailed     = "Failed to update settings. Please try again."
	MsgIncorrectPassword  = "Current password is incorrect"
)

// DefaultRedirectDelay is the pause between a successful registration and
// showing the profile page.
const DefaultRedirectDelay = 1500 * time.Millisecond

// App wires the registration and settings forms to the router, the notifier
// and the user data store.
type App struct {
	logger        *slog.Logger
	table         *validator.Table
	store         userdata.Store
	submitter     Submitter
	notifier      *notifications.Notifier
	router        *router.Router
	redirectDelay time.Duration
	bcryptCost    int
	now           func() time.Time
	formOpts      []form.Option

	registration *form.Form
	settings     *form.Form

	mu       sync.Mutex
	profile  *userdata.Profile
	redirect *time.Timer
}

// Option configures an App.
type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTable sets the rule table shared by both forms.
func WithTable(t *validator.Table) Option {
	return func(a *App) {
		if t != nil {
			a.table = t
		}
	}
}

func WithStore(s userdata.Store) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
		}
	}
}

func WithSubmitter(s Submitter) Option {
	return func(a *App) {
		if s != nil {
			a.submitter = s
		}
	}
}

func WithNotifier(n *notifications.Notifier) Option {
	return func(a *App) {
		if n != nil {
			a.notifier = n
		}
	}
}

// WithRedirectDelay sets the pause before the profile page is shown after
// registering. Non-positive values navigate at once.
func WithRedirectDelay(d time.Duration) Option {
	return func(a *App) {
		a.redirectDelay = d
	}
}

func WithBcryptCost(cost int) Option {
	return func(a *App) {
		a.bcryptCost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithFormOptions passes options to both forms.
func WithFormOptions(opts ...form.Option) Option {
	return func(a *App) {
		a.formOpts = append(a.formOpts, opts...)
	}
}

// New creates an App. Without options it uses the default rules, an
// in-memory store and a simulated submitter that never fails.
func New(opts ...Option) *App {
	a := &App{
		logger:        slog.Default(),
		redirectDelay: DefaultRedirectDelay,
		bcryptCost:    userdata.DefaultBcryptCost,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.table == nil {
		a.table = validator.NewDefaultTable()
	}
	if a.store == nil {
		a.store = userdata.NewMemoryStore()
	}
	if a.submitter == nil {
		a.submitter = NewSimulatedSubmitter(0, 0)
	}
	if a.notifier == nil {
		a.notifier = notifications.NewNotifier(nil, notifications.NewLogDeliverer(a.logger), notifications.WithLogger(a.logger))
	}

	base := []form.Option{form.WithLogger(a.logger)}
	a.registration = form.New(RegistrationFormID, a.table,
		slices.Concat(base, a.formOpts, []form.Option{form.WithFields(RegistrationFields()...)})...)
	a.settings = form.New(SettingsFormID, a.table,
		slices.Concat(base, a.formOpts, []form.Option{form.WithFields(SettingsFields()...)})...)

	a.router = router.New(
		router.WithLogger(a.logger),
		router.OnEnter(router.Profile, a.showProfile),
		router.OnEnter(router.Settings, a.loadSettings),
	)
	a.logger = a.logger.With(logger.Component("app"))
	return a
}

func (a *App) Registration() *form.Form {
	return a.registration
}

func (a *App) Settings() *form.Form {
	return a.settings
}

func (a *App) Router() *router.Router {
	return a.router
}

func (a *App) Notifier() *notifications.Notifier {
	return a.notifier
}

// Table returns the rule table shared by both forms.
func (a *App) Table() *validator.Table {
	return a.table
}

// Start shows the page addressed by hash.
func (a *App) Start(ctx context.Context, hash string) error {
	_, err := a.router.Sync(ctx, hash)
	return err
}

// Profile returns the profile view rendered the last time the profile page
// was shown, or false when there was no stored user.
func (a *App) Profile() (userdata.Profile, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.profile == nil {
		return userdata.Profile{}, false
	}
	return *a.profile, true
}

func (a *App) showProfile(ctx context.Context, _ router.Route) error {
	rec, err := a.store.Load(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if rec == nil {
		a.profile = nil
		return nil
	}
	p := userdata.NewProfile(*rec)
	a.profile = &p
	return nil
}

func (a *App) loadSettings(ctx context.Context, _ router.Route) error {
	rec, err := a.store.Load(ctx)
	if err != nil || rec == nil {
		return err
	}
	return errors.Join(
		a.settings.SetValue("notificationEmail", rec.Get("email")),
		a.settings.SetValue("emailNotifications", rec.Get("emailNotifications")),
		a.settings.SetValue("smsNotifications", rec.Get("smsNotifications")),
	)
}

// SubmitRegistration validates the registration form, submits it, stores
// the new user and moves on to the profile page after the redirect delay.
func (a *App) SubmitRegistration(ctx context.Context) error {
	if err := a.registration.Validate(ctx); err != nil {
		a.notify(ctx, MsgFixErrors, notifications.TypeError)
		return err
	}

	values := a.registration.Values()
	if err := a.submit(ctx, RegistrationFormID, values, func(fields map[string]string) userdata.Record {
		return userdata.NewRecord(fields, a.now())
	}); err != nil {
		a.notify(ctx, MsgRegistrationFailed, notifications.TypeError)
		return err
	}

	a.notify(ctx, MsgRegistrationOK, notifications.TypeSuccess)
	a.registration.Reset(ctx)
	a.scheduleRedirect(ctx, router.Profile)
	return nil
}

// SubmitSettings validates the settings form, checks the current password
// against the stored one and merges the settings into the stored record.
func (a *App) SubmitSettings(ctx context.Context) error {
	if err := a.settings.Validate(ctx); err != nil {
		a.notify(ctx, MsgFixErrors, notifications.TypeError)
		return err
	}

	current, err := a.store.Load(ctx)
	if err != nil {
		a.logger.LogAttrs(ctx, slog.LevelError, "failed to load user data", logger.Error(err))
		a.notify(ctx, MsgSettingsFailed, notifications.TypeError)
		return errors.Join(ErrSubmitFailed, err)
	}
	values := a.settings.Values()
	if current != nil {
		if err := userdata.CheckPassword(*current, values[userdata.CurrentPasswordField]); err != nil {
			a.notify(ctx, MsgIncorrectPassword, notifications.TypeError)
			return errors.Join(ErrIncorrectPassword, err)
		}
	}

	if err := a.submit(ctx, SettingsFormID, values, func(fields map[string]string) userdata.Record {
		if current == nil {
			return userdata.NewRecord(fields, a.now())
		}
		return userdata.Merge(*current, fields)
	}); err != nil {
		a.notify(ctx, MsgSettingsFailed, notifications.TypeError)
		return err
	}

	a.notify(ctx, MsgSettingsOK, notifications.TypeSuccess)
	return nil
}

// submit sends values, then prepares and saves the record built from them.
func (a *App) submit(ctx context.Context, formID string, values map[string]string, build func(map[string]string) userdata.Record) error {
	start := a.now()
	if err := a.submitter.Submit(ctx, formID, values); err != nil {
		a.logger.LogAttrs(ctx, slog.LevelWarn, "form submission failed", logger.Form(formID), logger.Error(err))
		return errors.Join(ErrSubmitFailed, err)
	}

	fields, err := userdata.Prepare(values, a.bcryptCost)
	if err != nil {
		a.logger.LogAttrs(ctx, slog.LevelError, "failed to prepare user data", logger.Form(formID), logger.Error(err))
		return errors.Join(ErrSubmitFailed, err)
	}
	if err := a.store.Save(ctx, build(fields)); err != nil {
		a.logger.LogAttrs(ctx, slog.LevelError, "failed to save user data", logger.Form(formID), logger.Error(err))
		return errors.Join(ErrSubmitFailed, err)
	}

	a.logger.LogAttrs(ctx, slog.LevelInfo, "form submitted",
		logger.Form(formID),
		logger.Duration(a.now().Sub(start)),
	)
	return nil
}

func (a *App) notify(ctx context.Context, message string, typ notifications.Type) {
	if _, err := a.notifier.Show(ctx, message, typ); err != nil {
		a.logger.LogAttrs(ctx, slog.LevelWarn, "failed to show notification", logger.Error(err))
	}
}

func (a *App) scheduleRedirect(ctx context.Context, route router.Route) {
	a.mu.Lock()
	if a.redirect != nil {
		a.redirect.Stop()
		a.redirect = nil
	}
	if a.redirectDelay > 0 {
		detached := context.WithoutCancel(ctx)
		a.redirect = time.AfterFunc(a.redirectDelay, func() {
			a.navigate(detached, route)
		})
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	// Outside the lock: the profile hook takes a.mu.
	a.navigate(ctx, route)
}

func (a *App) navigate(ctx context.Context, route router.Route) {
	if _, err := a.router.Navigate(ctx, route); err != nil {
		a.logger.LogAttrs(ctx, slog.LevelError, "navigation failed", logger.Route(string(route)), logger.Error(err))
	}
}

// Close stops pending timers of the app, its forms and its notifier.
func (a *App) Close() {
	a.mu.Lock()
	if a.redirect != nil {
		a.redirect.Stop()
		a.redirect = nil
	}
	a.mu.Unlock()

	a.registration.Close()
	a.settings.Close()
	a.notifier.Close()
}
