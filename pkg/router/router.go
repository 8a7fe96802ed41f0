package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Hook runs when its route becomes active.
type Hook func(ctx context.Context, route Route) error

// Router tracks the single active page. It keeps no history: navigating
// replaces the active route.
type Router struct {
	logger   *slog.Logger
	fallback Route

	mu     sync.RWMutex
	routes []Route
	active Route
	hooks  map[Route][]Hook
}

// Option configures a Router.
type Option func(*Router)

func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRoutes replaces the known routes.
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.routes = slices.Clone(routes)
	}
}

// WithDefault sets the route used for an empty hash and shown initially.
func WithDefault(route Route) Option {
	return func(r *Router) {
		r.fallback = route
	}
}

// OnEnter registers a hook at construction time.
func OnEnter(route Route, hook Hook) Option {
	return func(r *Router) {
		if hook != nil {
			r.hooks[route] = append(r.hooks[route], hook)
		}
	}
}

// New creates a router over DefaultRoutes with DefaultRoute active.
func New(opts ...Option) *Router {
	r := &Router{
		logger:   slog.Default(),
		fallback: DefaultRoute,
		routes:   DefaultRoutes(),
		hooks:    make(map[Route][]Hook),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !slices.Contains(r.routes, r.fallback) {
		r.routes = append(r.routes, r.fallback)
	}
	r.active = r.fallback
	r.logger = r.logger.With(logger.Component("router"))
	return r
}

// OnEnter registers a hook that runs every time route becomes active.
func (r *Router) OnEnter(route Route, hook Hook) error {
	if !r.Has(route) {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	if hook == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[route] = append(r.hooks[route], hook)
	return nil
}

// Has reports whether route is known.
func (r *Router) Has(route Route) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.routes, route)
}

// Routes returns the known routes in navigation order.
func (r *Router) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.routes)
}

// Active returns the active route.
func (r *Router) Active() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Hash returns the location hash of the active route.
func (r *Router) Hash() string {
	return r.Active().Hash()
}

// Navigate activates route and returns the hash to show in the location bar.
// An unknown route leaves the active route unchanged. Enter hooks run after
// the switch; their failures are reported but do not undo it.
func (r *Router) Navigate(ctx context.Context, route Route) (string, error) {
	if err := r.activate(ctx, route); err != nil {
		return r.Hash(), err
	}
	return route.Hash(), nil
}

// Sync applies a hash changed outside the router, such as by the user
// editing the location bar.
func (r *Router) Sync(ctx context.Context, hash string) (Route, error) {
	route := parseHash(hash, r.fallback)
	if err := r.activate(ctx, route); err != nil {
		return r.Active(), err
	}
	return route, nil
}

func (r *Router) activate(ctx context.Context, route Route) error {
	r.mu.Lock()
	if !slices.Contains(r.routes, route) {
		r.mu.Unlock()
		r.logger.LogAttrs(ctx, slog.LevelWarn, "unknown route", logger.Route(string(route)))
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	from := r.active
	r.active = route
	hooks := slices.Clone(r.hooks[route])
	r.mu.Unlock()

	r.logger.LogAttrs(ctx, slog.LevelDebug, "page shown",
		logger.Route(string(route)),
		slog.String("from", string(from)),
	)

	var errs []error
	for _, hook := range hooks {
		if err := hook(ctx, route); err != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "enter hook failed",
				logger.Route(string(route)),
				logger.Error(err),
			)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrHookFailed}, errs...)...)
	}
	return nil
}
