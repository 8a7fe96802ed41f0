package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/router"
)

func TestParseHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hash string
		want router.Route
	}{
		{"#profile", router.Profile},
		{"profile", router.Profile},
		{" #settings ", router.Settings},
		{"", router.Home},
		{"#", router.Home},
		{"#nowhere", router.Route("nowhere")},
	}

	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			assert.Equal(t, tt.want, router.ParseHash(tt.hash))
		})
	}
}

func TestRouter_Navigate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := router.New(router.WithLogger(logger.Discard()))
	assert.Equal(t, router.Home, r.Active())
	assert.Equal(t, "#home", r.Hash())

	hash, err := r.Navigate(ctx, router.Registration)
	require.NoError(t, err)
	assert.Equal(t, "#registration", hash)
	assert.Equal(t, router.Registration, r.Active())

	hash, err = r.Navigate(ctx, router.Route("admin"))
	assert.ErrorIs(t, err, router.ErrUnknownRoute)
	assert.Equal(t, "#registration", hash)
	assert.Equal(t, router.Registration, r.Active(), "unknown route leaves state unchanged")
}

func TestRouter_Sync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := router.New(router.WithLogger(logger.Discard()))

	route, err := r.Sync(ctx, "#settings")
	require.NoError(t, err)
	assert.Equal(t, router.Settings, route)

	route, err = r.Sync(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, router.Home, route)

	route, err = r.Sync(ctx, "#missing")
	assert.ErrorIs(t, err, router.ErrUnknownRoute)
	assert.Equal(t, router.Home, route)
}

func TestRouter_Hooks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var entered []router.Route
	record := func(_ context.Context, route router.Route) error {
		entered = append(entered, route)
		return nil
	}

	r := router.New(
		router.WithLogger(logger.Discard()),
		router.OnEnter(router.Profile, record),
	)
	require.NoError(t, r.OnEnter(router.Settings, record))
	assert.ErrorIs(t, r.OnEnter(router.Route("admin"), record), router.ErrUnknownRoute)

	_, err := r.Navigate(ctx, router.Profile)
	require.NoError(t, err)
	_, err = r.Navigate(ctx, router.Home)
	require.NoError(t, err)
	_, err = r.Sync(ctx, "#settings")
	require.NoError(t, err)
	_, err = r.Navigate(ctx, router.Profile)
	require.NoError(t, err)

	assert.Equal(t, []router.Route{router.Profile, router.Settings, router.Profile}, entered)
}

func TestRouter_HookFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("store unavailable")
	r := router.New(
		router.WithLogger(logger.Discard()),
		router.OnEnter(router.Profile, func(context.Context, router.Route) error { return boom }),
	)

	hash, err := r.Navigate(context.Background(), router.Profile)
	assert.ErrorIs(t, err, router.ErrHookFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "#profile", hash)
	assert.Equal(t, router.Profile, r.Active(), "hook failures do not undo navigation")
}

func TestRouter_CustomRoutes(t *testing.T) {
	t.Parallel()

	r := router.New(
		router.WithRoutes("login", "dashboard"),
		router.WithDefault("login"),
		router.WithLogger(logger.Discard()),
	)
	assert.Equal(t, router.Route("login"), r.Active())
	assert.Equal(t, []router.Route{"login", "dashboard"}, r.Routes())
	assert.False(t, r.Has(router.Home))

	route, err := r.Sync(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, router.Route("login"), route)
}
