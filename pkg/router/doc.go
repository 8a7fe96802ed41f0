// Package router switches between the pages of a single-page application
// addressed by a location hash such as "#profile".
//
// Exactly one route is active at a time and there is no history stack.
// Hooks registered with OnEnter run whenever their route becomes active,
// which is where page content such as the profile view is refreshed.
//
//	r := router.New()
//	_ = r.OnEnter(router.Profile, func(ctx context.Context, _ router.Route) error {
//	    return renderProfile(ctx)
//	})
//	hash, err := r.Navigate(ctx, router.Profile) // "#profile"
package router
