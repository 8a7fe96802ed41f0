package router

import "strings"

// Route names one page of the application.
type Route string

const (
	Home         Route = "home"
	Registration Route = "registration"
	Profile      Route = "profile"
	Settings     Route = "settings"
)

// DefaultRoute is shown when the hash is empty.
const DefaultRoute = Home

// DefaultRoutes are the pages of the application in navigation order.
func DefaultRoutes() []Route {
	return []Route{Home, Registration, Profile, Settings}
}

// Hash returns the location hash for the route, e.g. "#profile".
func (r Route) Hash() string {
	return "#" + string(r)
}

func (r Route) String() string {
	return string(r)
}

// ParseHash extracts the route from a location hash. A missing leading '#'
// is tolerated; an empty hash yields DefaultRoute.
func ParseHash(hash string) Route {
	return parseHash(hash, DefaultRoute)
}

func parseHash(hash string, fallback Route) Route {
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(hash), "#"))
	if name == "" {
		return fallback
	}
	return Route(name)
}
