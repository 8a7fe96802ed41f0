package userdata

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MemberSinceLayout formats the registration month, e.g. "October 2026".
const MemberSinceLayout = "January 2006"

var countries = map[string]string{
	"US": "United States",
	"CA": "Canada",
	"UK": "United Kingdom",
	"AU": "Australia",
	"DE": "Germany",
	"FR": "France",
	"JP": "Japan",
	"IN": "India",
}

// CountryName returns the display name for a country code, or the code
// itself when unknown.
func CountryName(code string) string {
	if name, ok := countries[code]; ok {
		return name
	}
	return code
}

// Profile is the read-only view of a stored record shown on the profile page.
type Profile struct {
	Name        string
	Email       string
	Country     string
	MemberSince string
}

// NewProfile builds the profile view of r.
func NewProfile(r Record) Profile {
	name := strings.Join(strings.Fields(r.Get("firstName")+" "+r.Get("lastName")), " ")
	p := Profile{
		Name:    cases.Title(language.English).String(name),
		Email:   r.Get("email"),
		Country: CountryName(r.Get("country")),
	}
	if !r.RegistrationDate.IsZero() {
		p.MemberSince = r.RegistrationDate.Format(MemberSinceLayout)
	}
	return p
}
