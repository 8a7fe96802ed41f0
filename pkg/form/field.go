package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// FieldType is the input type a renderer draws for a field.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeEmail    FieldType = "email"
	TypePassword FieldType = "password"
	TypeTel      FieldType = "tel"
	TypeDate     FieldType = "date"
	TypeSelect   FieldType = "select"
	TypeCheckbox FieldType = "checkbox"
)

// FieldConfig describes a field to add to a form.
// Name defaults to ID when empty. A nil Rule leaves the field unvalidated.
type FieldConfig struct {
	ID       string
	Name     string
	Label    string
	Type     FieldType
	Required bool
	Rule     *validator.FieldRule
}

// Descriptor is what a renderer needs to draw a field.
type Descriptor struct {
	ID       string
	Name     string
	Label    string
	Type     FieldType
	Required bool
}

func (c FieldConfig) descriptor() Descriptor {
	d := Descriptor{
		ID:       c.ID,
		Name:     c.Name,
		Label:    c.Label,
		Type:     c.Type,
		Required: c.Required,
	}
	if d.Name == "" {
		d.Name = d.ID
	}
	if d.ID == "" {
		d.ID = d.Name
	}
	if d.Type == "" {
		d.Type = TypeText
	}
	return d
}

// FieldUpdate changes attributes of an existing field. Nil members are left as is.
type FieldUpdate struct {
	Label    *string
	Type     *FieldType
	Required *bool
}

func (u FieldUpdate) apply(d Descriptor) Descriptor {
	if u.Label != nil {
		d.Label = *u.Label
	}
	if u.Type != nil {
		d.Type = *u.Type
	}
	if u.Required != nil {
		d.Required = *u.Required
	}
	return d
}
