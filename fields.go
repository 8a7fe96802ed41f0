package formkit

import "github.com/dmitrymomot/formkit/pkg/form"

// Form identifiers.
const (
	RegistrationFormID = "registrationForm"
	SettingsFormID     = "settingsForm"
)

// RegistrationFields are the fields of the registration form in display order.
func RegistrationFields() []form.FieldConfig {
	return []form.FieldConfig{
		{Name: "firstName", Label: "First Name", Type: form.TypeText, Required: true},
		{Name: "lastName", Label: "Last Name", Type: form.TypeText, Required: true},
		{Name: "email", Label: "Email Address", Type: form.TypeEmail, Required: true},
		{Name: "phone", Label: "Phone Number", Type: form.TypeTel, Required: true},
		{Name: "password", Label: "Password", Type: form.TypePassword, Required: true},
		{Name: "confirmPassword", Label: "Confirm Password", Type: form.TypePassword, Required: true},
		{Name: "birthDate", Label: "Date of Birth", Type: form.TypeDate, Required: true},
		{Name: "country", Label: "Country", Type: form.TypeSelect, Required: true},
		{Name: "terms", Label: "I agree to the Terms and Conditions", Type: form.TypeCheckbox, Required: true},
	}
}

// SettingsFields are the fields of the settings form in display order.
func SettingsFields() []form.FieldConfig {
	return []form.FieldConfig{
		{Name: "currentPassword", Label: "Current Password", Type: form.TypePassword, Required: true},
		{Name: "newPassword", Label: "New Password", Type: form.TypePassword, Required: true},
		{Name: "confirmNewPassword", Label: "Confirm New Password", Type: form.TypePassword, Required: true},
		{Name: "notificationEmail", Label: "Notification Email", Type: form.TypeEmail},
		{Name: "emailNotifications", Label: "Email notifications", Type: form.TypeCheckbox},
		{Name: "smsNotifications", Label: "SMS notifications", Type: form.TypeCheckbox},
	}
}
