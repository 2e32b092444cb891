package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRequired is wrapped by every ValidationError
var ErrMissingRequired = errors.New("missing required fields")

// LeadSchema selects which contact and locale fields a landing page collects
type LeadSchema string

const (
	// SchemaPhone collects name, phone, city and note
	SchemaPhone LeadSchema = "phone"
	// SchemaEmail collects name, email, company and note
	SchemaEmail LeadSchema = "email"
)

// ParseLeadSchema maps a configuration value onto a LeadSchema
func ParseLeadSchema(raw string) (LeadSchema, error) {
	switch LeadSchema(strings.ToLower(strings.TrimSpace(raw))) {
	case SchemaPhone, "":
		return SchemaPhone, nil
	case SchemaEmail:
		return SchemaEmail, nil
	}
	return "", fmt.Errorf("unknown lead schema %q (want %q or %q)", raw, SchemaPhone, SchemaEmail)
}

// ContactLabel is the human name of the required contact field
func (s LeadSchema) ContactLabel() string {
	if s == SchemaEmail {
		return "email"
	}
	return "phone"
}

// LocaleLabel is the human name of the optional city/company field
func (s LeadSchema) LocaleLabel() string {
	if s == SchemaEmail {
		return "company"
	}
	return "city"
}

// LeadSubmission represents the data structure coming from the landing page form.
// Both field conventions are accepted on the wire; the deployment's LeadSchema
// decides which of them are read.
type LeadSubmission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city,omitempty"`
	Company string `json:"company,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Lead is a validated submission projected onto a single schema
type Lead struct {
	Schema  LeadSchema
	Name    string
	Contact string
	Locale  string
	Note    string
}

// ValidationError reports a submission rejected for missing required fields
type ValidationError struct {
	Schema LeadSchema
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Name and %s are required", e.Schema.ContactLabel())
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequired
}

// Normalize trims every field and validates the result against schema
func (s LeadSubmission) Normalize(schema LeadSchema) (Lead, error) {
	lead := Lead{
		Schema: schema,
		Name:   strings.TrimSpace(s.Name),
		Note:   strings.TrimSpace(s.Note),
	}

	switch schema {
	case SchemaEmail:
		lead.Contact = strings.TrimSpace(s.Email)
		lead.Locale = strings.TrimSpace(s.Company)
	default:
		lead.Schema = SchemaPhone
		lead.Contact = strings.TrimSpace(s.Phone)
		lead.Locale = strings.TrimSpace(s.City)
	}

	if lead.Name == "" || lead.Contact == "" {
		return Lead{}, &ValidationError{Schema: lead.Schema}
	}
	return lead, nil
}
