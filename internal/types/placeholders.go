// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Personal-info field keys used in a Placeholders table
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLocation = "location"
	FieldWebsite  = "website"
	FieldLinkedIn = "linkedin"
	FieldGitHub   = "github"
	FieldSummary  = "summary"
)

// Placeholders maps a field key to the known example strings that must never
// be copied from a template into a generated resume
type Placeholders map[string][]string

// DefaultPlaceholders returns the placeholder strings shipped with the stock templates
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		FieldFullName: {"John Doe", "Jane Doe", "Your Name", "First Last"},
		FieldEmail:    {"john.doe@example.com", "jane.doe@example.com", "your.email@example.com", "email@example.com"},
		FieldPhone:    {"(555) 123-4567", "+1 (555) 123-4567", "555-123-4567", "(123) 456-7890"},
		FieldLocation: {"City, State", "City, Country", "San Francisco, CA", "New York, NY"},
		FieldWebsite:  {"johndoe.com", "www.johndoe.com", "yourwebsite.com", "www.yourwebsite.com"},
		FieldLinkedIn: {"linkedin.com/in/johndoe", "linkedin.com/in/yourprofile", "linkedin.com/in/janedoe"},
		FieldGitHub:   {"github.com/johndoe", "github.com/yourusername", "github.com/janedoe"},
	}
}

// Merge returns a new table containing the entries of p followed by those of other
func (p Placeholders) Merge(other Placeholders) Placeholders {
	merged := make(Placeholders, len(p)+len(other))
	for field, values := range p {
		merged[field] = append(merged[field], values...)
	}
	for field, values := range other {
		merged[field] = append(merged[field], values...)
	}
	return merged
}

// IsPlaceholder reports whether value case-insensitively matches a known
// placeholder for field. Surrounding whitespace is ignored.
func (p Placeholders) IsPlaceholder(field, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, candidate := range p[field] {
		if strings.EqualFold(strings.TrimSpace(candidate), value) {
			return true
		}
	}
	return false
}
