package generation

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-drafter/internal/types"
)

// Validation field names
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldLocation   = "location"
	WarnEmailFormat = "email_format"
)

// ValidationReport describes which personal fields a draft would be missing.
// Missing fields and warnings never block generation.
type ValidationReport struct {
	IsValid       bool     `json:"isValid"`
	MissingFields []string `json:"missingFields"`
	Warnings      []string `json:"warnings"`
}

var validate = validator.New()

// Validate checks the personal information a draft would receive from profile
// and tmpl. A nil template is treated as one without starter data.
func (g *Generator) Validate(profile *types.Profile, tmpl *types.Template) (ValidationReport, error) {
	if profile == nil {
		return ValidationReport{}, ErrNilProfile
	}

	var starter *types.PersonalInfo
	placeholders := g.placeholders
	if tmpl != nil {
		placeholders = placeholders.Merge(tmpl.Placeholders)
		if tmpl.StarterData != nil {
			starter = tmpl.StarterData.PersonalInfo
		}
	}
	info := mergePersonalInfo(profile, starter, placeholders)

	report := ValidationReport{
		MissingFields: []string{},
		Warnings:      []string{},
	}
	if info.FullName == "" {
		report.MissingFields = append(report.MissingFields, FieldName)
	}
	if info.Email == "" {
		report.MissingFields = append(report.MissingFields, FieldEmail)
	} else if err := validate.Var(info.Email, "email"); err != nil {
		report.Warnings = append(report.Warnings, WarnEmailFormat)
	}
	if info.Phone == "" {
		report.Warnings = append(report.Warnings, FieldPhone)
	}
	if info.Location == "" {
		report.Warnings = append(report.Warnings, FieldLocation)
	}

	report.IsValid = len(report.MissingFields) == 0
	return report, nil
}
