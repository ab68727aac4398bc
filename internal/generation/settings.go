package generation

import (
	"slices"

	"github.com/jonathan/resume-drafter/internal/types"
)

// Settings defaults applied when the template leaves a value empty
const (
	DefaultLayout      = "1-page"
	DefaultMode        = "simple"
	DefaultColorScheme = "default"
	DefaultFontSize    = "medium"
	DefaultSpacing     = "normal"
)

// DefaultSectionOrder is used when the template has no section order
var DefaultSectionOrder = []string{"personal", "summary", "experience", "education", "skills", "projects"}

// buildSettings copies the template's settings, filling defaults for empty values
func buildSettings(tmpl *types.Template) types.DraftSettings {
	settings := types.DraftSettings{
		Layout:       DefaultLayout,
		Mode:         DefaultMode,
		Template:     tmpl.ID,
		ColorScheme:  orDefault(tmpl.Settings.ColorScheme, DefaultColorScheme),
		FontSize:     orDefault(tmpl.Settings.FontSize, DefaultFontSize),
		Spacing:      orDefault(tmpl.Settings.Spacing, DefaultSpacing),
		SectionOrder: slices.Clone(tmpl.Settings.SectionOrder),
	}
	if len(settings.SectionOrder) == 0 {
		settings.SectionOrder = slices.Clone(DefaultSectionOrder)
	}

	if tmpl.StarterData != nil && tmpl.StarterData.Settings != nil {
		layout := tmpl.StarterData.Settings
		settings.Layout = orDefault(layout.Layout, DefaultLayout)
		settings.Mode = orDefault(layout.Mode, DefaultMode)
		settings.ShowProfileImage = layout.ShowProfileImage
	}
	return settings
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
