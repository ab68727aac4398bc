// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Template pairs a visual design with optional starter content
type Template struct {
	ID           string           `json:"id"`
	Name         string           `json:"name,omitempty"`
	Settings     TemplateSettings `json:"settings"`
	StarterData  *StarterData     `json:"starterData,omitempty"`
	Placeholders Placeholders     `json:"placeholders,omitempty"`
}

// TemplateSettings holds the design settings of a template
type TemplateSettings struct {
	ColorScheme  string   `json:"colorScheme,omitempty"`
	Spacing      string   `json:"spacing,omitempty"`
	FontSize     string   `json:"fontSize,omitempty"`
	SectionOrder []string `json:"sectionOrder,omitempty"`
}

// StarterData holds example values for every resume section.
// It is used as fallback content and as a source of placeholder strings.
type StarterData struct {
	PersonalInfo *PersonalInfo  `json:"personalInfo,omitempty"`
	Summary      string         `json:"summary,omitempty"`
	Experience   []Experience   `json:"experience,omitempty"`
	Education    []Education    `json:"education,omitempty"`
	Skills       []Skill        `json:"skills,omitempty"`
	Projects     []Project      `json:"projects,omitempty"`
	Settings     *StarterLayout `json:"settings,omitempty"`
}

// StarterLayout is the layout part of a template's starter settings
type StarterLayout struct {
	Layout           string `json:"layout,omitempty"`
	Mode             string `json:"mode,omitempty"`
	ShowProfileImage bool   `json:"showProfileImage,omitempty"`
}
