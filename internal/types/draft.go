// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// StepPersonal is the wizard step a new draft starts on
const StepPersonal = "personal"

// Draft is the canonical resume draft produced by the generator
type Draft struct {
	PersonalInfo   PersonalInfo  `json:"personalInfo"`
	Summary        string        `json:"summary"`
	Experience     []Experience  `json:"experience"`
	Education      []Education   `json:"education"`
	Skills         []Skill       `json:"skills"`
	Projects       []Project     `json:"projects"`
	Settings       DraftSettings `json:"settings"`
	CurrentStep    string        `json:"currentStep"`
	CompletedSteps []string      `json:"completedSteps"`
}

// PersonalInfo holds contact details shown in the resume header
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Summary  string `json:"summary"`
}

// Experience represents a single work history entry
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education represents a single education entry
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	GPA         string   `json:"gpa"`
	Honors      []string `json:"honors"`
	Description string   `json:"description"`
}

// Skill is a categorized skill with a proficiency level
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// Project represents a single project entry
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	GitHub       string   `json:"github"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Highlights   []string `json:"highlights"`
}

// DraftSettings are the layout settings copied from the template
type DraftSettings struct {
	Layout           string   `json:"layout"`
	Mode             string   `json:"mode"`
	Template         string   `json:"template"`
	ColorScheme      string   `json:"colorScheme"`
	FontSize         string   `json:"fontSize"`
	Spacing          string   `json:"spacing"`
	ShowProfileImage bool     `json:"showProfileImage"`
	SectionOrder     []string `json:"sectionOrder"`
}
