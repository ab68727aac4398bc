// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Profile is the user's career data as stored by the profile service.
// List-shaped fields are untyped because the store holds them either as
// JSON arrays or as free text in several list encodings.
type Profile struct {
	ID    string `json:"id"`
	User  string `json:"user"` // account email, used when Email is empty
	Email string `json:"email,omitempty"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`

	Industry        string `json:"industry,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	CareerStage     string `json:"career_stage,omitempty"`
	EducationLevel  string `json:"education_level,omitempty"`
	School          string `json:"school,omitempty"`

	KeySkills              any    `json:"key_skills,omitempty"`
	TechnicalProficiencies any    `json:"technical_proficiencies,omitempty"`
	ProfessionalSummary    string `json:"professional_summary,omitempty"`

	WorkExperience            any `json:"work_experience,omitempty"`
	Education                 any `json:"education,omitempty"`
	Projects                  any `json:"projects,omitempty"`
	AcademicProjects          any `json:"academic_projects,omitempty"`
	PersonalProjects          any `json:"personal_projects,omitempty"`
	VolunteerExperience       any `json:"volunteer_experience,omitempty"`
	ExtracurricularActivities any `json:"extracurricular_activities,omitempty"`
}

// ContactEmail returns the profile email, falling back to the account email.
func (p *Profile) ContactEmail() string {
	if email := strings.TrimSpace(p.Email); email != "" {
		return email
	}
	return strings.TrimSpace(p.User)
}

// FullName joins the trimmed name parts and collapses inner whitespace.
// It is empty when both parts are empty.
func (p *Profile) FullName() string {
	return strings.Join(strings.Fields(strings.TrimSpace(p.FirstName)+" "+strings.TrimSpace(p.LastName)), " ")
}
