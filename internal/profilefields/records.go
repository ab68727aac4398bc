package profilefields

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/types"
)

// Experiences converts records into experience entries, skipping records with
// no company, position or description. IDs are left empty.
func Experiences(records []Record) []types.Experience {
	f := ExperienceFields
	out := make([]types.Experience, 0, len(records))
	for _, r := range records {
		exp := types.Experience{
			Company:     f.Company.String(r),
			Position:    f.Position.String(r),
			Location:    f.Location.String(r),
			StartDate:   f.StartDate.String(r),
			EndDate:     f.EndDate.String(r),
			Current:     f.Current.Bool(r),
			Description: f.Description.String(r),
			Highlights:  f.Highlights.Strings(r),
		}
		if exp.Company == "" && exp.Position == "" && exp.Description == "" {
			continue
		}
		exp.EndDate, exp.Current = resolveOngoing(exp.EndDate, exp.Current)
		out = append(out, exp)
	}
	return out
}

// Educations converts records into education entries, skipping records with
// no institution, degree or field. IDs are left empty.
func Educations(records []Record) []types.Education {
	f := EducationFields
	out := make([]types.Education, 0, len(records))
	for _, r := range records {
		edu := types.Education{
			Institution: f.Institution.String(r),
			Degree:      f.Degree.String(r),
			Field:       f.Field.String(r),
			Location:    f.Location.String(r),
			StartDate:   f.StartDate.String(r),
			EndDate:     f.EndDate.String(r),
			Current:     f.Current.Bool(r),
			GPA:         f.GPA.String(r),
			Honors:      f.Honors.Strings(r),
			Description: f.Description.String(r),
		}
		if edu.Institution == "" && edu.Degree == "" && edu.Field == "" {
			continue
		}
		edu.EndDate, edu.Current = resolveOngoing(edu.EndDate, edu.Current)
		out = append(out, edu)
	}
	return out
}

// Projects converts records into project entries, skipping records with no
// name or description. IDs are left empty.
func Projects(records []Record) []types.Project {
	f := ProjectFields
	out := make([]types.Project, 0, len(records))
	for _, r := range records {
		p := types.Project{
			Name:         f.Name.String(r),
			Description:  f.Description.String(r),
			Technologies: f.Technologies.Strings(r),
			URL:          f.URL.String(r),
			GitHub:       f.GitHub.String(r),
			StartDate:    f.StartDate.String(r),
			EndDate:      f.EndDate.String(r),
			Highlights:   f.Highlights.Strings(r),
		}
		if p.Name == "" && p.Description == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// resolveOngoing marks entries whose end date reads "present" as current
func resolveOngoing(endDate string, current bool) (string, bool) {
	switch strings.ToLower(endDate) {
	case "present", "current", "now", "ongoing":
		return "", true
	}
	return endDate, current
}
