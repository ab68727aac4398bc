package generation

import (
	"slices"

	"github.com/jonathan/resume-drafter/internal/profilefields"
	"github.com/jonathan/resume-drafter/internal/skills"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Section names reported in Result.Fallbacks
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// experience uses the profile's work history, adapted to the industry, or the starter list
func (r *run) experience() []types.Experience {
	parsed := profilefields.ParseListField(r.profile.WorkExperience)
	if parsed.OK() {
		if entries := profilefields.Experiences(parsed.Records); len(entries) > 0 {
			for i := range entries {
				e := &entries[i]
				e.ID = r.newID()
				e.Description = r.adapt(e.Description).Adapted
				for j, highlight := range e.Highlights {
					e.Highlights[j] = r.adapt(highlight).Adapted
				}
				if r.policy.TransferableFirst {
					e.Highlights = foregroundTransferable(e.Highlights)
				}
				e.Highlights = nonNil(e.Highlights)
			}
			return entries
		}
	}

	r.fellBack(SectionExperience, fallbackReason(parsed))
	return r.starterExperience()
}

// education uses the profile's education records, then the education-level
// tag, then the starter list
func (r *run) education() []types.Education {
	parsed := profilefields.ParseListField(r.profile.Education)
	if parsed.OK() {
		if entries := profilefields.Educations(parsed.Records); len(entries) > 0 {
			for i := range entries {
				entries[i].ID = r.newID()
				entries[i].Honors = nonNil(entries[i].Honors)
			}
			return entries
		}
	}

	if degree, ok := DegreeForLevel(r.profile.EducationLevel); ok {
		return []types.Education{{
			ID:          r.newID(),
			Institution: r.profile.School,
			Degree:      degree,
			Honors:      []string{},
		}}
	}

	r.fellBack(SectionEducation, fallbackReason(parsed))
	return r.starterEducation()
}

// projects uses the profile's projects plus, for early-career strategies,
// projects parsed from narrative fields. The starter list is used when both are empty.
func (r *run) projects() []types.Project {
	entries := profilefields.ParseNarrativeProjects(r.profile.Projects, "Project")
	if r.policy.NarrativeProjects {
		for _, source := range narrativeSources {
			entries = append(entries, profilefields.ParseNarrativeProjects(source.value(r.profile), source.prefix)...)
		}
	}

	if len(entries) == 0 {
		r.fellBack(SectionProjects, "no profile projects")
		return r.starterProjects()
	}

	for i := range entries {
		p := &entries[i]
		p.ID = r.newID()
		p.Technologies = nonNil(p.Technologies)
		p.Highlights = nonNil(p.Highlights)
	}
	return entries
}

// skills unions profile key skills, technical proficiencies and starter skills.
// The first spelling of a skill wins, so starter skills never replace profile skills.
func (r *run) skills() []types.Skill {
	level := skills.DefaultLevel(r.experienceTag())

	list := make([]types.Skill, 0)
	for _, name := range profilefields.SkillNames(r.profile.KeySkills) {
		category := skills.Categorize(name)
		if r.policy.TransferableSkills {
			category = skills.CategoryTransferable
		}
		list = append(list, types.Skill{Name: name, Level: level, Category: category})
	}
	for _, name := range profilefields.SkillNames(r.profile.TechnicalProficiencies) {
		list = append(list, types.Skill{Name: name, Level: level, Category: skills.Categorize(name)})
	}
	if len(list) == 0 {
		r.fellBack(SectionSkills, "no profile skills")
	}

	for _, s := range r.starter.Skills {
		if s.Category == "" {
			s.Category = skills.Categorize(s.Name)
		}
		if !skills.IsLevel(s.Level) {
			s.Level = level
		}
		list = append(list, s)
	}

	list = skills.Dedupe(list)
	for i := range list {
		list[i].ID = r.newID()
	}
	return list
}

// experienceTag is the profile's experience level, or the policy default when blank
func (r *run) experienceTag() string {
	if r.profile.ExperienceLevel != "" {
		return r.profile.ExperienceLevel
	}
	return r.policy.DefaultExperienceLevel
}

// starterExperience copies the starter list with fresh IDs so drafts never share identifiers
func (r *run) starterExperience() []types.Experience {
	out := make([]types.Experience, 0, len(r.starter.Experience))
	for _, e := range r.starter.Experience {
		e.Highlights = nonNil(slices.Clone(e.Highlights))
		e.ID = r.newID()
		out = append(out, e)
	}
	return out
}

func (r *run) starterEducation() []types.Education {
	out := make([]types.Education, 0, len(r.starter.Education))
	for _, e := range r.starter.Education {
		e.Honors = nonNil(slices.Clone(e.Honors))
		e.ID = r.newID()
		out = append(out, e)
	}
	return out
}

func (r *run) starterProjects() []types.Project {
	out := make([]types.Project, 0, len(r.starter.Projects))
	for _, p := range r.starter.Projects {
		p.Technologies = nonNil(slices.Clone(p.Technologies))
		p.Highlights = nonNil(slices.Clone(p.Highlights))
		p.ID = r.newID()
		out = append(out, p)
	}
	return out
}

func fallbackReason(parsed profilefields.ParseResult) string {
	if parsed.OK() {
		return "no usable records"
	}
	if parsed.Err != nil {
		return parsed.Status.String() + ": " + parsed.Err.Error()
	}
	return parsed.Status.String()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
