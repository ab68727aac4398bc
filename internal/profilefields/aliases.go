package profilefields

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Accessor reads one spelling of a logical field from a record.
// ok is false when the key is missing or null.
type Accessor func(r Record) (value gjson.Result, ok bool)

// Key returns an Accessor for a top-level record key
func Key(name string) Accessor {
	path := escapePath(name)
	return func(r Record) (gjson.Result, bool) {
		v := r.value.Get(path)
		return v, v.Exists() && v.Type != gjson.Null
	}
}

// Field is an ordered alias chain; the first accessor with a defined value wins
type Field []Accessor

// Aliases builds a Field from key names in priority order
func Aliases(names ...string) Field {
	f := make(Field, len(names))
	for i, name := range names {
		f[i] = Key(name)
	}
	return f
}

// Lookup returns the first defined value in the chain
func (f Field) Lookup(r Record) (gjson.Result, bool) {
	for _, accessor := range f {
		if v, ok := accessor(r); ok {
			return v, true
		}
	}
	return gjson.Result{}, false
}

// String returns the trimmed field value. Numbers and booleans are formatted as text.
func (f Field) String(r Record) string {
	v, ok := f.Lookup(r)
	if !ok || v.IsObject() || v.IsArray() {
		return ""
	}
	return strings.TrimSpace(v.String())
}

// Bool returns the field as a boolean, accepting true/false, 1/0 and their string forms
func (f Field) Bool(r Record) bool {
	v, ok := f.Lookup(r)
	if !ok {
		return false
	}
	return v.Bool()
}

// Strings returns the field as a list. Arrays keep their non-empty string
// elements; a single string is split with ParseStringList.
func (f Field) Strings(r Record) []string {
	v, ok := f.Lookup(r)
	if !ok {
		return []string{}
	}
	if v.IsArray() {
		out := make([]string, 0)
		for _, element := range v.Array() {
			if element.IsObject() || element.IsArray() {
				continue
			}
			if s := strings.TrimSpace(element.String()); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if v.IsObject() {
		return []string{}
	}
	return ParseStringList(v.String())
}

// ExperienceFieldSet is the alias table for work experience records
type ExperienceFieldSet struct {
	Company, Position, Location, StartDate, EndDate, Current, Description, Highlights Field
}

// EducationFieldSet is the alias table for education records
type EducationFieldSet struct {
	Institution, Degree, Field, Location, StartDate, EndDate, Current, GPA, Honors, Description Field
}

// ProjectFieldSet is the alias table for project records
type ProjectFieldSet struct {
	Name, Description, Technologies, URL, GitHub, StartDate, EndDate, Highlights Field
}

// ExperienceFields lists the accepted spellings for each experience field
var ExperienceFields = ExperienceFieldSet{
	Company:     Aliases("company", "employer", "organization"),
	Position:    Aliases("position", "title", "role", "job_title"),
	Location:    Aliases("location"),
	StartDate:   Aliases("start_date", "startDate", "from"),
	EndDate:     Aliases("end_date", "endDate", "to"),
	Current:     Aliases("current", "is_current", "currently_working"),
	Description: Aliases("description", "summary", "responsibilities"),
	Highlights:  Aliases("highlights", "achievements", "accomplishments", "bullets"),
}

// EducationFields lists the accepted spellings for each education field
var EducationFields = EducationFieldSet{
	Institution: Aliases("institution", "school", "university", "college"),
	Degree:      Aliases("degree", "qualification"),
	Field:       Aliases("field", "field_of_study", "fieldOfStudy", "major"),
	Location:    Aliases("location"),
	StartDate:   Aliases("start_date", "startDate", "from"),
	EndDate:     Aliases("end_date", "endDate", "graduation_date", "to"),
	Current:     Aliases("current", "is_current"),
	GPA:         Aliases("gpa", "grade"),
	Honors:      Aliases("honors", "awards", "achievements"),
	Description: Aliases("description", "summary"),
}

// ProjectFields lists the accepted spellings for each project field
var ProjectFields = ProjectFieldSet{
	Name:         Aliases("name", "title", "project_name"),
	Description:  Aliases("description", "summary"),
	Technologies: Aliases("technologies", "tech_stack", "techStack", "tools", "skills"),
	URL:          Aliases("url", "link", "website", "demo_url"),
	GitHub:       Aliases("github", "repository", "repo", "github_url"),
	StartDate:    Aliases("start_date", "startDate"),
	EndDate:      Aliases("end_date", "endDate"),
	Highlights:   Aliases("highlights", "achievements", "bullets"),
}

// SkillFields lists the accepted spellings for skill records
var SkillFields = struct{ Name Field }{
	Name: Aliases("name", "skill", "title"),
}

// escapePath escapes gjson path metacharacters in a key name
func escapePath(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
