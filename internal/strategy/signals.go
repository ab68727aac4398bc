// Package strategy selects the resume generation strategy that best fits a profile.
package strategy

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/profilefields"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Experience ladder rungs, lowest to highest
const (
	RungStudent = iota
	RungEntry
	RungJunior
	RungMid
	RungSenior
	RungExecutive
)

var ladderNames = []string{"student", "entry", "junior", "mid", "senior", "executive"}

type rungGroup struct {
	rung     int
	keywords []string
}

// rungGroups are matched as substrings of the experience tag, in order
var rungGroups = []rungGroup{
	{RungStudent, []string{"student"}},
	{RungEntry, []string{"entry", "graduate", "new grad", "intern"}},
	{RungJunior, []string{"junior"}},
	{RungMid, []string{"mid", "intermediate"}},
	{RungExecutive, []string{"executive", "director", "vice president", "vp", "chief", "c-level", "head of"}},
	{RungSenior, []string{"senior", "lead", "principal", "staff", "architect", "expert"}},
}

// LadderRung places a free-form experience tag on the experience ladder
func LadderRung(experienceLevel string) (int, bool) {
	tag := strings.ToLower(strings.TrimSpace(experienceLevel))
	if tag == "" {
		return 0, false
	}
	for _, group := range rungGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(tag, keyword) {
				return group.rung, true
			}
		}
	}
	return 0, false
}

// RungName returns the ladder name of a rung
func RungName(rung int) string {
	if rung < 0 || rung >= len(ladderNames) {
		return ""
	}
	return ladderNames[rung]
}

// Signals are the profile facts strategy scoring depends on
type Signals struct {
	HasWorkExperience bool
	ExperienceLevel   string // trimmed original tag
	Rung              int
	RungKnown         bool
	CareerStage       string // normalized tag, e.g. "career_change"
	InTransition      bool
	StudentLevel      bool
	StudentStage      bool
	HasSummary        bool
	HasKeySkills      bool
}

// SignalsOf extracts scoring signals from a profile without modifying it
func SignalsOf(p *types.Profile) Signals {
	s := Signals{
		ExperienceLevel: strings.TrimSpace(p.ExperienceLevel),
		CareerStage:     NormalizeTag(p.CareerStage),
		HasSummary:      strings.TrimSpace(p.ProfessionalSummary) != "",
		HasKeySkills:    len(profilefields.SkillNames(p.KeySkills)) > 0,
	}

	if result := profilefields.ParseListField(p.WorkExperience); result.OK() {
		s.HasWorkExperience = len(profilefields.Experiences(result.Records)) > 0
	}

	s.Rung, s.RungKnown = LadderRung(s.ExperienceLevel)
	s.StudentLevel = strings.Contains(strings.ToLower(s.ExperienceLevel), "student")
	s.StudentStage = strings.Contains(s.CareerStage, "student")

	for _, marker := range []string{"change", "transition", "pivot", "switch"} {
		if strings.Contains(s.CareerStage, marker) {
			s.InTransition = true
			break
		}
	}

	return s
}

// NormalizeTag lower-cases a tag and joins its words with underscores
func NormalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.NewReplacer("-", " ", "_", " ").Replace(tag)
	return strings.Join(strings.Fields(tag), "_")
}
