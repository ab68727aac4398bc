package generation

import (
	"slices"
	"strings"
	"unicode"

	"github.com/jonathan/resume-drafter/internal/strategy"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Policy parameterizes the shared generation pipeline for one strategy
type Policy struct {
	Strategy strategy.Name

	// DefaultExperienceLevel sets skill levels when the profile has no experience tag
	DefaultExperienceLevel string

	// FallbackSummary is used when neither the profile nor the template has a summary
	FallbackSummary string

	// TransferableFirst moves transferable-skill highlights to the front of each experience
	TransferableFirst bool

	// TransferableSkills files the profile's key skills under the transferable category
	TransferableSkills bool

	// NarrativeProjects adds projects parsed from the profile's narrative fields
	NarrativeProjects bool
}

// PolicyFor returns the policy of a strategy. Unknown names get the
// ExperiencedProfessional policy.
func PolicyFor(name strategy.Name) Policy {
	switch name {
	case strategy.CareerChanger:
		return Policy{
			Strategy:               name,
			DefaultExperienceLevel: "mid",
			FallbackSummary:        "Professional bringing proven transferable skills and a track record of results to a new field.",
			TransferableFirst:      true,
			TransferableSkills:     true,
		}
	case strategy.ExperiencedJobSeeker:
		return Policy{
			Strategy:               name,
			DefaultExperienceLevel: "mid",
			FallbackSummary:        "Experienced professional seeking a new opportunity to contribute proven skills and results.",
		}
	case strategy.FirstTimeJobSeeker:
		return Policy{
			Strategy:               name,
			DefaultExperienceLevel: "entry",
			FallbackSummary:        "Motivated and quick-learning candidate eager to start a professional career.",
			NarrativeProjects:      true,
		}
	case strategy.Student:
		return Policy{
			Strategy:               name,
			DefaultExperienceLevel: "student",
			FallbackSummary:        "Dedicated student building practical skills through coursework and projects.",
			NarrativeProjects:      true,
		}
	default:
		return Policy{
			Strategy:               strategy.ExperiencedProfessional,
			DefaultExperienceLevel: "senior",
			FallbackSummary:        "Experienced professional with a proven record of delivering results.",
		}
	}
}

// narrativeSource is a profile field parsed into projects for early-career strategies
type narrativeSource struct {
	prefix string
	value  func(p *types.Profile) any
}

// narrativeSources are parsed and concatenated in this order
var narrativeSources = []narrativeSource{
	{"Academic Project", func(p *types.Profile) any { return p.AcademicProjects }},
	{"Personal Project", func(p *types.Profile) any { return p.PersonalProjects }},
	{"Volunteer Experience", func(p *types.Profile) any { return p.VolunteerExperience }},
	{"Extracurricular Activity", func(p *types.Profile) any { return p.ExtracurricularActivities }},
}

// transferableMarkers are word prefixes of skills that carry across fields
var transferableMarkers = []string{
	"led", "lead", "manage", "mentor", "train", "coach", "collaborat",
	"communicat", "coordinat", "organiz", "present", "negotiat", "stakeholder",
	"customer", "client", "team", "budget", "problem", "improv", "cross-functional",
}

// isTransferable reports whether any word of a highlight starts with a transferable marker
func isTransferable(highlight string) bool {
	words := strings.FieldsFunc(strings.ToLower(highlight), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	for _, word := range words {
		for _, marker := range transferableMarkers {
			if strings.HasPrefix(word, marker) {
				return true
			}
		}
	}
	return false
}

// foregroundTransferable returns highlights with transferable ones first, keeping relative order
func foregroundTransferable(highlights []string) []string {
	out := slices.Clone(highlights)
	slices.SortStableFunc(out, func(a, b string) int {
		ta, tb := isTransferable(a), isTransferable(b)
		switch {
		case ta && !tb:
			return -1
		case tb && !ta:
			return 1
		}
		return 0
	})
	return out
}
