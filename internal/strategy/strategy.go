package strategy

import (
	"fmt"
	"slices"
)

// Name identifies a generation strategy
type Name string

// Registered strategies, in tie-break order
const (
	ExperiencedProfessional Name = "ExperiencedProfessional"
	CareerChanger           Name = "CareerChanger"
	ExperiencedJobSeeker    Name = "ExperiencedJobSeeker"
	FirstTimeJobSeeker      Name = "FirstTimeJobSeeker"
	Student                 Name = "Student"
)

// Score weights
const (
	weightStage   = 0.55
	weightLevel   = 0.2
	weightWorkFit = 0.2
	weightSummary = 0.025
	weightSkills  = 0.025

	// levelDecaySteps is the ladder distance at which level credit reaches zero
	levelDecaySteps = 3.0
)

// Definition describes when a strategy applies and what signals it rewards
type Definition struct {
	Name      Name
	StageTags []string // normalized career-stage tags that match exactly
	Rungs     []int    // experience ladder rungs the strategy targets
	WantsWork bool     // whether the strategy expects prior work experience
	Applies   func(Signals) bool
}

// IsApplicable reports whether the strategy's hard preconditions hold
func (d Definition) IsApplicable(s Signals) bool {
	if d.Applies == nil {
		return true
	}
	return d.Applies(s)
}

// Score rates how well the profile fits the strategy, from 0 to 1, with the reasons behind it
func (d Definition) Score(s Signals) (float64, []string) {
	var score float64
	reasons := make([]string, 0, 4)

	if s.CareerStage != "" && slices.Contains(d.StageTags, s.CareerStage) {
		score += weightStage
		reasons = append(reasons, fmt.Sprintf("Career stage %q matches", s.CareerStage))
	}

	if s.RungKnown && len(d.Rungs) > 0 {
		distance := rungDistance(s.Rung, d.Rungs)
		if distance == 0 {
			score += weightLevel
			reasons = append(reasons, fmt.Sprintf("Experience level %q matches", s.ExperienceLevel))
		} else if credit := weightLevel * (1 - float64(distance)/levelDecaySteps); credit > 0 {
			score += credit
			reasons = append(reasons, fmt.Sprintf("Experience level %q reads as %s, %d step(s) from target", s.ExperienceLevel, RungName(s.Rung), distance))
		}
	}

	if d.WantsWork == s.HasWorkExperience {
		score += weightWorkFit
		if s.HasWorkExperience {
			reasons = append(reasons, "Has prior work experience")
		} else {
			reasons = append(reasons, "No prior work experience")
		}
	}

	if s.HasSummary {
		score += weightSummary
		reasons = append(reasons, "Includes a professional summary")
	}
	if s.HasKeySkills {
		score += weightSkills
		reasons = append(reasons, "Lists key skills")
	}

	return min(score, 1.0), reasons
}

func rungDistance(rung int, targets []int) int {
	best := -1
	for _, target := range targets {
		d := rung - target
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// DefaultDefinitions returns the five built-in strategies in tie-break order
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Name:      ExperiencedProfessional,
			StageTags: []string{"experienced", "experienced_professional", "established", "professional", "senior", "executive"},
			Rungs:     []int{RungSenior, RungExecutive},
			WantsWork: true,
			Applies: func(s Signals) bool {
				return s.HasWorkExperience && !s.StudentLevel && !(s.RungKnown && s.Rung <= RungEntry)
			},
		},
		{
			Name:      CareerChanger,
			StageTags: []string{"career_change", "career_changer", "career_transition", "transition", "changing_careers", "pivot"},
			Rungs:     []int{RungJunior, RungMid, RungSenior},
			WantsWork: true,
			Applies: func(s Signals) bool {
				return s.InTransition && s.HasWorkExperience
			},
		},
		{
			Name:      ExperiencedJobSeeker,
			StageTags: []string{"job_seeker", "job_seeking", "experienced_job_seeker", "actively_looking", "returning", "returning_to_work", "between_jobs"},
			Rungs:     []int{RungJunior, RungMid},
			WantsWork: true,
			Applies: func(s Signals) bool {
				return s.HasWorkExperience
			},
		},
		{
			Name:      FirstTimeJobSeeker,
			StageTags: []string{"first_job", "first_time", "first_time_job_seeker", "entry", "entry_level", "new_grad", "recent_graduate", "graduate"},
			Rungs:     []int{RungEntry},
			WantsWork: false,
			Applies: func(s Signals) bool {
				return !s.HasWorkExperience && !s.StudentLevel
			},
		},
		{
			Name:      Student,
			StageTags: []string{"student", "intern", "internship", "university", "college", "high_school"},
			Rungs:     []int{RungStudent},
			WantsWork: false,
			Applies: func(s Signals) bool {
				return s.StudentLevel || s.StudentStage
			},
		},
	}
}
