package strategy

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-drafter/internal/types"
)

// Candidate is one strategy's evaluation against a profile
type Candidate struct {
	Strategy   Name     `json:"strategy"`
	Applicable bool     `json:"applicable"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// Selection is the outcome of strategy selection
type Selection struct {
	Strategy   Name        `json:"strategy"`
	Confidence float64     `json:"confidence"`
	Reasons    []string    `json:"reasons"`
	Override   bool        `json:"override"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// Selector chooses a strategy from a fixed, ordered set of definitions
type Selector struct {
	definitions []Definition
	fallback    Name
}

// NewSelector creates a selector over the built-in strategies
func NewSelector() *Selector {
	return NewSelectorWith(DefaultDefinitions(), ExperiencedProfessional)
}

// NewSelectorWith creates a selector over custom definitions.
// Definition order decides ties; fallback is used when nothing applies.
func NewSelectorWith(definitions []Definition, fallback Name) *Selector {
	return &Selector{definitions: definitions, fallback: fallback}
}

// Names returns the registered strategy names in tie-break order
func (s *Selector) Names() []Name {
	names := make([]Name, len(s.definitions))
	for i, d := range s.definitions {
		names[i] = d.Name
	}
	return names
}

// Resolve matches a user-supplied strategy name case- and punctuation-insensitively
func (s *Selector) Resolve(name string) (Name, bool) {
	key := overrideKey(name)
	if key == "" {
		return "", false
	}
	for _, d := range s.definitions {
		if overrideKey(string(d.Name)) == key {
			return d.Name, true
		}
	}
	return "", false
}

// Select picks the best applicable strategy for the profile. A recognized
// override wins with full confidence; an unknown override is ignored.
func (s *Selector) Select(p *types.Profile, override string) Selection {
	signals := SignalsOf(p)

	candidates := make([]Candidate, 0, len(s.definitions))
	for _, d := range s.definitions {
		c := Candidate{Strategy: d.Name, Applicable: d.IsApplicable(signals)}
		c.Confidence, c.Reasons = d.Score(signals)
		candidates = append(candidates, c)
	}

	if name, ok := s.Resolve(override); ok {
		return Selection{
			Strategy:   name,
			Confidence: 1.0,
			Reasons:    []string{"Manual override selected"},
			Override:   true,
			Candidates: candidates,
		}
	}

	best := -1
	for i, c := range candidates {
		if !c.Applicable {
			continue
		}
		// strictly greater keeps the earlier definition on ties
		if best < 0 || c.Confidence > candidates[best].Confidence {
			best = i
		}
	}

	if best < 0 {
		return Selection{
			Strategy:   s.fallback,
			Confidence: 0,
			Reasons:    []string{fmt.Sprintf("No strategy applicable; defaulting to %s", s.fallback)},
			Candidates: candidates,
		}
	}

	winner := candidates[best]
	return Selection{
		Strategy:   winner.Strategy,
		Confidence: winner.Confidence,
		Reasons:    append([]string(nil), winner.Reasons...),
		Candidates: candidates,
	}
}

func overrideKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
