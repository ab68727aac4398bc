package keywords

import (
	"strings"
)

// Potential classifies how much a text could gain from adaptation
type Potential string

// Adaptation potentials
const (
	PotentialHigh   Potential = "high"
	PotentialMedium Potential = "medium"
	PotentialLow    Potential = "low"
)

// Analysis is a non-mutating diagnostic of a text against an industry
type Analysis struct {
	WordCount               int       `json:"word_count"`
	PotentialReplacements   int       `json:"potential_replacements"`
	IndustryKeywordsPresent int       `json:"industry_keywords_present"`
	ActionVerbsPresent      int       `json:"action_verbs_present"`
	TechnicalTermsPresent   int       `json:"technical_terms_present"`
	AdaptationPotential     Potential `json:"adaptation_potential"`
}

// EnrichText appends up to maxKeywords industry keywords that do not already
// appear in text as a trailing "Experienced with ..." sentence. The text is
// returned unchanged when the industry is unknown or every keyword is present.
func (a *Adapter) EnrichText(text, industry string, maxKeywords int) string {
	if maxKeywords <= 0 {
		return text
	}
	ind, ok := a.lexicon.Lookup(industry)
	if !ok {
		return text
	}

	lower := strings.ToLower(text)
	unused := make([]string, 0, len(ind.Keywords))
	for _, keyword := range ind.Keywords {
		if !strings.Contains(lower, strings.ToLower(keyword)) {
			unused = append(unused, keyword)
		}
	}
	if len(unused) == 0 {
		return text
	}

	a.rng.Shuffle(len(unused), func(i, j int) {
		unused[i], unused[j] = unused[j], unused[i]
	})
	chosen := unused[:min(maxKeywords, len(unused))]

	sentence := "Experienced with " + strings.Join(chosen, ", ") + "."
	base := strings.TrimSpace(text)
	if base == "" {
		return sentence
	}
	return base + " " + sentence
}

// AnalyzeText reports how many mapping matches, industry keywords, action
// verbs and technical terms a text contains. Verbs and terms match whole words
// and do not affect the potential. Unknown industries and empty text report
// low potential.
func (a *Adapter) AnalyzeText(text, industry string) Analysis {
	analysis := Analysis{
		WordCount:           len(strings.Fields(text)),
		AdaptationPotential: PotentialLow,
	}

	ind, ok := a.lexicon.Lookup(industry)
	if !ok || analysis.WordCount == 0 {
		return analysis
	}

	for _, mapping := range ind.Mappings {
		if pattern := wordPattern(mapping.Generic); pattern != nil {
			analysis.PotentialReplacements += len(pattern.FindAllStringIndex(text, -1))
		}
	}

	lower := strings.ToLower(text)
	for _, keyword := range ind.Keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			analysis.IndustryKeywordsPresent++
		}
	}

	analysis.ActionVerbsPresent = countWords(text, ind.ActionVerbs)
	analysis.TechnicalTermsPresent = countWords(text, ind.TechnicalTerms)

	ratio := float64(analysis.PotentialReplacements) / float64(analysis.WordCount)
	switch {
	case ratio > 0.15 || analysis.IndustryKeywordsPresent < 2:
		analysis.AdaptationPotential = PotentialHigh
	case ratio > 0.08 || analysis.IndustryKeywordsPresent < 4:
		analysis.AdaptationPotential = PotentialMedium
	default:
		analysis.AdaptationPotential = PotentialLow
	}

	return analysis
}

// countWords counts the terms that occur in text as whole words
func countWords(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if pattern := wordPattern(term); pattern != nil && pattern.MatchString(text) {
			count++
		}
	}
	return count
}
