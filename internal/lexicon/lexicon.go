// Package lexicon provides the static industry vocabulary used to localize resume prose.
package lexicon

import (
	"sort"
	"strings"
)

// TermMapping maps a generic word to its industry-specific replacement
type TermMapping struct {
	Generic  string   `json:"generic"`
	Specific string   `json:"specific"`
	Weight   float64  `json:"weight"`            // 0-1, higher mappings are applied first
	Context  []string `json:"context,omitempty"` // words that must appear near the generic term
}

// Industry holds the vocabulary for one industry
type Industry struct {
	Name           string        `json:"name"`
	Mappings       []TermMapping `json:"mappings"`
	Keywords       []string      `json:"keywords"`
	ActionVerbs    []string      `json:"action_verbs"`
	TechnicalTerms []string      `json:"technical_terms"`
}

// Lexicon is a read-only set of industries keyed by lower-cased name
type Lexicon struct {
	industries map[string]*Industry
	aliases    map[string]string
}

// New builds a lexicon from the given industries and alias table.
// Alias keys and targets are normalized like lookups.
func New(industries []Industry, aliases map[string]string) *Lexicon {
	l := &Lexicon{
		industries: make(map[string]*Industry, len(industries)),
		aliases:    make(map[string]string, len(aliases)),
	}
	for i := range industries {
		ind := industries[i]
		l.industries[normalizeKey(ind.Name)] = &ind
	}
	for alias, target := range aliases {
		l.aliases[normalizeKey(alias)] = normalizeKey(target)
	}
	return l
}

// Default returns the built-in lexicon
func Default() *Lexicon {
	return defaultLexicon
}

// Lookup returns the industry for name, resolving aliases.
// The name is trimmed and lower-cased before lookup.
func (l *Lexicon) Lookup(name string) (*Industry, bool) {
	key := normalizeKey(name)
	if key == "" {
		return nil, false
	}
	if ind, ok := l.industries[key]; ok {
		return ind, true
	}
	if target, ok := l.aliases[key]; ok {
		ind, ok := l.industries[target]
		return ind, ok
	}
	return nil, false
}

// Names returns the sorted canonical industry names
func (l *Lexicon) Names() []string {
	names := make([]string, 0, len(l.industries))
	for _, ind := range l.industries {
		names = append(names, ind.Name)
	}
	sort.Strings(names)
	return names
}

// SortedMappings returns a copy of the industry's mappings ordered by descending weight.
// Mappings with equal weight keep their declared order.
func (ind *Industry) SortedMappings() []TermMapping {
	sorted := make([]TermMapping, len(ind.Mappings))
	copy(sorted, ind.Mappings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	return sorted
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
