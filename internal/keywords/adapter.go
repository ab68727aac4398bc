package keywords

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/lexicon"
)

// Replacement records one substitution made in the adapted text
type Replacement struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Position int    `json:"position"` // byte offset of To in the final adapted text
}

// Result is the outcome of adapting a text to an industry
type Result struct {
	Original     string        `json:"original"`
	Adapted      string        `json:"adapted"`
	Replacements []Replacement `json:"replacements"`
	Score        float64       `json:"score"` // 0-1, how much the text changed
}

// Adapter rewrites text using an industry lexicon.
// An Adapter is not safe for concurrent use because its random source is not.
type Adapter struct {
	lexicon *lexicon.Lexicon
	rng     RandomSource
}

// NewAdapter creates an Adapter. A nil lexicon uses the built-in one.
func NewAdapter(lex *lexicon.Lexicon, rng RandomSource) *Adapter {
	if lex == nil {
		lex = lexicon.Default()
	}
	if rng == nil {
		rng = NewRandomSource(1)
	}
	return &Adapter{lexicon: lex, rng: rng}
}

// AdaptText substitutes generic terms in text with the industry's specific
// vocabulary. Unknown industries and empty text are returned unchanged with score 0.
func (a *Adapter) AdaptText(text, industry string, cfg Config) Result {
	result := Result{
		Original:     text,
		Adapted:      text,
		Replacements: []Replacement{},
	}

	if strings.TrimSpace(text) == "" {
		return result
	}
	ind, ok := a.lexicon.Lookup(industry)
	if !ok {
		return result
	}

	probability := cfg.Intensity.Probability()
	current := text

	for _, mapping := range ind.SortedMappings() {
		if capReached(cfg, len(result.Replacements)) {
			break
		}

		// Intensity gate
		if a.rng.Float64() >= probability {
			continue
		}

		pattern := wordPattern(mapping.Generic)
		if pattern == nil {
			continue
		}
		matches := pattern.FindAllStringIndex(current, -1)
		if len(matches) == 0 {
			continue
		}

		if cfg.ContextAware && len(mapping.Context) > 0 && !hasContext(current, matches, mapping.Context) {
			continue
		}

		// Occurrences already inside the specific phrase, or inside text an
		// earlier mapping produced, stay as written.
		protected := spansOf(wordPattern(mapping.Specific), current)
		for _, r := range result.Replacements {
			protected = append(protected, []int{r.Position, r.Position + len(r.To)})
		}

		var sb strings.Builder
		var edits []edit
		earlier := len(result.Replacements)
		last := 0
		offset := 0
		for _, loc := range matches {
			if capReached(cfg, len(result.Replacements)) {
				break
			}
			if overlapsAny(loc, protected) {
				continue
			}
			if cfg.PreserveOriginal && a.rng.Float64() < preserveChance {
				continue
			}

			token := current[loc[0]:loc[1]]
			replacement := matchCase(token, mapping.Specific)

			sb.WriteString(current[last:loc[0]])
			sb.WriteString(replacement)
			last = loc[1]

			result.Replacements = append(result.Replacements, Replacement{
				From:     token,
				To:       replacement,
				Position: loc[0] + offset,
			})
			delta := len(replacement) - len(token)
			edits = append(edits, edit{end: loc[1], delta: delta})
			offset += delta
		}
		if len(edits) == 0 {
			continue
		}
		sb.WriteString(current[last:])
		current = sb.String()
		rebase(result.Replacements[:earlier], edits)
	}

	result.Adapted = current
	result.Score = adaptationScore(text, current, len(result.Replacements))
	return result
}

func capReached(cfg Config, count int) bool {
	return cfg.MaxReplacements > 0 && count >= cfg.MaxReplacements
}

// wordPattern builds a whole-word, case-insensitive pattern for a generic term.
// Multi-word terms tolerate any run of whitespace between words.
func wordPattern(term string) *regexp.Regexp {
	words := strings.Fields(term)
	if len(words) == 0 {
		return nil
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re, err := regexp.Compile(`(?i)\b` + strings.Join(quoted, `\s+`) + `\b`)
	if err != nil {
		return nil
	}
	return re
}

// edit is one substitution of a mapping pass: the end of the replaced token
// in the pre-pass text and the length change it caused
type edit struct {
	end   int
	delta int
}

// rebase shifts positions recorded by earlier passes past the edits of a later pass.
// Edits never overlap recorded replacements, so an edit ending at or before a
// position lies entirely before it.
func rebase(replacements []Replacement, edits []edit) {
	for i := range replacements {
		shift := 0
		for _, e := range edits {
			if e.end <= replacements[i].Position {
				shift += e.delta
			}
		}
		replacements[i].Position += shift
	}
}

func spansOf(pattern *regexp.Regexp, text string) [][]int {
	if pattern == nil {
		return nil
	}
	return pattern.FindAllStringIndex(text, -1)
}

func overlapsAny(loc []int, spans [][]int) bool {
	for _, span := range spans {
		if loc[0] < span[1] && span[0] < loc[1] {
			return true
		}
	}
	return false
}

// hasContext reports whether any match has a context word within
// contextWindow characters (runes, not bytes) on either side
func hasContext(text string, matches [][]int, contextWords []string) bool {
	for _, loc := range matches {
		start := runesBefore(text, loc[0], contextWindow)
		end := runesAfter(text, loc[1], contextWindow)
		window := strings.ToLower(text[start:end])
		for _, word := range contextWords {
			if word = strings.ToLower(strings.TrimSpace(word)); word != "" && strings.Contains(window, word) {
				return true
			}
		}
	}
	return false
}

// runesBefore returns the byte offset n runes before pos, clamped to 0
func runesBefore(s string, pos, n int) int {
	for ; n > 0 && pos > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	return pos
}

// runesAfter returns the byte offset n runes after pos, clamped to len(s)
func runesAfter(s string, pos, n int) int {
	for ; n > 0 && pos < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}

// matchCase applies the case pattern of token to replacement
func matchCase(token, replacement string) string {
	if isAllCaps(token) {
		return strings.ToUpper(replacement)
	}
	first, _ := utf8.DecodeRuneInString(token)
	if unicode.IsUpper(first) {
		return capitalize(replacement)
	}
	return strings.ToLower(replacement)
}

// isAllCaps reports whether s has at least two letters and all of them are upper case
func isAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}

// adaptationScore blends the replacement density (70%) with the relative
// length change (30%). Unchanged text scores 0.
func adaptationScore(original, adapted string, replacements int) float64 {
	if original == adapted {
		return 0
	}

	var countScore float64
	if words := len(strings.Fields(original)); words > 0 {
		countScore = math.Min(1, float64(replacements)/(float64(words)*0.3))
	}

	var lengthScore float64
	if originalLen := utf8.RuneCountInString(original); originalLen > 0 {
		delta := math.Abs(float64(utf8.RuneCountInString(adapted) - originalLen))
		lengthScore = math.Min(1, delta/(float64(originalLen)*0.2))
	}

	return 0.7*countScore + 0.3*lengthScore
}
