package keywords

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-drafter/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand returns values in order, repeating the last one when exhausted.
// Shuffle leaves the order untouched.
type scriptedRand struct {
	values []float64
	next   int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}

func always(v float64) *scriptedRand {
	return &scriptedRand{values: []float64{v}}
}

func testLexicon(mappings ...lexicon.TermMapping) *lexicon.Lexicon {
	return lexicon.New([]lexicon.Industry{{
		Name:     "testing",
		Mappings: mappings,
		Keywords: []string{"alpha", "beta", "gamma"},
	}}, nil)
}

func exactConfig() Config {
	return Config{Intensity: IntensityAggressive, ContextAware: true}
}

func TestAdaptText_WholeWordOnly(t *testing.T) {
	a := NewAdapter(testLexicon(lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 1}), always(0))

	result := a.AdaptText("builtin", "testing", exactConfig())

	assert.Empty(t, result.Replacements)
	assert.Equal(t, "builtin", result.Adapted)
	assert.Equal(t, 0.0, result.Score)
}

func TestAdaptText_PreservesCase(t *testing.T) {
	a := NewAdapter(testLexicon(lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 1}), always(0))

	result := a.AdaptText("Built the API. BUILT again. built it.", "testing", exactConfig())

	assert.Equal(t, "Engineered the API. ENGINEERED again. engineered it.", result.Adapted)
	require.Len(t, result.Replacements, 3)
	assert.Equal(t, "Built", result.Replacements[0].From)
	assert.Equal(t, "Engineered", result.Replacements[0].To)
	assert.Equal(t, "ENGINEERED", result.Replacements[1].To)
	assert.Equal(t, "engineered", result.Replacements[2].To)

	// Positions index into the adapted text
	for _, r := range result.Replacements {
		assert.Equal(t, r.To, result.Adapted[r.Position:r.Position+len(r.To)])
	}
}

func TestAdaptText_MultiWordGeneric(t *testing.T) {
	a := NewAdapter(testLexicon(lexicon.TermMapping{Generic: "set up", Specific: "deployed", Weight: 1}), always(0))

	result := a.AdaptText("I set  up the servers", "testing", exactConfig())

	assert.Equal(t, "I deployed the servers", result.Adapted)
	require.Len(t, result.Replacements, 1)
	assert.Equal(t, "set  up", result.Replacements[0].From)
}

func TestAdaptText_ContextAwareness(t *testing.T) {
	mapping := lexicon.TermMapping{Generic: "fixed", Specific: "debugged", Weight: 1, Context: []string{"bug"}}

	tests := []struct {
		name         string
		text         string
		contextAware bool
		want         string
	}{
		{name: "no context word", text: "Fixed the roof.", contextAware: true, want: "Fixed the roof."},
		{name: "context word nearby", text: "Fixed a bug in login", contextAware: true, want: "Debugged a bug in login"},
		{name: "context disabled", text: "Fixed the roof.", contextAware: false, want: "Debugged the roof."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter(testLexicon(mapping), always(0))
			cfg := exactConfig()
			cfg.ContextAware = tt.contextAware
			result := a.AdaptText(tt.text, "testing", cfg)
			assert.Equal(t, tt.want, result.Adapted)
		})
	}
}

func TestAdaptText_ContextOutsideWindow(t *testing.T) {
	mapping := lexicon.TermMapping{Generic: "fixed", Specific: "debugged", Weight: 1, Context: []string{"bug"}}
	a := NewAdapter(testLexicon(mapping), always(0))

	padding := " and then we went on to do a great many unrelated things for hours "
	text := "fixed it" + padding + "bug"
	require.Greater(t, len(padding), contextWindow)

	result := a.AdaptText(text, "testing", exactConfig())
	assert.Empty(t, result.Replacements)
}

func TestAdaptText_ContextWindowCountsCharacters(t *testing.T) {
	mapping := lexicon.TermMapping{Generic: "fixed", Specific: "debugged", Weight: 1, Context: []string{"bug"}}
	a := NewAdapter(testLexicon(mapping), always(0))

	// 46 characters but 90 bytes between the match and the context word
	text := "fixed " + strings.Repeat("é", 44) + " bug"

	result := a.AdaptText(text, "testing", exactConfig())
	assert.Len(t, result.Replacements, 1)
}

func TestRuneOffsets(t *testing.T) {
	s := "añb"
	assert.Equal(t, 1, runesBefore(s, 3, 1))
	assert.Equal(t, 0, runesBefore(s, 3, 10))
	assert.Equal(t, 3, runesAfter(s, 1, 1))
	assert.Equal(t, len(s), runesAfter(s, 1, 10))
}

func TestAdaptText_IntensityGate(t *testing.T) {
	mapping := lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 1}

	tests := []struct {
		intensity Intensity
		wantCount int
	}{
		{IntensityLight, 0},      // 0.5 >= 0.3
		{IntensityModerate, 1},   // 0.5 < 0.6
		{IntensityAggressive, 1}, // 0.5 < 0.9
	}

	for _, tt := range tests {
		t.Run(string(tt.intensity), func(t *testing.T) {
			a := NewAdapter(testLexicon(mapping), always(0.5))
			result := a.AdaptText("built it", "testing", Config{Intensity: tt.intensity})
			assert.Len(t, result.Replacements, tt.wantCount)
		})
	}
}

func TestAdaptText_MaxReplacements(t *testing.T) {
	a := NewAdapter(testLexicon(
		lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 1},
		lexicon.TermMapping{Generic: "made", Specific: "developed", Weight: 0.5},
	), always(0))

	cfg := exactConfig()
	cfg.MaxReplacements = 2
	result := a.AdaptText("built built built made", "testing", cfg)

	assert.Len(t, result.Replacements, 2)
	assert.Equal(t, "engineered engineered built made", result.Adapted)
}

func TestAdaptText_PreserveOriginalSkipsDoNotConsumeCap(t *testing.T) {
	// gate passes, first occurrence skipped, second replaced
	rng := &scriptedRand{values: []float64{0.0, 0.1, 0.9}}
	a := NewAdapter(testLexicon(lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 1}), rng)

	cfg := exactConfig()
	cfg.PreserveOriginal = true
	cfg.MaxReplacements = 1
	result := a.AdaptText("built and built", "testing", cfg)

	assert.Equal(t, "built and engineered", result.Adapted)
	require.Len(t, result.Replacements, 1)
	assert.Equal(t, 10, result.Replacements[0].Position)
}

func TestAdaptText_MappingsAppliedByWeight(t *testing.T) {
	a := NewAdapter(testLexicon(
		lexicon.TermMapping{Generic: "team", Specific: "squad", Weight: 0.1},
		lexicon.TermMapping{Generic: "team", Specific: "crew", Weight: 0.9},
	), always(0))

	result := a.AdaptText("team", "testing", exactConfig())

	assert.Equal(t, "crew", result.Adapted)
}

func TestAdaptText_SpecificPhraseAlreadyPresent(t *testing.T) {
	a := NewAdapter(testLexicon(
		lexicon.TermMapping{Generic: "team", Specific: "cross-functional team", Weight: 1},
	), always(0))

	result := a.AdaptText("Worked with the cross-functional team and the support team", "testing", exactConfig())

	assert.Equal(t, "Worked with the cross-functional team and the support cross-functional team", result.Adapted)
	require.Len(t, result.Replacements, 1)
	assert.Equal(t, "team", result.Replacements[0].From)
}

func TestAdaptText_BuiltinMappingsDoNotDoubleWords(t *testing.T) {
	lex := lexicon.Default()
	cfg := Config{Intensity: IntensityAggressive}

	for _, name := range lex.Names() {
		ind, ok := lex.Lookup(name)
		require.True(t, ok)
		for _, m := range ind.Mappings {
			t.Run(name+"/"+m.Generic, func(t *testing.T) {
				result := NewAdapter(lex, always(0)).AdaptText("Worked on "+m.Specific+" daily.", name, cfg)
				assert.LessOrEqual(t, strings.Count(strings.ToLower(result.Adapted), strings.ToLower(m.Specific)), 1,
					"adapted: %q", result.Adapted)
			})
		}
	}

	result := NewAdapter(lex, always(0)).AdaptText(
		"Worked with the cross-functional squad on scalable applications for customers.", "technology", cfg)
	assert.NotContains(t, result.Adapted, "cross-functional cross-functional")
	assert.NotContains(t, result.Adapted, "scalable scalable")
}

func TestAdaptText_PositionsSurviveLaterMappings(t *testing.T) {
	a := NewAdapter(testLexicon(
		lexicon.TermMapping{Generic: "shipped", Specific: "delivered", Weight: 0.9},
		lexicon.TermMapping{Generic: "made", Specific: "engineered and developed", Weight: 0.1},
	), always(0))

	result := a.AdaptText("made tools and shipped them, then made more", "testing", exactConfig())

	assert.Equal(t, "engineered and developed tools and delivered them, then engineered and developed more", result.Adapted)
	require.Len(t, result.Replacements, 3)
	assert.Equal(t, "shipped", result.Replacements[0].From)
	for _, r := range result.Replacements {
		assert.Equal(t, r.To, result.Adapted[r.Position:r.Position+len(r.To)])
	}
}

func TestAdaptText_PositionsIndexAdaptedText(t *testing.T) {
	text := "We built a tool, fixed a bug in the code, handled customers and made the computer systems faster. " +
		"The team improved the software we set up for customers."

	for seed := uint64(0); seed < 20; seed++ {
		result := NewAdapter(nil, NewRandomSource(seed)).AdaptText(text, "technology", DefaultConfig())
		for _, r := range result.Replacements {
			require.LessOrEqual(t, r.Position+len(r.To), len(result.Adapted), "seed %d", seed)
			assert.Equal(t, r.To, result.Adapted[r.Position:r.Position+len(r.To)], "seed %d", seed)
		}
	}
}

func TestAdaptText_ReplacementsAreNotRewritten(t *testing.T) {
	a := NewAdapter(testLexicon(
		lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 0.9},
		lexicon.TermMapping{Generic: "engineered", Specific: "architected", Weight: 0.5},
	), always(0))

	result := a.AdaptText("built it, then engineered more", "testing", exactConfig())

	assert.Equal(t, "engineered it, then architected more", result.Adapted)
	assert.Len(t, result.Replacements, 2)
}

func TestAdaptText_UnknownIndustryOrEmptyText(t *testing.T) {
	a := NewAdapter(nil, always(0))

	unknown := a.AdaptText("Built things", "astrology", DefaultConfig())
	assert.Equal(t, "Built things", unknown.Adapted)
	assert.Equal(t, 0.0, unknown.Score)
	assert.Empty(t, unknown.Replacements)

	empty := a.AdaptText("   ", "technology", DefaultConfig())
	assert.Equal(t, "   ", empty.Adapted)
	assert.Equal(t, 0.0, empty.Score)
}

func TestAdaptText_Score(t *testing.T) {
	a := NewAdapter(testLexicon(lexicon.TermMapping{Generic: "built", Specific: "engineered", Weight: 1}), always(0))

	full := a.AdaptText("built", "testing", exactConfig())
	assert.InDelta(t, 1.0, full.Score, 1e-9)

	// 1 replacement in 10 words: 0.7*(1/3) + 0.3*min(1, 5/(len*0.2))
	text := "we built a small thing for the team last year"
	partial := a.AdaptText(text+" ok", "testing", exactConfig())
	assert.Greater(t, partial.Score, 0.0)
	assert.Less(t, partial.Score, 1.0)
}

func TestAdaptText_SeededSourceIsDeterministic(t *testing.T) {
	text := "Built a tool that fixed a bug for customers and improved the software the team made."
	first := NewAdapter(nil, NewRandomSource(42)).AdaptText(text, "technology", DefaultConfig())
	second := NewAdapter(nil, NewRandomSource(42)).AdaptText(text, "technology", DefaultConfig())

	assert.Equal(t, first, second)
}

func TestAdaptationScore(t *testing.T) {
	assert.Equal(t, 0.0, adaptationScore("same", "same", 0))
	assert.InDelta(t, 0.3, adaptationScore("abcde", "abcdefgh", 0), 1e-9)
}

func TestParseIntensity(t *testing.T) {
	got, ok := ParseIntensity(" Aggressive ")
	assert.True(t, ok)
	assert.Equal(t, IntensityAggressive, got)

	got, ok = ParseIntensity("extreme")
	assert.False(t, ok)
	assert.Equal(t, IntensityModerate, got)
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "END USERS", matchCase("CUSTOMERS", "end users"))
	assert.Equal(t, "End users", matchCase("Customers", "end users"))
	assert.Equal(t, "end users", matchCase("customers", "End Users"))
}
