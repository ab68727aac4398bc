// Package generation assembles a canonical resume draft from a profile and a template.
package generation

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/lexicon"
	"github.com/jonathan/resume-drafter/internal/strategy"
	"github.com/jonathan/resume-drafter/internal/types"
)

// DefaultSeed seeds the random source of every generation call unless WithRandSource is used
const DefaultSeed uint64 = 42

// summaryEnrichThreshold is the adaptation score below which the summary is enriched instead
const summaryEnrichThreshold = 0.2

// summaryEnrichKeywords is the number of industry keywords appended by enrichment
const summaryEnrichKeywords = 2

// Generator produces resume drafts. It holds no per-call state and is safe for
// concurrent use as long as the configured ID generator is.
type Generator struct {
	logger       *zap.Logger
	newID        func() string
	newRand      func() keywords.RandomSource
	lexicon      *lexicon.Lexicon
	placeholders types.Placeholders
	selector     *strategy.Selector
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithIDGenerator replaces uuid.NewString as the identifier source
func WithIDGenerator(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// WithRandSource sets the factory called once per generation for the keyword engine's randomness
func WithRandSource(factory func() keywords.RandomSource) Option {
	return func(g *Generator) {
		if factory != nil {
			g.newRand = factory
		}
	}
}

// WithLexicon replaces the built-in industry lexicon
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(g *Generator) {
		if lex != nil {
			g.lexicon = lex
		}
	}
}

// WithPlaceholders extends the default placeholder table
func WithPlaceholders(p types.Placeholders) Option {
	return func(g *Generator) {
		g.placeholders = g.placeholders.Merge(p)
	}
}

// WithSelector replaces the built-in strategy selector
func WithSelector(s *strategy.Selector) Option {
	return func(g *Generator) {
		if s != nil {
			g.selector = s
		}
	}
}

// New creates a Generator
func New(opts ...Option) *Generator {
	g := &Generator{
		logger:       zap.NewNop(),
		newID:        uuid.NewString,
		newRand:      func() keywords.RandomSource { return keywords.NewRandomSource(DefaultSeed) },
		lexicon:      lexicon.Default(),
		placeholders: types.DefaultPlaceholders(),
		selector:     strategy.NewSelector(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Options are the per-call generation settings
type Options struct {
	Industry        string             // overrides the profile's industry when set
	Intensity       keywords.Intensity // empty means moderate
	Strategy        string             // manual strategy override; unknown names are ignored
	MaxReplacements int                // cap on keyword substitutions per text; 0 is unlimited
}

// Result is a generated draft with the decisions that shaped it
type Result struct {
	Draft     *types.Draft       `json:"draft"`
	Selection strategy.Selection `json:"selection"`
	Industry  string             `json:"industry,omitempty"` // canonical lexicon name; empty when unknown
	Fallbacks []string           `json:"fallbacks"`          // sections taken from the template
}

// GenerateDraft builds a draft. It fails only when profile or template is nil.
func (g *Generator) GenerateDraft(profile *types.Profile, tmpl *types.Template, opts Options) (*types.Draft, error) {
	result, err := g.Generate(profile, tmpl, opts)
	if err != nil {
		return nil, err
	}
	return result.Draft, nil
}

// Generate builds a draft and reports the selected strategy and section fallbacks.
// Malformed profile fields degrade to template content and never produce an error.
func (g *Generator) Generate(profile *types.Profile, tmpl *types.Template, opts Options) (*Result, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}
	if tmpl == nil {
		return nil, ErrNilTemplate
	}

	selection := g.selector.Select(profile, opts.Strategy)
	r := g.newRun(profile, tmpl, opts, selection)

	draft := &types.Draft{
		PersonalInfo:   r.personalInfo(),
		Summary:        r.summary(),
		Experience:     r.experience(),
		Education:      r.education(),
		Skills:         r.skills(),
		Projects:       r.projects(),
		Settings:       buildSettings(tmpl),
		CurrentStep:    types.StepPersonal,
		CompletedSteps: []string{},
	}
	draft.PersonalInfo.Summary = draft.Summary

	if missing := missingRequired(draft.PersonalInfo); len(missing) > 0 {
		r.logger.Warn("draft is missing required personal fields", zap.Strings("fields", missing))
	}

	r.logger.Debug("generated draft",
		zap.Int("experience", len(draft.Experience)),
		zap.Int("education", len(draft.Education)),
		zap.Int("skills", len(draft.Skills)),
		zap.Int("projects", len(draft.Projects)),
		zap.Strings("fallbacks", r.fallbacks),
	)

	return &Result{
		Draft:     draft,
		Selection: selection,
		Industry:  r.industry,
		Fallbacks: r.fallbacks,
	}, nil
}

// run holds the state of one generation call
type run struct {
	profile      *types.Profile
	starter      *types.StarterData
	policy       Policy
	placeholders types.Placeholders
	adapter      *keywords.Adapter
	config       keywords.Config
	industry     string
	newID        func() string
	logger       *zap.Logger
	fallbacks    []string
}

func (g *Generator) newRun(profile *types.Profile, tmpl *types.Template, opts Options, selection strategy.Selection) *run {
	starter := tmpl.StarterData
	if starter == nil {
		starter = &types.StarterData{}
	}

	cfg := keywords.DefaultConfig()
	if opts.Intensity != "" {
		cfg.Intensity = opts.Intensity
	}
	cfg.MaxReplacements = opts.MaxReplacements

	industry := ""
	requested := strings.TrimSpace(opts.Industry)
	if requested == "" {
		requested = strings.TrimSpace(profile.Industry)
	}
	if ind, ok := g.lexicon.Lookup(requested); ok {
		industry = ind.Name
	}

	logger := g.logger.With(
		zap.String("profile_id", profile.ID),
		zap.String("template_id", tmpl.ID),
		zap.String("strategy", string(selection.Strategy)),
	)
	if requested != "" && industry == "" {
		logger.Debug("unknown industry, skipping keyword adaptation", zap.String("industry", requested))
	}

	return &run{
		profile:      profile,
		starter:      starter,
		policy:       PolicyFor(selection.Strategy),
		placeholders: g.placeholders.Merge(tmpl.Placeholders),
		adapter:      keywords.NewAdapter(g.lexicon, g.newRand()),
		config:       cfg,
		industry:     industry,
		newID:        g.newID,
		logger:       logger,
		fallbacks:    []string{},
	}
}

// adapt rewrites profile prose for the resolved industry
func (r *run) adapt(text string) keywords.Result {
	if r.industry == "" || strings.TrimSpace(text) == "" {
		return keywords.Result{Original: text, Adapted: text, Replacements: []keywords.Replacement{}}
	}
	return r.adapter.AdaptText(text, r.industry, r.config)
}

// summary picks the profile summary, then the starter summary, then the policy fallback
func (r *run) summary() string {
	summary := strings.TrimSpace(r.profile.ProfessionalSummary)
	if summary == "" {
		summary = r.starterValue(types.FieldSummary, r.starter.Summary)
	}
	if summary == "" {
		summary = r.policy.FallbackSummary
	}
	if r.industry == "" || summary == "" {
		return summary
	}

	result := r.adapter.AdaptText(summary, r.industry, r.config)
	if result.Score < summaryEnrichThreshold {
		return r.adapter.EnrichText(result.Adapted, r.industry, summaryEnrichKeywords)
	}
	return result.Adapted
}

// fellBack records that a section came from the template
func (r *run) fellBack(section, reason string) {
	r.fallbacks = append(r.fallbacks, section)
	r.logger.Debug("using template section", zap.String("section", section), zap.String("reason", reason))
}
