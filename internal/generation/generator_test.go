package generation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/lexicon"
	"github.com/jonathan/resume-drafter/internal/strategy"
	"github.com/jonathan/resume-drafter/internal/types"
)

// fixedRand returns the same value for every draw and never reorders
type fixedRand float64

func (f fixedRand) Float64() float64            { return float64(f) }
func (f fixedRand) Shuffle(int, func(i, j int)) {}

// passAll passes every moderate intensity gate and never preserves an occurrence
func passAll() keywords.RandomSource { return fixedRand(0.5) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testLexicon() *lexicon.Lexicon {
	return lexicon.New([]lexicon.Industry{{
		Name: "testing",
		Mappings: []lexicon.TermMapping{
			{Generic: "built", Specific: "engineered", Weight: 1},
		},
		Keywords: []string{"alpha", "beta", "gamma"},
	}}, map[string]string{"qa": "testing"})
}

func newTestGenerator(opts ...Option) *Generator {
	base := []Option{
		WithIDGenerator(sequentialIDs()),
		WithRandSource(passAll),
		WithLexicon(testLexicon()),
	}
	return New(append(base, opts...)...)
}

func starterTemplate() *types.Template {
	return &types.Template{
		ID:   "modern",
		Name: "Modern",
		Settings: types.TemplateSettings{
			ColorScheme:  "blue",
			FontSize:     "small",
			Spacing:      "compact",
			SectionOrder: []string{"personal", "experience", "skills"},
		},
		StarterData: &types.StarterData{
			PersonalInfo: &types.PersonalInfo{
				FullName: "John Doe",
				Email:    "john.doe@example.com",
				Phone:    "(555) 123-4567",
				Location: "City, State",
			},
			Summary: "Experienced professional...",
			Experience: []types.Experience{{
				ID:          "tmpl-exp-1",
				Company:     "Example Corp",
				Position:    "Engineer",
				StartDate:   "2020-01",
				EndDate:     "2023-01",
				Description: "We built example systems",
				Highlights:  []string{"Shipped features"},
			}},
			Education: []types.Education{{
				ID:          "tmpl-edu-1",
				Institution: "Example University",
				Degree:      "B.S.",
				Field:       "Computer Science",
				Honors:      []string{},
			}},
			Skills: []types.Skill{
				{ID: "tmpl-skill-1", Name: "JavaScript", Level: types.LevelAdvanced, Category: "Programming Languages"},
				{ID: "tmpl-skill-2", Name: "Teamwork", Level: types.LevelExpert, Category: "Soft Skills"},
			},
			Projects: []types.Project{{
				ID:           "tmpl-proj-1",
				Name:         "Portfolio",
				Description:  "Personal site",
				Technologies: []string{"HTML"},
				Highlights:   []string{},
			}},
		},
	}
}

func experienceWithoutIDs(list []types.Experience) []types.Experience {
	out := make([]types.Experience, len(list))
	for i, e := range list {
		e.ID = ""
		out[i] = e
	}
	return out
}

func educationWithoutIDs(list []types.Education) []types.Education {
	out := make([]types.Education, len(list))
	for i, e := range list {
		e.ID = ""
		out[i] = e
	}
	return out
}

func skillsWithoutIDs(list []types.Skill) []types.Skill {
	out := make([]types.Skill, len(list))
	for i, s := range list {
		s.ID = ""
		out[i] = s
	}
	return out
}

func projectsWithoutIDs(list []types.Project) []types.Project {
	out := make([]types.Project, len(list))
	for i, p := range list {
		p.ID = ""
		out[i] = p
	}
	return out
}

func TestGenerate_NilArguments(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(nil, starterTemplate(), Options{})
	assert.ErrorIs(t, err, ErrNilProfile)

	_, err = g.GenerateDraft(&types.Profile{}, nil, Options{})
	assert.ErrorIs(t, err, ErrNilTemplate)
}

func TestGenerate_MinimalProfileScenario(t *testing.T) {
	profile := &types.Profile{FirstName: "John", LastName: "Doe", User: "j@x.com"}
	tmpl := &types.Template{
		ID:          "basic",
		StarterData: &types.StarterData{Summary: "Experienced professional..."},
	}

	draft, err := newTestGenerator().GenerateDraft(profile, tmpl, Options{})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", draft.PersonalInfo.FullName)
	assert.Equal(t, "j@x.com", draft.PersonalInfo.Email)
	assert.Equal(t, "Experienced professional...", draft.Summary)
	assert.Equal(t, draft.Summary, draft.PersonalInfo.Summary)
	assert.Equal(t, []types.Experience{}, draft.Experience)
	assert.Equal(t, types.StepPersonal, draft.CurrentStep)
	assert.NotNil(t, draft.CompletedSteps)
	assert.Empty(t, draft.CompletedSteps)
}

func TestGenerate_MinimalProfileWithStarterExperience(t *testing.T) {
	profile := &types.Profile{FirstName: "John", LastName: "Doe", User: "j@x.com"}
	tmpl := starterTemplate()

	draft, err := newTestGenerator().GenerateDraft(profile, tmpl, Options{})
	require.NoError(t, err)
	assert.Equal(t, experienceWithoutIDs(tmpl.StarterData.Experience), experienceWithoutIDs(draft.Experience))
}

func TestGenerate_EmptyArrayTextFallsBackToStarter(t *testing.T) {
	profile := &types.Profile{FirstName: "Ann", User: "ann@x.com", WorkExperience: "[]"}
	tmpl := starterTemplate()

	result, err := newTestGenerator().Generate(profile, tmpl, Options{})
	require.NoError(t, err)

	require.Len(t, result.Draft.Experience, 1)
	assert.Equal(t, experienceWithoutIDs(tmpl.StarterData.Experience), experienceWithoutIDs(result.Draft.Experience))
	assert.Contains(t, result.Fallbacks, SectionExperience)
}

func TestGenerate_FallbackTotality(t *testing.T) {
	rawValues := []struct {
		name string
		raw  any
	}{
		{"absent", nil},
		{"empty list", []any{}},
		{"empty string", ""},
		{"whitespace string", "  \n\t "},
		{"empty array text", "[]"},
		{"malformed JSON text", `[{"company": "Acme"`},
		{"object instead of list", `{"company": "Acme"}`},
	}

	for _, rv := range rawValues {
		t.Run(rv.name, func(t *testing.T) {
			profile := &types.Profile{
				FirstName:      "Ann",
				User:           "ann@x.com",
				WorkExperience: rv.raw,
				Education:      rv.raw,
				KeySkills:      rv.raw,
				Projects:       rv.raw,
			}
			tmpl := starterTemplate()

			draft, err := newTestGenerator().GenerateDraft(profile, tmpl, Options{})
			require.NoError(t, err)

			starter := tmpl.StarterData
			assert.Equal(t, experienceWithoutIDs(starter.Experience), experienceWithoutIDs(draft.Experience))
			assert.Equal(t, educationWithoutIDs(starter.Education), educationWithoutIDs(draft.Education))
			assert.Equal(t, skillsWithoutIDs(starter.Skills), skillsWithoutIDs(draft.Skills))
			assert.Equal(t, projectsWithoutIDs(starter.Projects), projectsWithoutIDs(draft.Projects))
		})

		t.Run(rv.name+" without starter data", func(t *testing.T) {
			profile := &types.Profile{WorkExperience: rv.raw, Education: rv.raw, KeySkills: rv.raw, Projects: rv.raw}

			draft, err := newTestGenerator().GenerateDraft(profile, &types.Template{ID: "bare"}, Options{})
			require.NoError(t, err)

			assert.Equal(t, []types.Experience{}, draft.Experience)
			assert.Equal(t, []types.Education{}, draft.Education)
			assert.Equal(t, []types.Skill{}, draft.Skills)
			assert.Equal(t, []types.Project{}, draft.Projects)
		})
	}
}

func TestGenerate_PlaceholderRejection(t *testing.T) {
	tmpl := &types.Template{
		ID: "placeholder-heavy",
		StarterData: &types.StarterData{
			PersonalInfo: &types.PersonalInfo{
				FullName: "JANE DOE",
				Email:    "Jane.Doe@Example.com",
				Phone:    " (555) 123-4567 ",
				Location: "somewhere, earth",
				Website:  "www.yourwebsite.com",
				LinkedIn: "linkedin.com/in/yourprofile",
				GitHub:   "github.com/yourusername",
			},
		},
		Placeholders: types.Placeholders{types.FieldLocation: {"Somewhere, Earth"}},
	}

	draft, err := newTestGenerator().GenerateDraft(&types.Profile{}, tmpl, Options{})
	require.NoError(t, err)

	info := draft.PersonalInfo
	info.Summary = ""
	assert.Equal(t, types.PersonalInfo{}, info)
}

func TestGenerate_PlaceholderTableFromOption(t *testing.T) {
	tmpl := &types.Template{
		ID: "custom",
		StarterData: &types.StarterData{
			PersonalInfo: &types.PersonalInfo{FullName: "Alex Example", Phone: "+44 20 7946 0000"},
		},
	}
	g := newTestGenerator(WithPlaceholders(types.Placeholders{types.FieldFullName: {"alex example"}}))

	draft, err := g.GenerateDraft(&types.Profile{}, tmpl, Options{})
	require.NoError(t, err)

	assert.Empty(t, draft.PersonalInfo.FullName)
	assert.Equal(t, "+44 20 7946 0000", draft.PersonalInfo.Phone, "non-placeholder starter values are kept")
}

func TestGenerate_ProfileOverridesStarterFields(t *testing.T) {
	profile := &types.Profile{
		FirstName: "  Maria ",
		LastName:  " de  la Cruz ",
		Email:     "maria@x.com",
		User:      "account@x.com",
		Phone:     "   ",
	}
	tmpl := starterTemplate()
	tmpl.StarterData.PersonalInfo.Phone = "+1 202 555 0100"

	draft, err := newTestGenerator().GenerateDraft(profile, tmpl, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Maria de la Cruz", draft.PersonalInfo.FullName)
	assert.Equal(t, "maria@x.com", draft.PersonalInfo.Email)
	assert.Equal(t, "+1 202 555 0100", draft.PersonalInfo.Phone, "blank profile value falls back to starter")
	assert.Empty(t, draft.PersonalInfo.Location, "starter placeholder rejected")
}

func TestGenerate_SkillDedup(t *testing.T) {
	profile := &types.Profile{KeySkills: "JavaScript, JAVASCRIPT, javascript"}

	draft, err := newTestGenerator().GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	var matches []types.Skill
	for _, s := range draft.Skills {
		if s.Name == "JavaScript" || s.Name == "JAVASCRIPT" || s.Name == "javascript" {
			matches = append(matches, s)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, "JavaScript", matches[0].Name)
	assert.NotEqual(t, "tmpl-skill-1", matches[0].ID, "profile skill wins over the starter skill")
}

func TestGenerate_SkillsUnionOrder(t *testing.T) {
	profile := &types.Profile{
		ExperienceLevel:        "senior",
		KeySkills:              []string{"Communication", "Go"},
		TechnicalProficiencies: "PostgreSQL\nDocker\ngo",
	}

	draft, err := newTestGenerator().GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	names := make([]string, len(draft.Skills))
	for i, s := range draft.Skills {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Communication", "Go", "PostgreSQL", "Docker", "JavaScript", "Teamwork"}, names)

	assert.Equal(t, "Soft Skills", draft.Skills[0].Category)
	assert.Equal(t, "Programming Languages", draft.Skills[1].Category)
	assert.Equal(t, "Databases", draft.Skills[2].Category)
	assert.Equal(t, "Cloud & DevOps", draft.Skills[3].Category)
	assert.Equal(t, types.LevelAdvanced, draft.Skills[0].Level)
	assert.Equal(t, types.LevelExpert, draft.Skills[5].Level, "starter level is kept")
}

func TestGenerate_SkillLevelFromPolicyDefault(t *testing.T) {
	profile := &types.Profile{KeySkills: "Excel"}

	result, err := newTestGenerator().Generate(profile, &types.Template{ID: "bare"}, Options{})
	require.NoError(t, err)

	require.Equal(t, strategy.FirstTimeJobSeeker, result.Selection.Strategy)
	require.Len(t, result.Draft.Skills, 1)
	assert.Equal(t, types.LevelBeginner, result.Draft.Skills[0].Level)
}

func TestGenerate_UniqueIDsAcrossCalls(t *testing.T) {
	profile := &types.Profile{
		FirstName:      "Ann",
		User:           "ann@x.com",
		WorkExperience: []map[string]any{{"company": "Acme", "title": "Analyst"}},
		Education:      `[{"school": "State University", "degree": "BA"}]`,
		KeySkills:      "Excel, SQL",
		Projects:       []map[string]any{{"name": "Dashboard"}},
	}
	g := New()

	collect := func(d *types.Draft) map[string]bool {
		ids := map[string]bool{}
		for _, e := range d.Experience {
			ids[e.ID] = true
		}
		for _, e := range d.Education {
			ids[e.ID] = true
		}
		for _, s := range d.Skills {
			ids[s.ID] = true
		}
		for _, p := range d.Projects {
			ids[p.ID] = true
		}
		return ids
	}

	first, err := g.GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)
	second, err := g.GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	firstIDs, secondIDs := collect(first), collect(second)
	assert.Len(t, firstIDs, len(first.Experience)+len(first.Education)+len(first.Skills)+len(first.Projects))
	for id := range firstIDs {
		assert.NotEmpty(t, id)
		assert.False(t, secondIDs[id], "id %s reused across calls", id)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	profile := &types.Profile{
		FirstName:           "Ann",
		LastName:            "Lee",
		User:                "ann@x.com",
		Industry:            "Technology",
		ProfessionalSummary: "I built and fixed software for customers across many teams.",
	}
	g := New()

	first, err := g.GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)
	second, err := g.GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	assert.Equal(t, first.PersonalInfo, second.PersonalInfo)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestGenerate_SummaryAdaptation(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.Profile
		opts    Options
		want    string
		ind     string
	}{
		{
			name:    "substitution with visible effect",
			profile: &types.Profile{ProfessionalSummary: "I built tools", Industry: "testing"},
			want:    "I engineered tools",
			ind:     "testing",
		},
		{
			name:    "low score triggers enrichment",
			profile: &types.Profile{ProfessionalSummary: "Seasoned analyst", Industry: "testing"},
			want:    "Seasoned analyst Experienced with alpha, beta.",
			ind:     "testing",
		},
		{
			name:    "option industry beats profile industry",
			profile: &types.Profile{ProfessionalSummary: "I built tools", Industry: "finance"},
			opts:    Options{Industry: " QA "},
			want:    "I engineered tools",
			ind:     "testing",
		},
		{
			name:    "unknown industry leaves summary alone",
			profile: &types.Profile{ProfessionalSummary: "I built tools", Industry: "astronomy"},
			want:    "I built tools",
		},
		{
			name:    "no industry",
			profile: &types.Profile{ProfessionalSummary: "  I built tools  "},
			want:    "I built tools",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestGenerator().Generate(tt.profile, &types.Template{ID: "bare"}, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Draft.Summary)
			assert.Equal(t, tt.ind, result.Industry)
		})
	}
}

func TestGenerate_SummaryFallbackOrder(t *testing.T) {
	t.Run("starter summary", func(t *testing.T) {
		draft, err := newTestGenerator().GenerateDraft(&types.Profile{}, starterTemplate(), Options{})
		require.NoError(t, err)
		assert.Equal(t, "Experienced professional...", draft.Summary)
	})

	t.Run("placeholder starter summary uses policy text", func(t *testing.T) {
		tmpl := &types.Template{
			ID:           "bare",
			StarterData:  &types.StarterData{Summary: "Write your summary here"},
			Placeholders: types.Placeholders{types.FieldSummary: {"write your summary here"}},
		}
		result, err := newTestGenerator().Generate(&types.Profile{}, tmpl, Options{})
		require.NoError(t, err)
		assert.Equal(t, PolicyFor(result.Selection.Strategy).FallbackSummary, result.Draft.Summary)
	})
}

func TestGenerate_ExperienceProseAdapted(t *testing.T) {
	profile := &types.Profile{
		Industry: "testing",
		WorkExperience: []map[string]any{{
			"employer":    "Acme",
			"role":        "Developer",
			"description": "Built internal tools",
			"highlights":  "Built a CI pipeline\nCut build time in half",
			"end_date":    "Present",
		}},
	}

	draft, err := newTestGenerator().GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	require.Len(t, draft.Experience, 1)
	exp := draft.Experience[0]
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, "Developer", exp.Position)
	assert.Equal(t, "Engineered internal tools", exp.Description)
	assert.Equal(t, []string{"Engineered a CI pipeline", "Cut build time in half"}, exp.Highlights)
	assert.True(t, exp.Current)
	assert.Empty(t, exp.EndDate)
}

func TestGenerate_StarterExperienceNotAdapted(t *testing.T) {
	profile := &types.Profile{Industry: "testing"}
	tmpl := starterTemplate()

	draft, err := newTestGenerator().GenerateDraft(profile, tmpl, Options{})
	require.NoError(t, err)

	require.Len(t, draft.Experience, 1)
	assert.Equal(t, "We built example systems", draft.Experience[0].Description)
}

func TestGenerate_StarterDataNotMutated(t *testing.T) {
	tmpl := starterTemplate()
	draft, err := newTestGenerator().GenerateDraft(&types.Profile{}, tmpl, Options{})
	require.NoError(t, err)

	draft.Experience[0].Highlights[0] = "changed"
	draft.Settings.SectionOrder[0] = "changed"

	assert.Equal(t, "Shipped features", tmpl.StarterData.Experience[0].Highlights[0])
	assert.Equal(t, "tmpl-exp-1", tmpl.StarterData.Experience[0].ID)
	assert.Equal(t, "personal", tmpl.Settings.SectionOrder[0])
}

func TestGenerate_CareerChanger(t *testing.T) {
	profile := &types.Profile{
		FirstName:   "Sam",
		User:        "sam@x.com",
		CareerStage: "career_change",
		WorkExperience: []map[string]any{{
			"company":    "Lincoln High",
			"position":   "Teacher",
			"highlights": []string{"Wrote lesson plans", "Led a team of 5 teachers", "Graded exams"},
		}},
		KeySkills: "Public Speaking, Curriculum Design",
	}

	result, err := newTestGenerator().Generate(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	assert.Equal(t, strategy.CareerChanger, result.Selection.Strategy)
	assert.Greater(t, result.Selection.Confidence, 0.7)

	require.Len(t, result.Draft.Experience, 1)
	assert.Equal(t, []string{"Led a team of 5 teachers", "Wrote lesson plans", "Graded exams"}, result.Draft.Experience[0].Highlights)

	categories := map[string]string{}
	for _, s := range result.Draft.Skills {
		categories[s.Name] = s.Category
	}
	assert.Equal(t, "Transferable Skills", categories["Public Speaking"])
	assert.Equal(t, "Transferable Skills", categories["Curriculum Design"])
	assert.Equal(t, "Programming Languages", categories["JavaScript"], "starter skills keep their category")
}

func TestGenerate_StudentNarrativeProjects(t *testing.T) {
	profile := &types.Profile{
		ExperienceLevel:     "student",
		AcademicProjects:    "Compiler\nBuilt a toy compiler in Go",
		PersonalProjects:    []any{"Chess bot"},
		VolunteerExperience: "Food bank volunteer",
	}

	result, err := newTestGenerator().Generate(profile, starterTemplate(), Options{})
	require.NoError(t, err)
	require.Equal(t, strategy.Student, result.Selection.Strategy)

	names := make([]string, len(result.Draft.Projects))
	for i, p := range result.Draft.Projects {
		names[i] = p.Name
		assert.NotEmpty(t, p.ID)
		assert.NotNil(t, p.Technologies)
		assert.NotNil(t, p.Highlights)
	}
	assert.Equal(t, []string{"Compiler", "Personal Project", "Volunteer Experience"}, names)
	assert.Equal(t, "Built a toy compiler in Go", result.Draft.Projects[0].Description)
}

func TestGenerate_NarrativeFieldsIgnoredForProfessionals(t *testing.T) {
	profile := &types.Profile{
		ExperienceLevel:  "senior",
		WorkExperience:   []map[string]any{{"company": "Acme", "position": "Lead"}},
		AcademicProjects: "Compiler\nBuilt a toy compiler",
	}

	result, err := newTestGenerator().Generate(profile, starterTemplate(), Options{})
	require.NoError(t, err)
	require.Equal(t, strategy.ExperiencedProfessional, result.Selection.Strategy)
	assert.Equal(t, projectsWithoutIDs(starterTemplate().StarterData.Projects), projectsWithoutIDs(result.Draft.Projects))
}

func TestGenerate_StrategyOverride(t *testing.T) {
	profile := &types.Profile{
		ExperienceLevel:  "senior",
		WorkExperience:   []map[string]any{{"company": "Acme", "position": "Lead"}},
		AcademicProjects: "Thesis on distributed caches",
	}

	result, err := newTestGenerator().Generate(profile, starterTemplate(), Options{Strategy: "Student"})
	require.NoError(t, err)

	assert.Equal(t, strategy.Student, result.Selection.Strategy)
	assert.True(t, result.Selection.Override)
	require.Len(t, result.Draft.Projects, 1)
	assert.Equal(t, "Academic Project", result.Draft.Projects[0].Name)
}

func TestGenerate_CustomSelector(t *testing.T) {
	var defs []strategy.Definition
	for _, d := range strategy.DefaultDefinitions() {
		if d.Name == strategy.Student {
			defs = append(defs, d)
		}
	}
	g := newTestGenerator(WithSelector(strategy.NewSelectorWith(defs, strategy.Student)))
	profile := &types.Profile{
		ExperienceLevel: "senior",
		WorkExperience:  []map[string]any{{"company": "Acme", "position": "Lead"}},
	}

	result, err := g.Generate(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	assert.Equal(t, strategy.Student, result.Selection.Strategy)
	assert.Zero(t, result.Selection.Confidence)
	assert.Len(t, result.Selection.Candidates, 1)
}

func TestGenerate_EducationLevelFallback(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		wantEdu  string
		starter  bool
		fallback bool
	}{
		{name: "mapped", level: "Bachelor", wantEdu: "Bachelor's Degree"},
		{name: "mapped phd", level: "PhD", wantEdu: "Doctor of Philosophy"},
		{name: "passthrough", level: "Associate of Arts", wantEdu: "Associate of Arts"},
		{name: "too short", level: "BA", starter: true, fallback: true},
		{name: "absent", level: "", starter: true, fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.Profile{EducationLevel: tt.level, School: "State University", Education: "not json"}
			tmpl := starterTemplate()

			result, err := newTestGenerator().Generate(profile, tmpl, Options{})
			require.NoError(t, err)

			if tt.starter {
				assert.Equal(t, educationWithoutIDs(tmpl.StarterData.Education), educationWithoutIDs(result.Draft.Education))
			} else {
				require.Len(t, result.Draft.Education, 1)
				assert.Equal(t, tt.wantEdu, result.Draft.Education[0].Degree)
				assert.Equal(t, "State University", result.Draft.Education[0].Institution)
				assert.NotEmpty(t, result.Draft.Education[0].ID)
			}
			assert.Equal(t, tt.fallback, contains(result.Fallbacks, SectionEducation))
		})
	}
}

func TestGenerate_StructuredEducationWins(t *testing.T) {
	profile := &types.Profile{
		EducationLevel: "phd",
		Education:      `[{"university": "MIT", "degree": "MEng", "major": "EECS", "graduation_date": "2019"}]`,
	}

	draft, err := newTestGenerator().GenerateDraft(profile, starterTemplate(), Options{})
	require.NoError(t, err)

	require.Len(t, draft.Education, 1)
	assert.Equal(t, "MIT", draft.Education[0].Institution)
	assert.Equal(t, "MEng", draft.Education[0].Degree)
	assert.Equal(t, "EECS", draft.Education[0].Field)
	assert.Equal(t, "2019", draft.Education[0].EndDate)
	assert.NotNil(t, draft.Education[0].Honors)
}

func TestGenerate_WarnsOnMissingRequiredFields(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := newTestGenerator(WithLogger(zap.New(core)))

	_, err := g.GenerateDraft(&types.Profile{Phone: "555"}, &types.Template{ID: "bare"}, Options{})
	require.NoError(t, err)

	entries := logs.FilterMessage("draft is missing required personal fields").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"name", "email"}, entries[0].ContextMap()["fields"])

	_, err = g.GenerateDraft(&types.Profile{FirstName: "A", User: "a@x.com"}, &types.Template{ID: "bare"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}

func TestGenerate_Settings(t *testing.T) {
	draft, err := newTestGenerator().GenerateDraft(&types.Profile{}, starterTemplate(), Options{})
	require.NoError(t, err)

	assert.Equal(t, types.DraftSettings{
		Layout:       DefaultLayout,
		Mode:         DefaultMode,
		Template:     "modern",
		ColorScheme:  "blue",
		FontSize:     "small",
		Spacing:      "compact",
		SectionOrder: []string{"personal", "experience", "skills"},
	}, draft.Settings)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
