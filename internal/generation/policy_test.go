package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-drafter/internal/strategy"
)

func TestPolicyFor(t *testing.T) {
	for _, name := range strategy.NewSelector().Names() {
		t.Run(string(name), func(t *testing.T) {
			p := PolicyFor(name)
			assert.Equal(t, name, p.Strategy)
			assert.NotEmpty(t, p.FallbackSummary)
			assert.NotEmpty(t, p.DefaultExperienceLevel)
		})
	}

	assert.True(t, PolicyFor(strategy.CareerChanger).TransferableSkills)
	assert.True(t, PolicyFor(strategy.Student).NarrativeProjects)
	assert.True(t, PolicyFor(strategy.FirstTimeJobSeeker).NarrativeProjects)
	assert.False(t, PolicyFor(strategy.ExperiencedJobSeeker).NarrativeProjects)
	assert.Equal(t, strategy.ExperiencedProfessional, PolicyFor("Unknown").Strategy)
}

func TestForegroundTransferable(t *testing.T) {
	in := []string{"Filed reports", "Managed a budget of $2M", "Typed memos", "Mentored new hires"}

	got := foregroundTransferable(in)

	assert.Equal(t, []string{"Managed a budget of $2M", "Mentored new hires", "Filed reports", "Typed memos"}, got)
	assert.Equal(t, "Filed reports", in[0], "input is not reordered in place")
	assert.Nil(t, foregroundTransferable(nil))
}

func TestDegreeForLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
		ok    bool
	}{
		{"bachelor", "Bachelor's Degree", true},
		{"Bachelors", "Bachelor's Degree", true},
		{"MBA", "Master of Business Administration", true},
		{"masters", "Master's Degree", true},
		{"Doctorate", "Doctor of Philosophy", true},
		{"high school", "High School Diploma", true},
		{"High-School", "High School Diploma", true},
		{"Associate", "Associate Degree", true},
		{"  Certificate in Welding ", "Certificate in Welding", true},
		{"BS", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, ok := DegreeForLevel(tt.level)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
