package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-drafter/internal/config"
)

const careerChangerProfile = `{
	"id": "p-1",
	"first_name": "Ann",
	"last_name": "Lee",
	"email": "ann.lee@mail.com",
	"phone": "555-0100",
	"location": "Austin, TX",
	"industry": "technology",
	"career_stage": "Career Change",
	"experience_level": "mid",
	"professional_summary": "Teacher who built tools for customers and managed a team.",
	"key_skills": "Leadership, Communication",
	"technical_proficiencies": ["Python", "SQL"],
	"work_experience": [
		{"company": "Lincoln High", "position": "Teacher", "start_date": "2015-09", "end_date": "present",
		 "highlights": ["Graded papers", "Mentored new teachers"]}
	]
}`

const studentProfile = `
id: p-2
first_name: Sam
last_name: Park
email: sam@school.edu
experience_level: student
career_stage: student
education_level: bachelor
school: State University
academic_projects: "Built a compiler; Wrote a ray tracer"
`

const modernTemplate = `{
	"id": "modern",
	"settings": {"colorScheme": "blue"},
	"starterData": {
		"personalInfo": {"fullName": "John Doe", "email": "john.doe@example.com"},
		"summary": "Experienced professional with a passion for results.",
		"skills": [{"name": "Teamwork", "category": "Soft Skills", "level": "advanced"}]
	}
}`

// executeCommand runs the root command in-process with fresh flag values and returns stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	settings = config.Config{}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-mode", "production"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
