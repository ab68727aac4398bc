// Package skills classifies skill names into categories and proficiency levels.
package skills

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/types"
)

// Skill categories
const (
	CategorySoftSkills    = "Soft Skills"
	CategoryFrameworks    = "Frameworks & Libraries"
	CategoryDatabases     = "Databases"
	CategoryCloudDevOps   = "Cloud & DevOps"
	CategoryTesting       = "Testing"
	CategoryDataAnalytics = "Data & Analytics"
	CategoryDesign        = "Design"
	CategoryTools         = "Tools & Software"
	CategoryMethodologies = "Methodologies"
	CategoryLanguages     = "Programming Languages"
	CategoryTechnical     = "Technical"
	CategoryTransferable  = "Transferable Skills"
)

type categorySet struct {
	name     string
	keywords []string
}

// categoryOrder is checked top to bottom; the first set containing the skill wins.
// Frameworks precede languages so names like "Node.js" never fall through to "js".
var categoryOrder = []categorySet{
	{CategorySoftSkills, []string{
		"communication", "leadership", "teamwork", "collaboration", "problem solving",
		"problem-solving", "critical thinking", "time management", "adaptability",
		"public speaking", "negotiation", "mentoring", "customer service", "conflict resolution",
		"presentation", "interpersonal", "organization", "creativity", "attention to detail",
	}},
	{CategoryFrameworks, []string{
		"react", "react.js", "reactjs", "angular", "vue", "vue.js", "svelte", "next.js",
		"node.js", "nodejs", "express", "django", "flask", "fastapi", "spring", "spring boot",
		"rails", "ruby on rails", "laravel", ".net", "asp.net", "jquery", "tensorflow",
		"pytorch", "keras", "pandas", "numpy", "scikit-learn", "bootstrap", "tailwind",
		"redux", "gin", "flutter", "react native",
	}},
	{CategoryDatabases, []string{
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite", "oracle",
		"dynamodb", "cassandra", "elasticsearch", "mariadb", "firebase", "neo4j", "nosql",
		"sql server", "snowflake",
	}},
	{CategoryCloudDevOps, []string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s", "terraform",
		"ansible", "jenkins", "ci/cd", "github actions", "gitlab ci", "helm", "linux",
		"devops", "serverless", "cloudformation", "nginx", "prometheus",
	}},
	{CategoryTesting, []string{
		"testing", "unit testing", "jest", "mocha", "cypress", "selenium", "pytest", "junit",
		"tdd", "qa", "quality assurance", "playwright", "test automation",
	}},
	{CategoryDataAnalytics, []string{
		"data analysis", "data science", "machine learning", "deep learning", "statistics",
		"tableau", "power bi", "analytics", "data visualization", "etl", "big data",
		"spark", "hadoop", "nlp", "ai", "excel modeling",
	}},
	{CategoryDesign, []string{
		"figma", "sketch", "adobe xd", "photoshop", "illustrator", "ui", "ux", "ui/ux",
		"user research", "wireframing", "prototyping", "graphic design", "indesign",
	}},
	{CategoryTools, []string{
		"git", "github", "gitlab", "jira", "confluence", "excel", "microsoft office",
		"word", "powerpoint", "slack", "trello", "salesforce", "sap", "quickbooks",
		"notion", "vs code", "postman", "hubspot",
	}},
	{CategoryMethodologies, []string{
		"agile", "scrum", "kanban", "waterfall", "lean", "six sigma", "design thinking",
		"project management", "devsecops", "itil", "okr",
	}},
	{CategoryLanguages, []string{
		"javascript", "typescript", "python", "java", "go", "golang", "rust", "c", "c++",
		"c#", "ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "perl", "bash",
		"html", "css", "dart", "haskell", "elixir", "lua", "objective-c", "js", "ts",
	}},
}

// Categorize maps a skill name to a category. Matching is case-insensitive and
// word-bounded: a keyword matches the whole name or a space-delimited part of it.
// Unmatched names are CategoryTechnical.
func Categorize(skillName string) string {
	name := Key(skillName)
	if name == "" {
		return CategoryTechnical
	}
	for _, set := range categoryOrder {
		for _, keyword := range set.keywords {
			if containsTerm(name, keyword) {
				return set.name
			}
		}
	}
	return CategoryTechnical
}

// containsTerm reports whether term appears in name bounded by spaces or the string edges
func containsTerm(name, term string) bool {
	if name == term {
		return true
	}
	padded := " " + name + " "
	return strings.Contains(padded, " "+term+" ")
}

// Key is the identity used to deduplicate skills: lower-cased with whitespace collapsed
func Key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Dedupe keeps the first skill for each Key, preserving order.
// Skills with an empty name are dropped.
func Dedupe(list []types.Skill) []types.Skill {
	out := make([]types.Skill, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, skill := range list {
		key := Key(skill.Name)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
