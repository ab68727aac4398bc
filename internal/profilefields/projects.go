package profilefields

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/types"
)

// maxTitleLength is the longest first line still treated as a project name
const maxTitleLength = 100

var (
	numberedLead = regexp.MustCompile(`^\s*\d+\.\s`)
	// an item number starts a line or follows sentence punctuation on the same line
	numberedItem = regexp.MustCompile(`(?m)(?:^[ \t]*|[.!?;][ \t]+)(\d+\.)\s+`)
)

// projectSeparators are tried in order; the first one present splits the text
var projectSeparators = []string{"\n\n", "\n---", "\n==="}

// ParseFreeTextProjects splits a free-text block into one or more projects.
// A chunk with several lines and a short first line uses that line as the
// project name; otherwise the name is defaultNamePrefix, numbered when the
// block yields more than one project. Returned projects have no IDs.
func ParseFreeTextProjects(text, defaultNamePrefix string) []types.Project {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	chunks := splitProjectChunks(text)

	projects := make([]types.Project, 0, len(chunks))
	for i, chunk := range chunks {
		lines := nonEmptyLines(chunk)
		if len(lines) == 0 {
			continue
		}

		project := types.Project{
			Technologies: []string{},
			Highlights:   []string{},
		}
		if len(lines) > 1 && utf8.RuneCountInString(lines[0]) < maxTitleLength {
			project.Name = cleanTitle(lines[0])
			project.Description = strings.Join(lines[1:], "\n")
		}
		if project.Name == "" {
			project.Name = defaultNamePrefix
			if len(chunks) > 1 {
				project.Name = fmt.Sprintf("%s %d", defaultNamePrefix, i+1)
			}
			project.Description = strings.Join(lines, "\n")
		}
		projects = append(projects, project)
	}
	return projects
}

// ParseNarrativeProjects turns a narrative profile field into projects. Lists
// of records are read through ProjectFields, lists of strings and plain text
// go through ParseFreeTextProjects. JSON text that fails to parse yields no projects.
func ParseNarrativeProjects(raw any, defaultNamePrefix string) []types.Project {
	if result := ParseListField(raw); result.OK() {
		return Projects(result.Records)
	}
	if values, ok := stringElements(raw); ok {
		return ParseFreeTextProjects(strings.Join(values, "\n\n"), defaultNamePrefix)
	}
	if text, ok := raw.(string); ok && strings.TrimSpace(text) != "" && !looksStructured(text) {
		return ParseFreeTextProjects(text, defaultNamePrefix)
	}
	return []types.Project{}
}

func splitProjectChunks(text string) []string {
	for _, sep := range projectSeparators {
		if strings.Contains(text, sep) {
			return cleanChunks(strings.Split(text, sep))
		}
	}

	if numberedLead.MatchString(text) {
		locs := numberedItem.FindAllStringSubmatchIndex(text, -1)
		chunks := make([]string, 0, len(locs))
		for i, loc := range locs {
			end := len(text)
			if i+1 < len(locs) {
				// loc[2] is where the next item number begins
				end = locs[i+1][2]
			}
			chunks = append(chunks, text[loc[1]:end])
		}
		return cleanChunks(chunks)
	}

	return cleanChunks([]string{text})
}

// cleanChunks trims whitespace and leftover separator characters, dropping empty chunks
func cleanChunks(chunks []string) []string {
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		chunk = strings.TrimLeft(chunk, "-=")
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

func nonEmptyLines(chunk string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(chunk, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// cleanTitle strips markdown heading and bullet markers and a trailing colon
func cleanTitle(line string) string {
	line = strings.TrimLeft(line, "#*-• ")
	line = strings.TrimSuffix(strings.TrimSpace(line), ":")
	return strings.TrimSpace(line)
}
