package profilefields

import (
	"strings"
)

// ParseStringList splits a single string into a list. Newlines take precedence
// over commas; a string with neither becomes a one-element list. Segments are
// trimmed and empty segments dropped.
func ParseStringList(s string) []string {
	var parts []string
	switch {
	case strings.Contains(s, "\n"):
		parts = strings.Split(s, "\n")
	case strings.Contains(s, ","):
		parts = strings.Split(s, ",")
	default:
		parts = []string{s}
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SkillNames extracts skill names from a skills field given as a list, as a
// list of skill records, or as a delimited string (commas, semicolons or
// newlines). Text that looks like JSON but does not parse yields no names.
// Leading bullet markers are removed and inner whitespace is collapsed.
func SkillNames(raw any) []string {
	var candidates []string

	switch v := raw.(type) {
	case nil:
		return []string{}
	case string:
		if looksStructured(v) {
			candidates = structuredSkillNames(v)
			break
		}
		candidates = strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ';' || r == '\n'
		})
	default:
		candidates = structuredSkillNames(v)
	}

	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if name := CleanSkillName(candidate); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func structuredSkillNames(raw any) []string {
	if values, ok := stringElements(raw); ok {
		return values
	}
	result := ParseListField(raw)
	if !result.OK() {
		return nil
	}
	names := make([]string, 0, len(result.Records))
	for _, r := range result.Records {
		names = append(names, SkillFields.Name.String(r))
	}
	return names
}

// looksStructured reports whether s is JSON array or object text
func looksStructured(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")
}

// CleanSkillName trims bullet markers and collapses whitespace in a skill name
func CleanSkillName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimLeft(name, "-•*· \t")
	return strings.Join(strings.Fields(name), " ")
}
