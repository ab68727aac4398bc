package skills

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/types"
)

type levelGroup struct {
	keywords []string
	level    string
}

// levelGroups are matched as substrings of the experience tag, in order
var levelGroups = []levelGroup{
	{[]string{"student", "entry"}, types.LevelBeginner},
	{[]string{"junior"}, types.LevelIntermediate},
	{[]string{"mid", "intermediate"}, types.LevelIntermediate},
	{[]string{"senior", "lead"}, types.LevelAdvanced},
	{[]string{"principal", "staff", "architect", "expert"}, types.LevelExpert},
}

// DefaultLevel derives a proficiency level from a free-form experience tag
// such as "Senior Engineer" or "entry_level". Unknown tags are intermediate.
func DefaultLevel(experienceLevel string) string {
	tag := strings.ToLower(strings.TrimSpace(experienceLevel))
	if tag == "" {
		return types.LevelIntermediate
	}
	for _, group := range levelGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(tag, keyword) {
				return group.level
			}
		}
	}
	return types.LevelIntermediate
}

// IsLevel reports whether level is one of the four supported levels
func IsLevel(level string) bool {
	switch level {
	case types.LevelBeginner, types.LevelIntermediate, types.LevelAdvanced, types.LevelExpert:
		return true
	}
	return false
}
