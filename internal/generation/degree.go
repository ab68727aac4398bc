package generation

import "strings"

// minDegreeLength rejects degree names too short to be meaningful, such as "BA"
const minDegreeLength = 3

var degreeNames = map[string]string{
	"high_school":   "High School Diploma",
	"highschool":    "High School Diploma",
	"ged":           "High School Diploma",
	"associate":     "Associate Degree",
	"associates":    "Associate Degree",
	"associate's":   "Associate Degree",
	"bachelor":      "Bachelor's Degree",
	"bachelors":     "Bachelor's Degree",
	"bachelor's":    "Bachelor's Degree",
	"undergraduate": "Bachelor's Degree",
	"master":        "Master's Degree",
	"masters":       "Master's Degree",
	"master's":      "Master's Degree",
	"mba":           "Master of Business Administration",
	"phd":           "Doctor of Philosophy",
	"ph.d":          "Doctor of Philosophy",
	"ph.d.":         "Doctor of Philosophy",
	"doctorate":     "Doctor of Philosophy",
	"doctoral":      "Doctor of Philosophy",
}

// DegreeForLevel maps an education-level tag to a degree name. Unknown tags
// are returned trimmed but otherwise as written. ok is false when the result
// is shorter than three characters.
func DegreeForLevel(level string) (string, bool) {
	level = strings.TrimSpace(level)
	key := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(level, "-", " "))), "_")

	degree := level
	if name, found := degreeNames[key]; found {
		degree = name
	}
	if len([]rune(degree)) < minDegreeLength {
		return "", false
	}
	return degree, true
}
