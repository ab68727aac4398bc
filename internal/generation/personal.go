package generation

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/types"
)

// personalInfo merges profile contact fields over the template's starter values
func (r *run) personalInfo() types.PersonalInfo {
	return mergePersonalInfo(r.profile, r.starter.PersonalInfo, r.placeholders)
}

// mergePersonalInfo takes each field from the profile when it is non-blank and
// otherwise from the starter data, unless the starter value is a known placeholder.
// The returned Summary is left empty.
func mergePersonalInfo(p *types.Profile, starter *types.PersonalInfo, placeholders types.Placeholders) types.PersonalInfo {
	if starter == nil {
		starter = &types.PersonalInfo{}
	}

	pick := func(field, profileValue, starterValue string) string {
		if v := strings.TrimSpace(profileValue); v != "" {
			return v
		}
		if placeholders.IsPlaceholder(field, starterValue) {
			return ""
		}
		return strings.TrimSpace(starterValue)
	}

	return types.PersonalInfo{
		FullName: pick(types.FieldFullName, p.FullName(), starter.FullName),
		Email:    pick(types.FieldEmail, p.ContactEmail(), starter.Email),
		Phone:    pick(types.FieldPhone, p.Phone, starter.Phone),
		Location: pick(types.FieldLocation, p.Location, starter.Location),
		Website:  pick(types.FieldWebsite, p.Website, starter.Website),
		LinkedIn: pick(types.FieldLinkedIn, p.LinkedIn, starter.LinkedIn),
		GitHub:   pick(types.FieldGitHub, p.GitHub, starter.GitHub),
	}
}

// starterValue returns a trimmed starter value, or empty when it is a placeholder
func (r *run) starterValue(field, value string) string {
	if r.placeholders.IsPlaceholder(field, value) {
		return ""
	}
	return strings.TrimSpace(value)
}

// missingRequired lists the required personal fields that are empty
func missingRequired(info types.PersonalInfo) []string {
	var missing []string
	if info.FullName == "" {
		missing = append(missing, FieldName)
	}
	if info.Email == "" {
		missing = append(missing, FieldEmail)
	}
	return missing
}
