// Package validation computes per-step error maps from the canonical profile.
// Errors are always returned as data, never raised; the stepper consumes only
// the counts while the wizard steps display the message text inline.
package validation

import "github.com/jonathan/profile-builder/internal/types"

// ErrorMap maps a field name to a human-readable message. List sections
// return one ErrorMap per entry, index-aligned with the visible list and
// never sparse.
type ErrorMap map[string]string

// ValidateBasicInfo requires name, email and phone. Format is deliberately
// not checked; presence is the only rule.
func ValidateBasicInfo(p types.Profile) ErrorMap {
	errs := ErrorMap{}
	if p.BasicInfo.Name == "" {
		errs["name"] = "Name is required"
	}
	if p.BasicInfo.Email == "" {
		errs["email"] = "Email is required"
	}
	if p.BasicInfo.Phone == "" {
		errs["phone"] = "Phone number is required"
	}
	return errs
}

// ValidateEducation requires a degree on the first entry, the only one the
// wizard edits.
func ValidateEducation(p types.Profile) ErrorMap {
	errs := ErrorMap{}
	if len(p.Education) == 0 || p.Education[0].Degree == "" {
		errs["degree"] = "Degree is required"
	}
	return errs
}

// ValidateWorkExperience requires company and job title on every touched
// entry.
func ValidateWorkExperience(p types.Profile) []ErrorMap {
	out := make([]ErrorMap, len(p.WorkExperience))
	for i, e := range p.WorkExperience {
		errs := ErrorMap{}
		if WorkExperienceTouched(e) {
			if e.Company == "" {
				errs["company"] = "Company is required"
			}
			if e.JobTitle == "" {
				errs["jobTitle"] = "Job title is required"
			}
		}
		out[i] = errs
	}
	return out
}

// ValidateSkills requires at least one primary skill.
func ValidateSkills(p types.Profile) ErrorMap {
	errs := ErrorMap{}
	if len(p.PrimarySkills) == 0 {
		errs["primarySkills"] = "Add at least one primary skill"
	}
	return errs
}

// ValidateProjects always passes. The section is fully optional; the empty
// per-entry maps keep the result index-aligned for the UI.
func ValidateProjects(p types.Profile) []ErrorMap {
	out := make([]ErrorMap, len(p.Projects))
	for i := range out {
		out[i] = ErrorMap{}
	}
	return out
}

// ValidateAchievements requires a title on any entry whose other fields are
// filled.
func ValidateAchievements(p types.Profile) []ErrorMap {
	out := make([]ErrorMap, len(p.Achievements))
	for i, e := range p.Achievements {
		errs := ErrorMap{}
		if e.Title == "" && AchievementTouchedBesidesTitle(e) {
			errs["title"] = "Title is required"
		}
		out[i] = errs
	}
	return out
}

// ValidateCertification requires name and credential ID on every touched
// entry.
func ValidateCertification(p types.Profile) []ErrorMap {
	out := make([]ErrorMap, len(p.Certification))
	for i, e := range p.Certification {
		errs := ErrorMap{}
		if CertificationTouched(e) {
			if e.Name == "" {
				errs["name"] = "Certification name is required"
			}
			if e.CredentialID == "" {
				errs["credentialId"] = "Credential ID is required"
			}
		}
		out[i] = errs
	}
	return out
}

// ValidatePreference always passes; every answer is optional.
func ValidatePreference(_ types.Profile) ErrorMap {
	return ErrorMap{}
}

// ValidateOtherDetails always passes; the whole section is optional.
func ValidateOtherDetails(_ types.Profile) ErrorMap {
	return ErrorMap{}
}

// ValidateReviewAgree requires the agreement checkbox and an answer to the
// disability question.
func ValidateReviewAgree(p types.Profile) ErrorMap {
	errs := ErrorMap{}
	if !p.ReviewAgree.Agreed {
		errs["agreed"] = "You must agree before submitting"
	}
	if p.ReviewAgree.HasDisability == nil {
		errs["hasDisability"] = "Please answer the disability question"
	}
	return errs
}

// StepErrorCount returns the total number of errors the named section
// currently reports. Unknown sections count zero.
func StepErrorCount(p types.Profile, section string) int {
	switch section {
	case types.SectionBasicInfo:
		return len(ValidateBasicInfo(p))
	case types.SectionEducation:
		return len(ValidateEducation(p))
	case types.SectionWorkExperience:
		return countAll(ValidateWorkExperience(p))
	case types.SectionSkills:
		return len(ValidateSkills(p))
	case types.SectionProjects:
		return countAll(ValidateProjects(p))
	case types.SectionAchievements:
		return countAll(ValidateAchievements(p))
	case types.SectionCertification:
		return countAll(ValidateCertification(p))
	case types.SectionPreference:
		return len(ValidatePreference(p))
	case types.SectionOtherDetails:
		return len(ValidateOtherDetails(p))
	case types.SectionReviewAgree:
		return len(ValidateReviewAgree(p))
	default:
		return 0
	}
}

func countAll(maps []ErrorMap) int {
	total := 0
	for _, m := range maps {
		total += len(m)
	}
	return total
}
