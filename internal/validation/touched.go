package validation

import "github.com/jonathan/profile-builder/internal/types"

// Touch predicates: a list entry is only validated once the user has supplied
// at least one value in it, so a blank extra entry at the end of a list never
// blocks navigation.

// WorkExperienceTouched reports whether any field of the entry is filled.
func WorkExperienceTouched(e types.WorkExperience) bool {
	return e.JobTitle != "" || e.Company != "" || e.Location != "" ||
		e.StartDate != "" || e.EndDate != "" || e.CurrentlyWorking ||
		len(e.Responsibilities) > 0 || len(e.Technologies) > 0 || e.Description != ""
}

// ProjectTouched reports whether any field of the entry is filled.
func ProjectTouched(e types.Project) bool {
	return e.Name != "" || e.Description != "" || e.CurrentlyWorking ||
		e.StartDate != "" || e.EndDate != "" || e.PhotoURL != ""
}

// AchievementTouchedBesidesTitle reports whether any field other than the
// title is filled; that is what makes the title required.
func AchievementTouchedBesidesTitle(e types.Achievement) bool {
	return e.IssueDate != "" || e.Description != ""
}

// CertificationTouched reports whether any field of the entry is filled.
func CertificationTouched(e types.Certification) bool {
	return e.Name != "" || e.IssueDate != "" || e.IssuedOrganization != "" || e.CredentialID != ""
}

// PreferenceTouched reports whether any preference answer is filled.
func PreferenceTouched(p types.Preference) bool {
	return p.CompanySize != "" || p.JobType != "" || p.JobSearch != ""
}

// LanguageTouched reports whether any field of the language row is filled.
func LanguageTouched(l types.Language) bool {
	return l.Language != "" || l.Speaking != "" || l.Reading != "" || l.Writing != ""
}

// OtherDetailsTouched reports whether any part of the final-details section
// is filled.
func OtherDetailsTouched(o types.OtherDetails) bool {
	if o.CareerStage != "" || o.EarliestAvailability != "" || o.DesiredSalary != "" {
		return true
	}
	for _, l := range o.Languages {
		if LanguageTouched(l) {
			return true
		}
	}
	return false
}
