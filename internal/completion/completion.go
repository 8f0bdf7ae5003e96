// Package completion computes the 0-100 fill score shown at the top of the
// profile wizard.
package completion

import (
	"github.com/jonathan/profile-builder/internal/types"
	"github.com/jonathan/profile-builder/internal/validation"
)

// Score returns the profile completion percentage. Mandatory sections always
// count toward the denominator; optional sections (projects, achievements,
// certification, preference, otherDetails) count only once the user has put
// data into them. The score is therefore a ratio over engaged-or-mandatory
// fields, and it can drop when previously filled optional entries are cleared
// back to the empty template.
func Score(p types.Profile) int {
	total, filled := 0, 0

	count := func(weight int, ok bool) {
		total += weight
		if ok {
			filled += weight
		}
	}

	// basicInfo always contributes name, email, phone.
	count(1, p.BasicInfo.Name != "")
	count(1, p.BasicInfo.Email != "")
	count(1, p.BasicInfo.Phone != "")

	// education always contributes the first entry's degree.
	count(1, len(p.Education) > 0 && p.Education[0].Degree != "")

	// Every work-experience entry present contributes company and job title.
	for _, e := range p.WorkExperience {
		count(1, e.Company != "")
		count(1, e.JobTitle != "")
	}

	// primarySkills always contributes one slot.
	count(1, len(p.PrimarySkills) > 0)

	for _, e := range p.Projects {
		if !validation.ProjectTouched(e) {
			continue
		}
		count(1, e.Name != "")
		count(1, e.Description != "")
		count(1, e.StartDate != "")
		count(1, e.EndDate != "" || e.CurrentlyWorking)
	}

	for _, e := range p.Achievements {
		if e.Title == "" && !validation.AchievementTouchedBesidesTitle(e) {
			continue
		}
		count(1, e.Title != "")
		count(1, e.IssueDate != "")
		count(1, e.Description != "")
	}

	for _, e := range p.Certification {
		if !validation.CertificationTouched(e) {
			continue
		}
		count(1, e.Name != "")
		count(1, e.IssueDate != "")
		count(1, e.IssuedOrganization != "")
		count(1, e.CredentialID != "")
	}

	if validation.PreferenceTouched(p.Preference) {
		count(1, p.Preference.CompanySize != "")
		count(1, p.Preference.JobType != "")
		count(1, p.Preference.JobSearch != "")
	}

	if validation.OtherDetailsTouched(p.OtherDetails) {
		count(1, p.OtherDetails.CareerStage != "")
		count(1, p.OtherDetails.EarliestAvailability != "")
		count(1, p.OtherDetails.DesiredSalary != "")
		for _, l := range p.OtherDetails.Languages {
			if validation.LanguageTouched(l) {
				count(1, l.Language != "")
			}
		}
	}

	// reviewAgree always contributes the agreement flag.
	count(1, p.ReviewAgree.Agreed)

	if total == 0 {
		return 0
	}
	pct := filled * 100 / total
	if pct > 100 {
		pct = 100
	}
	return pct
}
