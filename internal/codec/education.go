package codec

import "github.com/jonathan/profile-builder/internal/types"

// EducationForm is the UI-editable shape of one education entry.
type EducationForm struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Institution  string `json:"institution"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Grade        string `json:"grade"`
	Location     string `json:"location"`
}

// EducationRecord is the backend-facing shape of one education entry.
type EducationRecord struct {
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"fieldOfStudy"`
	Institution  *string `json:"institution"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Grade        *string `json:"grade"`
	Location     *string `json:"location"`
}

// NormalizeEducation maps a canonical entry to its UI form.
func NormalizeEducation(e types.Education) EducationForm {
	return EducationForm(e)
}

// DenormalizeEducation maps a UI form back to the backend record.
func DenormalizeEducation(f EducationForm) EducationRecord {
	return EducationRecord{
		Degree:       optional(f.Degree),
		FieldOfStudy: optional(f.FieldOfStudy),
		Institution:  optional(f.Institution),
		StartDate:    optional(f.StartDate),
		EndDate:      optional(f.EndDate),
		Grade:        optional(f.Grade),
		Location:     optional(f.Location),
	}
}

// Canonical converts a record to the canonical entry the store persists.
func (r EducationRecord) Canonical() types.Education {
	return types.Education{
		Degree:       deref(r.Degree),
		FieldOfStudy: deref(r.FieldOfStudy),
		Institution:  deref(r.Institution),
		StartDate:    deref(r.StartDate),
		EndDate:      deref(r.EndDate),
		Grade:        deref(r.Grade),
		Location:     deref(r.Location),
	}
}
