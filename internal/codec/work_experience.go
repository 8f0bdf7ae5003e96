package codec

import (
	"strings"

	"github.com/jonathan/profile-builder/internal/types"
)

// WorkExperienceForm is the UI-editable shape of one work history entry. The
// multi-line Description stands in for the canonical responsibilities list,
// and the date-range inputs want full dates, so a bare year is widened to a
// pseudo-date on the way in.
type WorkExperienceForm struct {
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Description      string   `json:"description"`
	Technologies     []string `json:"technologies"`
}

// WorkExperienceRecord is the backend-facing shape of one work history entry:
// bare-year dates, responsibilities as a list, empty optionals as null.
type WorkExperienceRecord struct {
	JobTitle         *string  `json:"jobTitle"`
	Company          *string  `json:"company"`
	Location         *string  `json:"location"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
}

// NormalizeWorkExperience maps a canonical entry to its UI form. The start
// date is widened to YYYY-01-01 and the end date to YYYY-12-31; the day
// precision is fabricated for the date-range inputs and dropped again on save.
func NormalizeWorkExperience(e types.WorkExperience) WorkExperienceForm {
	description := e.Description
	if len(e.Responsibilities) > 0 {
		description = strings.Join(e.Responsibilities, "\n")
	}
	form := WorkExperienceForm{
		JobTitle:         e.JobTitle,
		Company:          e.Company,
		Location:         e.Location,
		CurrentlyWorking: e.CurrentlyWorking,
		Description:      description,
		Technologies:     append([]string(nil), e.Technologies...),
	}
	if y := yearOf(e.StartDate); y != "" {
		form.StartDate = y + "-01-01"
	}
	if y := yearOf(e.EndDate); y != "" && !e.CurrentlyWorking {
		form.EndDate = y + "-12-31"
	}
	return form
}

// DenormalizeWorkExperience maps a UI form back to the backend record: the
// description is split into nonblank trimmed responsibility lines, and the
// pseudo-dates are reduced to bare years. An ongoing entry always carries a
// null end date.
func DenormalizeWorkExperience(f WorkExperienceForm) WorkExperienceRecord {
	rec := WorkExperienceRecord{
		JobTitle:         optional(f.JobTitle),
		Company:          optional(f.Company),
		Location:         optional(f.Location),
		StartDate:        optional(yearOf(f.StartDate)),
		CurrentlyWorking: f.CurrentlyWorking,
		Responsibilities: splitLines(f.Description),
		Technologies:     DedupeStrings(f.Technologies),
	}
	if !f.CurrentlyWorking {
		rec.EndDate = optional(yearOf(f.EndDate))
	}
	return rec
}

// Canonical converts a record to the canonical entry the store persists.
func (r WorkExperienceRecord) Canonical() types.WorkExperience {
	return types.WorkExperience{
		JobTitle:         deref(r.JobTitle),
		Company:          deref(r.Company),
		Location:         deref(r.Location),
		StartDate:        deref(r.StartDate),
		EndDate:          deref(r.EndDate),
		CurrentlyWorking: r.CurrentlyWorking,
		Responsibilities: append([]string(nil), r.Responsibilities...),
		Technologies:     append([]string(nil), r.Technologies...),
	}
}
