package codec

import "github.com/jonathan/profile-builder/internal/types"

// ProjectForm is the UI-editable shape of one project entry.
type ProjectForm struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	PhotoURL         string `json:"photoUrl"`
}

// ProjectRecord is the backend-facing shape of one project entry.
type ProjectRecord struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	CurrentlyWorking bool    `json:"currentlyWorking"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	PhotoURL         *string `json:"photoUrl"`
}

// NormalizeProject maps a canonical entry to its UI form.
func NormalizeProject(e types.Project) ProjectForm {
	return ProjectForm{
		Name:             e.Name,
		Description:      e.Description,
		CurrentlyWorking: e.CurrentlyWorking,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		PhotoURL:         e.PhotoURL,
	}
}

// DenormalizeProject maps a UI form back to the backend record. An ongoing
// project always carries a null end date, regardless of what the end-date
// input held when the flag was set.
func DenormalizeProject(f ProjectForm) ProjectRecord {
	rec := ProjectRecord{
		Name:             optional(f.Name),
		Description:      optional(f.Description),
		CurrentlyWorking: f.CurrentlyWorking,
		StartDate:        optional(f.StartDate),
		PhotoURL:         optional(f.PhotoURL),
	}
	if !f.CurrentlyWorking {
		rec.EndDate = optional(f.EndDate)
	}
	return rec
}

// Canonical converts a record to the canonical entry the store persists.
func (r ProjectRecord) Canonical() types.Project {
	return types.Project{
		Name:             deref(r.Name),
		Description:      deref(r.Description),
		CurrentlyWorking: r.CurrentlyWorking,
		StartDate:        deref(r.StartDate),
		EndDate:          deref(r.EndDate),
		PhotoURL:         deref(r.PhotoURL),
	}
}
