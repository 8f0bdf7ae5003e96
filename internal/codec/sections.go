package codec

import "github.com/jonathan/profile-builder/internal/types"

// BasicInfoRecord is the backend-facing shape of the contact section.
type BasicInfoRecord struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
}

// DenormalizeBasicInfo maps the contact section to its backend record.
func DenormalizeBasicInfo(b types.BasicInfo) BasicInfoRecord {
	return BasicInfoRecord{
		Name:     optional(b.Name),
		Email:    optional(b.Email),
		Phone:    optional(b.Phone),
		LinkedIn: optional(b.LinkedIn),
	}
}

// PreferenceRecord is the backend-facing shape of the preference section.
type PreferenceRecord struct {
	CompanySize *string `json:"companySize"`
	JobType     *string `json:"jobType"`
	JobSearch   *string `json:"jobSearch"`
}

// DenormalizePreference maps the preference section to its backend record.
func DenormalizePreference(p types.Preference) PreferenceRecord {
	return PreferenceRecord{
		CompanySize: optional(p.CompanySize),
		JobType:     optional(p.JobType),
		JobSearch:   optional(p.JobSearch),
	}
}

// LanguageRecord is the backend-facing shape of one language row.
type LanguageRecord struct {
	Language *string `json:"language"`
	Speaking *string `json:"speaking"`
	Reading  *string `json:"reading"`
	Writing  *string `json:"writing"`
}

// OtherDetailsRecord is the backend-facing shape of the final-details section.
type OtherDetailsRecord struct {
	Languages            []LanguageRecord `json:"languages"`
	CareerStage          *string          `json:"careerStage"`
	EarliestAvailability *string          `json:"earliestAvailability"`
	DesiredSalary        *string          `json:"desiredSalary"`
}

// DenormalizeOtherDetails maps the final-details section to its backend record.
func DenormalizeOtherDetails(o types.OtherDetails) OtherDetailsRecord {
	langs := make([]LanguageRecord, 0, len(o.Languages))
	for _, l := range o.Languages {
		langs = append(langs, LanguageRecord{
			Language: optional(l.Language),
			Speaking: optional(l.Speaking),
			Reading:  optional(l.Reading),
			Writing:  optional(l.Writing),
		})
	}
	return OtherDetailsRecord{
		Languages:            langs,
		CareerStage:          optional(o.CareerStage),
		EarliestAvailability: optional(o.EarliestAvailability),
		DesiredSalary:        optional(o.DesiredSalary),
	}
}

// ReviewAgreeRecord is the backend-facing shape of the review step.
type ReviewAgreeRecord struct {
	Discovery     *string `json:"discovery"`
	Comments      *string `json:"comments"`
	Agreed        bool    `json:"agreed"`
	HasDisability *bool   `json:"hasDisability"`
}

// DenormalizeReviewAgree maps the review step to its backend record.
func DenormalizeReviewAgree(r types.ReviewAgree) ReviewAgreeRecord {
	return ReviewAgreeRecord{
		Discovery:     optional(r.Discovery),
		Comments:      optional(r.Comments),
		Agreed:        r.Agreed,
		HasDisability: r.HasDisability,
	}
}
