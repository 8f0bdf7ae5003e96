package codec

import "github.com/jonathan/profile-builder/internal/types"

// AchievementForm is the UI-editable shape of one achievement entry.
type AchievementForm struct {
	Title       string `json:"title"`
	IssueDate   string `json:"issueDate"`
	Description string `json:"description"`
}

// AchievementRecord is the backend-facing shape of one achievement entry.
type AchievementRecord struct {
	Title       *string `json:"title"`
	IssueDate   *string `json:"issueDate"`
	Description *string `json:"description"`
}

// NormalizeAchievement maps a canonical entry to its UI form.
func NormalizeAchievement(e types.Achievement) AchievementForm {
	return AchievementForm(e)
}

// DenormalizeAchievement maps a UI form back to the backend record.
func DenormalizeAchievement(f AchievementForm) AchievementRecord {
	return AchievementRecord{
		Title:       optional(f.Title),
		IssueDate:   optional(f.IssueDate),
		Description: optional(f.Description),
	}
}

// Canonical converts a record to the canonical entry the store persists.
func (r AchievementRecord) Canonical() types.Achievement {
	return types.Achievement{
		Title:       deref(r.Title),
		IssueDate:   deref(r.IssueDate),
		Description: deref(r.Description),
	}
}

// CertificationForm is the UI-editable shape of one certification entry.
type CertificationForm struct {
	Name               string `json:"name"`
	IssueDate          string `json:"issueDate"`
	IssuedOrganization string `json:"issuedOrganization"`
	CredentialID       string `json:"credentialId"`
}

// CertificationRecord is the backend-facing shape of one certification entry.
type CertificationRecord struct {
	Name               *string `json:"name"`
	IssueDate          *string `json:"issueDate"`
	IssuedOrganization *string `json:"issuedOrganization"`
	CredentialID       *string `json:"credentialId"`
}

// NormalizeCertification maps a canonical entry to its UI form.
func NormalizeCertification(e types.Certification) CertificationForm {
	return CertificationForm(e)
}

// DenormalizeCertification maps a UI form back to the backend record.
func DenormalizeCertification(f CertificationForm) CertificationRecord {
	return CertificationRecord{
		Name:               optional(f.Name),
		IssueDate:          optional(f.IssueDate),
		IssuedOrganization: optional(f.IssuedOrganization),
		CredentialID:       optional(f.CredentialID),
	}
}

// Canonical converts a record to the canonical entry the store persists.
func (r CertificationRecord) Canonical() types.Certification {
	return types.Certification{
		Name:               deref(r.Name),
		IssueDate:          deref(r.IssueDate),
		IssuedOrganization: deref(r.IssuedOrganization),
		CredentialID:       deref(r.CredentialID),
	}
}
