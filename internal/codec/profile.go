package codec

import "github.com/jonathan/profile-builder/internal/types"

// ProfileRecord is the full backend-facing submission document: every section
// denormalized, with the root-level contact duplicates the backend still
// reads.
type ProfileRecord struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`

	BasicInfo      BasicInfoRecord        `json:"basicInfo"`
	Education      []EducationRecord      `json:"education"`
	WorkExperience []WorkExperienceRecord `json:"workExperience"`
	Skills         []string               `json:"skills"`
	PrimarySkills  []string               `json:"primarySkills"`
	BasicSkills    []string               `json:"basicSkills"`
	Projects       []ProjectRecord        `json:"projects"`
	Achievements   []AchievementRecord    `json:"achievements"`
	Certification  []CertificationRecord  `json:"certification"`
	Preference     PreferenceRecord       `json:"preference"`
	OtherDetails   OtherDetailsRecord     `json:"otherDetails"`
	ReviewAgree    ReviewAgreeRecord      `json:"reviewAgree"`
}

// DenormalizeProfile assembles the submission document from a canonical
// profile by running every section through its codec.
func DenormalizeProfile(p types.Profile) ProfileRecord {
	rec := ProfileRecord{
		Name:          optional(p.BasicInfo.Name),
		Email:         optional(p.BasicInfo.Email),
		Phone:         optional(p.BasicInfo.Phone),
		LinkedIn:      optional(p.BasicInfo.LinkedIn),
		BasicInfo:     DenormalizeBasicInfo(p.BasicInfo),
		Skills:        DedupeStrings(p.Skills),
		PrimarySkills: DedupeStrings(p.PrimarySkills),
		BasicSkills:   DedupeStrings(p.BasicSkills),
		Preference:    DenormalizePreference(p.Preference),
		OtherDetails:  DenormalizeOtherDetails(p.OtherDetails),
		ReviewAgree:   DenormalizeReviewAgree(p.ReviewAgree),
	}
	rec.Education = make([]EducationRecord, 0, len(p.Education))
	for _, e := range p.Education {
		rec.Education = append(rec.Education, DenormalizeEducation(NormalizeEducation(e)))
	}
	rec.WorkExperience = make([]WorkExperienceRecord, 0, len(p.WorkExperience))
	for _, e := range p.WorkExperience {
		rec.WorkExperience = append(rec.WorkExperience, DenormalizeWorkExperience(NormalizeWorkExperience(e)))
	}
	rec.Projects = make([]ProjectRecord, 0, len(p.Projects))
	for _, e := range p.Projects {
		rec.Projects = append(rec.Projects, DenormalizeProject(NormalizeProject(e)))
	}
	rec.Achievements = make([]AchievementRecord, 0, len(p.Achievements))
	for _, e := range p.Achievements {
		rec.Achievements = append(rec.Achievements, DenormalizeAchievement(NormalizeAchievement(e)))
	}
	rec.Certification = make([]CertificationRecord, 0, len(p.Certification))
	for _, e := range p.Certification {
		rec.Certification = append(rec.Certification, DenormalizeCertification(NormalizeCertification(e)))
	}
	return rec
}
