// Package normalize converts arbitrary uploaded or fetched profile documents
// into the canonical profile shape.
package normalize

import (
	"encoding/json"

	"github.com/jonathan/profile-builder/internal/dates"
	"github.com/jonathan/profile-builder/internal/types"
)

// ParseDocument unmarshals raw JSON into a Document. A document that is not a
// JSON object yields an error; Normalize itself never does.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DocumentError{Message: "document is not a JSON object", Cause: err}
	}
	return doc, nil
}

// Normalize converts a raw document into the canonical profile. It is a total
// function: every field access is defensive, falling through an ordered list
// of candidate source paths, and absent sections become their empty defaults.
// Normalizing an already-canonical document is a no-op.
func Normalize(doc Document) types.Profile {
	p := types.EmptyProfile()
	if doc == nil {
		return p
	}

	p.BasicInfo = normalizeBasicInfo(doc)
	// Root-level duplicates are kept for consumers still reading them.
	p.Name = p.BasicInfo.Name
	p.Email = p.BasicInfo.Email
	p.Phone = p.BasicInfo.Phone
	p.LinkedIn = p.BasicInfo.LinkedIn

	p.Education = normalizeEducation(doc)
	p.WorkExperience = normalizeWorkExperience(doc)

	p.Skills = stringList(listOf(doc, "skills"))
	p.PrimarySkills = stringList(listOf(doc, "primarySkills"))
	if len(p.PrimarySkills) == 0 {
		// skills seeds primarySkills for documents predating the split.
		p.PrimarySkills = append([]string(nil), p.Skills...)
	}
	p.BasicSkills = stringList(listOf(doc, "basicSkills"))

	p.Projects = normalizeProjects(doc)
	p.Achievements = normalizeAchievements(doc)
	p.Certification = normalizeCertification(doc)
	p.Preference = normalizePreference(doc)
	p.OtherDetails = normalizeOtherDetails(doc)
	p.ReviewAgree = normalizeReviewAgree(doc)
	return p
}

func normalizeBasicInfo(doc Document) types.BasicInfo {
	bi := objectOf(doc["basicInfo"])
	return types.BasicInfo{
		Name:     firstNonEmpty(stringOf(bi["name"]), stringOf(doc["name"])),
		Email:    firstNonEmpty(stringOf(bi["email"]), stringOf(doc["email"])),
		Phone:    firstNonEmpty(stringOf(bi["phone"]), stringOf(doc["phone"])),
		LinkedIn: firstNonEmpty(stringOf(bi["linkedin"]), stringOf(doc["linkedin"]), stringOf(doc["linkedIn"])),
	}
}

func normalizeEducation(doc Document) []types.Education {
	raw := listOf(doc, "education", "educations")
	out := make([]types.Education, 0, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		out = append(out, types.Education{
			Degree:       e.ident("degree"),
			FieldOfStudy: e.str("fieldOfStudy", "field_of_study"),
			Institution:  e.str("institution", "school"),
			StartDate:    dates.NormalizeMonthYear(e.str("startDate", "start_date")),
			EndDate:      dates.NormalizeMonthYear(e.str("endDate", "end_date")),
			Grade:        e.str("grade", "gpa"),
			Location:     e.str("location"),
		})
	}
	return out
}

func normalizeWorkExperience(doc Document) []types.WorkExperience {
	raw := listOf(doc, "workExperience", "experience", "work_experience")
	out := make([]types.WorkExperience, 0, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		out = append(out, types.WorkExperience{
			JobTitle:         e.ident("jobTitle", "title", "role"),
			Company:          e.str("company", "employer"),
			Location:         e.str("location"),
			StartDate:        dates.NormalizeMonthYear(e.str("startDate", "start_date")),
			EndDate:          dates.NormalizeMonthYear(e.str("endDate", "end_date")),
			CurrentlyWorking: e.boolField("currentlyWorking"),
			Responsibilities: stringList(e.list("responsibilities")),
			Technologies:     stringList(e.list("technologies")),
			Description:      e.str("description"),
		})
	}
	return out
}

func normalizeProjects(doc Document) []types.Project {
	raw := listOf(doc, "projects")
	out := make([]types.Project, 0, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		p := types.Project{
			Name:             e.ident("name", "title"),
			Description:      e.str("description"),
			CurrentlyWorking: e.boolField("currentlyWorking"),
			StartDate:        e.str("startDate", "start_date"),
			EndDate:          e.str("endDate", "end_date"),
			PhotoURL:         e.str("photoUrl", "photo"),
		}
		if p.CurrentlyWorking {
			// Start/end dates are mutually exclusive for ongoing projects.
			p.EndDate = ""
		}
		out = append(out, p)
	}
	return out
}

func normalizeAchievements(doc Document) []types.Achievement {
	raw := listOf(doc, "achievements")
	out := make([]types.Achievement, 0, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		out = append(out, types.Achievement{
			Title:       e.ident("title", "name"),
			IssueDate:   dates.NormalizeMonthYear(e.str("issueDate", "issue_date")),
			Description: e.str("description"),
		})
	}
	return out
}

func normalizeCertification(doc Document) []types.Certification {
	raw := listOf(doc, "certification", "certifications")
	out := make([]types.Certification, 0, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		out = append(out, types.Certification{
			Name:               e.ident("name", "title"),
			IssueDate:          dates.NormalizeMonthYear(e.str("issueDate", "issue_date")),
			IssuedOrganization: e.str("issuedOrganization", "issuer"),
			CredentialID:       e.str("credentialId", "credentialID"),
		})
	}
	return out
}

// normalizePreference collapses the preference section to a single object: it
// may arrive as an object, a one-element list, or not at all.
func normalizePreference(doc Document) types.Preference {
	v := doc["preference"]
	if l, ok := v.([]any); ok {
		if len(l) == 0 {
			return types.Preference{}
		}
		v = l[0]
	}
	m := objectOf(v)
	return types.Preference{
		CompanySize: stringOf(m["companySize"]),
		JobType:     stringOf(m["jobType"]),
		JobSearch:   stringOf(m["jobSearch"]),
	}
}

func normalizeOtherDetails(doc Document) types.OtherDetails {
	m := objectOf(doc["otherDetails"])
	raw, _ := m["languages"].([]any)
	langs := make([]types.Language, 0, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		langs = append(langs, types.Language{
			Language: e.ident("language", "name"),
			Speaking: e.str("speaking"),
			Reading:  e.str("reading"),
			Writing:  e.str("writing"),
		})
	}
	return types.OtherDetails{
		Languages:            langs,
		CareerStage:          stringOf(m["careerStage"]),
		EarliestAvailability: stringOf(m["earliestAvailability"]),
		DesiredSalary:        stringOf(m["desiredSalary"]),
	}
}

// normalizeReviewAgree accepts both the bare boolean literal true in place of
// the whole section and the object form with the agreed flag nested.
func normalizeReviewAgree(doc Document) types.ReviewAgree {
	v := doc["reviewAgree"]
	if agreed, ok := v.(bool); ok {
		return types.ReviewAgree{Agreed: agreed}
	}
	m := objectOf(v)
	ra := types.ReviewAgree{
		Discovery: stringOf(m["discovery"]),
		Comments:  stringOf(m["comments"]),
		Agreed:    boolOf(m["agreed"]),
	}
	if hd, ok := m["hasDisability"].(bool); ok {
		ra.HasDisability = &hd
	}
	return ra
}

// NormalizeProfile re-normalizes an already-typed profile by round-tripping it
// through its serialized form. Used when a previous session persisted an older
// shape.
func NormalizeProfile(p types.Profile) types.Profile {
	data, err := json.Marshal(p)
	if err != nil {
		return p
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return p
	}
	return Normalize(doc)
}
