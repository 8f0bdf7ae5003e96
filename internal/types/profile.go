// Package types provides type definitions for the canonical job-seeker profile
// shared across the profile builder.
package types

// Section names, in wizard step order. These are also the JSON keys of the
// serialized profile.
const (
	SectionBasicInfo      = "basicInfo"
	SectionEducation      = "education"
	SectionWorkExperience = "workExperience"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionAchievements   = "achievements"
	SectionCertification  = "certification"
	SectionPreference     = "preference"
	SectionOtherDetails   = "otherDetails"
	SectionReviewAgree    = "reviewAgree"
)

// SectionOrder lists the sections in wizard step order.
var SectionOrder = []string{
	SectionBasicInfo,
	SectionEducation,
	SectionWorkExperience,
	SectionSkills,
	SectionProjects,
	SectionAchievements,
	SectionCertification,
	SectionPreference,
	SectionOtherDetails,
	SectionReviewAgree,
}

// Profile is the root aggregate: the canonical shape the store persists and all
// codecs target. Root-level name/email/phone/linkedin duplicate basicInfo for
// backward compatibility with consumers that still read the root fields.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`

	BasicInfo      BasicInfo        `json:"basicInfo"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Skills         []string         `json:"skills"`
	PrimarySkills  []string         `json:"primarySkills"`
	BasicSkills    []string         `json:"basicSkills"`
	Projects       []Project        `json:"projects"`
	Achievements   []Achievement    `json:"achievements"`
	Certification  []Certification  `json:"certification"`
	Preference     Preference       `json:"preference"`
	OtherDetails   OtherDetails     `json:"otherDetails"`
	ReviewAgree    ReviewAgree      `json:"reviewAgree"`
}

// BasicInfo holds the contact fields collected by the first wizard step.
type BasicInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// Education is a single education entry. The wizard only edits index 0.
type Education struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Institution  string `json:"institution"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Grade        string `json:"grade"`
	Location     string `json:"location"`
}

// WorkExperience is a single work history entry. Responsibilities holds the
// canonical line-per-item form; Description is the UI's joined form and is kept
// only transiently by the codec.
type WorkExperience struct {
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
	Description      string   `json:"description,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	PhotoURL         string `json:"photoUrl"`
}

// Achievement is a single achievement entry.
type Achievement struct {
	Title       string `json:"title"`
	IssueDate   string `json:"issueDate"`
	Description string `json:"description"`
}

// Certification is a single certification entry.
type Certification struct {
	Name               string `json:"name"`
	IssueDate          string `json:"issueDate"`
	IssuedOrganization string `json:"issuedOrganization"`
	CredentialID       string `json:"credentialId"`
}

// Preference holds the job preference answers. Unlike the other wizard
// sections it is a single object, never a list.
type Preference struct {
	CompanySize string `json:"companySize"`
	JobType     string `json:"jobType"`
	JobSearch   string `json:"jobSearch"`
}

// Language is one row of the language proficiency table.
type Language struct {
	Language string `json:"language"`
	Speaking string `json:"speaking"`
	Reading  string `json:"reading"`
	Writing  string `json:"writing"`
}

// OtherDetails holds the optional final-details section.
type OtherDetails struct {
	Languages            []Language `json:"languages"`
	CareerStage          string     `json:"careerStage"`
	EarliestAvailability string     `json:"earliestAvailability"`
	DesiredSalary        string     `json:"desiredSalary"`
}

// ReviewAgree holds the final review step. HasDisability is tri-state: nil
// means the question has not been answered yet.
type ReviewAgree struct {
	Discovery     string `json:"discovery"`
	Comments      string `json:"comments"`
	Agreed        bool   `json:"agreed"`
	HasDisability *bool  `json:"hasDisability"`
}

// EmptyProfile returns a profile with every section set to its empty default.
// Slices are allocated so the serialized form carries arrays, not nulls.
func EmptyProfile() Profile {
	return Profile{
		Education:      []Education{},
		WorkExperience: []WorkExperience{},
		Skills:         []string{},
		PrimarySkills:  []string{},
		BasicSkills:    []string{},
		Projects:       []Project{},
		Achievements:   []Achievement{},
		Certification:  []Certification{},
		OtherDetails:   OtherDetails{Languages: []Language{}},
	}
}

// Clone returns a deep copy of the profile so callers can hand it out without
// sharing slice backing arrays with the store.
func (p Profile) Clone() Profile {
	out := p
	// copySlice keeps empty slices empty rather than nil, preserving the
	// arrays-not-nulls guarantee of EmptyProfile through every clone.
	out.Education = copySlice(p.Education)
	out.WorkExperience = make([]WorkExperience, len(p.WorkExperience))
	for i, w := range p.WorkExperience {
		w.Responsibilities = copySlice(w.Responsibilities)
		w.Technologies = copySlice(w.Technologies)
		out.WorkExperience[i] = w
	}
	out.Skills = copySlice(p.Skills)
	out.PrimarySkills = copySlice(p.PrimarySkills)
	out.BasicSkills = copySlice(p.BasicSkills)
	out.Projects = copySlice(p.Projects)
	out.Achievements = copySlice(p.Achievements)
	out.Certification = copySlice(p.Certification)
	out.OtherDetails.Languages = copySlice(p.OtherDetails.Languages)
	if p.ReviewAgree.HasDisability != nil {
		v := *p.ReviewAgree.HasDisability
		out.ReviewAgree.HasDisability = &v
	}
	return out
}

func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}
