package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-builder/internal/types"
)

func TestValidateBasicInfo_ErrorsExactlyForEmptyFields(t *testing.T) {
	tests := []struct {
		name     string
		info     types.BasicInfo
		expected []string
	}{
		{"all empty", types.BasicInfo{}, []string{"name", "email", "phone"}},
		{"name only", types.BasicInfo{Name: "Ada"}, []string{"email", "phone"}},
		{"all filled", types.BasicInfo{Name: "Ada", Email: "a@b.c", Phone: "555"}, nil},
		{"bad format still passes", types.BasicInfo{Name: "Ada", Email: "not-an-email", Phone: "x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.EmptyProfile()
			p.BasicInfo = tt.info

			errs := ValidateBasicInfo(p)

			assert.Len(t, errs, len(tt.expected))
			for _, field := range tt.expected {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateEducation_RequiresDegreeOnFirstEntry(t *testing.T) {
	p := types.EmptyProfile()
	assert.Contains(t, ValidateEducation(p), "degree")

	p.Education = []types.Education{{Institution: "MIT"}}
	assert.Contains(t, ValidateEducation(p), "degree")

	p.Education[0].Degree = "BSc"
	assert.Empty(t, ValidateEducation(p))
}

func TestValidateWorkExperience_UntouchedEntrySkipped(t *testing.T) {
	p := types.EmptyProfile()
	p.WorkExperience = []types.WorkExperience{
		{},
		{Location: "Berlin"},
		{Company: "Acme", JobTitle: "Engineer"},
	}

	maps := ValidateWorkExperience(p)

	require.Len(t, maps, 3)
	assert.Empty(t, maps[0], "blank entry must not be validated")
	assert.Contains(t, maps[1], "company")
	assert.Contains(t, maps[1], "jobTitle")
	assert.Empty(t, maps[2])
}

func TestValidateSkills(t *testing.T) {
	p := types.EmptyProfile()
	assert.Contains(t, ValidateSkills(p), "primarySkills")

	p.PrimarySkills = []string{"Go"}
	assert.Empty(t, ValidateSkills(p))
}

func TestValidateProjects_AlwaysPasses(t *testing.T) {
	p := types.EmptyProfile()
	p.Projects = []types.Project{{}, {Description: "no name"}}

	maps := ValidateProjects(p)

	require.Len(t, maps, 2)
	for _, m := range maps {
		assert.Empty(t, m)
	}
}

func TestValidateAchievements_TitleRequiredOnlyWhenRestFilled(t *testing.T) {
	p := types.EmptyProfile()
	p.Achievements = []types.Achievement{
		{},
		{Description: "won something"},
		{Title: "Hackathon Winner", Description: "won something"},
	}

	maps := ValidateAchievements(p)

	require.Len(t, maps, 3)
	assert.Empty(t, maps[0])
	assert.Contains(t, maps[1], "title")
	assert.Empty(t, maps[2])
}

func TestValidateCertification_TouchedEntriesNeedNameAndCredential(t *testing.T) {
	p := types.EmptyProfile()
	p.Certification = []types.Certification{
		{},
		{IssuedOrganization: "AWS"},
		{Name: "Solutions Architect", CredentialID: "abc-123"},
	}

	maps := ValidateCertification(p)

	require.Len(t, maps, 3)
	assert.Empty(t, maps[0])
	assert.Contains(t, maps[1], "name")
	assert.Contains(t, maps[1], "credentialId")
	assert.Empty(t, maps[2])
}

func TestValidateReviewAgree(t *testing.T) {
	p := types.EmptyProfile()

	errs := ValidateReviewAgree(p)
	assert.Contains(t, errs, "agreed")
	assert.Contains(t, errs, "hasDisability")

	no := false
	p.ReviewAgree = types.ReviewAgree{Agreed: true, HasDisability: &no}
	assert.Empty(t, ValidateReviewAgree(p))
}

func TestStepErrorCount(t *testing.T) {
	p := types.EmptyProfile()

	assert.Equal(t, 3, StepErrorCount(p, types.SectionBasicInfo))
	assert.Equal(t, 1, StepErrorCount(p, types.SectionEducation))
	assert.Equal(t, 0, StepErrorCount(p, types.SectionWorkExperience))
	assert.Equal(t, 1, StepErrorCount(p, types.SectionSkills))
	assert.Equal(t, 0, StepErrorCount(p, types.SectionProjects))
	assert.Equal(t, 2, StepErrorCount(p, types.SectionReviewAgree))
	assert.Equal(t, 0, StepErrorCount(p, "no-such-section"))
}

func TestTouchPredicates(t *testing.T) {
	assert.False(t, WorkExperienceTouched(types.WorkExperience{}))
	assert.True(t, WorkExperienceTouched(types.WorkExperience{CurrentlyWorking: true}))

	assert.False(t, ProjectTouched(types.Project{}))
	assert.True(t, ProjectTouched(types.Project{PhotoURL: "x.png"}))

	assert.False(t, PreferenceTouched(types.Preference{}))
	assert.True(t, PreferenceTouched(types.Preference{JobType: "remote"}))

	assert.False(t, OtherDetailsTouched(types.OtherDetails{Languages: []types.Language{{}}}))
	assert.True(t, OtherDetailsTouched(types.OtherDetails{Languages: []types.Language{{Language: "French"}}}))
}
