package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_IsDeep(t *testing.T) {
	p := EmptyProfile()
	p.PrimarySkills = []string{"Go"}
	p.WorkExperience = []WorkExperience{{
		Company:          "Acme",
		Responsibilities: []string{"Built things"},
	}}
	yes := true
	p.ReviewAgree.HasDisability = &yes

	c := p.Clone()
	c.PrimarySkills[0] = "mutated"
	c.WorkExperience[0].Responsibilities[0] = "mutated"
	*c.ReviewAgree.HasDisability = false

	assert.Equal(t, "Go", p.PrimarySkills[0])
	assert.Equal(t, "Built things", p.WorkExperience[0].Responsibilities[0])
	assert.True(t, *p.ReviewAgree.HasDisability)
}

func TestClone_KeepsEmptySlicesAllocated(t *testing.T) {
	c := EmptyProfile().Clone()

	assert.Equal(t, EmptyProfile(), c)

	// The serialized form must carry arrays, not nulls, same as EmptyProfile.
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	for _, key := range []string{
		SectionEducation, SectionWorkExperience, SectionSkills,
		"primarySkills", "basicSkills", SectionProjects,
		SectionAchievements, SectionCertification,
	} {
		list, ok := out[key].([]any)
		require.True(t, ok, "%s must serialize as an array", key)
		assert.Empty(t, list)
	}
	od, ok := out[SectionOtherDetails].(map[string]any)
	require.True(t, ok)
	_, ok = od["languages"].([]any)
	assert.True(t, ok, "languages must serialize as an array")
}

func TestSectionOrder(t *testing.T) {
	require.Len(t, SectionOrder, 10)
	assert.Equal(t, SectionBasicInfo, SectionOrder[0])
	assert.Equal(t, SectionReviewAgree, SectionOrder[len(SectionOrder)-1])
}

func TestNavigateRequest_Validate(t *testing.T) {
	zero := 0
	neg := -1

	assert.Error(t, (&NavigateRequest{}).Validate())
	assert.Error(t, (&NavigateRequest{Step: &neg}).Validate())
	assert.NoError(t, (&NavigateRequest{Step: &zero}).Validate())
}

func TestRemoveEntryRequest_Validate(t *testing.T) {
	zero := 0
	neg := -2

	assert.Error(t, (&RemoveEntryRequest{}).Validate())
	assert.Error(t, (&RemoveEntryRequest{Index: &neg}).Validate())
	assert.NoError(t, (&RemoveEntryRequest{Index: &zero}).Validate())
}

func TestTourStatusRequest_Validate(t *testing.T) {
	assert.Error(t, (&TourStatusRequest{Tour: "profile"}).Validate())
	assert.Error(t, (&TourStatusRequest{Tour: "profile", Status: "maybe"}).Validate())
	assert.NoError(t, (&TourStatusRequest{Tour: "profile", Status: "done"}).Validate())
	assert.NoError(t, (&TourStatusRequest{Tour: "profile", Status: "skipped"}).Validate())
}
