package profiles

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}

func TestLoadResumeProfile_ValidFile(t *testing.T) {
	profile, err := LoadResumeProfile(fixture("valid", "resume_profile.json"))
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "Sam Rivera", profile.PersonalInfo.FullName)
	assert.Equal(t, "linkedin.com/in/samrivera", profile.PersonalInfo.LinkedIn)
	require.Len(t, profile.Experience, 1)

	exp := profile.Experience[0]
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, "2021-03", exp.StartDate)
	assert.True(t, exp.Current)
	assert.Len(t, exp.Bullets, 4)

	assert.Equal(t, []types.Section{types.SectionPersonalInfo, types.SectionExperience, types.SectionSkills}, profile.SectionOrder)
	assert.Equal(t, profile.SectionOrder, profile.IncludedSections)
}

func TestLoadResumeProfile_FullProfileWithoutSections(t *testing.T) {
	profile, err := LoadResumeProfile(fixture("valid", "full_profile.json"))
	require.NoError(t, err)

	assert.Nil(t, profile.IncludedSections)
	assert.Len(t, profile.Skills, 3)
	assert.Len(t, profile.Education, 1)
}

func TestLoadIdealProfile_ValidFile(t *testing.T) {
	profile, err := LoadIdealProfile(fixture("valid", "ideal_profile.json"))
	require.NoError(t, err)

	assert.Len(t, profile.KeywordMap.HardSkills, 3)
	assert.Len(t, profile.KeywordMap.SoftSkills, 1)
	assert.Equal(t, types.ImportanceCritical, profile.KeywordMap.HardSkills[0].Importance)
	assert.Equal(t, 4, profile.IdealMeasurableResultsCount)
	assert.Equal(t, [2]int{10, 30}, profile.IdealStructure.SummaryLengthRange)
	assert.Equal(t, 1, profile.IdealStructure.TotalPageCount)
}

func TestLoadResumeProfile_FileNotFound(t *testing.T) {
	_, err := LoadResumeProfile("nonexistent_file.json")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadIdealProfile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	invalidJSON := filepath.Join(tmpDir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidJSON, []byte("{ invalid json }"), 0644))

	_, err := LoadIdealProfile(invalidJSON)
	require.Error(t, err)

	var invalid *InvalidProfileError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ideal profile", invalid.Kind)
}

func TestLoadIdealProfile_UnknownImportance(t *testing.T) {
	_, err := LoadIdealProfile(fixture("invalid", "ideal_profile_bad_importance.json"))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestLoadIdealProfile_InvertedSummaryRange(t *testing.T) {
	// passes the schema, caught by the struct rules
	_, err := LoadIdealProfile(fixture("invalid", "ideal_profile_bad_range.json"))
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "SummaryLengthRange", fieldErrs[0].Field())
}

func TestLoadResumeProfile_UnknownSection(t *testing.T) {
	_, err := LoadResumeProfile(fixture("invalid", "resume_profile_bad_section.json"))
	require.Error(t, err)

	var invalid *InvalidProfileError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "resume profile", invalid.Kind)
}

func TestDecodeResumeProfile_Minimal(t *testing.T) {
	profile, err := DecodeResumeProfile([]byte(`{"personal_info": {"summary": "Go developer"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Go developer", profile.PersonalInfo.Summary)
	assert.Nil(t, profile.Experience)
}
