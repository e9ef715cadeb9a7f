package scoring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func bullets(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Did a thing"
	}
	return out
}

func baseIdealStructure() *types.IdealStructure {
	return &types.IdealStructure{
		SectionOrder:             []types.Section{types.SectionPersonalInfo, types.SectionExperience, types.SectionSkills},
		BulletCountPerExperience: 4,
		SummaryLengthRange:       [2]int{10, 20},
		TotalPageCount:           1,
	}
}

func TestScoreStructure_IdealResume(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo:     types.PersonalInfo{Summary: words(15)},
		Experience:       []types.ExperienceEntry{{Company: "Acme", Bullets: bullets(4)}},
		Skills:           []types.SkillEntry{{Name: "Go"}, {Name: "SQL"}, {Name: "AWS"}},
		IncludedSections: []types.Section{types.SectionPersonalInfo, types.SectionExperience, types.SectionSkills},
		SectionOrder:     []types.Section{types.SectionPersonalInfo, types.SectionExperience, types.SectionSkills},
	}

	result := ScoreStructure(resume, baseIdealStructure())

	assert.Equal(t, 100, result.SectionOrderScore)
	assert.Equal(t, 100, result.CompletenessScore)
	assert.Equal(t, 100, result.SummaryScore)
	assert.Equal(t, 100, result.BulletCountScore)
	assert.Equal(t, 100, result.PageLengthScore)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.MissingSections)
	assert.Equal(t, 15, result.SummaryWordCount)
	assert.Equal(t, [2]int{10, 20}, result.SummaryIdealRange)
	assert.Equal(t, 1, result.EstimatedPages)
	assert.Equal(t, 1, result.IdealPages)
	require.Len(t, result.BulletCountDetails, 1)
	assert.Equal(t, types.BulletCountDetail{Company: "Acme", Current: 4, Ideal: 4}, result.BulletCountDetails[0])
}

func TestScoreStructure_SwappedOrder(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo:     types.PersonalInfo{Summary: words(15)},
		Experience:       []types.ExperienceEntry{{Company: "Acme", Bullets: bullets(4)}},
		Skills:           []types.SkillEntry{{Name: "Go"}},
		IncludedSections: []types.Section{types.SectionPersonalInfo, types.SectionExperience, types.SectionSkills},
		SectionOrder:     []types.Section{types.SectionExperience, types.SectionPersonalInfo, types.SectionSkills},
	}

	result := ScoreStructure(resume, baseIdealStructure())

	// two substitutions over three positions
	assert.Equal(t, 33, result.SectionOrderScore)
	// round(33*0.30 + 100*0.25 + 100*0.15*3) = round(79.9)
	assert.Equal(t, 80, result.Score)
}

func TestScoreStructure_OrderFiltersExcludedSections(t *testing.T) {
	resume := &types.ResumeProfile{
		IncludedSections: []types.Section{types.SectionExperience, types.SectionPersonalInfo},
		SectionOrder:     []types.Section{types.SectionPersonalInfo, types.SectionProjects, types.SectionExperience},
	}

	result := ScoreStructure(resume, baseIdealStructure())

	assert.Equal(t, []types.Section{types.SectionPersonalInfo, types.SectionExperience}, result.CurrentOrder)
	assert.Equal(t, []types.Section{types.SectionSkills}, result.MissingSections)
	assert.Equal(t, 67, result.CompletenessScore)
	// one insertion over three positions
	assert.Equal(t, 67, result.SectionOrderScore)
}

func TestScoreStructure_AbsentOrderFallsBackToIncluded(t *testing.T) {
	resume := &types.ResumeProfile{
		IncludedSections: []types.Section{types.SectionPersonalInfo, types.SectionExperience, types.SectionSkills},
	}

	result := ScoreStructure(resume, baseIdealStructure())

	assert.Equal(t, resume.IncludedSections, result.CurrentOrder)
	assert.Equal(t, 100, result.SectionOrderScore)
}

func TestScoreStructure_ExplicitEmptyOrderShowsNothing(t *testing.T) {
	resume := &types.ResumeProfile{
		IncludedSections: []types.Section{types.SectionExperience, types.SectionSkills},
		SectionOrder:     []types.Section{},
	}

	result := ScoreStructure(resume, baseIdealStructure())

	assert.Empty(t, result.CurrentOrder)
	assert.NotNil(t, result.CurrentOrder)
	assert.Equal(t, 0, result.SectionOrderScore)
}

func TestScoreStructure_SectionOrderFromJSON(t *testing.T) {
	var absent, empty types.ResumeProfile
	require.NoError(t, json.Unmarshal([]byte(`{"included_sections":["experience","skills"]}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"included_sections":["experience","skills"],"section_order":[]}`), &empty))

	assert.Equal(t, []types.Section{types.SectionExperience, types.SectionSkills},
		ScoreStructure(&absent, baseIdealStructure()).CurrentOrder)
	assert.Empty(t, ScoreStructure(&empty, baseIdealStructure()).CurrentOrder)
}

func TestScoreStructure_Completeness(t *testing.T) {
	ideal := baseIdealStructure()

	none := ScoreStructure(&types.ResumeProfile{}, ideal)
	assert.Equal(t, 0, none.CompletenessScore)
	assert.Equal(t, ideal.SectionOrder, none.MissingSections)
	assert.Equal(t, 0, none.SectionOrderScore)

	all := ScoreStructure(&types.ResumeProfile{IncludedSections: types.AllSections()}, ideal)
	assert.Equal(t, 100, all.CompletenessScore)
	assert.Empty(t, all.MissingSections)

	ideal.SectionOrder = nil
	empty := ScoreStructure(&types.ResumeProfile{}, ideal)
	assert.Equal(t, 100, empty.CompletenessScore)
	assert.Equal(t, 100, empty.SectionOrderScore)
}

func TestSummaryScore_Bands(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 0},
		{"one under minimum", 9, 50},
		{"at minimum", 10, 100},
		{"inside range", 15, 100},
		{"at maximum", 20, 100},
		{"one over maximum", 21, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume := &types.ResumeProfile{PersonalInfo: types.PersonalInfo{Summary: words(tt.words)}}
			result := ScoreStructure(resume, baseIdealStructure())
			assert.Equal(t, tt.words, result.SummaryWordCount)
			assert.Equal(t, tt.want, result.SummaryScore)
		})
	}
}

func TestBulletCountScore(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   int
	}{
		{"no experience", nil, 100},
		{"exact", []int{4}, 100},
		{"shortfall", []int{2}, 50},
		{"excess by two", []int{6}, 80},
		{"excess floors at 70", []int{10}, 70},
		{"averaged", []int{4, 2}, 75},
		{"averaged and rounded", []int{4, 4, 3}, 92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var experience []types.ExperienceEntry
			for _, n := range tt.counts {
				experience = append(experience, types.ExperienceEntry{Company: "Co", Bullets: bullets(n)})
			}
			score, details := bulletCountScore(experience, 4)
			assert.Equal(t, tt.want, score)
			assert.Len(t, details, len(tt.counts))
		})
	}
}

func TestBulletCountScore_ZeroTarget(t *testing.T) {
	score, _ := bulletCountScore([]types.ExperienceEntry{{Bullets: nil}}, 0)
	assert.Equal(t, 100, score)

	score, _ = bulletCountScore([]types.ExperienceEntry{{Bullets: bullets(1)}}, 0)
	assert.Equal(t, 90, score)
}

func TestEstimatePageCount(t *testing.T) {
	// header 3 + empty skills block 1
	assert.Equal(t, 1, estimatePageCount(&types.ResumeProfile{}))

	long := &types.ResumeProfile{
		Experience: []types.ExperienceEntry{
			{Bullets: bullets(20)},
			{Bullets: bullets(20)},
			{Bullets: bullets(20)},
		},
	}
	// 3 + 3*22 + 1 + 1 = 71 lines
	assert.Equal(t, 2, estimatePageCount(long))

	boundary := &types.ResumeProfile{
		Experience: []types.ExperienceEntry{{Bullets: bullets(38)}},
	}
	// 3 + (2+38) + 1 + 1 = 45
	assert.Equal(t, 1, estimatePageCount(boundary))
	boundary.Experience[0].Bullets = append(boundary.Experience[0].Bullets, "one more")
	assert.Equal(t, 2, estimatePageCount(boundary))
}

func TestEstimatePageCount_AllSections(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo:   types.PersonalInfo{Summary: words(25)},
		Experience:     []types.ExperienceEntry{{Bullets: bullets(3)}},
		Education:      []types.EducationEntry{{Degree: "BSc"}, {Degree: "MSc"}},
		Skills:         make([]types.SkillEntry, 7),
		Projects:       []types.ProjectEntry{{Bullets: bullets(2)}},
		Certifications: []types.CertificationEntry{{Name: "CKA"}},
		Languages:      []types.LanguageEntry{{Language: "English"}, {Language: "German"}},
	}
	// header 3, summary 4, experience 6, education 5, skills 3, projects 5,
	// certifications 2, languages 3: 31 lines
	assert.Equal(t, 1, estimatePageCount(resume))
}

func TestPageLengthScore(t *testing.T) {
	assert.Equal(t, 100, pageLengthScore(1, 1))
	assert.Equal(t, 60, pageLengthScore(2, 1))
	assert.Equal(t, 40, pageLengthScore(1, 2))
	assert.Equal(t, 20, pageLengthScore(3, 1))
	assert.Equal(t, 20, pageLengthScore(1, 3))
}

func TestScoreStructure_NilInputs(t *testing.T) {
	result := ScoreStructure(nil, nil)
	assert.Equal(t, 100, result.SectionOrderScore)
	assert.Equal(t, 100, result.CompletenessScore)
	assert.Equal(t, 0, result.SummaryScore)
	assert.Equal(t, 100, result.BulletCountScore)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}
