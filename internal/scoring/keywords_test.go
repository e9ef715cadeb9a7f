package scoring

import (
	"testing"

	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyword(k string, imp types.Importance) types.KeywordEntry {
	return types.KeywordEntry{Keyword: k, Importance: imp}
}

func TestScoreKeywords_AllCriticalMatched(t *testing.T) {
	resume := &types.ResumeProfile{
		Skills: []types.SkillEntry{{Name: "Go"}, {Name: "PostgreSQL"}},
	}
	keywords := &types.KeywordMap{
		HardSkills: []types.KeywordEntry{
			keyword("Go", types.ImportanceCritical),
			keyword("PostgreSQL", types.ImportanceCritical),
		},
	}

	result := ScoreKeywords(resume, keywords)

	assert.Equal(t, 100, result.Score)
	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Missing)
	assert.NotNil(t, result.Missing)
}

func TestScoreKeywords_NoneMatched(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo: types.PersonalInfo{Summary: "Frontend developer"},
	}
	keywords := &types.KeywordMap{
		HardSkills: []types.KeywordEntry{keyword("Rust", types.ImportanceCritical)},
		SoftSkills: []types.KeywordEntry{keyword("negotiation", types.ImportanceNiceToHave)},
	}

	result := ScoreKeywords(resume, keywords)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Matched)
	require.Len(t, result.Missing, 2)
	assert.Equal(t, types.CategoryHardSkills, result.Missing[0].Category)
	assert.Equal(t, types.CategorySoftSkills, result.Missing[1].Category)
	assert.False(t, result.Missing[0].InFullProfile)
}

func TestScoreKeywords_Weighted(t *testing.T) {
	resume := &types.ResumeProfile{
		Skills: []types.SkillEntry{{Name: "Docker"}},
	}
	keywords := &types.KeywordMap{
		HardSkills:    []types.KeywordEntry{keyword("Docker", types.ImportanceImportant)},
		IndustryTerms: []types.KeywordEntry{keyword("fintech", types.ImportanceNiceToHave)},
	}

	// 2 of 3 weight units
	assert.Equal(t, 67, ScoreKeywords(resume, keywords).Score)
}

func TestScoreKeywords_EmptyMap(t *testing.T) {
	resume := &types.ResumeProfile{Skills: []types.SkillEntry{{Name: "Go"}}}

	result := ScoreKeywords(resume, &types.KeywordMap{})
	assert.Equal(t, 0, result.Score)
	assert.NotNil(t, result.Matched)
	assert.NotNil(t, result.Missing)

	assert.Equal(t, 0, ScoreKeywords(resume, nil).Score)
}

func TestScoreKeywords_CategoryOrder(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo: types.PersonalInfo{Summary: "led teams, built apis, certified kubernetes administrator"},
	}
	keywords := &types.KeywordMap{
		ActionVerbs:    []types.KeywordEntry{keyword("led", types.ImportanceNiceToHave)},
		Qualifications: []types.KeywordEntry{keyword("certified", types.ImportanceImportant)},
		HardSkills:     []types.KeywordEntry{keyword("apis", types.ImportanceCritical)},
	}

	result := ScoreKeywords(resume, keywords)

	require.Len(t, result.Matched, 3)
	assert.Equal(t, types.CategoryHardSkills, result.Matched[0].Category)
	assert.Equal(t, types.CategoryQualifications, result.Matched[1].Category)
	assert.Equal(t, types.CategoryActionVerbs, result.Matched[2].Category)
}

func TestScoreKeywords_FoundIn(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo: types.PersonalInfo{Summary: "Kubernetes operator"},
		Experience: []types.ExperienceEntry{
			{Bullets: []string{"Ran Kubernetes clusters"}},
		},
		Skills: []types.SkillEntry{{Name: "Terraform"}},
		Certifications: []types.CertificationEntry{
			{Name: "Certified Kubernetes Administrator"},
		},
	}
	keywords := &types.KeywordMap{
		HardSkills: []types.KeywordEntry{
			keyword("kubernetes", types.ImportanceCritical),
			keyword("terraform", types.ImportanceImportant),
		},
	}

	result := ScoreKeywords(resume, keywords)

	require.Len(t, result.Matched, 2)
	assert.Equal(t, []string{"summary", "experience", "certifications"}, result.Matched[0].FoundIn)
	assert.Equal(t, []string{"skills"}, result.Matched[1].FoundIn)
}

func TestMarkInFullProfile(t *testing.T) {
	missing := []types.KeywordMiss{
		{Keyword: "terraform"},
		{Keyword: "rust"},
	}
	full := &types.ResumeProfile{Skills: []types.SkillEntry{{Name: "Terraform"}}}

	markInFullProfile(missing, full)

	assert.True(t, missing[0].InFullProfile)
	assert.False(t, missing[1].InFullProfile)
}

func TestExtractCorpus(t *testing.T) {
	resume := &types.ResumeProfile{
		PersonalInfo: types.PersonalInfo{Summary: "Platform Engineer", FullName: "Jane Doe"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", Bullets: []string{"Built CI"}},
		},
		Skills:   []types.SkillEntry{{Name: "Go"}},
		Projects: []types.ProjectEntry{{Name: "tool", Description: "CLI tool", Bullets: []string{"Wrote docs"}}},
	}

	corpus := ExtractCorpus(resume)

	assert.Equal(t, "platform engineer built ci go cli tool wrote docs", corpus)
	assert.NotContains(t, corpus, "acme")
	assert.NotContains(t, corpus, "jane")
	assert.Equal(t, "", ExtractCorpus(nil))
}

func TestKeywordInProfile(t *testing.T) {
	profile := &types.ResumeProfile{Skills: []types.SkillEntry{{Name: "GraphQL"}}}
	assert.True(t, KeywordInProfile("graphql", profile))
	assert.False(t, KeywordInProfile("grpc", profile))
}
