package scoring

import (
	"github.com/jonathan/ats-scorer/internal/types"
)

// Composite weights
const (
	keywordWeight    = 0.4
	measurableWeight = 0.4
	structureWeight  = 0.2

	// optimalStructureScore is assumed for the max-achievable estimate: a
	// résumé with every section included, in the ideal order.
	optimalStructureScore = 100
)

// ScoreComposite combines the three sub-scores: round(0.4k + 0.4m + 0.2s).
func ScoreComposite(keyword, measurable, structure int) int {
	return clampScore(roundInt(float64(keyword)*keywordWeight +
		float64(measurable)*measurableWeight +
		float64(structure)*structureWeight))
}

// ScoreAll runs every scorer against the résumé and combines the results.
//
// When full is non-nil, the max-achievable score is computed by scoring a
// hypothetical résumé built from the full profile's content with all
// sections included in the ideal order. Structure is assumed optimal for
// that estimate rather than recomputed. Missing keywords are also flagged
// when the full profile contains them.
func ScoreAll(resume *types.ResumeProfile, ideal *types.IdealProfile, full *types.ResumeProfile) types.ScoreResult {
	r := resume.Normalize()
	if ideal == nil {
		ideal = &types.IdealProfile{}
	}

	keywords := ScoreKeywords(&r, &ideal.KeywordMap)
	measurable := ScoreMeasurableResults(&r, ideal.IdealMeasurableResultsCount)
	structure := ScoreStructure(&r, &ideal.IdealStructure)
	composite := ScoreComposite(keywords.Score, measurable.Score, structure.Score)

	result := types.ScoreResult{
		KeywordScore:           keywords.Score,
		MeasurableResultsScore: measurable.Score,
		StructureScore:         structure.Score,
		Composite:              composite,
		IsEstimate:             true,
		Details: types.DetailedScores{
			KeywordUsage:      keywords,
			MeasurableResults: measurable,
			Structure:         structure,
			Composite:         composite,
			MaxAchievable:     composite,
		},
	}

	if full != nil {
		maxAchievable := maxAchievableScore(&r, ideal, full)
		result.MaxAchievable = &maxAchievable
		result.Details.MaxAchievable = maxAchievable
		markInFullProfile(result.Details.KeywordUsage.Missing, full)
	}

	return result
}

// maxAchievableScore scores the full profile's content laid out as a
// complete résumé.
func maxAchievableScore(resume *types.ResumeProfile, ideal *types.IdealProfile, full *types.ResumeProfile) int {
	candidate := fullProfileAsResume(resume, ideal, full)
	keywords := ScoreKeywords(&candidate, &ideal.KeywordMap)
	measurable := ScoreMeasurableResults(&candidate, ideal.IdealMeasurableResultsCount)
	return ScoreComposite(keywords.Score, measurable.Score, optimalStructureScore)
}

// fullProfileAsResume substitutes the full profile's content into the résumé
// and includes every canonical section, ordered as the ideal structure says.
func fullProfileAsResume(resume *types.ResumeProfile, ideal *types.IdealProfile, full *types.ResumeProfile) types.ResumeProfile {
	content := full.Normalize()
	candidate := *resume
	candidate.PersonalInfo = content.PersonalInfo
	candidate.Experience = content.Experience
	candidate.Education = content.Education
	candidate.Skills = content.Skills
	candidate.Languages = content.Languages
	candidate.Certifications = content.Certifications
	candidate.Projects = content.Projects
	candidate.IncludedSections = types.AllSections()
	candidate.SectionOrder = append([]types.Section{}, ideal.IdealStructure.SectionOrder...)
	return candidate
}
