package scoring

import (
	"github.com/jonathan/ats-scorer/internal/types"
)

// ScoreKeywords matches every keyword of the map against the résumé corpus
// and returns an importance-weighted coverage score (critical=3,
// important=2, nice_to_have=1). An empty map scores 0.
//
// Missing keywords come back with InFullProfile=false; ScoreAll fills it in
// when a full profile is available.
func ScoreKeywords(resume *types.ResumeProfile, keywordMap *types.KeywordMap) types.KeywordScoreResult {
	parts := corpusParts(resume)
	corpus := ExtractCorpus(resume)

	result := types.KeywordScoreResult{
		Matched: []types.KeywordMatch{},
		Missing: []types.KeywordMiss{},
	}
	if keywordMap == nil {
		return result
	}

	matchedWeight := 0
	totalWeight := 0

	keywordMap.Each(func(category types.KeywordCategory, entry types.KeywordEntry) {
		weight := entry.Importance.Weight()
		totalWeight += weight

		if !keywordMatchesText(entry.Keyword, corpus) {
			result.Missing = append(result.Missing, types.KeywordMiss{
				Keyword:    entry.Keyword,
				Category:   category,
				Importance: entry.Importance,
			})
			return
		}

		matchedWeight += weight
		result.Matched = append(result.Matched, types.KeywordMatch{
			Keyword:    entry.Keyword,
			Category:   category,
			Importance: entry.Importance,
			FoundIn:    foundIn(entry.Keyword, parts),
		})
	})

	if totalWeight > 0 {
		result.Score = percent(matchedWeight, totalWeight)
	}
	return result
}

// foundIn lists the résumé areas whose own text matches the keyword. A
// multi-word keyword whose words are spread across areas matches the whole
// corpus without matching any single area, so the list may be empty.
func foundIn(keyword string, parts []corpusPart) []string {
	sources := []string{}
	for _, p := range parts {
		if keywordMatchesText(keyword, p.text) {
			sources = append(sources, p.source)
		}
	}
	return sources
}

// markInFullProfile sets InFullProfile on each missing keyword that the full
// profile's corpus contains. The slice is modified in place.
func markInFullProfile(missing []types.KeywordMiss, full *types.ResumeProfile) {
	if full == nil {
		return
	}
	corpus := ExtractCorpus(full)
	for i := range missing {
		missing[i].InFullProfile = keywordMatchesText(missing[i].Keyword, corpus)
	}
}
