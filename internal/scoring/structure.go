package scoring

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Weights of the structure sub-scores; they sum to 1.0.
const (
	sectionOrderWeight = 0.30
	completenessWeight = 0.25
	summaryWeight      = 0.15
	bulletCountWeight  = 0.15
	pageLengthWeight   = 0.15
)

// ScoreStructure compares the résumé's visible sections, summary length,
// bullet counts and estimated length against the ideal structure.
func ScoreStructure(resume *types.ResumeProfile, ideal *types.IdealStructure) types.StructureScoreResult {
	r := resume.Normalize()
	if ideal == nil {
		ideal = &types.IdealStructure{}
	}

	currentOrder := visibleOrder(&r, resume == nil || resume.SectionOrder == nil)
	idealOrder := append([]types.Section{}, ideal.SectionOrder...)

	orderScore := sectionOrderScore(currentOrder, idealOrder)
	completeness, missing := completenessScore(&r, idealOrder)

	summaryWords := len(strings.Fields(r.PersonalInfo.Summary))
	summary := summaryScore(summaryWords, ideal.SummaryMin(), ideal.SummaryMax())

	bullets, details := bulletCountScore(r.Experience, ideal.BulletCountPerExperience)

	estimatedPages := estimatePageCount(&r)
	pages := pageLengthScore(estimatedPages, ideal.TotalPageCount)

	score := roundInt(float64(orderScore)*sectionOrderWeight +
		float64(completeness)*completenessWeight +
		float64(summary)*summaryWeight +
		float64(bullets)*bulletCountWeight +
		float64(pages)*pageLengthWeight)

	return types.StructureScoreResult{
		Score:              clampScore(score),
		SectionOrderScore:  orderScore,
		CompletenessScore:  completeness,
		SummaryScore:       summary,
		BulletCountScore:   bullets,
		PageLengthScore:    pages,
		CurrentOrder:       currentOrder,
		IdealOrder:         idealOrder,
		MissingSections:    missing,
		SummaryWordCount:   summaryWords,
		SummaryIdealRange:  ideal.SummaryLengthRange,
		BulletCountDetails: details,
		EstimatedPages:     estimatedPages,
		IdealPages:         ideal.TotalPageCount,
	}
}

// visibleOrder is the display order restricted to included sections. Only an
// absent display order falls back to the included set; an explicit empty order
// shows nothing. Normalize erases that distinction, so the caller reports it.
func visibleOrder(r *types.ResumeProfile, orderAbsent bool) []types.Section {
	order := r.SectionOrder
	if orderAbsent {
		order = r.IncludedSections
	}
	visible := []types.Section{}
	for _, s := range order {
		if r.Includes(s) {
			visible = append(visible, s)
		}
	}
	return visible
}

// sectionOrderScore is 100 * (1 - editDistance / longerLength), or 100 when
// both orders are empty.
func sectionOrderScore(current, ideal []types.Section) int {
	longest := max(len(current), len(ideal))
	if longest == 0 {
		return 100
	}
	dist := EditDistance(current, ideal)
	return roundInt((1 - float64(dist)/float64(longest)) * 100)
}

// completenessScore is the share of ideal sections that are included.
func completenessScore(r *types.ResumeProfile, ideal []types.Section) (int, []types.Section) {
	missing := []types.Section{}
	present := 0
	for _, s := range ideal {
		if r.Includes(s) {
			present++
		} else {
			missing = append(missing, s)
		}
	}
	if len(ideal) == 0 {
		return 100, missing
	}
	return percent(present, len(ideal)), missing
}

func summaryScore(words, minWords, maxWords int) int {
	switch {
	case words == 0:
		return 0
	case words < minWords:
		return 50
	case words > maxWords:
		return 70
	default:
		return 100
	}
}

// bulletCountScore averages a per-entry grade: exact target 100, shortfall
// proportional, excess loses 10 per extra bullet down to a floor of 70.
// No experience entries scores 100.
func bulletCountScore(experience []types.ExperienceEntry, target int) (int, []types.BulletCountDetail) {
	details := make([]types.BulletCountDetail, 0, len(experience))
	grades := make([]int, 0, len(experience))

	for _, exp := range experience {
		current := len(exp.Bullets)
		details = append(details, types.BulletCountDetail{
			Company: exp.Company,
			Current: current,
			Ideal:   target,
		})

		switch {
		case current == target:
			grades = append(grades, 100)
		case current < target:
			// target > current >= 0 here, so the division is safe
			grades = append(grades, percent(current, target))
		default:
			grades = append(grades, max(70, 100-10*(current-target)))
		}
	}

	if len(grades) == 0 {
		return 100, details
	}
	return roundInt(Average(grades)), details
}
