package scoring

import (
	"regexp"

	"github.com/jonathan/ats-scorer/internal/types"
)

var (
	percentPattern  = regexp.MustCompile(`\d+(\.\d+)?%`)
	currencyPattern = regexp.MustCompile(`[$€£]\s?[\d,]+(\.\d+)?[MmKkBb]?`)
	countPattern    = regexp.MustCompile(`(?i)\b\d+[+]?\s*(users|clients|customers|employees|team members|projects|campaigns|markets|products|locations)`)
	rangePattern    = regexp.MustCompile(`\d+\s*(to|-|–)\s*\d+`)
)

// IsMeasurable reports whether a line states a quantified result: a
// percentage, a currency amount, a count of people or things, a numeric
// range, or any standalone number of two or more digits that is not a
// calendar year (19xx/20xx).
func IsMeasurable(line string) bool {
	return percentPattern.MatchString(line) ||
		currencyPattern.MatchString(line) ||
		countPattern.MatchString(line) ||
		rangePattern.MatchString(line) ||
		hasSignificantNumber(line)
}

// hasSignificantNumber scans for a whole digit run bounded by non-word
// characters, at least two digits long, that is not a 4-digit 19xx/20xx year.
// A trailing "+" (as in "50+") is allowed. Word characters are ASCII
// letters, digits and underscore.
func hasSignificantNumber(line string) bool {
	i := 0
	for i < len(line) {
		if !isDigit(line[i]) {
			i++
			continue
		}

		start := i
		for i < len(line) && isDigit(line[i]) {
			i++
		}
		run := line[start:i]

		if start > 0 && isWordByte(line[start-1]) {
			continue
		}
		if i < len(line) && isWordByte(line[i]) {
			continue
		}
		if len(run) < 2 || isYear(run) {
			continue
		}
		return true
	}
	return false
}

func isYear(run string) bool {
	if len(run) != 4 {
		return false
	}
	prefix := run[:2]
	return prefix == "19" || prefix == "20"
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ScoreMeasurableResults flags every experience and project bullet, plus the
// summary, that carries a measurable result and scores the flagged count
// against the ideal target: min(100, round(100 * flagged / target)). A
// target of zero or less scores 0.
func ScoreMeasurableResults(resume *types.ResumeProfile, idealCount int) types.MeasurableResultsScoreResult {
	result := types.MeasurableResultsScoreResult{
		IdealCount:        idealCount,
		BulletAssessments: []types.BulletAssessment{},
	}
	if resume == nil {
		return result
	}

	assess := func(source string, entryIdx, bulletIdx int, text string) {
		hasMetric := IsMeasurable(text)
		result.TotalBullets++
		if hasMetric {
			result.BulletsWithMetrics++
		}
		result.BulletAssessments = append(result.BulletAssessments, types.BulletAssessment{
			Source:      source,
			EntryIndex:  entryIdx,
			BulletIndex: bulletIdx,
			HasMetric:   hasMetric,
			Text:        text,
		})
	}

	for expIdx, exp := range resume.Experience {
		for bulletIdx, bullet := range exp.Bullets {
			assess(types.BulletSourceExperience, expIdx, bulletIdx, bullet)
		}
	}
	for projIdx, proj := range resume.Projects {
		for bulletIdx, bullet := range proj.Bullets {
			assess(types.BulletSourceProject, projIdx, bulletIdx, bullet)
		}
	}

	if summary := resume.PersonalInfo.Summary; summary != "" && IsMeasurable(summary) {
		result.SummaryHasMetric = true
		result.BulletsWithMetrics++
	}

	if idealCount > 0 {
		result.Score = min(100, percent(result.BulletsWithMetrics, idealCount))
	}
	return result
}
