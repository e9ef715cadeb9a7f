package scoring

import (
	"regexp"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Line-budget heuristic for page estimation. The constants are tuned against
// the page-length bands in pageLengthScore; changing them shifts scores.
const (
	linesPerPage        = 45
	headerLines         = 3
	summaryWordsPerLine = 12
	skillsPerLine       = 6
	entryHeaderLines    = 2 // title/company line plus dates line
	sectionHeaderLines  = 1
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// estimatePageCount approximates the rendered page count of the résumé from
// its content. It looks at all content regardless of which sections are
// included. The result is at least 1.
func estimatePageCount(resume *types.ResumeProfile) int {
	lines := headerLines

	if summary := resume.PersonalInfo.Summary; summary != "" {
		// raw split: leading or trailing whitespace counts as an extra word
		words := len(whitespaceRun.Split(summary, -1))
		lines += ceilDiv(words, summaryWordsPerLine) + sectionHeaderLines
	}

	for _, exp := range resume.Experience {
		lines += entryHeaderLines + len(exp.Bullets)
	}
	if len(resume.Experience) > 0 {
		lines += sectionHeaderLines
	}

	lines += entryHeaderLines * len(resume.Education)
	if len(resume.Education) > 0 {
		lines += sectionHeaderLines
	}

	// the skills block is always budgeted, even when empty
	lines += ceilDiv(len(resume.Skills), skillsPerLine) + sectionHeaderLines

	for _, proj := range resume.Projects {
		lines += entryHeaderLines + len(proj.Bullets)
	}
	if len(resume.Projects) > 0 {
		lines += sectionHeaderLines
	}

	lines += len(resume.Certifications) + len(resume.Languages)
	if len(resume.Certifications) > 0 {
		lines += sectionHeaderLines
	}
	if len(resume.Languages) > 0 {
		lines += sectionHeaderLines
	}

	return max(1, ceilDiv(lines, linesPerPage))
}

// pageLengthScore grades the estimate against the target page count.
func pageLengthScore(estimated, ideal int) int {
	switch estimated {
	case ideal:
		return 100
	case ideal + 1:
		return 60
	case ideal - 1:
		return 40
	default:
		return 20
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
