package types

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Importance is the priority tier of a keyword
type Importance string

// Keyword importance tiers
const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice_to_have"
)

// Weight returns the scoring weight of the tier (critical=3, important=2, nice_to_have=1).
func (i Importance) Weight() int {
	switch i {
	case ImportanceCritical:
		return 3
	case ImportanceImportant:
		return 2
	case ImportanceNiceToHave:
		return 1
	}
	return 0
}

// UnmarshalJSON rejects unknown importance tiers.
func (i *Importance) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed := Importance(raw)
	if parsed.Weight() == 0 {
		return fmt.Errorf("unknown keyword importance %q", raw)
	}
	*i = parsed
	return nil
}

// KeywordCategory names one of the five keyword groups
type KeywordCategory string

// Keyword categories
const (
	CategoryHardSkills     KeywordCategory = "hard_skills"
	CategorySoftSkills     KeywordCategory = "soft_skills"
	CategoryIndustryTerms  KeywordCategory = "industry_terms"
	CategoryQualifications KeywordCategory = "qualifications"
	CategoryActionVerbs    KeywordCategory = "action_verbs"
)

// AllKeywordCategories returns the categories in their fixed iteration order.
func AllKeywordCategories() []KeywordCategory {
	return []KeywordCategory{
		CategoryHardSkills,
		CategorySoftSkills,
		CategoryIndustryTerms,
		CategoryQualifications,
		CategoryActionVerbs,
	}
}

// KeywordEntry is a single keyword expected by the ideal profile
type KeywordEntry struct {
	Keyword    string     `json:"keyword" validate:"required,notblank"`
	Importance Importance `json:"importance" validate:"required,oneof=critical important nice_to_have"`
	Frequency  int        `json:"frequency" validate:"min=0"` // informational only
}

// KeywordMap groups expected keywords by category. The category set is fixed.
type KeywordMap struct {
	HardSkills     []KeywordEntry `json:"hard_skills" validate:"dive"`
	SoftSkills     []KeywordEntry `json:"soft_skills" validate:"dive"`
	IndustryTerms  []KeywordEntry `json:"industry_terms" validate:"dive"`
	Qualifications []KeywordEntry `json:"qualifications" validate:"dive"`
	ActionVerbs    []KeywordEntry `json:"action_verbs" validate:"dive"`
}

// Entries returns the keywords of one category.
func (m *KeywordMap) Entries(category KeywordCategory) []KeywordEntry {
	switch category {
	case CategoryHardSkills:
		return m.HardSkills
	case CategorySoftSkills:
		return m.SoftSkills
	case CategoryIndustryTerms:
		return m.IndustryTerms
	case CategoryQualifications:
		return m.Qualifications
	case CategoryActionVerbs:
		return m.ActionVerbs
	}
	return nil
}

// Each calls fn for every keyword, category by category in fixed order.
func (m *KeywordMap) Each(fn func(category KeywordCategory, entry KeywordEntry)) {
	for _, category := range AllKeywordCategories() {
		for _, entry := range m.Entries(category) {
			fn(category, entry)
		}
	}
}

// IdealStructure describes the structural targets of the ideal résumé
type IdealStructure struct {
	SectionOrder             []Section `json:"section_order"`
	BulletCountPerExperience int       `json:"bullet_count_per_experience" validate:"min=0"`
	HasSummary               bool      `json:"has_summary"`
	SummaryLengthRange       [2]int    `json:"summary_length_range"` // [min, max] words
	TotalPageCount           int       `json:"total_page_count" validate:"oneof=1 2"`
}

// SummaryMin returns the lower bound of the summary word range.
func (s *IdealStructure) SummaryMin() int { return s.SummaryLengthRange[0] }

// SummaryMax returns the upper bound of the summary word range.
func (s *IdealStructure) SummaryMax() int { return s.SummaryLengthRange[1] }

// IdealEducation is a degree the ideal candidate would hold
type IdealEducation struct {
	Degree string `json:"degree"`
	Field  string `json:"field"`
}

// IdealProfile is the externally generated target profile for one job posting
type IdealProfile struct {
	Summary                     string           `json:"summary"`
	ExperienceBullets           []string         `json:"experience_bullets"`
	Skills                      []string         `json:"skills"`
	Education                   []IdealEducation `json:"education"`
	SectionOrder                []Section        `json:"section_order"`
	KeywordMap                  KeywordMap       `json:"keyword_map"`
	IdealMeasurableResultsCount int              `json:"ideal_measurable_results_count" validate:"min=0"`
	IdealStructure              IdealStructure   `json:"ideal_structure"`
}

// Validate validates the IdealProfile using the validator.
func (p *IdealProfile) Validate() error {
	return newValidator().Struct(p)
}

// newValidator returns a validator with the cross-field rules of the scoring types registered.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterStructValidation(idealStructureRules, IdealStructure{})
	return validate
}

func idealStructureRules(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(IdealStructure)
	if !ok {
		return
	}
	if s.SummaryLengthRange[0] < 0 {
		sl.ReportError(s.SummaryLengthRange, "SummaryLengthRange", "summary_length_range", "min", "0")
	}
	if s.SummaryLengthRange[0] > s.SummaryLengthRange[1] {
		sl.ReportError(s.SummaryLengthRange, "SummaryLengthRange", "summary_length_range", "ltefield", "max")
	}
}
