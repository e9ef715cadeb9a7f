package types

// KeywordMatch is an expected keyword found in the résumé
type KeywordMatch struct {
	Keyword    string          `json:"keyword"`
	Category   KeywordCategory `json:"category"`
	Importance Importance      `json:"importance"`
	FoundIn    []string        `json:"found_in"`
}

// KeywordMiss is an expected keyword absent from the résumé
type KeywordMiss struct {
	Keyword       string          `json:"keyword"`
	Category      KeywordCategory `json:"category"`
	Importance    Importance      `json:"importance"`
	InFullProfile bool            `json:"in_master_resume"` // present in the candidate's full profile
}

// KeywordScoreResult is the outcome of keyword matching
type KeywordScoreResult struct {
	Score   int            `json:"score"`
	Matched []KeywordMatch `json:"matched_keywords"`
	Missing []KeywordMiss  `json:"missing_keywords"`
}

// Bullet sources
const (
	BulletSourceExperience = "experience"
	BulletSourceProject    = "project"
)

// BulletAssessment records whether one bullet carries a measurable result
type BulletAssessment struct {
	Source      string `json:"source"` // experience or project
	EntryIndex  int    `json:"experience_index"`
	BulletIndex int    `json:"bullet_index"`
	HasMetric   bool   `json:"has_metric"`
	Text        string `json:"text"`
}

// MeasurableResultsScoreResult is the outcome of the quantified-achievement scan
type MeasurableResultsScoreResult struct {
	Score              int                `json:"score"`
	TotalBullets       int                `json:"total_bullets"`
	BulletsWithMetrics int                `json:"bullets_with_metrics"` // includes the summary when flagged
	IdealCount         int                `json:"ideal_count"`
	BulletAssessments  []BulletAssessment `json:"bullet_assessments"`
	SummaryHasMetric   bool               `json:"summary_has_metric"`
}

// BulletCountDetail compares one experience entry's bullet count with the target
type BulletCountDetail struct {
	Company string `json:"company"`
	Current int    `json:"current"`
	Ideal   int    `json:"ideal"`
}

// StructureScoreResult is the outcome of the structural comparison
type StructureScoreResult struct {
	Score              int                 `json:"score"`
	SectionOrderScore  int                 `json:"section_order_score"`
	CompletenessScore  int                 `json:"completeness_score"`
	SummaryScore       int                 `json:"summary_score"`
	BulletCountScore   int                 `json:"bullet_count_score"`
	PageLengthScore    int                 `json:"page_length_score"`
	CurrentOrder       []Section           `json:"current_order"`
	IdealOrder         []Section           `json:"ideal_order"`
	MissingSections    []Section           `json:"missing_sections"`
	SummaryWordCount   int                 `json:"summary_word_count"`
	SummaryIdealRange  [2]int              `json:"summary_ideal_range"`
	BulletCountDetails []BulletCountDetail `json:"bullet_count_details"`
	EstimatedPages     int                 `json:"estimated_pages"`
	IdealPages         int                 `json:"ideal_pages"`
}

// DetailedScores carries every sub-result for display
type DetailedScores struct {
	KeywordUsage      KeywordScoreResult           `json:"keyword_usage"`
	MeasurableResults MeasurableResultsScoreResult `json:"measurable_results"`
	Structure         StructureScoreResult         `json:"structure"`
	Composite         int                          `json:"composite"`
	MaxAchievable     int                          `json:"max_achievable"`
}

// ScoreResult is the top-level output of the scoring engine
type ScoreResult struct {
	KeywordScore           int            `json:"keyword_score"`
	MeasurableResultsScore int            `json:"measurable_results_score"`
	StructureScore         int            `json:"structure_score"`
	Composite              int            `json:"composite"`
	MaxAchievable          *int           `json:"max_achievable"`
	IsEstimate             bool           `json:"is_estimate"`
	Details                DetailedScores `json:"detailed_scores"`
}
