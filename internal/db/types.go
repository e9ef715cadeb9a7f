package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scorer/internal/types"
)

// ResumeVariant is the job-specific résumé a user is editing
type ResumeVariant struct {
	ID               uuid.UUID           `json:"id"`
	JobApplicationID uuid.UUID           `json:"job_application_id"`
	UserID           uuid.UUID           `json:"user_id"`
	Content          types.ResumeProfile `json:"content"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// MasterResume is the user's full profile, the superset of every variant
type MasterResume struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Content   types.ResumeProfile `json:"content"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Analysis is the stored AI analysis of a job application. IdealResume is
// nil until the full analysis has run.
type Analysis struct {
	ID                     uuid.UUID             `json:"id"`
	JobApplicationID       uuid.UUID             `json:"job_application_id"`
	IdealResume            *types.IdealProfile   `json:"ideal_resume,omitempty"`
	ATSScore               *int                  `json:"ats_score,omitempty"`
	KeywordScore           *int                  `json:"keyword_score,omitempty"`
	MeasurableResultsScore *int                  `json:"measurable_results_score,omitempty"`
	StructureScore         *int                  `json:"structure_score,omitempty"`
	MaxAchievableScore     *int                  `json:"max_achievable_score,omitempty"`
	DetailedScores         *types.DetailedScores `json:"detailed_scores,omitempty"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

// ScoreUpdate is the set of columns written back after rescoring
type ScoreUpdate struct {
	ATSScore               int
	KeywordScore           int
	MeasurableResultsScore int
	StructureScore         int
	MaxAchievableScore     *int // NULL when no master résumé exists
	DetailedScores         types.DetailedScores
}

// NewScoreUpdate builds the column values for a score result.
func NewScoreUpdate(result *types.ScoreResult) ScoreUpdate {
	return ScoreUpdate{
		ATSScore:               result.Composite,
		KeywordScore:           result.KeywordScore,
		MeasurableResultsScore: result.MeasurableResultsScore,
		StructureScore:         result.StructureScore,
		MaxAchievableScore:     result.MaxAchievable,
		DetailedScores:         result.Details,
	}
}
