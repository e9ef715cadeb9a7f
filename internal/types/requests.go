package types

import "github.com/google/uuid"

// ScoreRequest is the body of a stateless scoring call.
type ScoreRequest struct {
	Resume       ResumeProfile  `json:"resume"`
	IdealProfile IdealProfile   `json:"ideal_profile"`
	FullProfile  *ResumeProfile `json:"full_profile,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	return newValidator().Struct(r)
}

// RecalculateRequest asks the service to rescore a stored résumé variant.
type RecalculateRequest struct {
	JobApplicationID uuid.UUID `json:"job_application_id"`
}

// RecalculateResponse is returned after a stored analysis has been rescored.
type RecalculateResponse struct {
	KeywordScore           int  `json:"keyword_score"`
	MeasurableResultsScore int  `json:"measurable_results_score"`
	StructureScore         int  `json:"structure_score"`
	Composite              int  `json:"composite"`
	MaxAchievable          *int `json:"max_achievable"`
}
