package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-scorer/internal/types"
)

// GetAnalysis retrieves the analysis of a job application. Returns nil, nil
// when no analysis exists.
func (db *DB) GetAnalysis(ctx context.Context, jobApplicationID uuid.UUID) (*Analysis, error) {
	var a Analysis
	var idealBytes, detailBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_application_id, ideal_resume, ats_score, keyword_score,
		        measurable_results_score, structure_score, max_achievable_score,
		        detailed_scores, updated_at
		 FROM ai_analyses WHERE job_application_id = $1`,
		jobApplicationID,
	).Scan(&a.ID, &a.JobApplicationID, &idealBytes, &a.ATSScore, &a.KeywordScore,
		&a.MeasurableResultsScore, &a.StructureScore, &a.MaxAchievableScore,
		&detailBytes, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if a.IdealResume, err = decodeOptional[types.IdealProfile](idealBytes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ideal resume for analysis %s: %w", a.ID, err)
	}
	if a.DetailedScores, err = decodeOptional[types.DetailedScores](detailBytes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal detailed scores for analysis %s: %w", a.ID, err)
	}
	return &a, nil
}

// UpdateAnalysisScores writes recomputed scores to an analysis row
func (db *DB) UpdateAnalysisScores(ctx context.Context, analysisID uuid.UUID, update ScoreUpdate) error {
	detailBytes, err := json.Marshal(update.DetailedScores)
	if err != nil {
		return fmt.Errorf("failed to marshal detailed scores: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE ai_analyses
		 SET ats_score = $1, keyword_score = $2, measurable_results_score = $3,
		     structure_score = $4, max_achievable_score = $5, detailed_scores = $6,
		     updated_at = NOW()
		 WHERE id = $7`,
		update.ATSScore, update.KeywordScore, update.MeasurableResultsScore,
		update.StructureScore, update.MaxAchievableScore, detailBytes, analysisID,
	)
	if err != nil {
		return fmt.Errorf("failed to update analysis scores: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", analysisID)
	}
	return nil
}

// decodeOptional decodes a nullable JSONB column; SQL NULL and JSON null both yield nil.
func decodeOptional[T any](data []byte) (*T, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
