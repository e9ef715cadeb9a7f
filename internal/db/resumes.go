package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetResumeVariant retrieves the variant a user keeps for a job application.
// Returns nil, nil when there is none.
func (db *DB) GetResumeVariant(ctx context.Context, jobApplicationID, userID uuid.UUID) (*ResumeVariant, error) {
	var v ResumeVariant
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_application_id, user_id, content, created_at, updated_at
		 FROM resume_variants WHERE job_application_id = $1 AND user_id = $2`,
		jobApplicationID, userID,
	).Scan(&v.ID, &v.JobApplicationID, &v.UserID, &content, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume variant: %w", err)
	}

	if err := json.Unmarshal(content, &v.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume variant %s: %w", v.ID, err)
	}
	return &v, nil
}

// GetMasterResume retrieves a user's full profile. Returns nil, nil when the
// user has none.
func (db *DB) GetMasterResume(ctx context.Context, userID uuid.UUID) (*MasterResume, error) {
	var m MasterResume
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content, created_at, updated_at
		 FROM master_resumes WHERE user_id = $1`,
		userID,
	).Scan(&m.ID, &m.UserID, &content, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get master resume: %w", err)
	}

	if err := json.Unmarshal(content, &m.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal master resume %s: %w", m.ID, err)
	}
	return &m, nil
}
