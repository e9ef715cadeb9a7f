package server

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/logging"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/server/middleware"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Metric sources for scores computed by the service
const (
	sourceScore       = "score"
	sourceRecalculate = "recalculate"
)

// handleScore scores a résumé against an ideal profile without touching storage.
// Results are served from the cache when an identical request was scored before.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	var key string
	if s.cache != nil {
		var err error
		key, err = cache.Key(&req.Resume, &req.IdealProfile, req.FullProfile)
		if err != nil {
			s.logger.Warn("failed to build cache key", zap.Error(err))
		}
	}

	if key != "" {
		cached, ok, err := s.cache.Get(r.Context(), key)
		switch {
		case err != nil:
			s.metrics.CacheError()
			s.logger.Warn("score cache lookup failed", zap.Error(err))
		case ok:
			s.metrics.CacheHit()
			w.Header().Set("X-Cache", "HIT")
			s.jsonResponse(w, http.StatusOK, cached)
			return
		default:
			s.metrics.CacheMiss()
		}
	}

	result := scoring.ScoreAll(&req.Resume, &req.IdealProfile, req.FullProfile)
	s.metrics.ObserveScore(sourceScore, result.Composite)
	s.logger.Debug("scored résumé", logging.ScoreFields(&result)...)

	if key != "" {
		if err := s.cache.Set(r.Context(), key, &result); err != nil {
			s.logger.Warn("failed to cache score", zap.Error(err))
		}
		w.Header().Set("X-Cache", "MISS")
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRecalculateScore rescores the caller's stored résumé variant for a job
// application and writes the new scores back to the application's analysis.
func (s *Server) handleRecalculateScore(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrUnavailable{Feature: "score recalculation"})
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.RecalculateRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.JobApplicationID == uuid.Nil {
		s.writeError(w, &ErrValidation{Field: "job_application_id", Message: "job_application_id is required"})
		return
	}

	var (
		variant  *db.ResumeVariant
		analysis *db.Analysis
		master   *db.MasterResume
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		variant, err = s.store.GetResumeVariant(gctx, req.JobApplicationID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		analysis, err = s.store.GetAnalysis(gctx, req.JobApplicationID)
		return err
	})
	g.Go(func() error {
		var err error
		master, err = s.store.GetMasterResume(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, err)
		return
	}

	if variant == nil {
		s.writeError(w, &ErrNotFound{Resource: "resume variant", ID: req.JobApplicationID})
		return
	}
	if analysis == nil || analysis.IdealResume == nil {
		s.writeError(w, &ErrValidation{
			Field:   "job_application_id",
			Message: "no ideal profile has been generated for this application; run the analysis first",
		})
		return
	}

	var full *types.ResumeProfile
	if master != nil {
		full = &master.Content
	}

	result := scoring.ScoreAll(&variant.Content, analysis.IdealResume, full)
	if err := s.store.UpdateAnalysisScores(r.Context(), analysis.ID, db.NewScoreUpdate(&result)); err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.ObserveScore(sourceRecalculate, result.Composite)
	s.logger.Info("recalculated score",
		append(logging.ScoreFields(&result),
			zap.String("job_application_id", req.JobApplicationID.String()),
			zap.String("analysis_id", analysis.ID.String()),
		)...,
	)

	s.jsonResponse(w, http.StatusOK, types.RecalculateResponse{
		KeywordScore:           result.KeywordScore,
		MeasurableResultsScore: result.MeasurableResultsScore,
		StructureScore:         result.StructureScore,
		Composite:              result.Composite,
		MaxAchievable:          result.MaxAchievable,
	})
}

// handleRecalculateUnavailable answers the recalculation route when no token
// secret is configured.
func (s *Server) handleRecalculateUnavailable(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, &ErrUnavailable{Feature: "score recalculation"})
}
