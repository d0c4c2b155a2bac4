package workflow

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/logger"
	"github.com/spigell/hiring-portal/internal/metrics"
	"github.com/spigell/hiring-portal/internal/upload"
)

// Matcher scores one résumé against a job description.
type Matcher interface {
	MatchResume(ctx context.Context, jobDescription string, resume upload.File) (*hiring.MatchResponse, error)
}

type MatchRequest struct {
	Resume     upload.File
	Job        *hiring.JobPosting
	OnProgress ProgressFunc
}

// Analysis coordinates single résumé matches. Transport and server errors
// never reach the caller: they settle as a synthetic result instead.
type Analysis struct {
	coordinator
	matcher  Matcher
	progress ProgressConfig
	random   func() float64
}

func NewAnalysis(matcher Matcher, deps Deps, progress ProgressConfig) *Analysis {
	return &Analysis{
		coordinator: newCoordinator(flowMatch, deps),
		matcher:     matcher,
		progress:    progress,
		random:      rand.Float64,
	}
}

func (a *Analysis) validate(req MatchRequest) error {
	if req.Resume.IsZero() {
		return ErrMissingFile
	}
	if req.Job == nil || strings.TrimSpace(req.Job.Description) == "" {
		return ErrNoTargetSelected
	}
	return CheckSubmit(a.session)
}

// Submit runs one match to completion. The returned error is always a
// *Rejection raised before any network call.
func (a *Analysis) Submit(ctx context.Context, req MatchRequest) (*AnalysisResult, error) {
	if !a.machine.begin() {
		a.metrics.Rejected(a.flow, ErrAlreadyInFlight.Reason)
		return nil, ErrAlreadyInFlight
	}

	if err := a.validate(req); err != nil {
		return nil, a.reject(err)
	}

	ctx, log := a.dispatch(ctx)
	log.Info("matching resume",
		zap.String("resume", req.Resume.Name),
		zap.String("job_id", req.Job.ID),
		zap.String("job_title", req.Job.Title),
	)

	started := a.now()
	ticker := startProgress(a.progress, a.random, req.OnProgress)
	resp, err := a.matcher.MatchResume(ctx, req.Job.Description, req.Resume)
	ticker.Stop()

	a.machine.transition(log, StateReconciling)

	var result *AnalysisResult
	outcome := metrics.OutcomeLive
	if err != nil {
		outcome = metrics.OutcomeSynthetic
		result = syntheticMatch(req.Job, err)
		log.Warn("match failed, substituting synthetic result", zap.Error(err))
	} else {
		result = reconcileMatch(resp, req.Job)
	}

	if req.OnProgress != nil {
		req.OnProgress(100)
	}

	a.machine.transition(log, StateSettled)
	took := a.now().Sub(started)
	a.metrics.Settled(a.flow, outcome, took)
	log.Info("match settled", append(
		logger.Settlement(string(result.Origin), outcome, took),
		zap.Float64("match_score", result.MatchScore),
	)...)

	return result, nil
}
