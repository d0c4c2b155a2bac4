package workflow

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/logger"
	"github.com/spigell/hiring-portal/internal/metrics"
	"github.com/spigell/hiring-portal/internal/upload"
)

// BiasChecker compares a job description with a sample résumé.
type BiasChecker interface {
	CheckBias(ctx context.Context, jobDescription, resume upload.File) (*hiring.BiasResponse, error)
}

type BiasRequest struct {
	JobDescription upload.File
	Resume         upload.File
	OnProgress     ProgressFunc
}

// Bias coordinates bias checks. Like Analysis it settles failures as a
// synthetic result.
type Bias struct {
	coordinator
	checker  BiasChecker
	progress ProgressConfig
	random   func() float64
}

func NewBias(checker BiasChecker, deps Deps, progress ProgressConfig) *Bias {
	return &Bias{
		coordinator: newCoordinator(flowBias, deps),
		checker:     checker,
		progress:    progress,
		random:      rand.Float64,
	}
}

func (b *Bias) validate(req BiasRequest) error {
	if req.JobDescription.IsZero() {
		return ErrMissingJobDescription
	}
	if req.Resume.IsZero() {
		return ErrMissingFile
	}
	return CheckSubmit(b.session)
}

func (b *Bias) Submit(ctx context.Context, req BiasRequest) (*BiasResult, error) {
	if !b.machine.begin() {
		b.metrics.Rejected(b.flow, ErrAlreadyInFlight.Reason)
		return nil, ErrAlreadyInFlight
	}

	if err := b.validate(req); err != nil {
		return nil, b.reject(err)
	}

	ctx, log := b.dispatch(ctx)
	log.Info("checking bias",
		zap.String("jd", req.JobDescription.Name),
		zap.String("resume", req.Resume.Name),
	)

	started := b.now()
	ticker := startProgress(b.progress, b.random, req.OnProgress)
	resp, err := b.checker.CheckBias(ctx, req.JobDescription, req.Resume)
	ticker.Stop()

	b.machine.transition(log, StateReconciling)

	var result *BiasResult
	outcome := metrics.OutcomeLive
	if err != nil {
		outcome = metrics.OutcomeSynthetic
		result = syntheticBias(req.JobDescription.Name, req.Resume.Name, err)
		log.Warn("bias check failed, substituting synthetic result", zap.Error(err))
	} else {
		result = reconcileBias(resp, req.JobDescription.Name, req.Resume.Name)
	}

	if req.OnProgress != nil {
		req.OnProgress(100)
	}

	b.machine.transition(log, StateSettled)
	took := b.now().Sub(started)
	b.metrics.Settled(b.flow, outcome, took)
	log.Info("bias check settled", append(
		logger.Settlement(string(result.Origin), outcome, took),
		zap.Float64("overall_score", result.OverallScore),
	)...)

	return result, nil
}
