package workflow

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/logger"
	"github.com/spigell/hiring-portal/internal/metrics"
	"github.com/spigell/hiring-portal/internal/upload"
)

// Ranker ranks a set of résumés in one multipart submission.
type Ranker interface {
	BulkAnalyze(ctx context.Context, jobDescription string, resumes []upload.File) (*hiring.RankResponse, error)
	RankCandidates(ctx context.Context, jobID, jobDescription string, resumes []upload.File) (*hiring.RankResponse, error)
}

type Variant int

const (
	// VariantBulk ranks against a free-form description.
	VariantBulk Variant = iota
	// VariantJobScoped ranks against a posted job.
	VariantJobScoped
)

func (v Variant) String() string {
	if v == VariantJobScoped {
		return "job_scoped"
	}
	return "bulk"
}

type BatchRequest struct {
	Variant Variant
	// JobDescription takes precedence over DescriptionFile.
	JobDescription  string
	DescriptionFile upload.File
	JobID           string
	Resumes         []upload.File
}

func (r BatchRequest) description() string {
	if text := strings.TrimSpace(r.JobDescription); text != "" {
		return text
	}
	return strings.TrimSpace(r.DescriptionFile.Text())
}

// Batch coordinates multi résumé rankings. A failed ranking is returned to
// the caller as is and leaves no result.
type Batch struct {
	coordinator
	ranker Ranker
}

func NewBatch(ranker Ranker, deps Deps) *Batch {
	return &Batch{
		coordinator: newCoordinator(flowBatch, deps),
		ranker:      ranker,
	}
}

func (b *Batch) validate(req BatchRequest) error {
	if req.description() == "" {
		return ErrMissingJobDescription
	}
	if len(req.Resumes) == 0 {
		return ErrNoResumesSelected
	}
	for _, r := range req.Resumes {
		if r.IsZero() {
			return ErrMissingFile
		}
	}
	if req.Variant == VariantJobScoped && strings.TrimSpace(req.JobID) == "" {
		return ErrNoJobContext
	}
	return CheckSubmit(b.session)
}

func (b *Batch) Submit(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if !b.machine.begin() {
		b.metrics.Rejected(b.flow, ErrAlreadyInFlight.Reason)
		return nil, ErrAlreadyInFlight
	}

	if err := b.validate(req); err != nil {
		return nil, b.reject(err)
	}

	ctx, log := b.dispatch(ctx)
	log.Info("ranking resumes",
		zap.Stringer("variant", req.Variant),
		zap.String("job_id", req.JobID),
		zap.Int("resumes", len(req.Resumes)),
	)

	started := b.now()
	var (
		resp *hiring.RankResponse
		err  error
	)
	switch req.Variant {
	case VariantJobScoped:
		resp, err = b.ranker.RankCandidates(ctx, req.JobID, req.description(), req.Resumes)
	default:
		resp, err = b.ranker.BulkAnalyze(ctx, req.description(), req.Resumes)
	}

	if err != nil {
		b.machine.transition(log, StateSettled)
		b.metrics.Settled(b.flow, metrics.OutcomeFailed, b.now().Sub(started))
		log.Error("ranking failed", zap.Error(err))

		return nil, err
	}

	b.machine.transition(log, StateReconciling)
	result := reconcileBatch(resp)

	if top := result.TopCandidate(); top != nil && resp.TopCandidate != nil && resp.TopCandidate.Name() != top.Filename {
		log.Debug("service top candidate differs from local ranking",
			zap.String("service", resp.TopCandidate.Name()),
			zap.String("local", top.Filename),
		)
	}

	b.machine.transition(log, StateSettled)
	took := b.now().Sub(started)
	b.metrics.Settled(b.flow, metrics.OutcomeSuccess, took)
	log.Info("ranking settled", append(
		logger.Settlement("", metrics.OutcomeSuccess, took),
		zap.Int("candidates", len(result.Candidates)),
		zap.String("top", topName(result)),
	)...)

	return result, nil
}

func topName(b *BatchResult) string {
	if top := b.TopCandidate(); top != nil {
		return top.Filename
	}
	return ""
}
