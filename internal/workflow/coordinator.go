// Package workflow drives the submission lifecycle of the single match,
// batch ranking and bias check flows.
package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/logger"
	"github.com/spigell/hiring-portal/internal/metrics"
)

// Deps are the collaborators shared by every coordinator.
type Deps struct {
	Session SessionSource
	Logger  *zap.Logger
	Metrics *metrics.Recorder
}

type coordinator struct {
	flow    string
	machine machine
	session SessionSource
	logger  *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func newCoordinator(flow string, deps Deps) coordinator {
	return coordinator{
		flow:    flow,
		session: deps.Session,
		logger:  logger.ForFlow(deps.Logger, flow),
		metrics: deps.Metrics,
		now:     time.Now,
	}
}

// reject returns the machine to Idle and reports a local validation error.
func (c *coordinator) reject(err error) error {
	c.machine.transition(c.logger, StateIdle)
	c.metrics.Rejected(c.flow, rejectionReason(err))
	c.logger.Info("submission rejected", zap.String("reason", rejectionReason(err)))

	return err
}

// dispatch tags ctx with a fresh request id and moves the machine to InFlight.
func (c *coordinator) dispatch(ctx context.Context) (context.Context, *zap.Logger) {
	id := uuid.NewString()
	log := logger.ForSubmission(c.logger, id)

	c.machine.transition(log, StateInFlight)

	return hiring.WithRequestID(ctx, id), log
}

func (c *coordinator) State() State {
	return c.machine.current()
}
