package workflow

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/session"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateInFlight
	StateReconciling
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateInFlight:
		return "in_flight"
	case StateReconciling:
		return "reconciling"
	case StateSettled:
		return "settled"
	default:
		return "idle"
	}
}

const (
	flowMatch = "match"
	flowBatch = "batch"
	flowBias  = "bias"
)

// SessionSource gives coordinators read-only access to the session.
type SessionSource interface {
	Current() session.Session
}

// machine guards the lifecycle shared by all coordinators: at most one
// submission between Validating and Settled.
type machine struct {
	mu    sync.Mutex
	state State
}

// begin moves a fresh submission to Validating. It fails when another
// submission has not settled yet.
func (m *machine) begin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateValidating, StateInFlight, StateReconciling:
		return false
	}

	m.state = StateValidating
	return true
}

func (m *machine) transition(log *zap.Logger, to State) {
	m.mu.Lock()
	from := m.state
	m.state = to
	m.mu.Unlock()

	log.Debug("state transition", zap.Stringer("from", from), zap.Stringer("to", to))
}

func (m *machine) current() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// CheckSubmit maps the session capability onto the rejection a coordinator
// reports.
func CheckSubmit(src SessionSource) error {
	if src == nil {
		return ErrNotAuthenticated
	}

	s := src.Current()
	if s.Capabilities().Submit {
		return nil
	}
	if s.IsGuest() {
		return ErrGuestNotPermitted
	}
	return ErrNotAuthenticated
}
