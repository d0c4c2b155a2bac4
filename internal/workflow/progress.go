package workflow

import (
	"math/rand/v2"
	"time"
)

// ProgressConfig shapes the simulated progress shown while a request is
// outstanding. The value is feedback only and never drives logic.
type ProgressConfig struct {
	Interval time.Duration
	// Cap must stay below 100; 100 is reserved for the settled result.
	Cap float64
	// MaxStep is the largest increment per tick.
	MaxStep float64
}

func DefaultProgress() ProgressConfig {
	return ProgressConfig{
		Interval: 300 * time.Millisecond,
		Cap:      90,
		MaxStep:  30,
	}
}

func (c ProgressConfig) normalized() ProgressConfig {
	def := DefaultProgress()
	if c.Interval <= 0 {
		c.Interval = def.Interval
	}
	if c.Cap <= 0 || c.Cap >= 100 {
		c.Cap = def.Cap
	}
	if c.MaxStep <= 0 {
		c.MaxStep = def.MaxStep
	}
	return c
}

// ProgressFunc receives progress values in [0, 100]. It is called from a
// timer goroutine while the request is outstanding.
type ProgressFunc func(percent float64)

type progressTicker struct {
	stop chan struct{}
	done chan struct{}
}

// startProgress emits 0 immediately, then advances by random increments
// until Cap. A nil emit disables the ticker.
func startProgress(cfg ProgressConfig, random func() float64, emit ProgressFunc) *progressTicker {
	p := &progressTicker{stop: make(chan struct{}), done: make(chan struct{})}
	if emit == nil {
		close(p.done)
		return p
	}

	cfg = cfg.normalized()
	if random == nil {
		random = rand.Float64
	}

	emit(0)

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		value := 0.0
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				if value >= cfg.Cap {
					continue
				}
				value = min(value+random()*cfg.MaxStep, cfg.Cap)
				select {
				case <-p.stop:
					return
				default:
				}
				emit(value)
			}
		}
	}()

	return p
}

// Stop halts the ticker and waits until no further emission can happen.
func (p *progressTicker) Stop() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
	<-p.done
}
