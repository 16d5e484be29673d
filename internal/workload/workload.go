// Package workload drives a pool of reusable buffers through a configured
// acquire/release pattern and reports what happened. It is the engine
// behind the objpool run command.
//
// # Overview
//
// Each round acquires Burst buffers, writes PayloadSize bytes into each one
// and then releases them all in LIFO or FIFO order. Because the pool reuses
// instances, only the first round should construct buffers; every later
// acquire is a reuse. The runner counts constructions and teardowns in its
// own factory and teardown hooks, so the report reflects what the buffers
// saw rather than anything the pool tracks.
//
// # Basic Usage
//
//	cfg := config.NewWorkloadConfig("smoke")
//	report, err := workload.Run(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	out, _ := report.JSON()
package workload

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/errors"
	"github.com/ajitpratap0/objectpool/pkg/logger"
	"github.com/ajitpratap0/objectpool/pkg/pool"
)

// Runner executes one workload. A Runner is single use and not safe for
// concurrent use, like the pool it drives.
type Runner struct {
	cfg    *config.WorkloadConfig
	logger *zap.Logger

	constructed int
	tornDown    int
}

// PoolName is the pool name attached to workload log entries.
const PoolName = "buffers"

// NewRunner creates a runner for cfg. A nil log means the global logger.
func NewRunner(cfg *config.WorkloadConfig, log *zap.Logger) *Runner {
	return &Runner{cfg: cfg, logger: log}
}

// Run is shorthand for NewRunner(cfg, log).Run(ctx).
func Run(ctx context.Context, cfg *config.WorkloadConfig, log *zap.Logger) (*Report, error) {
	return NewRunner(cfg, log).Run(ctx)
}

// Run executes the configured rounds. Cancellation is checked between
// rounds; a cancelled run still releases its handles, closes the pool and
// returns the partial report together with an ErrorTypeCancelled error.
//
// Log entries carry the run name plus the pool name and any run ID
// (logger.RunIDKey) found in ctx.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, logger.PoolKey, PoolName)
	log := logger.WithContext(ctx)
	if r.logger != nil {
		log = r.logger.With(logger.ContextFields(ctx)...)
	}
	log = log.With(zap.String("run", r.cfg.Name))

	w := r.cfg.Workload
	p := pool.New(
		pool.WithFactory(r.newBuffer),
		pool.WithTeardown(r.teardown),
		pool.WithLogger[Buffer](log.Named("pool")),
	)

	report := &Report{
		Name:         r.cfg.Name,
		ReleaseOrder: string(w.ReleaseOrder),
	}
	handles := make([]*pool.Handle[Buffer], 0, w.Burst)
	start := time.Now()

	log.Info("workload started",
		zap.Int("rounds", w.Rounds),
		zap.Int("burst", w.Burst),
		zap.Int("payload_size", w.PayloadSize),
		zap.String("release_order", string(w.ReleaseOrder)))

	var runErr error
	for round := 0; round < w.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			report.Cancelled = true
			runErr = errors.Wrap(err, errors.ErrorTypeCancelled, "workload cancelled").
				WithDetail("completed_rounds", round)
			break
		}

		for i := 0; i < w.Burst; i++ {
			h, err := p.Acquire()
			if err != nil {
				runErr = err
				break
			}
			report.BytesWritten += int64(h.Value().fill(round, w.PayloadSize))
			handles = append(handles, h)
			report.Acquires++
		}
		if len(handles) > report.PeakCheckedOut {
			report.PeakCheckedOut = len(handles)
		}

		report.Releases += releaseAll(handles, w.ReleaseOrder)
		handles = handles[:0]

		if runErr != nil {
			break
		}
		report.Rounds++

		if p.Idle() != r.constructed {
			runErr = errors.Newf(errors.ErrorTypeInternal,
				"pool holds %d idle buffers after round %d, constructed %d", p.Idle(), round, r.constructed)
			break
		}
	}

	if err := p.Close(); err != nil {
		log.Warn("pool close reported teardown failures", zap.Error(err))
		if runErr == nil {
			runErr = err
		}
	}

	report.Constructions = r.constructed
	report.Reuses = report.Acquires - r.constructed
	report.TornDown = r.tornDown
	report.Duration = time.Since(start)

	log.Info("workload finished",
		zap.Int("rounds", report.Rounds),
		zap.Int("acquires", report.Acquires),
		zap.Int("constructions", report.Constructions),
		zap.Int("reuses", report.Reuses),
		zap.Duration("duration", report.Duration),
		zap.Bool("cancelled", report.Cancelled))

	return report, runErr
}

func (r *Runner) newBuffer() (*Buffer, error) {
	r.constructed++
	return &Buffer{Serial: r.constructed}, nil
}

func (r *Runner) teardown(b *Buffer) error {
	r.tornDown++
	return b.Close()
}

// releaseAll releases handles in the given order and returns how many were
// released.
func releaseAll(handles []*pool.Handle[Buffer], order config.ReleaseOrder) int {
	n := len(handles)
	switch order {
	case config.ReleaseFIFO:
		for _, h := range handles {
			h.Release()
		}
	default:
		for i := n - 1; i >= 0; i-- {
			handles[i].Release()
		}
	}
	return n
}
