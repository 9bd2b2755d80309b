// Package scheduler runs the delivery worker on a fixed interval for
// deployments without an external cron caller.
package scheduler

import (
	"agencydesk-server/internal/emailqueue/processor"
	"agencydesk-server/internal/observability"
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// QueueRunner runs one delivery batch
type QueueRunner interface {
	ProcessQueue(ctx context.Context) (processor.BatchResult, error)
}

type Scheduler struct {
	cron     *cron.Cron
	runner   QueueRunner
	interval time.Duration
	logger   *observability.Logger
}

func New(runner QueueRunner, interval time.Duration, logger *observability.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

// Start begins periodic queue processing. Batches never overlap: cron skips
// a tick while the previous run is still active.
func (s *Scheduler) Start(ctx context.Context) {
	job := cron.FuncJob(func() {
		if _, err := s.runner.ProcessQueue(ctx); err != nil {
			s.logger.Error(ctx, "scheduled queue run failed", err)
		}
	})

	s.cron.Schedule(cron.Every(s.interval), cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(job))
	s.cron.Start()
	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "interval", Value: s.interval.String()},
	), "queue scheduler started")
}

// Stop halts scheduling and waits for a running batch to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
