// Package jobs runs periodic background work on a cron schedule.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sbilibin2017/askaround/internal/logger"
)

// Scheduler runs registered jobs; a run still in progress makes the next tick skip.
type Scheduler struct {
	cron  *cron.Cron
	chain cron.Chain
	jobs  []cron.Job
}

// NewScheduler creates a stopped scheduler.
func NewScheduler() *Scheduler {
	l := cronLogger{}
	return &Scheduler{
		cron:  cron.New(cron.WithLogger(l)),
		chain: cron.NewChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	}
}

// Add registers job under a standard cron expression or an @every descriptor.
// Jobs added with runAtStart also run once as soon as Start is called.
func (s *Scheduler) Add(spec string, job cron.Job, runAtStart bool) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return err
	}
	// the start run shares the wrapper so it never overlaps a tick
	wrapped := s.chain.Then(job)
	s.cron.Schedule(schedule, wrapped)
	if runAtStart {
		s.jobs = append(s.jobs, wrapped)
	}
	return nil
}

// Start launches the scheduler and the run-at-start jobs in the background.
func (s *Scheduler) Start() {
	for _, job := range s.jobs {
		go job.Run()
	}
	s.cron.Start()
}

// Stop halts scheduling and returns a context that is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger routes cron's own messages to the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Log.Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
}
