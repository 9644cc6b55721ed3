package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"YieldSentinel/internal/log"
	"YieldSentinel/internal/workflow"
)

// Runner is the job the scheduler repeats.
type Runner interface {
	Run() (*workflow.Result, error)
}

// Scheduler re-runs the workflow on a cron schedule. Runs never overlap.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Runner
}

// NewScheduler creates a new Scheduler. Specs include a seconds field.
func NewScheduler(r Runner) *Scheduler {
	logger := log.CronLogger{}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		Runner: r,
	}
}

// Register schedules the workflow.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() { _ = s.RunNow() }); err != nil {
		return fmt.Errorf("register workflow task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Infof("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Infof("scheduler stopped")
}

// RunNow executes the workflow immediately and logs the outcome.
func (s *Scheduler) RunNow() error {
	runID := uuid.NewString()
	start := time.Now()
	log.Infow("workflow run started", "run_id", runID)

	res, err := s.Runner.Run()
	if err != nil {
		log.Errorw("workflow run failed", "run_id", runID, "error", err)
		return err
	}
	log.Infow("workflow run finished",
		"run_id", runID,
		"observations", len(res.Dates),
		"regime", res.Signal.Regime.Label,
		"duration", time.Since(start),
	)
	return nil
}
