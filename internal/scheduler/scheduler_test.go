package scheduler

import (
	"errors"
	"testing"

	"YieldSentinel/internal/model"
	"YieldSentinel/internal/workflow"
)

type countingRunner struct {
	calls int
	err   error
}

func (r *countingRunner) Run() (*workflow.Result, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &workflow.Result{Signal: &model.CurveSignal{}}, nil
}

func TestRegister(t *testing.T) {
	s := NewScheduler(&countingRunner{})

	if err := s.Register("0 30 18 * * 1-5"); err != nil {
		t.Errorf("unexpected error for valid spec: %v", err)
	}
	if err := s.Register("every day"); err == nil {
		t.Error("expected error for invalid spec")
	}
	if n := len(s.Cron.Entries()); n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}
}

func TestRunNow(t *testing.T) {
	r := &countingRunner{}
	s := NewScheduler(r)
	if err := s.RunNow(); err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	if r.calls != 1 {
		t.Errorf("expected 1 run, got %d", r.calls)
	}

	boom := errors.New("boom")
	failing := NewScheduler(&countingRunner{err: boom})
	if err := failing.RunNow(); !errors.Is(err, boom) {
		t.Errorf("expected run error, got %v", err)
	}
}
