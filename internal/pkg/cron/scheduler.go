package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is one unit of recurring background work. It must honor
// context cancellation; the scheduler bounds every run with
// runTimeout.
type JobFunc func(ctx context.Context) error

// runTimeout caps a single job execution so a wedged query cannot
// stall shutdown.
const runTimeout = 5 * time.Minute

type job struct {
	name  string
	every time.Duration
	run   JobFunc
}

// Scheduler runs registered jobs on fixed intervals until stopped.
// Register jobs before Start; later registrations are not picked up.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddJob registers fn to run every interval.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: interval, run: fn})
	slog.Info("background job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job, all derived from
// parent. Each job runs once immediately, then on its interval.
func (s *Scheduler) Start(parent context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, j)
	}

	slog.Info("background scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all running jobs and blocks until they return. No-op
// when the scheduler was never started.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	slog.Info("background scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(ctx, j)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	start := time.Now()
	if err := j.run(runCtx); err != nil {
		slog.Error("background job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("background job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job once on the caller's context,
// stopping at the first failure.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	jobs := append([]job(nil), s.jobs...)
	s.mu.Unlock()

	for _, j := range jobs {
		if err := j.run(ctx); err != nil {
			return fmt.Errorf("job %s: %w", j.name, err)
		}
	}
	return nil
}
