// Package sweeper runs periodic maintenance jobs on a gocron scheduler.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Task is one periodic job. Run returns how many items it touched.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int64, error)
}

// Sweeper owns a scheduler and the tasks registered on it.
// A task never overlaps with a still running invocation of itself.
type Sweeper struct {
	sched *gocron.Scheduler
	log   *slog.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a Sweeper with a UTC scheduler.
func New(log *slog.Logger) *Sweeper {
	sched := gocron.NewScheduler(time.UTC)
	sched.SingletonModeAll()
	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		sched:  sched,
		log:    log.With("component", "sweeper"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers a task. The first run happens as soon as the sweeper starts.
func (s *Sweeper) Add(t Task) error {
	if t.Interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive", t.Name)
	}
	if _, err := s.sched.Every(t.Interval).Do(s.run, t); err != nil {
		return fmt.Errorf("schedule task %s: %w", t.Name, err)
	}
	return nil
}

// Start begins running tasks in the background. Tasks observe ctx
// cancellation as well as Stop.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.sched.StartAsync()
	s.log.Info("sweeper started", slog.Int("tasks", s.sched.Len()))
}

// Stop cancels running tasks and stops the scheduler.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()

	s.sched.Stop()
	s.log.Info("sweeper stopped")
}

func (s *Sweeper) run(t Task) {
	s.mu.Lock()
	parent := s.ctx
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(parent, t.Interval)
	defer cancel()

	start := time.Now()
	n, err := t.Run(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "sweep failed",
			slog.String("task", t.Name),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.InfoContext(ctx, "sweep finished",
		slog.String("task", t.Name),
		slog.Int64("affected", n),
		slog.Duration("duration", time.Since(start)),
	)
}
