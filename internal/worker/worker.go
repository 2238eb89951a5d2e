package worker

import (
	"context"
	"log/slog"
	"time"
)

type Config struct {
	Name      string
	Interval  time.Duration
	Processor Processor
}

type Processor interface {
	Process(ctx context.Context)
}

// Worker runs its processor once at start and then on every tick until ctx
// is cancelled.
type Worker struct {
	name      string
	interval  time.Duration
	processor Processor
}

func New(cfg Config) *Worker {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{
		name:      cfg.Name,
		interval:  interval,
		processor: cfg.Processor,
	}
}

func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name, "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.processor.Process(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		case <-ticker.C:
			w.processor.Process(ctx)
		}
	}
}
