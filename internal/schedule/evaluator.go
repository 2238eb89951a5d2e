package schedule

import (
	"context"
	"log/slog"
	"time"

	"pet-feeder-backend/internal/db"
)

type Firer interface {
	FireSchedule(ctx context.Context, s db.Schedule, day string) (bool, error)
}

type EvaluatorConfig struct {
	Store    Store
	Firer    Firer
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// Evaluator turns due schedules into feed commands. It is driven by a
// worker ticking more often than once a minute; the per-day claim in the
// store keeps a schedule from firing twice.
type Evaluator struct {
	store Store
	firer Firer
	loc   *time.Location
	now   func() time.Time
}

func NewEvaluator(cfg EvaluatorConfig) *Evaluator {
	e := &Evaluator{
		store: cfg.Store,
		firer: cfg.Firer,
		loc:   cfg.Location,
		now:   cfg.Now,
	}
	if e.loc == nil {
		e.loc = time.Local
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

func (e *Evaluator) Process(ctx context.Context) {
	now := e.now().In(e.loc)
	tod := now.Format(TimeLayout)
	day := now.Format(time.DateOnly)

	due, err := e.store.DueSchedules(ctx, tod, day)
	if err != nil {
		slog.ErrorContext(ctx, "Error loading due schedules", "time", tod, "error", err)
		return
	}

	for _, s := range due {
		if _, err := e.firer.FireSchedule(ctx, s, day); err != nil {
			slog.ErrorContext(ctx, "Error firing schedule",
				"schedule_id", s.ID,
				"device_id", s.DeviceID,
				"error", err,
			)
		}
	}
}
