package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pet-feeder-backend/internal/command"
	"pet-feeder-backend/internal/db"
)

// TimeLayout is the 24h time-of-day format schedules are stored in.
const TimeLayout = "15:04"

var ErrInvalidInput = errors.New("invalid input")

type Store interface {
	CreateSchedule(ctx context.Context, s *db.Schedule) error
	ListSchedules(ctx context.Context, deviceID string) ([]db.Schedule, error)
	DeleteSchedule(ctx context.Context, deviceID string, id int64) error
	DueSchedules(ctx context.Context, timeOfDay, day string) ([]db.Schedule, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// ParseTimeOfDay normalises "8:05" or "08:05" to "08:05".
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: time %q, want HH:MM", ErrInvalidInput, s)
	}
	return t.Format(TimeLayout), nil
}

func (s *Service) Create(ctx context.Context, deviceID, timeOfDay, portion string) (*db.Schedule, error) {
	const fn = "Schedule:Create"
	deviceID = command.DeviceID(deviceID)
	if deviceID == "" {
		return nil, fmt.Errorf("%s:%w: missing device_id", fn, ErrInvalidInput)
	}
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	p, err := command.ParsePortion(portion)
	if err != nil {
		return nil, fmt.Errorf("%s:%w: portion %q", fn, ErrInvalidInput, portion)
	}

	sch := &db.Schedule{DeviceID: deviceID, TimeOfDay: tod, Portion: p}
	if err := s.store.CreateSchedule(ctx, sch); err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	slog.InfoContext(ctx, "Schedule created",
		"device_id", deviceID,
		"schedule_id", sch.ID,
		"time", tod,
		"portion", p,
	)
	return sch, nil
}

func (s *Service) List(ctx context.Context, deviceID string) ([]db.Schedule, error) {
	const fn = "Schedule:List"
	deviceID = command.DeviceID(deviceID)
	list, err := s.store.ListSchedules(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return list, nil
}

func (s *Service) Delete(ctx context.Context, deviceID string, id int64) error {
	const fn = "Schedule:Delete"
	deviceID = command.DeviceID(deviceID)
	if err := s.store.DeleteSchedule(ctx, deviceID, id); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	slog.InfoContext(ctx, "Schedule deleted", "device_id", deviceID, "schedule_id", id)
	return nil
}
