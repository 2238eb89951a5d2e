// Package queue is the producer and consumer side of the per-device command
// queue. Producers validate and enqueue; the device drains the queue one
// command per poll, and each command is handed out at most once.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pet-feeder-backend/internal/command"
	"pet-feeder-backend/internal/db"
	"pet-feeder-backend/internal/metrics"
)

var ErrInvalidInput = errors.New("invalid input")

type Store interface {
	Enqueue(ctx context.Context, deviceID string, cmd command.Command) (int64, error)
	PopOldest(ctx context.Context, deviceID string) (*db.Command, error)
	ListPending(ctx context.Context, deviceID string) ([]db.Command, error)
	CancelCommand(ctx context.Context, deviceID string, id int64) error
	FireSchedule(ctx context.Context, s db.Schedule, day string, cmd command.Command) (int64, bool, error)
}

// Notifier is told about every enqueued command so the device can be woken
// up. Delivery still goes through Poll.
type Notifier interface {
	CommandQueued(ctx context.Context, deviceID string, commandID int64) error
}

type Config struct {
	Store    Store
	Notifier Notifier
}

type Service struct {
	store    Store
	notifier Notifier
}

func New(cfg Config) *Service {
	return &Service{
		store:    cfg.Store,
		notifier: cfg.Notifier,
	}
}

// IssueFeed enqueues feed:<portion>. portion must be a positive number.
func (s *Service) IssueFeed(ctx context.Context, deviceID, portion string) (int64, error) {
	const fn = "Queue:IssueFeed"
	p, err := command.ParsePortion(portion)
	if err != nil {
		return 0, fmt.Errorf("%s:%w: portion %q", fn, ErrInvalidInput, portion)
	}
	cmd, err := command.Feed(p)
	if err != nil {
		return 0, fmt.Errorf("%s:%w: portion %q", fn, ErrInvalidInput, portion)
	}
	return s.enqueue(ctx, deviceID, cmd)
}

// IssueCameraToggle enqueues camera_on or camera_off. Any other action is
// rejected and nothing is enqueued.
func (s *Service) IssueCameraToggle(ctx context.Context, deviceID, action string) (int64, error) {
	const fn = "Queue:IssueCameraToggle"
	cmd, err := command.Camera(action)
	if err != nil {
		return 0, fmt.Errorf("%s:%w: action %q", fn, ErrInvalidInput, action)
	}
	return s.enqueue(ctx, deviceID, cmd)
}

// IssuePush enqueues caller supplied command text. Known kinds are
// validated; anything else is stored as-is.
func (s *Service) IssuePush(ctx context.Context, deviceID, text string) (int64, error) {
	const fn = "Queue:IssuePush"
	cmd, err := command.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("%s:%w: %w", fn, ErrInvalidInput, err)
	}
	return s.enqueue(ctx, deviceID, cmd)
}

func (s *Service) enqueue(ctx context.Context, deviceID string, cmd command.Command) (int64, error) {
	const fn = "Queue:Enqueue"
	deviceID = command.DeviceID(deviceID)
	if deviceID == "" {
		return 0, fmt.Errorf("%s:%w: missing device_id", fn, ErrInvalidInput)
	}

	id, err := s.store.Enqueue(ctx, deviceID, cmd)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", fn, err)
	}
	metrics.IncCommandEnqueued(string(cmd.Kind))
	slog.InfoContext(ctx, "Command enqueued",
		"device_id", deviceID,
		"command_id", id,
		"command", cmd.String(),
	)
	s.notify(ctx, deviceID, id)
	return id, nil
}

func (s *Service) notify(ctx context.Context, deviceID string, id int64) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.CommandQueued(ctx, deviceID, id); err != nil {
		slog.WarnContext(ctx, "Wake-up notification failed",
			"device_id", deviceID,
			"command_id", id,
			"error", err,
		)
	}
}

// Poll removes and returns the oldest pending command text for deviceID, or
// command.None when the queue is empty. On error nothing was removed.
func (s *Service) Poll(ctx context.Context, deviceID string) (string, error) {
	const fn = "Queue:Poll"
	deviceID = command.DeviceID(deviceID)
	if deviceID == "" {
		return "", fmt.Errorf("%s:%w: missing device_id", fn, ErrInvalidInput)
	}

	cmd, err := s.store.PopOldest(ctx, deviceID)
	if err != nil {
		metrics.IncCommandPoll(metrics.PollError)
		return "", fmt.Errorf("%s:%w", fn, err)
	}
	if cmd == nil {
		metrics.IncCommandPoll(metrics.PollEmpty)
		return command.None, nil
	}

	metrics.IncCommandPoll(metrics.PollDelivered)
	slog.InfoContext(ctx, "Command delivered",
		"device_id", deviceID,
		"command_id", cmd.ID,
		"command", cmd.Text(),
	)
	return cmd.Text(), nil
}

func (s *Service) Pending(ctx context.Context, deviceID string) ([]db.Command, error) {
	const fn = "Queue:Pending"
	deviceID = command.DeviceID(deviceID)
	cmds, err := s.store.ListPending(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return cmds, nil
}

func (s *Service) Cancel(ctx context.Context, deviceID string, id int64) error {
	const fn = "Queue:Cancel"
	deviceID = command.DeviceID(deviceID)
	if err := s.store.CancelCommand(ctx, deviceID, id); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	slog.InfoContext(ctx, "Command cancelled", "device_id", deviceID, "command_id", id)
	return nil
}

// FireSchedule enqueues the feed for schedule sch on day (YYYY-MM-DD) unless
// it already fired that day. It reports whether a command was enqueued.
func (s *Service) FireSchedule(ctx context.Context, sch db.Schedule, day string) (bool, error) {
	const fn = "Queue:FireSchedule"
	cmd, err := command.Feed(sch.Portion)
	if err != nil {
		return false, fmt.Errorf("%s:%w: schedule %d portion %v", fn, ErrInvalidInput, sch.ID, sch.Portion)
	}

	id, fired, err := s.store.FireSchedule(ctx, sch, day, cmd)
	if err != nil {
		return false, fmt.Errorf("%s:%w", fn, err)
	}
	if !fired {
		return false, nil
	}

	metrics.IncCommandEnqueued(string(cmd.Kind))
	metrics.IncScheduledFeed()
	slog.InfoContext(ctx, "Scheduled feed enqueued",
		"device_id", sch.DeviceID,
		"schedule_id", sch.ID,
		"command_id", id,
		"day", day,
	)
	s.notify(ctx, sch.DeviceID, id)
	return true, nil
}
