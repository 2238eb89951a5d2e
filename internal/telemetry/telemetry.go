package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pet-feeder-backend/internal/command"
	"pet-feeder-backend/internal/db"
	"pet-feeder-backend/internal/kafka"
	"pet-feeder-backend/internal/metrics"
)

// DefaultSensorLimit is how many sensor rows the dashboard shows.
const DefaultSensorLimit = 10

var ErrInvalidInput = errors.New("invalid input")

type Store interface {
	InsertFeedLog(ctx context.Context, l *db.FeedLog) error
	InsertSensorData(ctx context.Context, d *db.SensorData) error
	ListFeedLogs(ctx context.Context, deviceID string, limit int) ([]db.FeedLog, error)
	ListSensorData(ctx context.Context, deviceID string, limit int) ([]db.SensorData, error)
	LatestSensorData(ctx context.Context, deviceID string) (*db.SensorData, error)
}

type Publisher interface {
	Publish(ctx context.Context, event kafka.TelemetryEvent) error
}

type Config struct {
	Store     Store
	Publisher Publisher
}

// Service appends device reports. Readings are stored as sent; missing
// fields become NULL rather than errors.
type Service struct {
	store     Store
	publisher Publisher
}

func New(cfg Config) *Service {
	return &Service{
		store:     cfg.Store,
		publisher: cfg.Publisher,
	}
}

func (s *Service) RecordFeedResult(ctx context.Context, deviceID string, amount *float64, result *string) error {
	const fn = "Telemetry:RecordFeedResult"
	deviceID = command.DeviceID(deviceID)
	if deviceID == "" {
		return fmt.Errorf("%s:%w: missing device_id", fn, ErrInvalidInput)
	}

	start := time.Now()
	l := &db.FeedLog{DeviceID: deviceID, Amount: amount, Result: result}
	if err := s.store.InsertFeedLog(ctx, l); err != nil {
		metrics.ObserveIngest(kafka.FeedResult, metrics.ResultError, time.Since(start))
		return fmt.Errorf("%s:%w", fn, err)
	}
	metrics.ObserveIngest(kafka.FeedResult, metrics.ResultSuccess, time.Since(start))

	s.publish(ctx, kafka.TelemetryEvent{
		Timestamp: l.CreatedAt.UnixMilli(),
		DeviceID:  deviceID,
		EventType: kafka.FeedResult,
		Amount:    amount,
		Result:    result,
	})
	return nil
}

func (s *Service) RecordSensorLevel(ctx context.Context, deviceID string, level *float64) error {
	const fn = "Telemetry:RecordSensorLevel"
	if err := s.recordSensor(ctx, deviceID, level, nil); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	return nil
}

// RecordStatus stores a combined weight and level report.
func (s *Service) RecordStatus(ctx context.Context, deviceID string, weight, level *float64) error {
	const fn = "Telemetry:RecordStatus"
	if err := s.recordSensor(ctx, deviceID, level, weight); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	return nil
}

func (s *Service) recordSensor(ctx context.Context, deviceID string, level, weight *float64) error {
	deviceID = command.DeviceID(deviceID)
	if deviceID == "" {
		return fmt.Errorf("%w: missing device_id", ErrInvalidInput)
	}

	start := time.Now()
	d := &db.SensorData{DeviceID: deviceID, Level: level, Weight: weight}
	if err := s.store.InsertSensorData(ctx, d); err != nil {
		metrics.ObserveIngest(kafka.SensorReading, metrics.ResultError, time.Since(start))
		return err
	}
	metrics.ObserveIngest(kafka.SensorReading, metrics.ResultSuccess, time.Since(start))

	s.publish(ctx, kafka.TelemetryEvent{
		Timestamp: d.CreatedAt.UnixMilli(),
		DeviceID:  deviceID,
		EventType: kafka.SensorReading,
		Level:     level,
		Weight:    weight,
	})
	return nil
}

// publish never fails the ingest; the row is already stored.
func (s *Service) publish(ctx context.Context, event kafka.TelemetryEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Error publishing telemetry event",
			"device_id", event.DeviceID,
			"event_type", event.EventType,
			"error", err,
		)
	}
}

// ListFeedLogs returns logs newest first. limit <= 0 returns all.
func (s *Service) ListFeedLogs(ctx context.Context, deviceID string, limit int) ([]db.FeedLog, error) {
	const fn = "Telemetry:ListFeedLogs"
	deviceID = command.DeviceID(deviceID)
	logs, err := s.store.ListFeedLogs(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return logs, nil
}

// ListSensorData returns readings newest first. limit <= 0 means
// DefaultSensorLimit.
func (s *Service) ListSensorData(ctx context.Context, deviceID string, limit int) ([]db.SensorData, error) {
	const fn = "Telemetry:ListSensorData"
	deviceID = command.DeviceID(deviceID)
	if limit <= 0 {
		limit = DefaultSensorLimit
	}
	data, err := s.store.ListSensorData(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return data, nil
}

// LatestSensor returns nil when the device has never reported.
func (s *Service) LatestSensor(ctx context.Context, deviceID string) (*db.SensorData, error) {
	const fn = "Telemetry:LatestSensor"
	deviceID = command.DeviceID(deviceID)
	d, err := s.store.LatestSensorData(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return d, nil
}
