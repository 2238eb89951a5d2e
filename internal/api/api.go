package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-feeder-backend/internal/camera"
	"pet-feeder-backend/internal/command"
	"pet-feeder-backend/internal/db"
	"pet-feeder-backend/internal/queue"
	"pet-feeder-backend/internal/schedule"
	"pet-feeder-backend/internal/telemetry"
)

type commandQueue interface {
	IssueFeed(ctx context.Context, deviceID, portion string) (int64, error)
	IssueCameraToggle(ctx context.Context, deviceID, action string) (int64, error)
	IssuePush(ctx context.Context, deviceID, text string) (int64, error)
	Poll(ctx context.Context, deviceID string) (string, error)
	Pending(ctx context.Context, deviceID string) ([]db.Command, error)
	Cancel(ctx context.Context, deviceID string, id int64) error
}

type telemetryService interface {
	RecordFeedResult(ctx context.Context, deviceID string, amount *float64, result *string) error
	RecordSensorLevel(ctx context.Context, deviceID string, level *float64) error
	RecordStatus(ctx context.Context, deviceID string, weight, level *float64) error
	ListFeedLogs(ctx context.Context, deviceID string, limit int) ([]db.FeedLog, error)
	ListSensorData(ctx context.Context, deviceID string, limit int) ([]db.SensorData, error)
	LatestSensor(ctx context.Context, deviceID string) (*db.SensorData, error)
}

type scheduleService interface {
	Create(ctx context.Context, deviceID, timeOfDay, portion string) (*db.Schedule, error)
	List(ctx context.Context, deviceID string) ([]db.Schedule, error)
	Delete(ctx context.Context, deviceID string, id int64) error
}

type cameraService interface {
	SetStreamURL(ctx context.Context, deviceID, url string) error
	StreamURL(ctx context.Context, deviceID string) (string, bool, error)
	PageURL(ctx context.Context, deviceID string) (string, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	Queue           commandQueue
	Telemetry       telemetryService
	Schedules       scheduleService
	Camera          cameraService
	Health          pinger
	DefaultDeviceID string
}

type Config struct {
	Queue           commandQueue
	Telemetry       telemetryService
	Schedules       scheduleService
	Camera          cameraService
	Health          pinger
	DefaultDeviceID string
}

func New(cfg Config) *API {
	return &API{
		Queue:           cfg.Queue,
		Telemetry:       cfg.Telemetry,
		Schedules:       cfg.Schedules,
		Camera:          cfg.Camera,
		Health:          cfg.Health,
		DefaultDeviceID: cfg.DefaultDeviceID,
	}
}

// deviceID resolves the device for the single-device routes: the
// device_id query parameter if given, else the configured default.
func (a *API) deviceID(r *http.Request) string {
	if id := command.DeviceID(r.URL.Query().Get("device_id")); id != "" {
		return id
	}
	return a.DefaultDeviceID
}

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := a.Health.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Health check failed", "error", err)
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func isInvalidInput(err error) bool {
	return errors.Is(err, queue.ErrInvalidInput) ||
		errors.Is(err, schedule.ErrInvalidInput) ||
		errors.Is(err, telemetry.ErrInvalidInput) ||
		errors.Is(err, camera.ErrMissingURL) ||
		errors.Is(err, db.ErrInvalidValue)
}

// clientMessage is the 400 body text: the validation message without the
// internal call-site prefixes.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, camera.ErrMissingURL):
		return "Missing 'url'"
	case errors.Is(err, db.ErrInvalidValue):
		return db.ErrInvalidValue.Error()
	}
	msg := err.Error()
	if i := strings.Index(msg, queue.ErrInvalidInput.Error()); i >= 0 {
		return msg[i:]
	}
	return http.StatusText(http.StatusBadRequest)
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case isInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (a *API) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := http.StatusText(status)
	switch status {
	case http.StatusBadRequest:
		msg = clientMessage(err)
	case http.StatusNotFound:
		msg = "not found"
	case http.StatusServiceUnavailable:
		msg = "store unavailable"
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	writeError(w, status, msg)
}

func parseID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
