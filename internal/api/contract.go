package api

import "pet-feeder-backend/internal/db"

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type CommandResponse struct {
	Command string `json:"command"`
}

type SendCommandRequest struct {
	DeviceID string `json:"device_id"`
	Command  string `json:"command"`
}

type SendCommandResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type PendingCommandsResponse struct {
	Commands []db.Command `json:"commands"`
}

type UpdateStatusRequest struct {
	DeviceID string   `json:"device_id"`
	Weight   *float64 `json:"weight"`
	Level    *float64 `json:"level"`
}

type UploadLogRequest struct {
	Amount *float64 `json:"amount"`
	Result *string  `json:"result"`
}

type UpdateLevelRequest struct {
	Level *float64 `json:"level"`
}

// ScheduleEntry is the device's view of a schedule.
type ScheduleEntry struct {
	Time    string  `json:"time"`
	Portion float64 `json:"portion"`
}

type GetScheduleResponse struct {
	Schedule []ScheduleEntry `json:"schedule"`
}

type SchedulesResponse struct {
	Schedules []db.Schedule `json:"schedules"`
}

type IndexResponse struct {
	Schedules []db.Schedule `json:"schedules"`
	Sensor    *db.SensorData `json:"sensor"`
}

type LogsResponse struct {
	Logs []db.FeedLog `json:"logs"`
}

type SensorsResponse struct {
	Data []db.SensorData `json:"data"`
}

type CameraResponse struct {
	Title     string `json:"title"`
	StreamURL string `json:"stream_url"`
}

type UpdateStreamURLRequest struct {
	URL *string `json:"url"`
}

// StreamURLResponse encodes a missing URL as null.
type StreamURLResponse struct {
	URL *string `json:"url"`
}
