package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// decodeBody tolerates an empty body; readings left out are stored as NULL.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (a *API) UploadLog(w http.ResponseWriter, r *http.Request) {
	var req UploadLogRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.Telemetry.RecordFeedResult(r.Context(), a.deviceID(r), req.Amount, req.Result); err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "log_saved"})
}

func (a *API) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	var req UpdateLevelRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.Telemetry.RecordSensorLevel(r.Context(), a.deviceID(r), req.Level); err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "level_updated"})
}

// UpdateStatus takes a device report carrying its own device_id.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = a.deviceID(r)
	}
	if err := a.Telemetry.RecordStatus(r.Context(), deviceID, req.Weight, req.Level); err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "received"})
}

func (a *API) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := a.Telemetry.ListFeedLogs(r.Context(), a.deviceID(r), queryLimit(r))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LogsResponse{Logs: logs})
}

func (a *API) Sensors(w http.ResponseWriter, r *http.Request) {
	data, err := a.Telemetry.ListSensorData(r.Context(), a.deviceID(r), queryLimit(r))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SensorsResponse{Data: data})
}

// maxQueryLimit caps ?limit= on the listing routes.
const maxQueryLimit = 1000

// queryLimit reads ?limit=; anything unparsable means the service default.
func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return min(limit, maxQueryLimit)
}
