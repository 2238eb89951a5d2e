package api

import (
	"net/http"
)

// GetSchedule is read by the device on its own cadence.
func (a *API) GetSchedule(w http.ResponseWriter, r *http.Request) {
	list, err := a.Schedules.List(r.Context(), a.deviceID(r))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	resp := GetScheduleResponse{Schedule: make([]ScheduleEntry, 0, len(list))}
	for _, s := range list {
		resp.Schedule = append(resp.Schedule, ScheduleEntry{Time: s.TimeOfDay, Portion: s.Portion})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) ListSchedules(w http.ResponseWriter, r *http.Request) {
	list, err := a.Schedules.List(r.Context(), a.deviceID(r))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SchedulesResponse{Schedules: list})
}

func (a *API) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	_, err := a.Schedules.Create(r.Context(), a.deviceID(r), r.PostForm.Get("time"), r.PostForm.Get("portion"))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/schedule", http.StatusSeeOther)
}

func (a *API) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := a.Schedules.Delete(r.Context(), a.deviceID(r), id); err != nil {
		a.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/schedule", http.StatusSeeOther)
}

// Index is the dashboard data: every schedule plus the latest reading.
func (a *API) Index(w http.ResponseWriter, r *http.Request) {
	deviceID := a.deviceID(r)
	list, err := a.Schedules.List(r.Context(), deviceID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	sensor, err := a.Telemetry.LatestSensor(r.Context(), deviceID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IndexResponse{Schedules: list, Sensor: sensor})
}
