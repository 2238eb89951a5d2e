package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetCommand is the device poll. An empty queue is answered with
// {"command":"none"}, never an error.
func (a *API) GetCommand(w http.ResponseWriter, r *http.Request) {
	a.poll(w, r, chi.URLParam(r, "deviceID"))
}

func (a *API) GetDefaultCommand(w http.ResponseWriter, r *http.Request) {
	a.poll(w, r, a.deviceID(r))
}

func (a *API) poll(w http.ResponseWriter, r *http.Request, deviceID string) {
	text, err := a.Queue.Poll(r.Context(), deviceID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CommandResponse{Command: text})
}

func (a *API) SendCommand(w http.ResponseWriter, r *http.Request) {
	var req SendCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := a.Queue.IssuePush(r.Context(), req.DeviceID, req.Command)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SendCommandResponse{Status: "ok", ID: id})
}

func (a *API) ListCommands(w http.ResponseWriter, r *http.Request) {
	cmds, err := a.Queue.Pending(r.Context(), chi.URLParam(r, "deviceID"))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PendingCommandsResponse{Commands: cmds})
}

func (a *API) CancelCommand(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid command id")
		return
	}
	if err := a.Queue.Cancel(r.Context(), chi.URLParam(r, "deviceID"), id); err != nil {
		a.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FeedNow takes the dashboard's feed form and returns to the dashboard.
func (a *API) FeedNow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if _, err := a.Queue.IssueFeed(r.Context(), a.deviceID(r), r.PostForm.Get("portion")); err != nil {
		a.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *API) CameraToggle(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	if action != "on" && action != "off" {
		writeError(w, http.StatusBadRequest, "Invalid command")
		return
	}
	if _, err := a.Queue.IssueCameraToggle(r.Context(), a.deviceID(r), action); err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "camera_" + action + " queued"})
}
