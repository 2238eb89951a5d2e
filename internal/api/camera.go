package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (a *API) CameraPage(w http.ResponseWriter, r *http.Request) {
	url, err := a.Camera.PageURL(r.Context(), a.deviceID(r))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CameraResponse{Title: "Camera", StreamURL: url})
}

// UpdateStreamURL is called by the device whenever its tunnel URL changes.
func (a *API) UpdateStreamURL(w http.ResponseWriter, r *http.Request) {
	var req UpdateStreamURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == nil || strings.TrimSpace(*req.URL) == "" {
		writeError(w, http.StatusBadRequest, "Missing 'url'")
		return
	}
	if err := a.Camera.SetStreamURL(r.Context(), a.deviceID(r), *req.URL); err != nil {
		a.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (a *API) GetStreamURL(w http.ResponseWriter, r *http.Request) {
	url, found, err := a.Camera.StreamURL(r.Context(), a.deviceID(r))
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	var resp StreamURLResponse
	if found {
		resp.URL = &url
	}
	writeJSON(w, http.StatusOK, resp)
}
