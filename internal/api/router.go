package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(a *API) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", a.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// Dashboard data.
	r.Get("/", a.Index)
	r.Get("/logs", a.Logs)
	r.Get("/sensors", a.Sensors)
	r.Get("/camera", a.CameraPage)
	r.Get("/schedule", a.ListSchedules)
	r.Post("/schedule", a.CreateSchedule)
	r.Get("/delete_schedule/{id}", a.DeleteSchedule)
	r.Post("/feed_now", a.FeedNow)

	r.Route("/api", func(r chi.Router) {
		r.Get("/command/{deviceID}", a.GetCommand)
		r.Post("/send_command", a.SendCommand)
		r.Post("/update", a.UpdateStatus)
		r.Get("/devices/{deviceID}/commands", a.ListCommands)
		r.Delete("/devices/{deviceID}/commands/{id}", a.CancelCommand)

		r.Get("/get_command", a.GetDefaultCommand)
		r.Post("/camera/{action}", a.CameraToggle)
		r.Post("/upload_log", a.UploadLog)
		r.Post("/update_level", a.UpdateLevel)
		r.Get("/get_schedule", a.GetSchedule)
		r.Post("/update_ngrok", a.UpdateStreamURL)
		r.Get("/get_ngrok", a.GetStreamURL)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			slog.InfoContext(r.Context(), "HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
