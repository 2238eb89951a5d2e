// Package camera relays the stream URL a device reports (usually a tunnel
// address) to the dashboard.
package camera

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pet-feeder-backend/internal/command"
	"pet-feeder-backend/internal/db"
)

var ErrMissingURL = errors.New("missing url")

type Store interface {
	SetSetting(ctx context.Context, deviceID, key, value string) error
	GetSetting(ctx context.Context, deviceID, key string) (string, error)
}

type Config struct {
	Store       Store
	FallbackURL string
}

type Service struct {
	store    Store
	fallback string
}

func New(cfg Config) *Service {
	return &Service{
		store:    cfg.Store,
		fallback: cfg.FallbackURL,
	}
}

func (s *Service) SetStreamURL(ctx context.Context, deviceID, url string) error {
	const fn = "Camera:SetStreamURL"
	deviceID = command.DeviceID(deviceID)
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("%s:%w", fn, ErrMissingURL)
	}
	if err := s.store.SetSetting(ctx, deviceID, db.SettingStreamURL, url); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	slog.InfoContext(ctx, "Updated stream URL", "device_id", deviceID, "url", url)
	return nil
}

// StreamURL returns the last reported URL. found is false if the device
// never reported one.
func (s *Service) StreamURL(ctx context.Context, deviceID string) (string, bool, error) {
	const fn = "Camera:StreamURL"
	deviceID = command.DeviceID(deviceID)
	url, err := s.store.GetSetting(ctx, deviceID, db.SettingStreamURL)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s:%w", fn, err)
	}
	return url, true, nil
}

// PageURL is the URL the camera page should embed: the reported URL, or
// the LAN fallback when none has been reported.
func (s *Service) PageURL(ctx context.Context, deviceID string) (string, error) {
	url, found, err := s.StreamURL(ctx, deviceID)
	if err != nil {
		return "", err
	}
	if !found {
		return s.fallback, nil
	}
	return url, nil
}
