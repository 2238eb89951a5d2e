package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
)

// Keys stored in device_settings.
const (
	SettingStreamURL = "stream_url"
)

func (db *DB) SetSetting(ctx context.Context, deviceID, key, value string) error {
	const fn = "DB:SetSetting"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO device_settings (
			device_id,
			key,
			value,
			updated_at
		) VALUES ($1, $2, $3, now())
		ON CONFLICT (device_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, deviceID, key, value)
	if err != nil {
		return wrapErr(fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) GetSetting(ctx context.Context, deviceID, key string) (string, error) {
	const fn = "DB:GetSetting"
	var value string
	err := db.pool.QueryRow(ctx, `
		SELECT value
		FROM device_settings
		WHERE device_id = $1 AND key = $2
	`, deviceID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return "", wrapErr(fn, ErrSelectFailed, err)
	}
	return value, nil
}
