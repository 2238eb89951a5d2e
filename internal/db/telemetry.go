package db

import (
	"context"
	"math"

	"github.com/georgysavva/scany/pgxscan"
)

// pageLimit keeps limit inside the int4 LIMIT parameter; 0 means no limit.
func pageLimit(limit int) int {
	return min(max(limit, 0), math.MaxInt32)
}

func (db *DB) InsertFeedLog(ctx context.Context, l *FeedLog) error {
	const fn = "DB:InsertFeedLog"
	err := db.pool.QueryRow(ctx, `
		INSERT INTO feed_logs (
			device_id,
			amount,
			result
		) VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, l.DeviceID, l.Amount, l.Result).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return wrapErr(fn, ErrInsertFailed, err)
	}
	return nil
}

// ListFeedLogs returns the newest logs first. limit <= 0 returns all rows.
func (db *DB) ListFeedLogs(ctx context.Context, deviceID string, limit int) ([]FeedLog, error) {
	const fn = "DB:ListFeedLogs"
	logs := []FeedLog{}
	err := pgxscan.Select(ctx, db.pool, &logs, `
		SELECT
			id,
			device_id,
			amount,
			result,
			created_at
		FROM feed_logs
		WHERE device_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT NULLIF($2, 0)
	`, deviceID, pageLimit(limit))
	if err != nil {
		return nil, wrapErr(fn, ErrSelectFailed, err)
	}
	return logs, nil
}

func (db *DB) InsertSensorData(ctx context.Context, d *SensorData) error {
	const fn = "DB:InsertSensorData"
	err := db.pool.QueryRow(ctx, `
		INSERT INTO sensor_data (
			device_id,
			level,
			weight
		) VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, d.DeviceID, d.Level, d.Weight).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return wrapErr(fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) ListSensorData(ctx context.Context, deviceID string, limit int) ([]SensorData, error) {
	const fn = "DB:ListSensorData"
	data := []SensorData{}
	err := pgxscan.Select(ctx, db.pool, &data, `
		SELECT
			id,
			device_id,
			level,
			weight,
			created_at
		FROM sensor_data
		WHERE device_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT NULLIF($2, 0)
	`, deviceID, pageLimit(limit))
	if err != nil {
		return nil, wrapErr(fn, ErrSelectFailed, err)
	}
	return data, nil
}

// LatestSensorData returns (nil, nil) when the device has not reported yet.
func (db *DB) LatestSensorData(ctx context.Context, deviceID string) (*SensorData, error) {
	const fn = "DB:LatestSensorData"
	var d SensorData
	err := pgxscan.Get(ctx, db.pool, &d, `
		SELECT
			id,
			device_id,
			level,
			weight,
			created_at
		FROM sensor_data
		WHERE device_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, wrapErr(fn, ErrSelectFailed, err)
	}
	return &d, nil
}
