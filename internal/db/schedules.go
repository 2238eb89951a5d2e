package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"

	"pet-feeder-backend/internal/command"
)

const scheduleColumns = `
			id,
			device_id,
			time_of_day,
			portion,
			created_at,
			last_fired_on::text AS last_fired_on`

func (db *DB) CreateSchedule(ctx context.Context, s *Schedule) error {
	const fn = "DB:CreateSchedule"
	err := db.pool.QueryRow(ctx, `
		INSERT INTO schedules (
			device_id,
			time_of_day,
			portion
		) VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, s.DeviceID, s.TimeOfDay, s.Portion).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return wrapErr(fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) ListSchedules(ctx context.Context, deviceID string) ([]Schedule, error) {
	const fn = "DB:ListSchedules"
	schedules := []Schedule{}
	err := pgxscan.Select(ctx, db.pool, &schedules, `
		SELECT`+scheduleColumns+`
		FROM schedules
		WHERE device_id = $1
		ORDER BY time_of_day ASC, id ASC
	`, deviceID)
	if err != nil {
		return nil, wrapErr(fn, ErrSelectFailed, err)
	}
	return schedules, nil
}

// DueSchedules returns schedules set for timeOfDay that have not fired on day.
func (db *DB) DueSchedules(ctx context.Context, timeOfDay, day string) ([]Schedule, error) {
	const fn = "DB:DueSchedules"
	schedules := []Schedule{}
	err := pgxscan.Select(ctx, db.pool, &schedules, `
		SELECT`+scheduleColumns+`
		FROM schedules
		WHERE time_of_day = $1
		AND last_fired_on IS DISTINCT FROM $2::date
		ORDER BY id ASC
	`, timeOfDay, day)
	if err != nil {
		return nil, wrapErr(fn, ErrSelectFailed, err)
	}
	return schedules, nil
}

func (db *DB) DeleteSchedule(ctx context.Context, deviceID string, id int64) error {
	const fn = "DB:DeleteSchedule"
	tag, err := db.pool.Exec(ctx, `DELETE FROM schedules WHERE device_id = $1 AND id = $2`, deviceID, id)
	if err != nil {
		return wrapErr(fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

// FireSchedule marks the schedule as fired on day and enqueues cmd for its
// device in the same transaction. fired is false when another run already
// claimed the schedule for that day.
func (db *DB) FireSchedule(ctx context.Context, s Schedule, day string, cmd command.Command) (commandID int64, fired bool, err error) {
	const fn = "DB:FireSchedule"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE schedules
		SET last_fired_on = $2::date
		WHERE id = $1
		AND last_fired_on IS DISTINCT FROM $2::date
	`, s.ID, day)
	if err != nil {
		return 0, false, wrapErr(fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, false, nil
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO commands (
			device_id,
			kind,
			payload
		) VALUES ($1, $2, $3)
		RETURNING id
	`, s.DeviceID, string(cmd.Kind), cmd.Payload).Scan(&commandID)
	if err != nil {
		return 0, false, wrapErr(fn, ErrInsertFailed, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, false, fmt.Errorf("%s:%w:%w", fn, ErrCommitFailed, err)
	}
	return commandID, true, nil
}
