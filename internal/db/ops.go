package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"

	"pet-feeder-backend/internal/command"
)

// ErrStoreUnavailable is wrapped by every failure that comes from talking to
// the database, so callers can map it without knowing which statement failed.
var ErrStoreUnavailable = errors.New("store unavailable")

var (
	ErrInsertFailed           = fmt.Errorf("%w: insert operation failed", ErrStoreUnavailable)
	ErrTransactionStartFailed = fmt.Errorf("%w: transaction start failed", ErrStoreUnavailable)
	ErrCommitFailed           = fmt.Errorf("%w: transaction commit failed", ErrStoreUnavailable)
	ErrSelectFailed           = fmt.Errorf("%w: select operation failed", ErrStoreUnavailable)
	ErrDeleteFailed           = fmt.Errorf("%w: delete operation failed", ErrStoreUnavailable)
	ErrUpdateFailed           = fmt.Errorf("%w: update operation failed", ErrStoreUnavailable)
	ErrNotFound               = errors.New("record not found")

	// ErrInvalidValue means postgres rejected the data itself (SQLSTATE
	// class 22 or 23). Retrying the same request cannot succeed.
	ErrInvalidValue = errors.New("value rejected by store")
)

// wrapErr tags err with op, or with ErrInvalidValue when the statement
// failed on the values rather than on the connection.
func wrapErr(fn string, op error, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")) {
		return fmt.Errorf("%s:%w:%w", fn, ErrInvalidValue, err)
	}
	return fmt.Errorf("%s:%w:%w", fn, op, err)
}

func (db *DB) Enqueue(ctx context.Context, deviceID string, cmd command.Command) (int64, error) {
	const fn = "DB:Enqueue"
	var id int64
	err := db.pool.QueryRow(ctx, `
		INSERT INTO commands (
			device_id,
			kind,
			payload
		) VALUES ($1, $2, $3)
		RETURNING id
	`, deviceID, string(cmd.Kind), cmd.Payload).Scan(&id)
	if err != nil {
		return 0, wrapErr(fn, ErrInsertFailed, err)
	}
	return id, nil
}

// PopOldest removes and returns the oldest pending command for deviceID.
// It returns (nil, nil) when nothing is pending. The select and delete run
// as one statement inside a transaction; SKIP LOCKED makes a concurrent
// poller pass over a row another poller is already taking.
func (db *DB) PopOldest(ctx context.Context, deviceID string) (*Command, error) {
	const fn = "DB:PopOldest"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer tx.Rollback(ctx)

	var cmd Command
	err = pgxscan.Get(ctx, tx, &cmd, `
		DELETE FROM commands
		WHERE id = (
			SELECT id
			FROM commands
			WHERE device_id = $1
			ORDER BY id ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING
			id,
			device_id,
			kind,
			payload,
			created_at
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, wrapErr(fn, ErrDeleteFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrCommitFailed, err)
	}
	return &cmd, nil
}

func (db *DB) ListPending(ctx context.Context, deviceID string) ([]Command, error) {
	const fn = "DB:ListPending"
	commands := []Command{}
	err := pgxscan.Select(ctx, db.pool, &commands, `
		SELECT
			id,
			device_id,
			kind,
			payload,
			created_at
		FROM commands
		WHERE device_id = $1
		ORDER BY id ASC
	`, deviceID)
	if err != nil {
		return nil, wrapErr(fn, ErrSelectFailed, err)
	}
	return commands, nil
}

func (db *DB) CountPending(ctx context.Context, deviceID string) (int, error) {
	const fn = "DB:CountPending"
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM commands WHERE device_id = $1`, deviceID).Scan(&count)
	if err != nil {
		return 0, wrapErr(fn, ErrSelectFailed, err)
	}
	return count, nil
}

// CancelCommand drops a pending command before any poll picks it up.
func (db *DB) CancelCommand(ctx context.Context, deviceID string, id int64) error {
	const fn = "DB:CancelCommand"
	tag, err := db.pool.Exec(ctx, `DELETE FROM commands WHERE device_id = $1 AND id = $2`, deviceID, id)
	if err != nil {
		return wrapErr(fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}
