package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
)

type devicesRepo struct {
	q querier
}

func (r *devicesRepo) CreateDeviceSession(ctx context.Context, d domain.DeviceSession) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO device_sessions (id, name, state, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, string(d.State), d.ExpiresAt.UTC(), now, now,
	)
	return mapConflict(err)
}

func (r *devicesRepo) GetDeviceSession(ctx context.Context, deviceID string) (domain.DeviceSession, error) {
	var (
		d          domain.DeviceSession
		state      string
		message    sql.NullString
		approvedBy sql.NullString
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, state, message, approved_by, expires_at, created_at, updated_at
		FROM device_sessions WHERE id = ?`, deviceID,
	).Scan(&d.ID, &d.Name, &state, &message, &approvedBy, &d.ExpiresAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.DeviceSession{}, mapNotFound(err)
	}

	d.State = domain.DeviceState(state)
	d.Message = mapNullString(message)
	d.ApprovedBy = mapNullString(approvedBy)
	return d, nil
}

func (r *devicesRepo) CompareAndSetState(ctx context.Context, deviceID string, expected, next domain.DeviceState) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE device_sessions SET state = ?, updated_at = ?
		WHERE id = ? AND state = ?`,
		string(next), time.Now().UTC(), deviceID, string(expected),
	)
	if err != nil {
		return err
	}
	return r.casOutcome(ctx, res, deviceID)
}

func (r *devicesRepo) Approve(ctx context.Context, deviceID, approvedBy, message string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE device_sessions SET state = ?, message = ?, approved_by = ?, updated_at = ?
		WHERE id = ? AND state = ?`,
		string(domain.DeviceApproved), message, approvedBy, time.Now().UTC(),
		deviceID, string(domain.DevicePending),
	)
	if err != nil {
		return err
	}
	return r.casOutcome(ctx, res, deviceID)
}

func (r *devicesRepo) DeleteExpiredDeviceSessions(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM device_sessions WHERE expires_at < ?`, now.UTC())
	return err
}

func (r *devicesRepo) casOutcome(ctx context.Context, res sql.Result, deviceID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists int
	err = r.q.QueryRowContext(ctx, `SELECT 1 FROM device_sessions WHERE id = ?`, deviceID).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}
	return store.ErrStateConflict
}
