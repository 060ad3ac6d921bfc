package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
)

type invitationsRepo struct {
	q querier
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invitations (
			id, project_id, role, temp_public_key, temp_private_key,
			wrapped_secrets_key, state, created_by, expires_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.ProjectID, inv.Role.String(), inv.TempPublicKey,
		mapStringNull(inv.TempPrivateKey), inv.WrappedSecretsKey,
		string(inv.State), inv.CreatedBy, inv.ExpiresAt.UTC(), now, now,
	)
	return mapConflict(err)
}

func (r *invitationsRepo) GetInvitation(ctx context.Context, id string) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		role       string
		state      string
		privKey    sql.NullString
		acceptedBy sql.NullString
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, project_id, role, temp_public_key, temp_private_key,
		       wrapped_secrets_key, state, created_by, accepted_by,
		       expires_at, created_at, updated_at
		FROM invitations WHERE id = ?`, id,
	).Scan(
		&inv.ID, &inv.ProjectID, &role, &inv.TempPublicKey, &privKey,
		&inv.WrappedSecretsKey, &state, &inv.CreatedBy, &acceptedBy,
		&inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.Role = parsed
	inv.State = domain.InvitationState(state)
	inv.TempPrivateKey = mapNullString(privKey)
	inv.AcceptedBy = mapNullString(acceptedBy)
	return inv, nil
}

func (r *invitationsRepo) CompareAndSetState(ctx context.Context, id string, expected, next domain.InvitationState) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations SET state = ?, updated_at = ?
		WHERE id = ? AND state = ?`,
		string(next), time.Now().UTC(), id, string(expected),
	)
	if err != nil {
		return err
	}
	return r.casOutcome(ctx, res, id)
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id, acceptedBy string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations SET state = ?, accepted_by = ?, updated_at = ?
		WHERE id = ? AND state = ?`,
		string(domain.InvitationAccepted), acceptedBy, time.Now().UTC(),
		id, string(domain.InvitationIssued),
	)
	if err != nil {
		return err
	}
	return r.casOutcome(ctx, res, id)
}

func (r *invitationsRepo) PurgePrivateKey(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations SET temp_private_key = NULL, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, now time.Time) error {
	// Accepted rows are the audit trail of a membership grant and their key
	// material is already purged; the sweep leaves them alone.
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM invitations WHERE expires_at < ? AND state != 'accepted'`,
		now.UTC(),
	)
	return err
}

// casOutcome translates a zero-row conditional update into ErrNotFound or
// ErrStateConflict depending on whether the record exists at all.
func (r *invitationsRepo) casOutcome(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists int
	err = r.q.QueryRowContext(ctx, `SELECT 1 FROM invitations WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}
	return store.ErrStateConflict
}
