package store

import (
	"context"
	"errors"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStateConflict reports a conditional update whose expected prior
	// state no longer matched. The record exists; someone else won the race.
	ErrStateConflict = errors.New("store: state conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. Sub-repositories keep concerns tidy and testable, and the core never
// issues raw unconditional writes against shared mutable records: every
// lifecycle transition goes through a conditional update keyed on the
// expected prior state.
type Store interface {
	Projects() Projects
	Invitations() Invitations
	Devices() Devices

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (invitation acceptance, membership rewrites).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Projects interface {
	// CreateProject inserts a new project (id is provided by app via ULID).
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProject returns a project by id.
	GetProject(ctx context.Context, id string) (domain.Project, error)

	// UpdateEncryptedSecrets replaces the project's opaque secrets payload.
	UpdateEncryptedSecrets(ctx context.Context, projectID, ciphertext string) error

	// GetMembership returns the full membership map of a project. A missing
	// project is ErrNotFound; a present project with no members returns an
	// empty map. Callers rely on this distinction.
	GetMembership(ctx context.Context, projectID string) (map[string]domain.Role, error)

	// SetMembership replaces the project's membership map. Call inside a
	// transaction together with whatever made the rewrite necessary.
	SetMembership(ctx context.Context, projectID string, members map[string]domain.Role) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation in state issued.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitation returns an invitation by id.
	GetInvitation(ctx context.Context, id string) (domain.Invitation, error)

	// CompareAndSetState transitions the invitation only if its current
	// state matches expected. A present record in another state is
	// ErrStateConflict; a missing record is ErrNotFound.
	CompareAndSetState(ctx context.Context, id string, expected, next domain.InvitationState) error

	// MarkInvitationAccepted is the acceptance transition: issued ->
	// accepted plus accepted_by, in one conditional update.
	MarkInvitationAccepted(ctx context.Context, id, acceptedBy string) error

	// PurgePrivateKey discards the stored ephemeral private key. The record
	// itself stays for auditability; the key material must not remain
	// queryable once released.
	PurgePrivateKey(ctx context.Context, id string) error

	// DeleteExpiredInvitations removes non-accepted invitations past their
	// deadline, including any still-resident private key material. Accepted
	// rows survive as the record of the grant. Housekeeping.
	DeleteExpiredInvitations(ctx context.Context, now time.Time) error
}

type Devices interface {
	// CreateDeviceSession inserts a new pending session.
	CreateDeviceSession(ctx context.Context, d domain.DeviceSession) error

	// GetDeviceSession returns a session by device id.
	GetDeviceSession(ctx context.Context, deviceID string) (domain.DeviceSession, error)

	// CompareAndSetState transitions the session only if its current state
	// matches expected. Same semantics as the invitation variant.
	CompareAndSetState(ctx context.Context, deviceID string, expected, next domain.DeviceState) error

	// Approve is the pending -> approved transition carrying the approval
	// payload, in one conditional update. A session no longer pending is
	// ErrStateConflict.
	Approve(ctx context.Context, deviceID, approvedBy, message string) error

	// DeleteExpiredDeviceSessions removes sessions past their deadline.
	// Housekeeping.
	DeleteExpiredDeviceSessions(ctx context.Context, now time.Time) error
}
