package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/pkg/idx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

const DefaultInvitationTTL = 7 * 24 * time.Hour

var (
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")
	ErrInvitationNotFound       = errors.New("invitation not found")
	ErrInvitationExpired        = errors.New("invitation expired")

	// ErrInvitationNotRedeemable: the invitation is in a terminal state
	// (already accepted or revoked). Terminal states never transition again.
	ErrInvitationNotRedeemable = errors.New("invitation not redeemable")
)

// InvitationService hands a new collaborator a usable decryption capability
// without the server ever holding the project secrets key unwrapped. The
// inviter's client generates an ephemeral key pair and wraps the project
// secrets key under its public half; this service stores the results as
// opaque strings and enforces only who may issue what, never the
// cryptographic content.
type InvitationService struct {
	Store  store.Store
	Access *AccessService
	Events *EventEmitter

	// TTL bounds how long an issued invitation stays redeemable.
	// DefaultInvitationTTL when zero.
	TTL time.Duration
}

// MembershipGranted is the accept outcome. TempPrivateKey is released here
// exactly once; the server-side copy is purged in the same transaction.
type MembershipGranted struct {
	ProjectID         string
	Role              domain.Role
	TempPublicKey     string
	TempPrivateKey    string
	WrappedSecretsKey string
}

// Issue creates an invitation at the requested role. The inviter must hold
// at least that role on the project: the check runs against the requested
// role itself, so a Write member asking for an Admin invitation is denied no
// matter what the request claims.
func (s *InvitationService) Issue(
	ctx context.Context,
	inviterID, projectID string,
	role domain.Role,
	tempPublicKey, tempPrivateKey, wrappedSecretsKey string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the grantable set before touching anything else.
	if !role.Valid() {
		return domain.Invitation{}, domain.ErrInvalidRole
	}
	if tempPublicKey == "" || wrappedSecretsKey == "" {
		return domain.Invitation{}, ErrInvalidInvitationRequest
	}

	// 2. The inviter must be authorized at the requested role.
	if err := s.Access.Authorize(ctx, inviterID, projectID, role); err != nil {
		return domain.Invitation{}, err
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:                idx.New().String(),
		ProjectID:         projectID,
		Role:              role,
		TempPublicKey:     tempPublicKey,
		TempPrivateKey:    tempPrivateKey,
		WrappedSecretsKey: wrappedSecretsKey,
		State:             domain.InvitationIssued,
		CreatedBy:         inviterID,
		ExpiresAt:         now.Add(ttl),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("project_id", projectID),
		slog.String("role", role.String()),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return inv, nil
}

// Accept redeems an invitation exactly once. The state transition and the
// membership insert happen in one transaction around a conditional update:
// under concurrent acceptance attempts exactly one caller wins, everyone
// else observes a terminal state. The stored ephemeral private key is
// released in the result and purged before the transaction commits.
func (s *InvitationService) Accept(ctx context.Context, invitationID, acceptingUserID string) (MembershipGranted, error) {
	log := slogx.FromContext(ctx)

	if invitationID == "" || acceptingUserID == "" {
		return MembershipGranted{}, ErrInvalidInvitationRequest
	}

	var granted MembershipGranted
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Load and classify the invitation.
		inv, err := tx.Invitations().GetInvitation(ctx, invitationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}
		if inv.State.Terminal() {
			if inv.State == domain.InvitationExpired {
				return ErrInvitationExpired
			}
			return ErrInvitationNotRedeemable
		}

		// 2. Lazy expiry: a past-deadline invitation becomes expired now,
		// and the accept fails explicitly.
		if inv.Expired(time.Now().UTC()) {
			if err := tx.Invitations().CompareAndSetState(ctx, invitationID,
				domain.InvitationIssued, domain.InvitationExpired); err != nil && !errors.Is(err, store.ErrStateConflict) {
				return err
			}
			return ErrInvitationExpired
		}

		// 3. The winning transition. A conflict means someone else got
		// here first.
		if err := tx.Invitations().MarkInvitationAccepted(ctx, invitationID, acceptingUserID); err != nil {
			if errors.Is(err, store.ErrStateConflict) {
				return ErrInvitationNotRedeemable
			}
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}

		// 4. Membership insert, same transaction: both land or neither. An
		// existing member keeps their current role when it outranks the
		// invited one; accepting an invitation never demotes anyone.
		members, err := tx.Projects().GetMembership(ctx, inv.ProjectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		effectiveRole := inv.Role
		if existing, ok := members[acceptingUserID]; ok && existing.AtLeast(inv.Role) {
			effectiveRole = existing
		}
		members[acceptingUserID] = effectiveRole
		if err := tx.Projects().SetMembership(ctx, inv.ProjectID, members); err != nil {
			return err
		}

		// 5. Release the ephemeral private key to the caller and purge the
		// stored copy so it is never queryable again.
		granted = MembershipGranted{
			ProjectID:         inv.ProjectID,
			Role:              effectiveRole,
			TempPublicKey:     inv.TempPublicKey,
			TempPrivateKey:    inv.TempPrivateKey,
			WrappedSecretsKey: inv.WrappedSecretsKey,
		}
		return tx.Invitations().PurgePrivateKey(ctx, invitationID)
	})
	if err != nil {
		return MembershipGranted{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", invitationID),
		slog.String("project_id", granted.ProjectID),
		slog.String("user_id", acceptingUserID),
		slog.String("role", granted.Role.String()),
	)

	s.Events.Emit(domain.Event{
		Type:      domain.EventInvitationAccepted,
		ProjectID: granted.ProjectID,
		ActorID:   acceptingUserID,
		SubjectID: invitationID,
	})

	return granted, nil
}

// Revoke cancels an issued invitation. Requires Admin on the invitation's
// project. Revoking an already-revoked invitation is a no-op success;
// revoking an accepted or expired one fails ErrInvitationNotRedeemable.
func (s *InvitationService) Revoke(ctx context.Context, adminID, invitationID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitation(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	if err := s.Access.Authorize(ctx, adminID, inv.ProjectID, domain.RoleAdmin); err != nil {
		return err
	}

	switch inv.State {
	case domain.InvitationRevoked:
		return nil // idempotent
	case domain.InvitationAccepted, domain.InvitationExpired:
		return ErrInvitationNotRedeemable
	}

	err = s.Store.Invitations().CompareAndSetState(ctx, invitationID,
		domain.InvitationIssued, domain.InvitationRevoked)
	if err != nil {
		if errors.Is(err, store.ErrStateConflict) {
			// Lost a race against accept/expiry; re-read for the precise
			// answer.
			current, gerr := s.Store.Invitations().GetInvitation(ctx, invitationID)
			if gerr == nil && current.State == domain.InvitationRevoked {
				return nil
			}
			return ErrInvitationNotRedeemable
		}
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	log.Info("invitation revoked",
		slog.String("invitation_id", invitationID),
		slog.String("project_id", inv.ProjectID),
		slog.String("admin_id", adminID),
	)
	return nil
}
