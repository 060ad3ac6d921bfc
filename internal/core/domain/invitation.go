package domain

import "time"

// InvitationState is the lifecycle of an invitation. Issued is the only
// non-terminal state; there are no transitions out of the other three.
type InvitationState string

const (
	InvitationIssued   InvitationState = "issued"
	InvitationAccepted InvitationState = "accepted"
	InvitationRevoked  InvitationState = "revoked"
	InvitationExpired  InvitationState = "expired"
)

// Terminal reports whether no further transition is possible.
func (s InvitationState) Terminal() bool {
	return s == InvitationAccepted || s == InvitationRevoked || s == InvitationExpired
}

func (s InvitationState) String() string { return string(s) }

// Invitation is a single-use, expiring offer of project membership at a fixed
// role. The inviter's client generates an ephemeral key pair and wraps the
// project secrets key under its public half; the server only ever stores the
// resulting ciphertext plus the key pair components it was handed. It performs
// no decryption.
type Invitation struct {
	ID        string
	ProjectID string
	Role      Role

	// TempPublicKey is the ephemeral public key the wrap was made under.
	TempPublicKey string

	// TempPrivateKey is held server-side only until acceptance, released to
	// the accepting client exactly once and purged afterwards.
	TempPrivateKey string

	// WrappedSecretsKey is the project secrets key encrypted under
	// TempPublicKey. Opaque to the server.
	WrappedSecretsKey string

	State      InvitationState
	CreatedBy  string
	AcceptedBy string // empty until accepted
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the invitation's deadline has passed at now.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
