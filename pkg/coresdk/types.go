package coresdk

// ErrorResponse is the error payload every endpoint returns.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "access_denied")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Project Types
// ============================================================================

// CreateProjectRequest creates a project; the caller becomes its Admin.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// ProjectResponse is the project as returned to members.
type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// EncryptedSecrets is the opaque ciphertext payload; decryption happens
	// on the client.
	EncryptedSecrets string `json:"encrypted_secrets"`
}

// UpdateSecretsRequest replaces the project's encrypted secrets payload.
type UpdateSecretsRequest struct {
	EncryptedSecrets string `json:"encrypted_secrets"`
}

// MembersResponse maps user id to role label.
type MembersResponse struct {
	Members map[string]string `json:"members"`
}

// SetMemberRoleRequest changes an existing member's role.
type SetMemberRoleRequest struct {
	Role string `json:"role"`
}

// ============================================================================
// Invitation Types
// ============================================================================

// IssueInvitationRequest carries the ephemeral key material the inviter's
// client generated. The server stores all three fields as opaque strings.
type IssueInvitationRequest struct {
	ProjectID string `json:"project_id"`
	Role      string `json:"role"`

	// TempPublicKey is the ephemeral public key the wrap was made under.
	TempPublicKey string `json:"temp_public_key"`

	// TempPrivateKey is held server-side until acceptance and released to
	// the accepting client exactly once.
	TempPrivateKey string `json:"temp_private_key"`

	// WrappedSecretsKey is the project secrets key encrypted under
	// TempPublicKey.
	WrappedSecretsKey string `json:"wrapped_secrets_key"`
}

// InvitationResponse describes an issued invitation. It never includes the
// private key.
type InvitationResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// AcceptInvitationResponse is the one-time release of the decryption
// capability to the accepting client.
type AcceptInvitationResponse struct {
	ProjectID         string `json:"project_id"`
	Role              string `json:"role"`
	TempPublicKey     string `json:"temp_public_key"`
	TempPrivateKey    string `json:"temp_private_key"`
	WrappedSecretsKey string `json:"wrapped_secrets_key"`
}

// ============================================================================
// Device Pairing Types
// ============================================================================

// RegisterDeviceRequest opens a pending pairing session.
type RegisterDeviceRequest struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name,omitempty"`
}

// RegisterDeviceResponse confirms the pending session and its deadline.
type RegisterDeviceResponse struct {
	DeviceID  string `json:"device_id"`
	Status    string `json:"status"`
	ExpiresAt int64  `json:"expires_at"`
}

// PingDeviceResponse is what the pending device observes while polling.
// Message is present once status is "approved".
type PingDeviceResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ApproveDeviceRequest pushes the approval payload to a pending device.
type ApproveDeviceRequest struct {
	Message string `json:"message"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports the state of individual dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Verifier string `json:"verifier"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
