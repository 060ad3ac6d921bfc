package domain

import "time"

// Project owns a membership map and an opaque encrypted secrets payload.
// The payload is ciphertext produced client-side; the server stores and
// returns it without ever holding the key that opens it.
type Project struct {
	ID               string
	Name             string
	EncryptedSecrets string // opaque ciphertext, base64 from the client
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Member is one entry of a project's membership map.
type Member struct {
	ProjectID string
	UserID    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
