package domain

import "time"

// DeviceState is the lifecycle of a pairing session. Approved and Expired are
// terminal.
type DeviceState string

const (
	DevicePending  DeviceState = "pending"
	DeviceApproved DeviceState = "approved"
	DeviceExpired  DeviceState = "expired"
)

// Terminal reports whether no further transition is possible.
func (s DeviceState) Terminal() bool {
	return s == DeviceApproved || s == DeviceExpired
}

func (s DeviceState) String() string { return string(s) }

// DeviceSession is a short-lived record letting an authenticated device push
// an authorization payload to a second, not-yet-authenticated device. The
// pending device registers the session and polls it; the message field is
// opaque to the server.
type DeviceSession struct {
	ID         string // device id, chosen by the registering device
	Name       string // optional human-readable device name
	State      DeviceState
	Message    string // approval payload, set on approve
	ApprovedBy string // user id of the approving session
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the session's deadline has passed at now.
func (d DeviceSession) Expired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}
