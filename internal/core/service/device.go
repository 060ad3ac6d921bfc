package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

const DefaultDeviceTTL = 10 * time.Minute

var (
	ErrInvalidDeviceRequest = errors.New("invalid device request")
	ErrDeviceAlreadyExists  = errors.New("device already registered")
	ErrSessionNotFound      = errors.New("device session not found")

	// ErrSessionNotPending: approve was called on a session that already
	// reached a terminal state (approved or expired).
	ErrSessionNotPending = errors.New("device session not pending")
)

// DeviceStatus is what a pending device observes when polling.
type DeviceStatus struct {
	State   domain.DeviceState
	Message string // set once the session is approved
}

// DeviceService runs the cross-device pairing flow: a new device registers a
// pending session and polls it, an already-authenticated device pushes an
// approval payload into it. The payload is opaque to the server. Independent
// of project roles, but shares the trust-event emission path.
type DeviceService struct {
	Store  store.Store
	Events *EventEmitter

	// TTL bounds how long a session stays approvable. DefaultDeviceTTL
	// when zero.
	TTL time.Duration
}

// Register creates a pending session for the given device id.
func (s *DeviceService) Register(ctx context.Context, deviceID, deviceName string) (domain.DeviceSession, error) {
	log := slogx.FromContext(ctx)

	if deviceID == "" {
		return domain.DeviceSession{}, ErrInvalidDeviceRequest
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultDeviceTTL
	}

	session := domain.DeviceSession{
		ID:        deviceID,
		Name:      deviceName,
		State:     domain.DevicePending,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	if err := s.Store.Devices().CreateDeviceSession(ctx, session); err != nil {
		log.Warn("failed to register device session",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.DeviceSession{}, ErrDeviceAlreadyExists
		}
		return domain.DeviceSession{}, err
	}

	log.Info("device session registered",
		slog.String("device_id", deviceID),
		slog.Time("expires_at", session.ExpiresAt),
	)
	return session, nil
}

// Ping is the pending device's poll. A session past its deadline is
// transitioned to expired server-side and reported as such. Expiry is an
// explicit terminal status, never an extended pending.
func (s *DeviceService) Ping(ctx context.Context, deviceID string) (DeviceStatus, error) {
	session, err := s.Store.Devices().GetDeviceSession(ctx, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DeviceStatus{}, ErrSessionNotFound
		}
		return DeviceStatus{}, err
	}

	if session.State == domain.DevicePending && session.Expired(time.Now().UTC()) {
		err := s.Store.Devices().CompareAndSetState(ctx, deviceID,
			domain.DevicePending, domain.DeviceExpired)
		switch {
		case err == nil:
			return DeviceStatus{State: domain.DeviceExpired}, nil
		case errors.Is(err, store.ErrStateConflict):
			// An approve slipped in between the read and the transition;
			// report what actually happened.
			session, err = s.Store.Devices().GetDeviceSession(ctx, deviceID)
			if err != nil {
				return DeviceStatus{}, err
			}
		default:
			return DeviceStatus{}, err
		}
	}

	return DeviceStatus{State: session.State, Message: session.Message}, nil
}

// Approve lets an authenticated session push the approval payload to a
// pending device. The pending -> approved transition is one conditional
// update, so a double approve or an approve racing expiry loses
// deterministically.
func (s *DeviceService) Approve(ctx context.Context, authenticatedUserID, deviceID, message string) error {
	log := slogx.FromContext(ctx)

	if authenticatedUserID == "" || deviceID == "" {
		return ErrInvalidDeviceRequest
	}

	session, err := s.Store.Devices().GetDeviceSession(ctx, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	// Lazy expiry applies here too: an approve after the deadline must
	// fail, transitioning the session on the way.
	if session.State == domain.DevicePending && session.Expired(time.Now().UTC()) {
		err := s.Store.Devices().CompareAndSetState(ctx, deviceID,
			domain.DevicePending, domain.DeviceExpired)
		if err != nil && !errors.Is(err, store.ErrStateConflict) {
			return err
		}
		return ErrSessionNotPending
	}

	if err := s.Store.Devices().Approve(ctx, deviceID, authenticatedUserID, message); err != nil {
		if errors.Is(err, store.ErrStateConflict) {
			return ErrSessionNotPending
		}
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	log.Info("device session approved",
		slog.String("device_id", deviceID),
		slog.String("approved_by", authenticatedUserID),
	)

	s.Events.Emit(domain.Event{
		Type:      domain.EventDeviceApproved,
		ActorID:   authenticatedUserID,
		SubjectID: deviceID,
	})

	return nil
}
