package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
)

// EventEmitter is the outbound trust-event channel. Successful acceptance and
// approval transitions enqueue a record here for external observers
// (analytics, notifications). Emission never blocks the request path: when
// the buffer is full the event is dropped with a warning, the request
// outcome is unaffected.
type EventEmitter struct {
	ch     chan domain.Event
	logger *slog.Logger

	closeOnce sync.Once
}

// NewEventEmitter creates an emitter with the given buffer size. A size of
// 0 or less gets a sane default.
func NewEventEmitter(buffer int, logger *slog.Logger) *EventEmitter {
	if buffer <= 0 {
		buffer = 64
	}
	return &EventEmitter{
		ch:     make(chan domain.Event, buffer),
		logger: logger,
	}
}

// Emit enqueues an event without blocking.
func (e *EventEmitter) Emit(ev domain.Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	select {
	case e.ch <- ev:
	default:
		e.logger.Warn("event buffer full, dropping event",
			"type", string(ev.Type),
			"subject_id", ev.SubjectID,
		)
	}
}

// Events exposes the consumer side of the channel.
func (e *EventEmitter) Events() <-chan domain.Event {
	return e.ch
}

// Close terminates the channel. Call only after all emitters have stopped.
func (e *EventEmitter) Close() {
	e.closeOnce.Do(func() { close(e.ch) })
}
