package audit

import (
	"context"
	"log/slog"

	"salescredit/pkg/requestcontext"
)

// Publisher accepts audit events from domain logic and hands them to the
// worker through a bounded channel. Recording is fire-and-forget: a full
// buffer drops the event with a log line rather than blocking or failing the
// calling operation.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger, buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Record captures an action performed by the caller identified in ctx.
func (p *Publisher) Record(ctx context.Context, action, description string) {
	event := Event{
		Timestamp:   requestcontext.Now(ctx),
		Actor:       requestcontext.Actor(ctx),
		Action:      action,
		Description: description,
		RequestID:   requestcontext.RequestID(ctx),
		UserAgent:   requestcontext.UserAgent(ctx),
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("audit buffer full, dropping event",
			"action", action,
			"request_id", event.RequestID,
		)
	}
}

// Events exposes the inbox for the worker.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}
