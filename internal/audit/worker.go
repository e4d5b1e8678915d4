package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Sink mirrors events to an external system (Kafka in production).
type Sink interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Worker consumes audit events from the publisher and persists them, and
// optionally mirrors them to a sink. Failures are logged, never propagated:
// audit must not take down the operations it records.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// WithSink attaches an external sink. Returns the worker for chaining in main.
func (w *Worker) WithSink(sink Sink) *Worker {
	w.sink = sink
	return w
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.handle(ctx, event)
		}
	}
}

func (w *Worker) handle(ctx context.Context, event Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.Error("append audit event", "action", event.Action, "error", err)
	}
	if w.sink == nil {
		return
	}
	payload, err := json.Marshal(sinkPayload{
		Timestamp:   event.Timestamp.Format(time.RFC3339Nano),
		Actor:       event.Actor.String(),
		Action:      event.Action,
		Description: event.Description,
		RequestID:   event.RequestID,
		UserAgent:   event.UserAgent,
	})
	if err != nil {
		w.logger.Error("marshal audit event", "action", event.Action, "error", err)
		return
	}
	if err := w.sink.Publish(ctx, event.Actor.String(), payload); err != nil {
		w.logger.Error("publish audit event", "action", event.Action, "error", err)
	}
}

// sinkPayload is the JSON structure published to the external sink.
type sinkPayload struct {
	Timestamp   string `json:"timestamp"`
	Actor       string `json:"actor"`
	Action      string `json:"action"`
	Description string `json:"description"`
	RequestID   string `json:"request_id,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
}
