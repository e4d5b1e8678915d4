package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "salescredit/pkg/domain"
)

// PostgresStore persists audit events in the audit_events table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	query := `
		INSERT INTO audit_events (id, occurred_at, actor, action, description, request_id, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(),
		event.Timestamp,
		event.Actor.String(),
		event.Action,
		event.Description,
		event.RequestID,
		event.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByActor(ctx context.Context, actor id.UserID) ([]Event, error) {
	query := `
		SELECT occurred_at, actor, action, description, request_id, user_agent
		FROM audit_events
		WHERE actor = $1
		ORDER BY occurred_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, actor.String())
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var actorStr string
		if err := rows.Scan(&e.Timestamp, &actorStr, &e.Action, &e.Description, &e.RequestID, &e.UserAgent); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Actor = id.UserID(actorStr)
		events = append(events, e)
	}
	return events, rows.Err()
}
