package salesman

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	id "salescredit/pkg/domain"
	"salescredit/pkg/platform/sentinel"
)

// PostgresStore persists salesmen in the salesmen table.
// Pure I/O; state-machine rules live in the model and service.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const uniqueViolation = "23505"

func (s *PostgresStore) CreateIfUserAvailable(ctx context.Context, sm *Salesman) error {
	query := `
		INSERT INTO salesmen (id, user_id, credit_limit, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(sm.ID),
		sm.UserID.String(),
		sm.Limit.String(),
		string(sm.State),
		sm.CreatedAt,
		sm.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create salesman: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, salesmanID id.SalesmanID) (*Salesman, error) {
	query := `
		SELECT id, user_id, credit_limit, state, created_at, updated_at
		FROM salesmen
		WHERE id = $1
	`
	return scanSalesman(s.db.QueryRowContext(ctx, query, uuid.UUID(salesmanID)))
}

func (s *PostgresStore) FindByUser(ctx context.Context, userID id.UserID) (*Salesman, error) {
	query := `
		SELECT id, user_id, credit_limit, state, created_at, updated_at
		FROM salesmen
		WHERE user_id = $1
	`
	return scanSalesman(s.db.QueryRowContext(ctx, query, userID.String()))
}

func (s *PostgresStore) List(ctx context.Context) ([]*Salesman, error) {
	query := `
		SELECT id, user_id, credit_limit, state, created_at, updated_at
		FROM salesmen
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list salesmen: %w", err)
	}
	defer rows.Close()

	var out []*Salesman
	for rows.Next() {
		sm, err := scanSalesmanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, sm *Salesman) error {
	query := `
		UPDATE salesmen
		SET credit_limit = $2, state = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		uuid.UUID(sm.ID),
		sm.Limit.String(),
		string(sm.State),
		sm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update salesman: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, salesmanID id.SalesmanID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM salesmen WHERE id = $1`, uuid.UUID(salesmanID))
	if err != nil {
		return fmt.Errorf("delete salesman: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSalesman(row *sql.Row) (*Salesman, error) {
	sm, err := scanSalesmanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return sm, nil
}

func scanSalesmanRow(row rowScanner) (*Salesman, error) {
	var (
		sm       Salesman
		rawID    uuid.UUID
		userID   string
		rawLimit string
		state    string
	)
	if err := row.Scan(&rawID, &userID, &rawLimit, &state, &sm.CreatedAt, &sm.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan salesman: %w", err)
	}

	limit, err := decimal.NewFromString(rawLimit)
	if err != nil {
		return nil, fmt.Errorf("parse salesman limit: %w", err)
	}

	sm.ID = id.SalesmanID(rawID)
	sm.UserID = id.UserID(userID)
	sm.Limit = limit
	sm.State = State(state)
	return &sm, nil
}
