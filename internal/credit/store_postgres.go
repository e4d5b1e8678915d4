package credit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "salescredit/pkg/domain"
	"salescredit/pkg/platform/sentinel"
)

// PostgresStore persists credits in the credits table. The unique index on
// license_id is the authoritative uniqueness guarantee; the engine's
// pre-check only exists for a friendlier error message.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const uniqueViolation = "23505"

func (s *PostgresStore) Create(ctx context.Context, c *Credit) error {
	query := `
		INSERT INTO credits (id, salesman_id, license_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(c.ID),
		uuid.UUID(c.SalesmanID),
		c.LicenseID.String(),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create credit: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, creditID id.CreditID) (*Credit, error) {
	query := `
		SELECT id, salesman_id, license_id, created_at, updated_at
		FROM credits
		WHERE id = $1
	`
	return scanCredit(s.db.QueryRowContext(ctx, query, uuid.UUID(creditID)))
}

func (s *PostgresStore) FindByLicense(ctx context.Context, licenseID id.LicenseID) (*Credit, error) {
	query := `
		SELECT id, salesman_id, license_id, created_at, updated_at
		FROM credits
		WHERE license_id = $1
	`
	return scanCredit(s.db.QueryRowContext(ctx, query, licenseID.String()))
}

func (s *PostgresStore) ListBySalesman(ctx context.Context, salesmanID id.SalesmanID) ([]*Credit, error) {
	query := `
		SELECT id, salesman_id, license_id, created_at, updated_at
		FROM credits
		WHERE salesman_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(salesmanID))
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	return collectCredits(rows)
}

func (s *PostgresStore) List(ctx context.Context) ([]*Credit, error) {
	query := `
		SELECT id, salesman_id, license_id, created_at, updated_at
		FROM credits
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	return collectCredits(rows)
}

func (s *PostgresStore) Delete(ctx context.Context, creditID id.CreditID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM credits WHERE id = $1`, uuid.UUID(creditID))
	if err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredit(row *sql.Row) (*Credit, error) {
	c, err := scanCreditRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanCreditRow(row rowScanner) (*Credit, error) {
	var (
		c          Credit
		rawID      uuid.UUID
		salesmanID uuid.UUID
		licenseID  string
	)
	if err := row.Scan(&rawID, &salesmanID, &licenseID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan credit: %w", err)
	}
	c.ID = id.CreditID(rawID)
	c.SalesmanID = id.SalesmanID(salesmanID)
	c.LicenseID = id.LicenseID(licenseID)
	return &c, nil
}

func collectCredits(rows *sql.Rows) ([]*Credit, error) {
	defer rows.Close()
	var out []*Credit
	for rows.Next() {
		c, err := scanCreditRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
