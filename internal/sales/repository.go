package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salespulse/salespulse/internal/platform/httpx"
)

// Sentinels wrap the httpx ones so the HTTP layer resolves statuses through
// httpx.RespondError.
var (
	ErrNotFound      = fmt.Errorf("sale record: %w", httpx.ErrNotFound)
	ErrAlreadyExists = fmt.Errorf("sale record: %w", httpx.ErrDuplicate)
)

// Repository provides PostgreSQL backed persistence for sale records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const listQuery = `
SELECT id, sale_date, product, customer, amount, status, source, notes, created_at
FROM sales
WHERE workspace_id = $1
ORDER BY sale_date DESC, created_at DESC`

// List returns the full sale collection for a workspace, newest first.
func (r *Repository) List(ctx context.Context, workspaceID string) ([]Sale, error) {
	rows, err := r.pool.Query(ctx, listQuery, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("sales: list: %w", err)
	}
	defer rows.Close()

	var result []Sale
	for rows.Next() {
		var s Sale
		var status string
		if err := rows.Scan(&s.ID, &s.Date, &s.Product, &s.Customer, &s.Amount, &status, &s.Source, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("sales: scan: %w", err)
		}
		s.Status = SaleStatus(status)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales: rows: %w", err)
	}
	return result, nil
}

const insertQuery = `
INSERT INTO sales (id, workspace_id, sale_date, product, customer, amount, status, source, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at`

// Insert stores one sale record.
func (r *Repository) Insert(ctx context.Context, workspaceID string, s *Sale) error {
	err := r.pool.QueryRow(ctx, insertQuery,
		s.ID, workspaceID, s.Date, s.Product, s.Customer, s.Amount, string(s.Status), s.Source, s.Notes,
	).Scan(&s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("sales: insert %s: %w", s.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("sales: insert: %w", err)
	}
	return nil
}

const getQuery = `
SELECT id, sale_date, product, customer, amount, status, source, notes, created_at
FROM sales
WHERE workspace_id = $1 AND id = $2`

// Get fetches a single sale by ID.
func (r *Repository) Get(ctx context.Context, workspaceID, id string) (*Sale, error) {
	var s Sale
	var status string
	err := r.pool.QueryRow(ctx, getQuery, workspaceID, id).
		Scan(&s.ID, &s.Date, &s.Product, &s.Customer, &s.Amount, &status, &s.Source, &s.Notes, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("sales: get: %w", err)
	}
	s.Status = SaleStatus(status)
	return &s, nil
}
