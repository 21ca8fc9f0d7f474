package targets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for the target
// configuration document.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const getQuery = `
SELECT monthly_revenue, target_customers, target_calls, target_deals, target_conversion_rate, updated_at
FROM targets
WHERE workspace_id = $1`

// Get fetches the full snapshot. A workspace that never persisted targets
// reads as all-zero defaults, matching the store collaborator's contract.
func (r *Repository) Get(ctx context.Context, workspaceID string) (Config, error) {
	var cfg Config
	err := r.pool.QueryRow(ctx, getQuery, workspaceID).Scan(
		&cfg.MonthlyRevenue,
		&cfg.TargetCustomers,
		&cfg.TargetCalls,
		&cfg.TargetDeals,
		&cfg.TargetConversionRate,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("targets: get: %w", err)
	}
	return cfg, nil
}

const mergeQuery = `
INSERT INTO targets (workspace_id, monthly_revenue, target_customers, target_calls, target_deals, target_conversion_rate, updated_at)
VALUES ($1, COALESCE($2, 0), COALESCE($3, 0), COALESCE($4, 0), COALESCE($5, 0), COALESCE($6, 0), now())
ON CONFLICT (workspace_id) DO UPDATE SET
	monthly_revenue        = COALESCE($2, targets.monthly_revenue),
	target_customers       = COALESCE($3, targets.target_customers),
	target_calls           = COALESCE($4, targets.target_calls),
	target_deals           = COALESCE($5, targets.target_deals),
	target_conversion_rate = COALESCE($6, targets.target_conversion_rate),
	updated_at             = now()`

// Merge writes the present fields and leaves the rest untouched. One
// statement, so readers never observe a half-applied update.
func (r *Repository) Merge(ctx context.Context, workspaceID string, fields map[string]float64) error {
	pick := func(name string) *float64 {
		if v, ok := fields[name]; ok {
			return &v
		}
		return nil
	}

	_, err := r.pool.Exec(ctx, mergeQuery,
		workspaceID,
		pick(FieldMonthlyRevenue),
		pick(FieldTargetCustomers),
		pick(FieldTargetCalls),
		pick(FieldTargetDeals),
		pick(FieldTargetConversionRate),
	)
	if err != nil {
		return fmt.Errorf("targets: merge: %w", err)
	}
	return nil
}
