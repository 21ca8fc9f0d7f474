package sales

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Store is the persistence contract the service depends on.
type Store interface {
	List(ctx context.Context, workspaceID string) ([]Sale, error)
	Insert(ctx context.Context, workspaceID string, s *Sale) error
	Get(ctx context.Context, workspaceID, id string) (*Sale, error)
}

// CacheBumper invalidates derived-data caches after intake writes.
type CacheBumper interface {
	Bump(ctx context.Context) error
}

// Service provides business logic for sale intake and reads.
type Service struct {
	repo        Store
	workspaceID string
	validate    *validator.Validate
	bumper      CacheBumper
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a sales service bound to one workspace.
func NewService(repo Store, workspaceID string, bumper CacheBumper, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		workspaceID: workspaceID,
		validate:    validator.New(),
		bumper:      bumper,
		logger:      logger,
		now:         time.Now,
	}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// CreateSale validates and stores one sale record, then invalidates the KPI
// cache so dashboard readers see the new collection revision.
func (s *Service) CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("sales: validate: %w", err)
	}

	date := req.Date.Instant()
	if date.IsZero() {
		date = s.now()
	}

	sale := Sale{
		ID:       uuid.NewString(),
		Date:     date,
		Product:  req.Product,
		Customer: req.Customer,
		Amount:   req.Amount,
		Status:   SaleStatus(req.Status),
		Source:   req.Source,
		Notes:    req.Notes,
	}
	if err := s.repo.Insert(ctx, s.workspaceID, &sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	if s.bumper != nil {
		if err := s.bumper.Bump(ctx); err != nil && s.logger != nil {
			// The record is stored; a stale cache only delays the dashboard
			// until the next version roll.
			s.logger.Warn("bump kpi cache", slog.Any("error", err))
		}
	}
	return &sale, nil
}

// ListSales returns the full sale collection for the workspace.
func (s *Service) ListSales(ctx context.Context) ([]Sale, error) {
	list, err := s.repo.List(ctx, s.workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}

// GetSale fetches a single sale.
func (s *Service) GetSale(ctx context.Context, id string) (*Sale, error) {
	sale, err := s.repo.Get(ctx, s.workspaceID, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}
