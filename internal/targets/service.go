package targets

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/salespulse/salespulse/internal/platform/httpx"
)

// ErrNoValidFields rejects an update that carries none of the recognized
// target fields with a usable numeric value. Detected before any
// persistence call is made. Wraps httpx.ErrValidation for status mapping.
var ErrNoValidFields = fmt.Errorf("no valid target fields provided: %w", httpx.ErrValidation)

// Store is the persistence contract the service depends on.
type Store interface {
	Get(ctx context.Context, workspaceID string) (Config, error)
	Merge(ctx context.Context, workspaceID string, fields map[string]float64) error
}

// Service exposes read and partial-write operations for the target
// configuration of one workspace.
type Service struct {
	repo        Store
	workspaceID string
}

// NewService constructs a targets service.
func NewService(repo Store, workspaceID string) *Service {
	return &Service{repo: repo, workspaceID: workspaceID}
}

// Get returns the full current snapshot.
func (s *Service) Get(ctx context.Context) (Config, error) {
	cfg, err := s.repo.Get(ctx, s.workspaceID)
	if err != nil {
		return Config{}, fmt.Errorf("get targets: %w", err)
	}
	return cfg, nil
}

// Update merges a partial update into persisted state. Only the five
// recognized keys are considered; numeric strings are coerced; a value that
// does not coerce to a finite number is dropped. An update that filters down
// to nothing fails with ErrNoValidFields and never reaches the store.
func (s *Service) Update(ctx context.Context, input map[string]any) error {
	fields := make(map[string]float64, len(FieldNames))
	for _, name := range FieldNames {
		raw, ok := input[name]
		if !ok || raw == nil {
			continue
		}
		value, ok := coerceNumber(raw)
		if !ok {
			continue
		}
		fields[name] = value
	}
	if len(fields) == 0 {
		return ErrNoValidFields
	}

	if err := s.repo.Merge(ctx, s.workspaceID, fields); err != nil {
		return fmt.Errorf("update targets: %w", err)
	}
	return nil
}

// coerceNumber converts JSON-decoded values to a finite float64. Non-finite
// coercions are dropped so NaN and infinities never reach storage.
func coerceNumber(raw any) (float64, bool) {
	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		value = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
