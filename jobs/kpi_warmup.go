package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/salespulse/salespulse/internal/analytics"
)

// KPIWarmupJob pre-populates the KPI cache so dashboard reads stay hot
// across the midnight window roll.
type KPIWarmupJob struct {
	Analytics *analytics.Service
	Logger    *slog.Logger
	clock     func() time.Time
}

// NewKPIWarmupJob wires dependencies for the warmup handler.
func NewKPIWarmupJob(analyticsSvc *analytics.Service, logger *slog.Logger) *KPIWarmupJob {
	return &KPIWarmupJob{
		Analytics: analyticsSvc,
		Logger:    logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes KPI warmup tasks.
func (j *KPIWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Analytics == nil {
		return errors.New("kpi warmup: handler not configured")
	}
	var payload KPIWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.logger().With(slog.String("workspace_id", payload.WorkspaceID))
	start := j.clock()

	jobCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	snap, err := j.Analytics.Snapshot(jobCtx)
	if err != nil {
		logger.Error("warm kpi cache", slog.Any("error", err))
		return err
	}

	logger.Info("completed kpi warmup",
		slog.Int("sales_count", snap.SalesCount),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *KPIWarmupJob) logger() *slog.Logger {
	if j != nil && j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
