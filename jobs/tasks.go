package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskKPIWarmup is the task type for pre-populating the KPI cache.
	TaskKPIWarmup = "kpi:warmup"
)

// KPIWarmupPayload scopes a warmup run to one workspace.
type KPIWarmupPayload struct {
	WorkspaceID string `json:"workspace_id"`
}

// NewKPIWarmupTask constructs an Asynq task.
func NewKPIWarmupTask(payload KPIWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskKPIWarmup, data), nil
}
