// Package store persists simulation runs so they can be listed and fetched later.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Run is one stored simulation: the workload that was submitted and what the algorithm produced.
type Run struct {
	ID        string
	Algorithm string
	Request   requests.ScheduleRequests
	Response  responses.ScheduleResponse
	CreatedAt time.Time
}

// Store defines the persistence layer for runs.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	// GetRun returns nil, nil when no run has the id.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	Close() error
	Migrate(ctx context.Context) error
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return "run_" + uuid.NewString()
}
