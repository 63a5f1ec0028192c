package repository

import (
	"context"

	"flightboard-service/internal/domain/entity"
)

// SnapshotRepository archives the input document of a pipeline run.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.RunSnapshot) error
}
