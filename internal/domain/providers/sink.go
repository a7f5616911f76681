package providers

import (
	"context"

	"github.com/careloop/synthgen/internal/domain/entities"
)

// DatasetSink accepts the full in-memory table collection after a
// generation run completes and writes it somewhere. Implementations
// must not mutate the dataset, so a failed emission can be retried
// against the same tables without regenerating.
type DatasetSink interface {
	Emit(ctx context.Context, dataset *entities.Dataset) error
}
