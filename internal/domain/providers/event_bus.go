package providers

import (
	"context"

	"github.com/careloop/synthgen/internal/domain/entities"
)

// EventBus announces completed generation runs to downstream
// consumers. Announcement failures are reported but never invalidate
// the generated dataset.
type EventBus interface {
	Publish(ctx context.Context, channel string, event *entities.RunEvent) error
	Close() error
}
