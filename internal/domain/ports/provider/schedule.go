package provider

import (
	"context"

	"telegram-blackout-bot/internal/domain/model"
)

// ScheduleProvider fetches one city's planned-outage document. Unknown
// city keys fail with domain.ErrUnknownCity before any network I/O; all
// upstream failures collapse to domain.ErrScheduleUnavailable.
type ScheduleProvider interface {
	Fetch(ctx context.Context, cityKey string) (model.OutageDocument, error)
}
