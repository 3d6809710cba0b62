package matchdoc

import "context"

// Repository is the document-store aggregation capability.
//
// Both season aggregations return their rows sorted ascending by player id.
// That ordering is a load-bearing contract: scorer matching locates rows by
// binary search instead of building a hash index, so implementations must
// keep a sort stage on the player id in their pipelines.
type Repository interface {
	AppearancesBySeason(ctx context.Context, seasonID int64) ([]PlayerAggregate, error)
	EffectiveActionsBySeason(ctx context.Context, seasonID int64, types []EventType) ([]PlayerAggregate, error)
	GetByGameID(ctx context.Context, gameID int64) (Document, bool, error)
}
