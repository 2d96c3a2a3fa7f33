package dedup

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"meetpay/internal/app/logger"
)

type Deduper interface {
	// FirstDelivery reports whether this event key was seen for the first time
	FirstDelivery(ctx context.Context, key string) bool
	// Release frees the key so a retried delivery passes again
	Release(ctx context.Context, key string)
}

// Deduper interface implementation
var _ Deduper = (*Guard)(nil)

// Guard suppresses duplicate deliveries of the same trigger event. The change
// feed is at-least-once; the ledger protocol is idempotent on its own, the
// guard just keeps duplicate edges from reaching the engine at all.
type Guard struct {
	client *redis.Client
	ttl    time.Duration
}

func (g *Guard) LoggerComponent() string {
	return "Dedup.Guard"
}

func New(client *redis.Client, ttl time.Duration) *Guard {
	return &Guard{
		client: client,
		ttl:    ttl,
	}
}

// FirstDelivery reports whether this event key was seen for the first time.
// A redis outage fails open: the event passes through and the engine's own
// idempotency takes over.
func (g *Guard) FirstDelivery(ctx context.Context, key string) bool {
	ok, err := g.client.SetNX(ctx, "meet-event:"+key, 1, g.ttl).Result()
	if err != nil {
		l := logger.Get(ctx, g)
		l.Warn().Err(err).Str("key", key).Msg("Dedup unavailable, passing event through")
		return true
	}

	return ok
}

// Release frees an event key consumed by FirstDelivery so a host retry of the
// same event is processed again. Called when settlement of a first delivery
// fails; the ledger protocol absorbs any duplicate that slips through the
// resulting window.
func (g *Guard) Release(ctx context.Context, key string) {
	if err := g.client.Del(ctx, "meet-event:"+key).Err(); err != nil {
		l := logger.Get(ctx, g)
		l.Warn().Err(err).Str("key", key).Msg("Dedup release failed")
	}
}
