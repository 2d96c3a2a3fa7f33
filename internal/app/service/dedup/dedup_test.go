package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestFirstDeliveryFailOpen(t *testing.T) {
	// nothing listens here: every call errors and the guard must pass the
	// event through instead of blocking settlement
	g := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Minute)

	require.True(t, g.FirstDelivery(context.Background(), "meet:request->aceptNotPayed"))
	require.True(t, g.FirstDelivery(context.Background(), "meet:request->aceptNotPayed"))
}

func TestReleaseFailOpen(t *testing.T) {
	g := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Minute)

	// a dead redis makes release a logged no-op, never a panic or an error
	g.Release(context.Background(), "meet:request->aceptNotPayed")
}
