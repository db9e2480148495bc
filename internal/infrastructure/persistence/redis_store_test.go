package persistence_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"pet_market/internal/infrastructure/persistence"
	"pet_market/pkg/application/connectors"
)

func TestRedisStore(t *testing.T) {
	address := os.Getenv("REDIS_ADDRESS")
	if address == "" {
		t.Skip("REDIS_ADDRESS is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	conn := &connectors.Redis{Address: address, PoolSize: 2}
	defer conn.Close(ctx)

	client, err := conn.Client(ctx)
	rq.NoError(err)

	prefix := "pet_market_test:" + xid.New().String() + ":"
	store := persistence.NewRedisStore(client, prefix)

	_, ok, err := store.Get(ctx, "sortBy")
	rq.NoError(err)
	rq.False(ok)

	rq.NoError(store.Set(ctx, "sortBy", "coins_per_xp", time.Minute))

	v, ok, err := store.Get(ctx, "sortBy")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("coins_per_xp", v)

	rq.NoError(store.Set(ctx, "sortBy", "", 0))

	_, ok, err = store.Get(ctx, "sortBy")
	rq.NoError(err)
	rq.False(ok)
}
