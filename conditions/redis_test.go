package conditions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return server, client
}

func TestRedisFlag(t *testing.T) {
	tt := []struct {
		desc    string
		value   string
		set     bool
		want    bool
		wantErr bool
	}{
		{desc: "missing key does not hold"},
		{desc: "true value holds", value: "true", set: true, want: true},
		{desc: "one holds", value: "1", set: true, want: true},
		{desc: "false value does not hold", value: "false", set: true},
		{desc: "garbage value is an error", value: "maybe", set: true, wantErr: true},
	}

	for _, ts := range tt {
		t.Run(ts.desc, func(t *testing.T) {
			server, client := newTestRedis(t)
			if ts.set {
				require.NoError(t, server.Set("maintenance", ts.value))
			}

			ok, err := RedisFlag(context.Background(), client, "maintenance")()
			if ts.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ts.want, ok)
		})
	}
}

func TestRedisFlag_Expires(t *testing.T) {
	server, client := newTestRedis(t)
	require.NoError(t, server.Set("maintenance", "true"))
	server.SetTTL("maintenance", time.Minute)

	flag := RedisFlag(context.Background(), client, "maintenance")

	ok, err := flag()
	require.NoError(t, err)
	assert.True(t, ok)

	server.FastForward(time.Minute)

	ok, err = flag()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisQuota(t *testing.T) {
	_, client := newTestRedis(t)

	now := time.Date(2024, time.June, 23, 10, 15, 30, 0, time.Local)
	quota := RedisQuota(context.Background(), client, "quota", 3, time.Minute, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		ok, err := quota()
		require.NoError(t, err)
		assert.True(t, ok, "evaluation %d should be within quota", i+1)
		now = now.Add(time.Second)
	}

	ok, err := quota()
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := client.ZCard(context.Background(), "quota").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count, "rejected evaluations are not recorded")

	// first hit leaves the window
	now = now.Add(58 * time.Second)
	ok, err = quota()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = quota()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisQuota_ServerDown(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{
		Addr:       server.Addr(),
		MaxRetries: -1,
	})
	defer client.Close()
	server.Close()

	_, err = RedisQuota(context.Background(), client, "quota", 3, time.Minute, time.Now)()
	assert.Error(t, err)
}
