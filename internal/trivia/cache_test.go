package trivia

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis overrides the two commands the category cache issues.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestCacheMissReturnsNil(t *testing.T) {
	cache := NewCache(&fakeRedis{data: map[string]string{}}, 0)

	got, err := cache.Get(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRoundTrip(t *testing.T) {
	client := &fakeRedis{data: map[string]string{}}
	cache := NewCache(client, 30*time.Second)

	require.NoError(t, cache.Set(context.Background(), CategoryMap{1: "Science", 10: "Music"}))
	got, err := cache.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, CategoryMap{1: "Science", 10: "Music"}, got)
	assert.Equal(t, 30*time.Second, client.ttl)
	assert.JSONEq(t, `{"1":"Science","10":"Music"}`, client.data[categoriesCacheKey])
}

func TestCacheDefaultTTL(t *testing.T) {
	client := &fakeRedis{data: map[string]string{}}
	cache := NewCache(client, 0)

	require.NoError(t, cache.Set(context.Background(), CategoryMap{1: "Science"}))

	assert.Equal(t, defaultCategoriesTTL, client.ttl)
}

func TestCacheGetError(t *testing.T) {
	cache := NewCache(&fakeRedis{data: map[string]string{}, getErr: errors.New("i/o timeout")}, 0)

	_, err := cache.Get(context.Background())

	assert.EqualError(t, err, "i/o timeout")
}

func TestCacheCorruptPayload(t *testing.T) {
	cache := NewCache(&fakeRedis{data: map[string]string{categoriesCacheKey: "not json"}}, 0)

	_, err := cache.Get(context.Background())

	assert.Error(t, err)
}
