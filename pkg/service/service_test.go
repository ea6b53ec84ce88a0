package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pario-ai/tagtally/pkg/cache"
	"github.com/pario-ai/tagtally/pkg/cache/file"
	"github.com/pario-ai/tagtally/pkg/models"
)

const endpoint = "https://api.twitter.com/1.1/search/tweets.json"

type fakeFetcher struct {
	calls  int
	params []map[string]any
	body   json.RawMessage
	err    error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string, params map[string]any) (json.RawMessage, error) {
	f.calls++
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

type fakeRecorder struct {
	records []models.QueryRecord
	err     error
}

func (r *fakeRecorder) Record(_ context.Context, rec models.QueryRecord) error {
	r.records = append(r.records, rec)
	return r.err
}

type eventLog struct {
	events []Event
	keys   []string
}

func (l *eventLog) observe(ev Event, key string) {
	l.events = append(l.events, ev)
	l.keys = append(l.keys, key)
}

func newTestService(t *testing.T, f *fakeFetcher, opts ...Option) (*Service, *file.Store, *eventLog) {
	t.Helper()
	store := file.Open(filepath.Join(t.TempDir(), "cache.json"), zerolog.Nop())
	events := &eventLog{}
	opts = append([]Option{WithObserver(events.observe)}, opts...)
	return New(store, f, opts...), store, events
}

func TestFetchWithCacheMissThenHit(t *testing.T) {
	f := &fakeFetcher{body: json.RawMessage(`{"statuses":[{"text":"a"}]}`)}
	svc, _, events := newTestService(t, f)
	ctx := context.Background()

	first, err := svc.FetchWithCache(ctx, endpoint, "#go", 100)
	require.NoError(t, err)
	second, err := svc.FetchWithCache(ctx, endpoint, "#go", 100)
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, []byte(first), []byte(second))
	assert.Equal(t, []Event{EventCacheMiss, EventCacheHit}, events.events)

	wantKey := cache.BuildKey(endpoint, map[string]any{"q": "#go", "count": 100})
	assert.Equal(t, []string{wantKey, wantKey}, events.keys)
	assert.Equal(t, map[string]any{"q": "#go", "count": 100}, f.params[0])

	assert.Equal(t, models.CacheStats{Entries: 1, Hits: 1, Misses: 1}, svc.Stats())
}

func TestFetchWithCachePersistsEveryMiss(t *testing.T) {
	f := &fakeFetcher{body: json.RawMessage(`{"statuses":[]}`)}
	svc, store, _ := newTestService(t, f)
	ctx := context.Background()

	_, err := svc.FetchWithCache(ctx, endpoint, "#a", 100)
	require.NoError(t, err)
	assert.Len(t, file.Load(store.Path()), 1)

	_, err = svc.FetchWithCache(ctx, endpoint, "#b", 100)
	require.NoError(t, err)
	onDisk := file.Load(store.Path())
	assert.Len(t, onDisk, 2)
	assert.Contains(t, onDisk, cache.BuildKey(endpoint, cache.SearchParams("#b", 100)))
}

func TestFetchWithCacheSurvivesRestart(t *testing.T) {
	f := &fakeFetcher{body: json.RawMessage(`{"statuses":[{"text":"x"}]}`)}
	svc, store, _ := newTestService(t, f)
	ctx := context.Background()

	_, err := svc.FetchWithCache(ctx, endpoint, "#go", 100)
	require.NoError(t, err)

	reopened := file.Open(store.Path(), zerolog.Nop())
	events := &eventLog{}
	svc2 := New(reopened, f, WithObserver(events.observe))
	got, err := svc2.FetchWithCache(ctx, endpoint, "#go", 100)
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
	assert.JSONEq(t, string(f.body), string(got))
	assert.Equal(t, []Event{EventCacheHit}, events.events)
}

func TestFetchWithCacheDistinctRequests(t *testing.T) {
	f := &fakeFetcher{body: json.RawMessage(`{}`)}
	svc, store, events := newTestService(t, f)
	ctx := context.Background()

	for _, req := range []struct {
		tag   string
		count int
	}{
		{"#go", 100},
		{"#go", 50},
		{"#Go", 100},
	} {
		_, err := svc.FetchWithCache(ctx, endpoint, req.tag, req.count)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, f.calls)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []Event{EventCacheMiss, EventCacheMiss, EventCacheMiss}, events.events)
}

func TestFetchWithCacheFetchError(t *testing.T) {
	boom := errors.New("401 unauthorized")
	f := &fakeFetcher{err: boom}
	svc, store, events := newTestService(t, f)

	_, err := svc.FetchWithCache(context.Background(), endpoint, "#go", 100)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, file.Load(store.Path()))
	assert.Equal(t, []Event{EventCacheMiss}, events.events)

	// A later success still populates the cache.
	f.err = nil
	f.body = json.RawMessage(`{"statuses":[]}`)
	_, err = svc.FetchWithCache(context.Background(), endpoint, "#go", 100)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestFetchWithCachePersistError(t *testing.T) {
	f := &fakeFetcher{body: json.RawMessage(`{}`)}
	store := file.Open(filepath.Join(t.TempDir(), "no-such-dir", "cache.json"), zerolog.Nop())
	svc := New(store, f)

	_, err := svc.FetchWithCache(context.Background(), endpoint, "#go", 100)
	assert.ErrorContains(t, err, "persist cache")
}

func TestFetchWithCacheRecordsHistory(t *testing.T) {
	f := &fakeFetcher{body: json.RawMessage(`{}`)}
	rec := &fakeRecorder{err: errors.New("db locked")}
	svc, _, _ := newTestService(t, f, WithRecorder(rec))
	ctx := context.Background()

	for range 2 {
		_, err := svc.FetchWithCache(ctx, endpoint, "#go", 100)
		require.NoError(t, err, "recorder errors are not returned")
	}

	require.Len(t, rec.records, 2)
	assert.False(t, rec.records[0].Hit)
	assert.True(t, rec.records[1].Hit)
	assert.Equal(t, "#go", rec.records[1].Hashtag)
	assert.False(t, rec.records[1].CreatedAt.IsZero())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "fetching cached data", EventCacheHit.String())
	assert.Equal(t, "making new request", EventCacheMiss.String())
	assert.Equal(t, "unknown", Event(0).String())
}
