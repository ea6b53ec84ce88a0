// Package service answers hashtag searches from the response cache,
// falling back to the search API on a miss.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pario-ai/tagtally/pkg/cache"
	"github.com/pario-ai/tagtally/pkg/models"
	"github.com/pario-ai/tagtally/pkg/search"
)

// Event identifies how a request was served.
type Event int

const (
	// EventCacheHit means the response came from the cache.
	EventCacheHit Event = iota + 1
	// EventCacheMiss means a new request was made.
	EventCacheMiss
)

func (e Event) String() string {
	switch e {
	case EventCacheHit:
		return "fetching cached data"
	case EventCacheMiss:
		return "making new request"
	default:
		return "unknown"
	}
}

// Observer receives one event per FetchWithCache call.
type Observer func(ev Event, key string)

// Store is the response cache the service reads and populates.
type Store interface {
	Get(key string) (json.RawMessage, bool)
	Put(key string, value json.RawMessage) error
	Len() int
}

// Recorder keeps a log of lookups.
type Recorder interface {
	Record(ctx context.Context, rec models.QueryRecord) error
}

// Service composes the key builder, cache store and fetcher.
type Service struct {
	store    Store
	fetcher  search.Fetcher
	log      zerolog.Logger
	observer Observer
	recorder Recorder
	now      func() time.Time

	hits   int64
	misses int64
}

// Option configures a Service.
type Option func(*Service)

// WithObserver registers fn to receive cache events.
func WithObserver(fn Observer) Option {
	return func(s *Service) { s.observer = fn }
}

// WithRecorder records every lookup to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// New returns a Service over store and fetcher. store is shared for the
// lifetime of the process and mutated on every miss.
func New(store Store, fetcher search.Fetcher, opts ...Option) *Service {
	s := &Service{
		store:   store,
		fetcher: fetcher,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchWithCache returns the search result for hashtag, serving it from the
// cache when the same endpoint, hashtag and count were requested before.
// The hashtag is used verbatim in the key, so "#Go" and "#go" are cached
// separately. Fetch and persist errors are returned and nothing is cached
// for a failed fetch.
func (s *Service) FetchWithCache(ctx context.Context, endpoint, hashtag string, count int) (json.RawMessage, error) {
	params := cache.SearchParams(hashtag, count)
	key := cache.BuildKey(endpoint, params)

	if v, ok := s.store.Get(key); ok {
		s.hits++
		s.emit(ctx, EventCacheHit, hashtag, key)
		return v, nil
	}

	s.misses++
	s.emit(ctx, EventCacheMiss, hashtag, key)

	body, err := s.fetcher.Fetch(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", hashtag, err)
	}
	if err := s.store.Put(key, body); err != nil {
		return nil, fmt.Errorf("persist cache: %w", err)
	}
	return body, nil
}

// Stats returns the cache size and this process's hit and miss counts.
func (s *Service) Stats() models.CacheStats {
	return models.CacheStats{
		Entries: s.store.Len(),
		Hits:    s.hits,
		Misses:  s.misses,
	}
}

func (s *Service) emit(ctx context.Context, ev Event, hashtag, key string) {
	s.log.Info().Str("hashtag", hashtag).Str("key", key).Msg(ev.String())

	if s.observer != nil {
		s.observer(ev, key)
	}

	if s.recorder != nil {
		rec := models.QueryRecord{
			Hashtag:   hashtag,
			CacheKey:  key,
			Hit:       ev == EventCacheHit,
			CreatedAt: s.now().UTC(),
		}
		if err := s.recorder.Record(ctx, rec); err != nil {
			s.log.Warn().Err(err).Msg("history record failed")
		}
	}
}
