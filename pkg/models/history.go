package models

import "time"

// QueryRecord is one hashtag lookup made through the request service.
type QueryRecord struct {
	ID        int64     `json:"id"`
	Hashtag   string    `json:"hashtag"`
	CacheKey  string    `json:"cache_key"`
	Hit       bool      `json:"hit"`
	CreatedAt time.Time `json:"created_at"`
}

// QuerySummary aggregates lookups per hashtag.
type QuerySummary struct {
	Hashtag string `json:"hashtag"`
	Lookups int    `json:"lookups"`
	Hits    int    `json:"hits"`
	Misses  int    `json:"misses"`
}
