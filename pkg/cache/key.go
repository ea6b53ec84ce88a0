// Package cache derives request cache keys. Storage lives in subpackages.
package cache

import (
	"fmt"
	"sort"
	"strings"
)

// BuildKey derives the cache key for a request to endpoint with params.
// Pairs are rendered as "name_value", sorted, joined with "_" and prefixed
// with endpoint and "_", so the key does not depend on map order.
// Empty params yield endpoint + "_".
func BuildKey(endpoint string, params map[string]any) string {
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, fmt.Sprintf("%s_%v", k, v))
	}
	sort.Strings(pairs)
	return endpoint + "_" + strings.Join(pairs, "_")
}

// SearchParams returns the query parameters for a hashtag search.
func SearchParams(hashtag string, count int) map[string]any {
	return map[string]any{
		"q":     hashtag,
		"count": count,
	}
}
